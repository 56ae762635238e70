package dice

import "go.uber.org/zap"

// RollDetailed samples the full specification at the given level, keeping
// the individual die results for the audit trail. It consumes exactly the
// same draws in the same order as Calc with Randomise, so the two stay
// interchangeable under a fixed seed.
//
// Precondition: v must satisfy the RandomValue invariant; src non-nil.
func RollDetailed(v RandomValue, level int, src Source) RollResult {
	checkDice(v.Dice, v.Sides)

	rolled := make([]int, v.Dice)
	for i := range rolled {
		rolled[i] = src.Intn(v.Sides) + 1
	}

	bonus := 0
	if v != (RandomValue{}) {
		bonus = BonusCalc(v.MBonus, level, Randomise, src)
	}

	return RollResult{
		Expression: v.String(),
		Base:       v.Base,
		Dice:       rolled,
		Bonus:      bonus,
	}
}

// Roller wraps a Source and logger to provide logged dice rolling. All
// rolls are logged at debug level with expression, die values, bonus, and
// total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll
// to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll samples v at the given level and logs the result at debug level.
func (r *Roller) Roll(v RandomValue, level int) RollResult {
	result := RollDetailed(v, level, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Int("level", level),
		zap.Ints("dice", result.Dice),
		zap.Int("base", result.Base),
		zap.Int("bonus", result.Bonus),
		zap.Int("total", result.Total()),
	)
	return result
}

// Source exposes the Roller's underlying generator for callers that need
// unlogged draws with the same state, such as deterministic aspect
// evaluation in scripts.
func (r *Roller) Source() Source {
	return r.src
}

// RollExpr parses expr and rolls it at the given level, logging the result.
//
// Precondition: expr must be a valid dice expression string.
// Postcondition: Returns a RollResult or a parse error.
func (r *Roller) RollExpr(expr string, level int) (RollResult, error) {
	v, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(v, level), nil
}
