// Package dice provides the dice calculus for the Dungeon engine: a
// RandomValue describes an outcome distribution "base + NdS + level-scaled
// bonus", and every distribution can be reduced to a single number under
// one of five aspects — its minimum, average, maximum, "extreme" display
// bound, or an actual random sample. The same formula serves both the true
// sampled outcome and the analytic display aspects, so callers never
// special-case display logic apart from outcome logic.
package dice

import "fmt"

// Source is the randomness provider for dice rolls, satisfied by
// *rng.Engine. Analytic aspects never draw from it; only Randomise does.
type Source interface {
	// Intn returns a uniformly distributed int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Normal returns an integer deviate approximating a normal
	// distribution with the given mean and standard deviation.
	Normal(mean, stddev int) int
}

// RollResult holds the full audit trail for a single sampled evaluation.
//
// Postcondition: Total() == Base + sum(Dice) + Bonus.
type RollResult struct {
	Expression string // original expression string, e.g. "5+2d6m4"
	Base       int    // flat base (may be negative)
	Dice       []int  // individual die results
	Bonus      int    // sampled level-scaled bonus
}

// Total returns the base plus the sum of all die results plus the bonus.
func (r RollResult) Total() int {
	total := r.Base + r.Bonus
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"5+2d6m4 → [4 5] +7 = 16"
//
// where the signed term is the base and sampled bonus combined.
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Base+r.Bonus, r.Total())
}
