package dice

// MaxDepth is the assumed maximum dungeon depth used by the bonus curve.
// The curve saturates once level reaches it. It must be at least 100;
// lowering it below 128 prevents some deep objects from being generated.
const MaxDepth = 128

// clampLevel saturates level into [0, MaxDepth-1].
func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxDepth-1 {
		return MaxDepth - 1
	}
	return level
}

// Bonus samples the level-scaled enchantment bonus: a value in [0, max]
// whose expectation climbs linearly with level toward max, saturating at
// MaxDepth. The sample is a normal deviate around the scaled expectation
// with a standard deviation of about a quarter of max; fractional parts of
// both are rounded stochastically so the expectation stays exact without
// floating point.
//
// Two rounding draws are consumed per call, plus Normal's fixed pair
// whenever the rounded spread is non-zero.
//
// Precondition: max >= 0; src non-nil.
// Postcondition: result is in [0, max]; the expectation is monotonically
// non-decreasing in level.
func Bonus(max, level int, src Source) int {
	if max < 0 {
		panic("dice: Bonus called with max < 0")
	}
	level = clampLevel(level)

	// Scaled expectation, with stochastic rounding of the remainder.
	bonus := max * level / MaxDepth
	if src.Intn(MaxDepth) < max*level%MaxDepth {
		bonus++
	}

	// Spread is a quarter of max, same rounding treatment.
	stand := max / 4
	if src.Intn(4) < max%4 {
		stand++
	}

	value := src.Normal(bonus, stand)
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}

// BonusCalc reduces the bonus curve at the given level under the given
// aspect. The curve's true floor and ceiling are 0 and max regardless of
// level; Average is the curve's scaled expectation, truncated.
//
// Precondition: max >= 0; src may be nil for analytic aspects.
func BonusCalc(max, level int, a Aspect, src Source) int {
	if max < 0 {
		panic("dice: BonusCalc called with max < 0")
	}
	switch a {
	case Minimise:
		return 0
	case Maximise, Extremify:
		return max
	case Average:
		return max * clampLevel(level) / MaxDepth
	case Randomise:
		return Bonus(max, level, src)
	default:
		panic("dice: unknown aspect " + a.String())
	}
}
