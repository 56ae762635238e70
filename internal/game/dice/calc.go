package dice

// RandomValue is a stochastic outcome specification: the distribution
// Base + sum(Dice uniform draws over [1, Sides]) + level-scaled bonus
// bounded by MBonus. Values are lightweight and immutable; call sites
// build them inline ("a longsword deals RandomValue{Dice: 2, Sides: 6}").
//
// Invariant: Sides is only meaningful when Dice > 0; a zero-dice value is
// a constant plus bonus.
type RandomValue struct {
	Base   int
	Dice   int
	Sides  int
	MBonus int
}

// checkDice enforces the shared precondition of Roll and Calc.
func checkDice(n, s int) {
	if n < 0 {
		panic("dice: negative die count")
	}
	if n > 0 && s < 1 {
		panic("dice: die count with sides < 1")
	}
}

// Roll samples n independent uniform draws over [1, s] and returns their
// sum.
//
// Precondition: n >= 0; s >= 1 when n > 0; src non-nil when n > 0.
// Postcondition: result is 0 when n == 0, otherwise in [n, n*s].
func Roll(n, s int, src Source) int {
	checkDice(n, s)
	sum := 0
	for i := 0; i < n; i++ {
		sum += src.Intn(s) + 1
	}
	return sum
}

// Calc reduces an NdS dice term under the given aspect. Deterministic for
// every aspect except Randomise, which draws from src.
//
// Precondition: as for Roll; src may be nil for analytic aspects.
func Calc(n, s int, a Aspect, src Source) int {
	checkDice(n, s)
	switch a {
	case Minimise:
		return n
	case Maximise:
		return n * s
	case Average:
		return diceAverage(n, s)
	case Extremify:
		// Whichever extreme is farther from the average; ties go to
		// the maximum.
		avg := diceAverage(n, s)
		if n*s-avg >= avg-n {
			return n * s
		}
		return n
	case Randomise:
		return Roll(n, s, src)
	default:
		panic("dice: unknown aspect " + a.String())
	}
}

// diceAverage is round-half-up of n*(s+1)/2.
func diceAverage(n, s int) int {
	return (n*(s+1) + 1) / 2
}

// Calc reduces the full specification under the given aspect at the given
// level: Base + Calc(Dice, Sides, aspect) + BonusCalc(MBonus, level,
// aspect). Display aspects and the sampled outcome share this one formula.
//
// Precondition: the value must satisfy the RandomValue invariant; src may
// be nil unless a == Randomise.
func (v RandomValue) Calc(level int, a Aspect, src Source) int {
	if v == (RandomValue{}) {
		return 0
	}
	return v.Base + Calc(v.Dice, v.Sides, a, src) + BonusCalc(v.MBonus, level, a, src)
}

// Valid reports whether test lies within the closed interval of outcomes
// the specification can produce at the given level.
func (v RandomValue) Valid(level, test int) bool {
	return test >= v.Calc(level, Minimise, nil) && test <= v.Calc(level, Maximise, nil)
}

// Varies reports whether the specification can produce more than one
// value: more than one die, more than one side, or a non-constant bonus
// curve. Presentation code uses this to choose between a fixed number and
// a range.
func (v RandomValue) Varies() bool {
	return v.Dice > 1 || v.Sides > 1 || v.MBonus != 0
}
