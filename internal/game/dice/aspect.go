package dice

import "fmt"

// Aspect selects how a stochastic specification is reduced to a single
// number. Minimise, Average, Maximise, and Extremify are pure functions of
// the specification; Randomise consumes draws from a Source. Every switch
// over Aspect in this package is exhaustive, with unknown values treated
// as a precondition violation.
type Aspect int

const (
	// Minimise reduces to the distribution's minimum.
	Minimise Aspect = iota
	// Average reduces to the distribution's mean, rounded half-up.
	Average
	// Maximise reduces to the distribution's maximum.
	Maximise
	// Extremify reduces to whichever extreme lies farther from the
	// average; presentation code uses it for the "more dramatic" bound.
	Extremify
	// Randomise samples the distribution, consuming generator state.
	Randomise
)

// AspectFromString parses an aspect name as produced by String. Used by
// the CLI and the scripting surface.
func AspectFromString(s string) (Aspect, error) {
	switch s {
	case "minimise":
		return Minimise, nil
	case "average":
		return Average, nil
	case "maximise":
		return Maximise, nil
	case "extremify":
		return Extremify, nil
	case "randomise":
		return Randomise, nil
	default:
		return 0, fmt.Errorf("dice: unknown aspect %q", s)
	}
}

// String returns the aspect name for logs and error messages.
func (a Aspect) String() string {
	switch a {
	case Minimise:
		return "minimise"
	case Average:
		return "average"
	case Maximise:
		return "maximise"
	case Extremify:
		return "extremify"
	case Randomise:
		return "randomise"
	default:
		return fmt.Sprintf("aspect(%d)", int(a))
	}
}
