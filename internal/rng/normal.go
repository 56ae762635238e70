package rng

// normalSteps is the table resolution: normalTable[normalSteps*k] holds the
// scaled probability that a standard normal deviate falls within k standard
// deviations of the mean.
const normalSteps = 64

// normalScale is the fixed-point scale of the table entries and of the
// magnitude draw made by Normal.
const normalScale = 32768

// normalTable[i] = round(normalScale * P(|X| <= (i+1)/64)) for a standard
// normal X, capped at normalScale-1. Precomputed so Normal can use an
// integer binary search instead of a transcendental call per draw.
var normalTable = [256]int{
	409, 817, 1225, 1633, 2041, 2448, 2854, 3260,
	3665, 4069, 4472, 4874, 5274, 5674, 6072, 6469,
	6864, 7258, 7649, 8039, 8427, 8813, 9198, 9579,
	9959, 10336, 10711, 11084, 11454, 11821, 12186, 12548,
	12907, 13263, 13616, 13967, 14314, 14658, 14999, 15336,
	15671, 16002, 16329, 16654, 16975, 17292, 17606, 17916,
	18222, 18525, 18824, 19120, 19412, 19700, 19984, 20265,
	20541, 20814, 21083, 21348, 21610, 21867, 22121, 22370,
	22616, 22858, 23096, 23331, 23561, 23787, 24010, 24229,
	24444, 24655, 24863, 25067, 25266, 25463, 25655, 25844,
	26029, 26211, 26389, 26563, 26734, 26902, 27065, 27226,
	27383, 27537, 27687, 27834, 27978, 28118, 28256, 28390,
	28521, 28649, 28774, 28896, 29015, 29131, 29244, 29355,
	29463, 29568, 29670, 29769, 29867, 29961, 30053, 30143,
	30230, 30315, 30397, 30477, 30555, 30631, 30704, 30776,
	30845, 30913, 30978, 31042, 31103, 31163, 31221, 31277,
	31331, 31384, 31435, 31485, 31533, 31579, 31624, 31667,
	31709, 31750, 31789, 31827, 31864, 31900, 31934, 31967,
	31999, 32030, 32059, 32088, 32116, 32142, 32168, 32193,
	32217, 32240, 32262, 32283, 32304, 32324, 32343, 32361,
	32379, 32396, 32412, 32427, 32442, 32457, 32471, 32484,
	32497, 32509, 32521, 32532, 32543, 32553, 32563, 32573,
	32582, 32591, 32599, 32607, 32615, 32622, 32629, 32636,
	32642, 32648, 32654, 32660, 32665, 32670, 32675, 32680,
	32684, 32688, 32692, 32696, 32700, 32703, 32707, 32710,
	32713, 32716, 32718, 32721, 32723, 32726, 32728, 32730,
	32732, 32734, 32736, 32738, 32739, 32741, 32742, 32744,
	32745, 32746, 32748, 32749, 32750, 32751, 32752, 32753,
	32754, 32754, 32755, 32756, 32757, 32757, 32758, 32759,
	32759, 32760, 32760, 32761, 32761, 32761, 32762, 32762,
	32763, 32763, 32763, 32763, 32764, 32764, 32764, 32765,
	32765, 32765, 32765, 32765, 32765, 32766, 32766, 32766,
}

// Normal returns an integer deviate approximating a normal distribution
// with the given mean and standard deviation, symmetric about mean.
//
// Exactly two uniform draws are consumed per call (one for the magnitude,
// one for the sign), so sequences stay reproducible under a fixed seed.
//
// Postcondition: stddev < 1 returns mean without consuming generator state.
func (e *Engine) Normal(mean, stddev int) int {
	if stddev < 1 {
		return mean
	}

	tmp := e.Intn(normalScale)

	// Binary search for the smallest table index whose cumulative
	// probability covers the draw.
	low, high := 0, len(normalTable)
	for low < high {
		mid := (low + high) >> 1
		if normalTable[mid] < tmp {
			low = mid + 1
		} else {
			high = mid
		}
	}

	offset := stddev * low / normalSteps

	if e.Intn(100) < 50 {
		return mean - offset
	}
	return mean + offset
}
