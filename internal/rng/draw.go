package rng

import "time"

// drawLimit is the largest exclusive bound Intn accepts. The rejection
// sampler partitions a 28-bit word, so bounds at or above 2^28 cannot be
// serviced without bias.
const drawLimit = 1 << 28

// Intn returns a uniformly distributed int in [0, n), drawn from the
// active generator. This is the uniform sampler every other draw routes
// through.
//
// No modulo bias: the raw 28-bit output range is partitioned into n equal
// buckets and values past the last full bucket are rejected and redrawn,
// so every result has exactly equal probability.
//
// Precondition: 0 < n < 2^28. Panics otherwise.
// Postcondition: result is in [0, n). n == 1 returns 0 without consuming
// generator state.
func (e *Engine) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	if n >= drawLimit {
		panic("rng: Intn called with n >= 2^28")
	}
	if n == 1 {
		return 0
	}

	m := uint32(n)
	part := uint32(drawLimit) / m
	for {
		r := (e.active.next() >> 4) / part
		if r < m {
			return int(r)
		}
	}
}

// Randint1 returns a uniformly distributed int in [1, n].
//
// Precondition: 0 < n < 2^28.
func (e *Engine) Randint1(n int) int {
	return e.Intn(n) + 1
}

// RandRange returns a uniformly distributed int in [a, b].
//
// Precondition: a <= b and b-a+1 < 2^28.
func (e *Engine) RandRange(a, b int) int {
	return a + e.Intn(b-a+1)
}

// RandSpread returns a uniformly distributed int in [center-d, center+d].
//
// Precondition: d >= 0 and 2d+1 < 2^28.
func (e *Engine) RandSpread(center, d int) int {
	return center + e.Intn(2*d+1) - d
}

// OneIn returns true one time in x.
//
// Precondition: 0 < x < 2^28.
func (e *Engine) OneIn(x int) bool {
	return e.Intn(x) == 0
}

// RandSimple returns a semi-random int in [0, m) in a way that does not
// touch either gameplay generator. It folds wall-clock time into a private
// LCG word and maps by modulo, so it is neither reproducible nor bias-free.
// Intended for host tooling outside the simulation loop only.
//
// Precondition: m > 0. Panics otherwise.
func (e *Engine) RandSimple(m int) int {
	if m <= 0 {
		panic("rng: RandSimple called with m <= 0")
	}
	e.simpleValue = lcrng(e.simpleValue + uint32(time.Now().UnixNano()))
	return int(e.simpleValue % uint32(m))
}
