package rng

// lcrng is the classic BSD linear congruential step. It seeds the complex
// generator's state table and drives the quick generator.
func lcrng(x uint32) uint32 {
	return x*1103515245 + 12345
}

// quickSource is the single-word quick generator: one LCG step per draw,
// O(1), no statistical-quality guarantee beyond being visually adequate.
// Callers contract never to use it for anything that affects game outcome
// fairness.
type quickSource struct {
	value uint32
}

func (q *quickSource) next() uint32 {
	q.value = lcrng(q.value)
	return q.value
}
