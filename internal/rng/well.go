package rng

// stateWords is the number of 32-bit words of complex generator state.
const stateWords = 32

// wellSource implements the WELL1024a recurrence of Panneton, L'Ecuyer and
// Matsumoto: 32 words of state, a rotating cursor, and a three-word
// tempering step that decorrelates successive outputs. The wide state
// avoids the short-period artifacts a single-word recurrence would show in
// long dungeon-generation sequences.
type wellSource struct {
	state      [stateWords]uint32
	cursor     uint32
	z0, z1, z2 uint32
}

// seed derives the full 1024-bit state from a single 32-bit seed by
// propagating it through the quick LCG recurrence, and resets the cursor
// and tempering words.
//
// Postcondition: identical seeds yield identical output sequences.
func (w *wellSource) seed(seed uint32) {
	w.cursor = 0
	w.z0, w.z1, w.z2 = 0, 0, 0
	w.state[0] = seed
	for i := 1; i < stateWords; i++ {
		w.state[i] = lcrng(w.state[i-1])
	}
}

// next advances the recurrence one step and returns the tempered output.
//
// The word at the cursor is combined with three other state words plus a
// feedback term; the cursor then rotates backwards and the new front word
// receives the tempered mix of the three auxiliary words.
func (w *wellSource) next() uint32 {
	i := w.cursor

	vm1 := w.state[(i+3)&0x1f]
	vm2 := w.state[(i+24)&0x1f]
	vm3 := w.state[(i+10)&0x1f]

	w.z0 = w.state[(i+31)&0x1f]
	w.z1 = w.state[i] ^ (vm1 ^ (vm1 >> 8))
	w.z2 = (vm2 ^ (vm2 << 19)) ^ (vm3 ^ (vm3 << 14))

	w.state[i] = w.z1 ^ w.z2
	w.state[(i+31)&0x1f] = (w.z0 ^ (w.z0 << 11)) ^
		(w.z1 ^ (w.z1 << 7)) ^
		(w.z2 ^ (w.z2 << 13))

	w.cursor = (i + 31) & 0x1f
	return w.state[w.cursor]
}
