package rng

import (
	"crypto/rand"
	"encoding/binary"
)

// EntropySource supplies fresh, non-reproducible 32-bit values for seeding.
// It is the one external resource the engine touches, injected so tests can
// substitute a fixed sequence.
type EntropySource interface {
	Uint32() uint32
}

// cryptoEntropy reads OS entropy via crypto/rand. Read failure is fatal.
type cryptoEntropy struct{}

// Uint32 returns a fresh 32-bit value from the OS entropy pool.
//
// Panics with "rng: crypto/rand failure: <err>" if the pool is unreadable.
func (cryptoEntropy) Uint32() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("rng: crypto/rand failure: " + err.Error())
	}
	return binary.LittleEndian.Uint32(buf[:])
}
