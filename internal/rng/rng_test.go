package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/rng"
)

// TestNewEngine_Deterministic verifies that two engines built from the same
// seed produce identical draw sequences.
func TestNewEngine_Deterministic(t *testing.T) {
	a := rng.NewEngine(42)
	b := rng.NewEngine(42)
	for i := 0; i < 200; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d diverged", i)
	}
}

// TestNewEngine_SeedsDiffer verifies that different seeds diverge within a
// short prefix of draws.
func TestNewEngine_SeedsDiffer(t *testing.T) {
	a := rng.NewEngine(1)
	b := rng.NewEngine(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1 << 20) != b.Intn(1 << 20) {
			same = false
			break
		}
	}
	assert.False(t, same, "seeds 1 and 2 must not share a 20-draw prefix")
}

// TestEngine_GoldenRolls pins the complex generator's recurrence and
// tempering step: seed 12345 followed by three 1d20 rolls must reproduce
// this recorded sequence on every platform. Any change to the generator
// breaks this test by design of the test.
func TestEngine_GoldenRolls(t *testing.T) {
	e := rng.NewEngine(12345)
	got := []int{e.Randint1(20), e.Randint1(20), e.Randint1(20)}
	assert.Equal(t, []int{12, 16, 16}, got)
}

// TestEngine_GoldenIntn pins a longer draw sequence against recorded values.
func TestEngine_GoldenIntn(t *testing.T) {
	e := rng.NewEngine(12345)
	got := make([]int, 6)
	for i := range got {
		got[i] = e.Intn(100)
	}
	assert.Equal(t, []int{55, 79, 79, 21, 50, 98}, got)
}

// TestEngine_GoldenQuick pins the quick generator's recurrence: seed 42 in
// quick mode must reproduce this recorded 1d20 sequence.
func TestEngine_GoldenQuick(t *testing.T) {
	e := rng.NewEngine(42)
	e.SetQuickMode(true)
	got := make([]int, 5)
	for i := range got {
		got[i] = e.Randint1(20)
	}
	assert.Equal(t, []int{16, 16, 15, 18, 15}, got)
}

// TestEngine_QuickIsolation verifies the key mode invariant: draws made in
// quick mode do not alter the complex generator's subsequent sequence.
func TestEngine_QuickIsolation(t *testing.T) {
	toggled := rng.NewEngine(777)
	pure := rng.NewEngine(777)

	toggled.SetQuickMode(true)
	require.True(t, toggled.QuickMode())
	for i := 0; i < 10; i++ {
		toggled.Intn(1000)
	}
	toggled.SetQuickMode(false)
	require.False(t, toggled.QuickMode())

	for i := 0; i < 50; i++ {
		assert.Equal(t, pure.Intn(1000), toggled.Intn(1000),
			"complex draw %d perturbed by quick-mode interlude", i)
	}
}

// TestEngine_ComplexIsolation verifies the converse: complex draws do not
// alter the quick generator's sequence.
func TestEngine_ComplexIsolation(t *testing.T) {
	toggled := rng.NewEngine(9001)
	pure := rng.NewEngine(9001)

	for i := 0; i < 10; i++ {
		toggled.Intn(1000)
	}
	toggled.SetQuickMode(true)
	pure.SetQuickMode(true)

	for i := 0; i < 50; i++ {
		assert.Equal(t, pure.Intn(1000), toggled.Intn(1000),
			"quick draw %d perturbed by complex-mode interlude", i)
	}
}

// TestEngine_Reseed verifies Seed restarts the complex sequence mid-process
// without touching the quick generator.
func TestEngine_Reseed(t *testing.T) {
	e := rng.NewEngine(12345)
	for i := 0; i < 100; i++ {
		e.Intn(100)
	}
	e.Seed(12345)
	got := []int{e.Randint1(20), e.Randint1(20), e.Randint1(20)}
	assert.Equal(t, []int{12, 16, 16}, got, "reseed must restart the recorded sequence")
}

// TestNewEngineFromEntropy verifies entropy seeding consumes the injected
// source and produces a working engine.
func TestNewEngineFromEntropy(t *testing.T) {
	fixed := &fixedEntropy{values: []uint32{12345, 42, 7}}
	e := rng.NewEngineFromEntropy(fixed)
	require.Equal(t, 3, fixed.reads, "must seed complex, quick, and simple state")

	// Complex stream matches a directly-seeded engine.
	want := rng.NewEngine(12345)
	for i := 0; i < 20; i++ {
		assert.Equal(t, want.Intn(1000), e.Intn(1000))
	}
}

// TestNewEngineFromEntropy_DefaultSource verifies the nil source falls back
// to OS entropy without panicking.
func TestNewEngineFromEntropy_DefaultSource(t *testing.T) {
	e := rng.NewEngineFromEntropy(nil)
	v := e.Intn(100)
	assert.GreaterOrEqual(t, v, 0)
	assert.Less(t, v, 100)
}

// fixedEntropy replays a recorded seed sequence.
type fixedEntropy struct {
	values []uint32
	reads  int
}

func (f *fixedEntropy) Uint32() uint32 {
	v := f.values[f.reads%len(f.values)]
	f.reads++
	return v
}

// TestEngine_Intn_Uniformity runs a chi-square test over 60000 d6 draws
// from a fixed seed. With 5 degrees of freedom the 0.995 quantile is 16.75;
// the recorded statistic for this seed is well under it.
func TestEngine_Intn_Uniformity(t *testing.T) {
	e := rng.NewEngine(12345)
	const n = 60000
	var counts [6]int
	for i := 0; i < n; i++ {
		counts[e.Intn(6)]++
	}

	expected := float64(n) / 6
	chi2 := 0.0
	for face, c := range counts {
		assert.Greater(t, c, 0, "face %d never drawn", face)
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, 16.75, "chi-square statistic %f exceeds 0.995 quantile", chi2)
}

// TestEngine_Intn_Property verifies range bounds for arbitrary n and seeds.
func TestEngine_Intn_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint32().Draw(rt, "seed")
		n := rapid.IntRange(1, 1<<20).Draw(rt, "n")
		quick := rapid.Bool().Draw(rt, "quick")

		e := rng.NewEngine(seed)
		e.SetQuickMode(quick)
		for i := 0; i < 10; i++ {
			v := e.Intn(n)
			assert.GreaterOrEqual(rt, v, 0)
			assert.Less(rt, v, n)
		}
	})
}

// TestEngine_Intn_PanicsOnZero verifies the sampler precondition.
func TestEngine_Intn_PanicsOnZero(t *testing.T) {
	e := rng.NewEngine(1)
	assert.Panics(t, func() { e.Intn(0) })
	assert.Panics(t, func() { e.Intn(-5) })
	assert.Panics(t, func() { e.Intn(1 << 28) })
}

// TestEngine_Intn_OneIsConstant verifies the degenerate bound.
func TestEngine_Intn_OneIsConstant(t *testing.T) {
	e := rng.NewEngine(7)
	for i := 0; i < 10; i++ {
		assert.Zero(t, e.Intn(1))
	}
}

// TestEngine_Randint1_Bounds verifies Randint1(n) is always in [1, n].
func TestEngine_Randint1_Bounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint32().Draw(rt, "seed")
		n := rapid.IntRange(1, 1000).Draw(rt, "n")
		e := rng.NewEngine(seed)
		for i := 0; i < 10; i++ {
			v := e.Randint1(n)
			assert.GreaterOrEqual(rt, v, 1)
			assert.LessOrEqual(rt, v, n)
		}
	})
}

// TestEngine_RandSpread_Bounds verifies RandSpread(a, d) is in [a-d, a+d].
func TestEngine_RandSpread_Bounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint32().Draw(rt, "seed")
		a := rapid.IntRange(-1000, 1000).Draw(rt, "a")
		d := rapid.IntRange(0, 500).Draw(rt, "d")
		e := rng.NewEngine(seed)
		for i := 0; i < 10; i++ {
			v := e.RandSpread(a, d)
			assert.GreaterOrEqual(rt, v, a-d)
			assert.LessOrEqual(rt, v, a+d)
		}
	})
}

// TestEngine_RandRange_Bounds verifies RandRange(a, b) is in [a, b] and that
// RandRange(0, n-1) matches Intn(n) draw for draw.
func TestEngine_RandRange_Bounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint32().Draw(rt, "seed")
		a := rapid.IntRange(-1000, 1000).Draw(rt, "a")
		span := rapid.IntRange(0, 500).Draw(rt, "span")
		e := rng.NewEngine(seed)
		for i := 0; i < 10; i++ {
			v := e.RandRange(a, a+span)
			assert.GreaterOrEqual(rt, v, a)
			assert.LessOrEqual(rt, v, a+span)
		}

		lhs := rng.NewEngine(seed)
		rhs := rng.NewEngine(seed)
		assert.Equal(rt, rhs.Intn(span+1), lhs.RandRange(0, span))
	})
}

// TestEngine_OneIn verifies OneIn(1) is always true and OneIn frequency is
// plausible for a larger x.
func TestEngine_OneIn(t *testing.T) {
	e := rng.NewEngine(7)
	for i := 0; i < 10; i++ {
		assert.True(t, e.OneIn(1))
	}

	hits := 0
	for i := 0; i < 10000; i++ {
		if e.OneIn(10) {
			hits++
		}
	}
	assert.InDelta(t, 1000, hits, 150, "OneIn(10) hit rate far from 1/10")
}

// TestEngine_RandSimple verifies range and the precondition panic. No
// distribution guarantee: RandSimple is documented as biased.
func TestEngine_RandSimple(t *testing.T) {
	e := rng.NewEngine(1)
	for i := 0; i < 1000; i++ {
		v := e.RandSimple(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
	assert.Panics(t, func() { e.RandSimple(0) })
}

// TestEngine_RandSimple_DoesNotTouchGenerators verifies RandSimple draws
// leave both gameplay sequences intact.
func TestEngine_RandSimple_DoesNotTouchGenerators(t *testing.T) {
	a := rng.NewEngine(12345)
	b := rng.NewEngine(12345)
	for i := 0; i < 25; i++ {
		a.RandSimple(1000)
	}
	got := []int{a.Randint1(20), a.Randint1(20), a.Randint1(20)}
	want := []int{b.Randint1(20), b.Randint1(20), b.Randint1(20)}
	assert.Equal(t, want, got)
}
