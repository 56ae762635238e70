package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/dice"
)

// TestParse_ValidExpressions covers the supported forms.
func TestParse_ValidExpressions(t *testing.T) {
	cases := []struct {
		expr string
		want dice.RandomValue
	}{
		{"7", dice.RandomValue{Base: 7}},
		{"-3", dice.RandomValue{Base: -3}},
		{"0", dice.RandomValue{}},
		{"d20", dice.RandomValue{Dice: 1, Sides: 20}},
		{"2d6", dice.RandomValue{Dice: 2, Sides: 6}},
		{"2D6", dice.RandomValue{Dice: 2, Sides: 6}},
		{"5+2d6", dice.RandomValue{Base: 5, Dice: 2, Sides: 6}},
		{"-2+1d4", dice.RandomValue{Base: -2, Dice: 1, Sides: 4}},
		{"2d6m4", dice.RandomValue{Dice: 2, Sides: 6, MBonus: 4}},
		{"2d6M4", dice.RandomValue{Dice: 2, Sides: 6, MBonus: 4}},
		{"5+2d6m4", dice.RandomValue{Base: 5, Dice: 2, Sides: 6, MBonus: 4}},
		{"2d6+3", dice.RandomValue{Base: 3, Dice: 2, Sides: 6}},
		{"2d6-1", dice.RandomValue{Base: -1, Dice: 2, Sides: 6}},
		{"2d6m4+3", dice.RandomValue{Base: 3, Dice: 2, Sides: 6, MBonus: 4}},
		{"5+d8", dice.RandomValue{Base: 5, Dice: 1, Sides: 8}},
	}
	for _, tc := range cases {
		got, err := dice.Parse(tc.expr)
		require.NoError(t, err, "expression %q", tc.expr)
		assert.Equal(t, tc.want, got, "expression %q", tc.expr)
	}
}

// TestParse_InvalidExpressions verifies descriptive errors, not panics.
func TestParse_InvalidExpressions(t *testing.T) {
	for _, expr := range []string{
		"", "d", "2d", "d0", "2d0", "0d6", "-2d6", "xdy",
		"2d6m", "2d6m-1", "2d6+", "banana", "1.5d6", "2dd6",
	} {
		_, err := dice.Parse(expr)
		assert.Error(t, err, "expression %q must not parse", expr)
	}
}

// TestParse_RoundTrip verifies String() output re-parses to the same value.
func TestParse_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := dice.RandomValue{
			Base:   rapid.IntRange(-50, 50).Draw(rt, "base"),
			Dice:   rapid.IntRange(1, 30).Draw(rt, "dice"),
			Sides:  rapid.IntRange(1, 100).Draw(rt, "sides"),
			MBonus: rapid.IntRange(0, 20).Draw(rt, "mbonus"),
		}

		parsed, err := dice.Parse(v.String())
		require.NoError(rt, err, "canonical form %q must parse", v.String())
		assert.Equal(rt, v, parsed)
	})
}

// TestMustParse verifies the panic contract.
func TestMustParse(t *testing.T) {
	assert.Equal(t, dice.RandomValue{Dice: 1, Sides: 20}, dice.MustParse("d20"))
	assert.Panics(t, func() { dice.MustParse("not dice") })
}
