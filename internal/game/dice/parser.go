package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a dice expression string into a RandomValue.
//
// Supported forms, in the order base, dice, bonus, trailing modifier:
//
//	"7"        constant
//	"d20"      one die
//	"2d6"      dice
//	"5+2d6"    base plus dice
//	"2d6m4"    dice with a level-scaled bonus bounded by 4
//	"2d6m4+3"  trailing modifier, folded into the base
//
// Precondition: expr must be non-empty.
// Postcondition: Returns a RandomValue satisfying its invariant, or a
// descriptive error.
func Parse(expr string) (RandomValue, error) {
	if expr == "" {
		return RandomValue{}, fmt.Errorf("dice: empty expression")
	}

	raw := expr
	s := strings.ToLower(expr)

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		base, err := strconv.Atoi(s)
		if err != nil {
			return RandomValue{}, fmt.Errorf("dice: invalid constant expression %q: %w", raw, err)
		}
		return RandomValue{Base: base}, nil
	}

	// Left of 'd': optional "base+" prefix, then the die count; an
	// omitted count means one die.
	left := s[:dIdx]
	base := 0
	if plus := strings.LastIndex(left, "+"); plus > 0 {
		b, err := strconv.Atoi(left[:plus])
		if err != nil {
			return RandomValue{}, fmt.Errorf("dice: invalid base in %q: %w", raw, err)
		}
		base = b
		left = left[plus+1:]
	}

	count := 1
	if left != "" {
		var err error
		count, err = strconv.Atoi(left)
		if err != nil {
			return RandomValue{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return RandomValue{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	// Right of 'd': sides, optional "m<max>" bonus, optional trailing
	// signed modifier (not at position 0, so a bare sign cannot eat the
	// sides).
	rest := s[dIdx+1:]

	modOffset := -1
	for i := 1; i < len(rest); i++ {
		if rest[i] == '+' || rest[i] == '-' {
			modOffset = i
			break
		}
	}
	if modOffset >= 0 {
		mod, err := strconv.Atoi(rest[modOffset:])
		if err != nil {
			return RandomValue{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
		base += mod
		rest = rest[:modOffset]
	}

	bonus := 0
	if mIdx := strings.Index(rest, "m"); mIdx >= 0 {
		b, err := strconv.Atoi(rest[mIdx+1:])
		if err != nil {
			return RandomValue{}, fmt.Errorf("dice: invalid bonus in %q: %w", raw, err)
		}
		if b < 0 {
			return RandomValue{}, fmt.Errorf("dice: invalid bonus in %q: must be >= 0", raw)
		}
		bonus = b
		rest = rest[:mIdx]
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return RandomValue{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 1 {
		return RandomValue{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 1", raw)
	}

	return RandomValue{
		Base:   base,
		Dice:   count,
		Sides:  sides,
		MBonus: bonus,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level
// constants.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) RandomValue {
	v, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return v
}

// String renders the canonical expression form. It inverts Parse except
// for a bonus with no dice, which has no expression syntax.
func (v RandomValue) String() string {
	if v.Dice == 0 {
		if v.MBonus > 0 {
			return fmt.Sprintf("%dm%d", v.Base, v.MBonus)
		}
		return strconv.Itoa(v.Base)
	}

	var b strings.Builder
	if v.Base != 0 {
		fmt.Fprintf(&b, "%d+", v.Base)
	}
	fmt.Fprintf(&b, "%dd%d", v.Dice, v.Sides)
	if v.MBonus > 0 {
		fmt.Fprintf(&b, "m%d", v.MBonus)
	}
	return b.String()
}
