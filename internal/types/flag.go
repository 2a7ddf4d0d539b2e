package types

// Flag is the bit position of a flag inside the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flagMask covers the four architectural flag bits, the lower nibble
// of F always reads back as zero.
const flagMask = 0xF0

// IsFlagSet returns true if the given flag is set.
func (r *Registers) IsFlagSet(flag Flag) bool {
	return r.F&(1<<flag) != 0
}

// SetFlag sets or clears a single flag, leaving the others untouched.
func (r *Registers) SetFlag(flag Flag, value bool) {
	if value {
		r.F |= 1 << flag
	} else {
		r.F &^= 1 << flag
	}
	r.F &= flagMask
}

func (r *Registers) IsZeroFlag() bool        { return r.IsFlagSet(FlagZero) }
func (r *Registers) IsSubtractionFlag() bool { return r.IsFlagSet(FlagSubtract) }
func (r *Registers) IsHalfCarryFlag() bool   { return r.IsFlagSet(FlagHalfCarry) }
func (r *Registers) IsCarryFlag() bool       { return r.IsFlagSet(FlagCarry) }

func (r *Registers) SetZeroFlag(value bool)        { r.SetFlag(FlagZero, value) }
func (r *Registers) SetSubtractionFlag(value bool) { r.SetFlag(FlagSubtract, value) }
func (r *Registers) SetHalfCarryFlag(value bool)   { r.SetFlag(FlagHalfCarry, value) }
func (r *Registers) SetCarryFlag(value bool)       { r.SetFlag(FlagCarry, value) }

// SetFlags writes all four flags at once.
func (r *Registers) SetFlags(zero, subtract, halfCarry, carry bool) {
	r.F = 0
	if zero {
		r.F |= 1 << FlagZero
	}
	if subtract {
		r.F |= 1 << FlagSubtract
	}
	if halfCarry {
		r.F |= 1 << FlagHalfCarry
	}
	if carry {
		r.F |= 1 << FlagCarry
	}
}
