package cpu

import "github.com/thelolagemann/sm83/internal/types"

type Flag = types.Flag

const (
	FlagZero      = types.FlagZero
	FlagSubtract  = types.FlagSubtract
	FlagHalfCarry = types.FlagHalfCarry
	FlagCarry     = types.FlagCarry
)

// conditionNames are the 2-bit condition encodings (bits 3-4 of the opcode).
var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

// setFlags writes all four flags.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.Registers.SetFlags(zero, subtract, halfCarry, carry)
}

// setFlag sets a flag.
func (c *CPU) setFlag(flag Flag) {
	c.SetFlag(flag, true)
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.SetFlag(flag, false)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.IsFlagSet(flag)
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.SetZeroFlag(value == 0)
}

// carryIn returns the carry flag as 0 or 1.
func (c *CPU) carryIn() uint8 {
	if c.IsCarryFlag() {
		return 1
	}
	return 0
}

// condition evaluates the condition selected by index against the
// flags as they are right now.
func (c *CPU) condition(index uint8) bool {
	switch index & 3 {
	case 0:
		return !c.IsZeroFlag()
	case 1:
		return c.IsZeroFlag()
	case 2:
		return !c.IsCarryFlag()
	}
	return c.IsCarryFlag()
}
