package cpu

import "github.com/thelolagemann/sm83/internal/types"

// rotateLeftCarry rotates n left by one bit, bit 7 goes to both the
// carry flag and bit 0.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	computed := n<<1 | n>>7
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightCarry rotates n right by one bit, bit 0 goes to both the
// carry flag and bit 7.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	computed := n>>1 | n<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// rotateLeftThroughCarry rotates n left through the carry flag: the
// old carry enters bit 0 and bit 7 becomes the new carry.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n<<1 | c.carryIn()
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// rotateRightThroughCarry rotates n right through the carry flag: the
// old carry enters bit 7 and bit 0 becomes the new carry.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n>>1 | c.carryIn()<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// rotateAccumulator applies rotate to A. The single byte accumulator
// rotates always clear the zero flag, unlike their prefixed forms.
//
//	RLCA, RRCA, RLA, RRA
func (c *CPU) rotateAccumulator(rotate func(uint8) uint8) {
	c.A = rotate(c.A)
	c.clearFlag(FlagZero)
}

func init() {
	DefineInstruction(0x07, "RLCA", 1, func(c *CPU) uint16 { c.rotateAccumulator(c.rotateLeftCarry); return c.PC + 1 })
	DefineInstruction(0x0F, "RRCA", 1, func(c *CPU) uint16 { c.rotateAccumulator(c.rotateRightCarry); return c.PC + 1 })
	DefineInstruction(0x17, "RLA", 1, func(c *CPU) uint16 { c.rotateAccumulator(c.rotateLeftThroughCarry); return c.PC + 1 })
	DefineInstruction(0x1F, "RRA", 1, func(c *CPU) uint16 { c.rotateAccumulator(c.rotateRightThroughCarry); return c.PC + 1 })
}
