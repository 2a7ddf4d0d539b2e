package cpu

import "github.com/thelolagemann/sm83/internal/types"

// shiftLeftArithmetic shifts n left by one bit, bit 7 goes to the
// carry flag and bit 0 is cleared.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 != 0)
	return computed
}

// shiftRightArithmetic shifts n right by one bit, keeping the sign bit.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n>>1 | n&types.Bit7
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// shiftRightLogical shifts n right by one bit, bit 7 is cleared.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 != 0)
	return computed
}

// swap exchanges the upper and lower nibbles of n.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	computed := n<<4 | n>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// rotateShiftNames are the eight operations of 0xCB 0x00-0x3F in
// encoding order.
var rotateShiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// rotateShift returns the operation selected by op, bound to c.
func (c *CPU) rotateShift(op uint8) func(uint8) uint8 {
	switch op {
	case 0:
		return c.rotateLeftCarry
	case 1:
		return c.rotateRightCarry
	case 2:
		return c.rotateLeftThroughCarry
	case 3:
		return c.rotateRightThroughCarry
	case 4:
		return c.shiftLeftArithmetic
	case 5:
		return c.shiftRightArithmetic
	case 6:
		return c.swap
	}
	return c.shiftRightLogical
}

func init() {
	// 0xCB 0x00 - 0x3F - rotate/shift r
	for op := uint8(0); op < 8; op++ {
		for r := uint8(0); r < 8; r++ {
			op, r := op, r
			DefineInstructionCB(op<<3|r, rotateShiftNames[op]+" "+registerNames[r], func(c *CPU) uint16 {
				c.modifyIndex(r, c.rotateShift(op))
				return c.PC + 2
			})
		}
	}
}
