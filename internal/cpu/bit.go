package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// testBit tests the bit at the given position in n.
//
//	BIT b, r
//	b = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(n uint8, position uint8) {
	c.SetZeroFlag(n&types.Bit(position) == 0)
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// resetBit clears the bit at the given position in n. No flags are affected.
//
//	RES b, r
func resetBit(n uint8, position uint8) uint8 {
	return n &^ types.Bit(position)
}

// setBit sets the bit at the given position in n. No flags are affected.
//
//	SET b, r
func setBit(n uint8, position uint8) uint8 {
	return n | types.Bit(position)
}

func init() {
	for b := uint8(0); b < 8; b++ {
		for r := uint8(0); r < 8; r++ {
			b, r := b, r

			// 0xCB 0x40 - 0x7F - BIT b, r
			DefineInstructionCB(0x40|b<<3|r, fmt.Sprintf("BIT %d, %s", b, registerNames[r]), func(c *CPU) uint16 {
				c.testBit(c.readIndex(r), b)
				return c.PC + 2
			})
			// 0xCB 0x80 - 0xBF - RES b, r
			DefineInstructionCB(0x80|b<<3|r, fmt.Sprintf("RES %d, %s", b, registerNames[r]), func(c *CPU) uint16 {
				c.writeIndex(r, resetBit(c.readIndex(r), b))
				return c.PC + 2
			})
			// 0xCB 0xC0 - 0xFF - SET b, r
			DefineInstructionCB(0xC0|b<<3|r, fmt.Sprintf("SET %d, %s", b, registerNames[r]), func(c *CPU) uint16 {
				c.writeIndex(r, setBit(c.readIndex(r), b))
				return c.PC + 2
			})
		}
	}
}
