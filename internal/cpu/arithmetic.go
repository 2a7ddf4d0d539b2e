package cpu

import "fmt"

// add adds n (and the carry flag, if withCarry) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint16
	if withCarry {
		carry = uint16(c.carryIn())
	}
	sum := uint16(c.A) + uint16(n) + carry
	half := uint16(c.A&0xF) + uint16(n&0xF) + carry

	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, half > 0xF, sum > 0xFF)
}

// subtract computes A - n (minus the carry flag, if withCarry) and sets
// the flags. The result is only stored when store is true, CP uses
// the flags alone.
//
//	SUB n
//	SBC A, n
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subtract(n uint8, withCarry, store bool) {
	var carry int16
	if withCarry {
		carry = int16(c.carryIn())
	}
	diff := int16(c.A) - int16(n) - carry
	half := int16(c.A&0xF) - int16(n&0xF) - carry

	result := uint8(diff)
	c.setFlags(result == 0, true, half < 0, diff < 0)
	if store {
		c.A = result
	}
}

// increment returns n + 1.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.SetZeroFlag(result == 0)
	c.SetSubtractionFlag(false)
	c.SetHalfCarryFlag(n&0xF == 0xF)
	return result
}

// decrement returns n - 1.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.SetZeroFlag(result == 0)
	c.SetSubtractionFlag(true)
	c.SetHalfCarryFlag(n&0xF == 0)
	return result
}

// addHL adds nn to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(nn uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(nn)

	c.SetSubtractionFlag(false)
	c.SetHalfCarryFlag(hl&0xFFF+nn&0xFFF > 0xFFF)
	c.SetCarryFlag(sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed displacement e. Shared by
// ADD SP, r8 and LD HL, SP+r8.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3 of the low byte addition.
//	C - Set if carry from bit 7 of the low byte addition.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := c.SP + uint16(int8(e))
	c.setFlags(false, false,
		c.SP&0xF+uint16(e&0xF) > 0xF,
		c.SP&0xFF+uint16(e) > 0xFF,
	)
	return result
}

// decimalAdjust corrects A into packed BCD after an addition or
// subtraction, driven by the N, H and C flags left behind by it.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if a correction of 0x60 was applied.
func (c *CPU) decimalAdjust() {
	var correction uint8
	carry := c.IsCarryFlag()

	if !c.IsSubtractionFlag() {
		if carry || c.A > 0x99 {
			correction |= 0x60
			carry = true
		}
		if c.IsHalfCarryFlag() || c.A&0xF > 0x9 {
			correction |= 0x06
		}
		c.A += correction
	} else {
		if carry {
			correction |= 0x60
		}
		if c.IsHalfCarryFlag() {
			correction |= 0x06
		}
		c.A -= correction
	}

	c.shouldZeroFlag(c.A)
	c.SetHalfCarryFlag(false)
	c.SetCarryFlag(carry)
}

// aluNames are the eight accumulator operations of 0x80-0xBF and their
// immediate forms, in encoding order.
var aluNames = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}

// alu applies the accumulator operation selected by op to n.
func (c *CPU) alu(op uint8, n uint8) {
	switch op {
	case 0:
		c.add(n, false)
	case 1:
		c.add(n, true)
	case 2:
		c.subtract(n, false, true)
	case 3:
		c.subtract(n, true, true)
	case 4:
		c.and(n)
	case 5:
		c.xor(n)
	case 6:
		c.or(n)
	case 7:
		c.subtract(n, false, false)
	}
}

func init() {
	for op := uint8(0); op < 8; op++ {
		op := op

		// 0x80 - 0xBF - ALU A, r
		for src := uint8(0); src < 8; src++ {
			src := src
			DefineInstruction(0x80|op<<3|src, fmt.Sprintf("%s %s", aluNames[op], registerNames[src]), 1, func(c *CPU) uint16 {
				c.alu(op, c.readIndex(src))
				return c.PC + 1
			})
		}

		// 0xC6, 0xCE ... 0xFE - ALU A, d8
		DefineInstruction(0xC6|op<<3, aluNames[op]+" d8", 2, func(c *CPU) uint16 {
			c.alu(op, c.operand())
			return c.PC + 2
		})
	}

	for r := uint8(0); r < 8; r++ {
		r := r

		// 0x04, 0x0C ... 0x3C - INC r
		DefineInstruction(0x04|r<<3, "INC "+registerNames[r], 1, func(c *CPU) uint16 {
			c.modifyIndex(r, c.increment)
			return c.PC + 1
		})
		// 0x05, 0x0D ... 0x3D - DEC r
		DefineInstruction(0x05|r<<3, "DEC "+registerNames[r], 1, func(c *CPU) uint16 {
			c.modifyIndex(r, c.decrement)
			return c.PC + 1
		})
	}

	for p := uint8(0); p < 4; p++ {
		p := p

		// 0x03, 0x13, 0x23, 0x33 - INC rr
		DefineInstruction(0x03|p<<4, "INC "+pairNames[p], 1, func(c *CPU) uint16 {
			c.setPair(p, c.pair(p)+1)
			return c.PC + 1
		})
		// 0x0B, 0x1B, 0x2B, 0x3B - DEC rr
		DefineInstruction(0x0B|p<<4, "DEC "+pairNames[p], 1, func(c *CPU) uint16 {
			c.setPair(p, c.pair(p)-1)
			return c.PC + 1
		})
		// 0x09, 0x19, 0x29, 0x39 - ADD HL, rr
		DefineInstruction(0x09|p<<4, "ADD HL, "+pairNames[p], 1, func(c *CPU) uint16 {
			c.addHL(c.pair(p))
			return c.PC + 1
		})
	}

	DefineInstruction(0x27, "DAA", 1, func(c *CPU) uint16 {
		c.decimalAdjust()
		return c.PC + 1
	})
	DefineInstruction(0xE8, "ADD SP, r8", 2, func(c *CPU) uint16 {
		c.SP = c.addSPSigned(c.operand())
		return c.PC + 2
	})
}
