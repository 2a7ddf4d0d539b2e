package cpu

// hardwareBase is the start of the page addressed by LDH and LD (C).
const hardwareBase = 0xFF00

// indirectNames are the address sources of the 0x02/0x0A column loads.
var indirectNames = [4]string{"(BC)", "(DE)", "(HL+)", "(HL-)"}

// indirectAddress returns the address used by the indirect accumulator
// loads, applying the post increment/decrement of the HL forms.
//
//	LD (BC), A    LD A, (BC)
//	LD (DE), A    LD A, (DE)
//	LD (HL+), A   LD A, (HL+)
//	LD (HL-), A   LD A, (HL-)
func (c *CPU) indirectAddress(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	}
	hl := c.HL.Uint16()
	c.HL.SetUint16(hl - 1)
	return hl
}

// loadStackPointer stores SP as a little-endian word at address.
//
//	LD (a16), SP
func (c *CPU) loadStackPointer(address uint16) {
	c.writeByte(address, uint8(c.SP))
	c.writeByte(address+1, uint8(c.SP>>8))
}

func init() {
	// 0x40 - 0x7F - LD r, r (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == hlIndex && src == hlIndex {
				continue
			}
			dst, src := dst, src
			DefineInstruction(0x40|dst<<3|src, "LD "+registerNames[dst]+", "+registerNames[src], 1, func(c *CPU) uint16 {
				c.writeIndex(dst, c.readIndex(src))
				return c.PC + 1
			})
		}
	}

	// 0x06, 0x0E ... 0x3E - LD r, d8
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		DefineInstruction(0x06|dst<<3, "LD "+registerNames[dst]+", d8", 2, func(c *CPU) uint16 {
			c.writeIndex(dst, c.operand())
			return c.PC + 2
		})
	}

	for p := uint8(0); p < 4; p++ {
		p := p

		// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
		DefineInstruction(0x01|p<<4, "LD "+pairNames[p]+", d16", 3, func(c *CPU) uint16 {
			c.setPair(p, c.operand16())
			return c.PC + 3
		})
		// 0x02, 0x12, 0x22, 0x32 - LD (rr), A
		DefineInstruction(0x02|p<<4, "LD "+indirectNames[p]+", A", 1, func(c *CPU) uint16 {
			c.writeByte(c.indirectAddress(p), c.A)
			return c.PC + 1
		})
		// 0x0A, 0x1A, 0x2A, 0x3A - LD A, (rr)
		DefineInstruction(0x0A|p<<4, "LD A, "+indirectNames[p], 1, func(c *CPU) uint16 {
			c.A = c.readByte(c.indirectAddress(p))
			return c.PC + 1
		})
	}

	DefineInstruction(0x08, "LD (a16), SP", 3, func(c *CPU) uint16 {
		c.loadStackPointer(c.operand16())
		return c.PC + 3
	})
	DefineInstruction(0xE0, "LDH (a8), A", 2, func(c *CPU) uint16 {
		c.writeByte(hardwareBase+uint16(c.operand()), c.A)
		return c.PC + 2
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 2, func(c *CPU) uint16 {
		c.A = c.readByte(hardwareBase + uint16(c.operand()))
		return c.PC + 2
	})
	DefineInstruction(0xE2, "LD (C), A", 1, func(c *CPU) uint16 {
		c.writeByte(hardwareBase+uint16(c.C), c.A)
		return c.PC + 1
	})
	DefineInstruction(0xF2, "LD A, (C)", 1, func(c *CPU) uint16 {
		c.A = c.readByte(hardwareBase + uint16(c.C))
		return c.PC + 1
	})
	DefineInstruction(0xEA, "LD (a16), A", 3, func(c *CPU) uint16 {
		c.writeByte(c.operand16(), c.A)
		return c.PC + 3
	})
	DefineInstruction(0xFA, "LD A, (a16)", 3, func(c *CPU) uint16 {
		c.A = c.readByte(c.operand16())
		return c.PC + 3
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", 2, func(c *CPU) uint16 {
		c.HL.SetUint16(c.addSPSigned(c.operand()))
		return c.PC + 2
	})
	DefineInstruction(0xF9, "LD SP, HL", 1, func(c *CPU) uint16 {
		c.SP = c.HL.Uint16()
		return c.PC + 1
	})
}
