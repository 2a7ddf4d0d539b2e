package cpu

// push pushes a 16 bit value onto the stack, high byte first, so the
// low byte ends up at the lower address.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a 16 bit value off the stack.
func (c *CPU) pop() uint16 {
	low := uint16(c.readByte(c.SP))
	c.SP++
	high := uint16(c.readByte(c.SP))
	c.SP++
	return high<<8 | low
}

func init() {
	for p := uint8(0); p < 4; p++ {
		p := p

		// 0xC5, 0xD5, 0xE5, 0xF5 - PUSH rr
		DefineInstruction(0xC5|p<<4, "PUSH "+stackPairNames[p], 1, func(c *CPU) uint16 {
			c.push(c.stackPair(p).Uint16())
			return c.PC + 1
		})
		// 0xC1, 0xD1, 0xE1, 0xF1 - POP rr (AF masks the lower nibble of F)
		DefineInstruction(0xC1|p<<4, "POP "+stackPairNames[p], 1, func(c *CPU) uint16 {
			c.stackPair(p).SetUint16(c.pop())
			return c.PC + 1
		})
	}
}
