package cpu

// halt stops instruction execution until the host wakes the CPU.
//
//	HALT
func (c *CPU) halt() {
	c.halted = true
}

// stop halts the CPU and marks it as stopped. STOP is followed by a
// padding byte which is skipped.
//
//	STOP
func (c *CPU) stop() {
	c.halted = true
	c.stopped = true
}

func init() {
	DefineInstruction(0x00, "NOP", 1, func(c *CPU) uint16 { return c.PC + 1 })
	DefineInstruction(0x10, "STOP", 2, func(c *CPU) uint16 {
		c.stop()
		return c.PC + 2
	})
	DefineInstruction(0x76, "HALT", 1, func(c *CPU) uint16 {
		c.halt()
		return c.PC + 1
	})
	DefineInstruction(0xF3, "DI", 1, func(c *CPU) uint16 {
		c.ime = false
		return c.PC + 1
	})
	DefineInstruction(0xFB, "EI", 1, func(c *CPU) uint16 {
		c.ime = true
		return c.PC + 1
	})
	// SCF and CCF leave Z alone and clear N and H.
	DefineInstruction(0x37, "SCF", 1, func(c *CPU) uint16 {
		c.setFlag(FlagCarry)
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return c.PC + 1
	})
	DefineInstruction(0x3F, "CCF", 1, func(c *CPU) uint16 {
		c.SetCarryFlag(!c.isFlagSet(FlagCarry))
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		return c.PC + 1
	})
}
