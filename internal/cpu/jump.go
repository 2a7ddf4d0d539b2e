package cpu

import "fmt"

// jumpRelative returns the target of a 2-byte relative jump. The
// displacement is signed and measured from the byte after the
// instruction, so -2 lands on the jump itself.
//
//	JR e
//	JR cc, e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(condition bool) uint16 {
	next := c.PC + 2
	if !condition {
		return next
	}
	return next + uint16(int8(c.operand()))
}

// jumpAbsolute returns the 16-bit immediate if the condition holds.
//
//	JP nn
//	JP cc, nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(condition bool) uint16 {
	if !condition {
		return c.PC + 3
	}
	return c.operand16()
}

// call pushes the address of the next instruction onto the stack and
// jumps to the 16-bit immediate, if the condition holds.
//
//	CALL nn
//	CALL cc, nn
//	nn = 16-bit immediate value
func (c *CPU) call(condition bool) uint16 {
	next := c.PC + 3
	if !condition {
		return next
	}
	address := c.operand16()
	c.push(next)
	return address
}

// ret pops the return address off the stack if the condition holds.
//
//	RET
//	RET cc
func (c *CPU) ret(condition bool) uint16 {
	if !condition {
		return c.PC + 1
	}
	return c.pop()
}

// restart pushes the address of the next instruction and jumps to one
// of the eight fixed vectors 0x00, 0x08 ... 0x38.
//
//	RST n
func (c *CPU) restart(vector uint16) uint16 {
	c.push(c.PC + 1)
	return vector
}

func init() {
	DefineInstruction(0x18, "JR r8", 2, func(c *CPU) uint16 { return c.jumpRelative(true) })
	DefineInstruction(0xC3, "JP a16", 3, func(c *CPU) uint16 { return c.jumpAbsolute(true) })
	DefineInstruction(0xCD, "CALL a16", 3, func(c *CPU) uint16 { return c.call(true) })
	DefineInstruction(0xC9, "RET", 1, func(c *CPU) uint16 { return c.ret(true) })
	DefineInstruction(0xD9, "RETI", 1, func(c *CPU) uint16 {
		c.ime = true
		return c.ret(true)
	})
	DefineInstruction(0xE9, "JP (HL)", 1, func(c *CPU) uint16 { return c.HL.Uint16() })

	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		name := conditionNames[cc]

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20|cc<<3, "JR "+name+", r8", 2, func(c *CPU) uint16 { return c.jumpRelative(c.condition(cc)) })
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2|cc<<3, "JP "+name+", a16", 3, func(c *CPU) uint16 { return c.jumpAbsolute(c.condition(cc)) })
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4|cc<<3, "CALL "+name+", a16", 3, func(c *CPU) uint16 { return c.call(c.condition(cc)) })
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0|cc<<3, "RET "+name, 1, func(c *CPU) uint16 { return c.ret(c.condition(cc)) })
	}

	// 0xC7, 0xCF ... 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", vector), 1, func(c *CPU) uint16 { return c.restart(vector) })
	}
}
