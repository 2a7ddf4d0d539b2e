package cpu

// registerNames are the 3-bit register operand encodings used across
// both opcode tables, index 6 addresses memory through HL.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// pairNames are the 2-bit register pair encodings of the 16-bit loads
// and arithmetic. PUSH and POP use AF in place of SP.
var (
	pairNames      = [4]string{"BC", "DE", "HL", "SP"}
	stackPairNames = [4]string{"BC", "DE", "HL", "AF"}
)

// hlIndex is the register index that refers to memory at (HL).
const hlIndex = 6

// registerIndex returns a Register pointer for the given index.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// readIndex returns the operand selected by index, reading memory for (HL).
func (c *CPU) readIndex(index uint8) uint8 {
	if index == hlIndex {
		return c.readByte(c.HL.Uint16())
	}
	return *c.registerIndex(index)
}

// writeIndex stores value into the operand selected by index.
func (c *CPU) writeIndex(index uint8, value uint8) {
	if index == hlIndex {
		c.writeByte(c.HL.Uint16(), value)
		return
	}
	*c.registerIndex(index) = value
}

// modifyIndex applies fn to the operand selected by index in place.
func (c *CPU) modifyIndex(index uint8, fn func(uint8) uint8) {
	c.writeIndex(index, fn(c.readIndex(index)))
}

// pair returns the value of the register pair selected by index.
func (c *CPU) pair(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	}
	return c.SP
}

// setPair writes the register pair selected by index.
func (c *CPU) setPair(index uint8, value uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	default:
		c.SP = value
	}
}

// stackPair returns the PUSH/POP register pair selected by index.
func (c *CPU) stackPair(index uint8) *RegisterPair {
	switch index {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	}
	return c.AF
}
