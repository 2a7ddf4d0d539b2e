package types

import "github.com/thelolagemann/sm83/pkg/utils"

// Register holds a single 8-bit value of the CPU. There are eight of
// them: A, B, C, D, E, F, H and L, where F only ever holds the flags.
type Register = uint8

// RegisterPair is a 16-bit view over two Registers. It has no storage
// of its own, reading combines the two halves and writing splits the
// value back into them, so the pair can never drift from its halves.
type RegisterPair struct {
	High *Register
	Low  *Register

	// lowMask is applied to Low on every write, F uses it to keep
	// the unused lower nibble clear when written through AF.
	lowMask uint8
}

// NewRegisterPair returns a view over high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: 0xFF}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return utils.BytesToUint16(*r.High, *r.Low)
}

// SetUint16 writes value through to both halves of the pair.
func (r *RegisterPair) SetUint16(value uint16) {
	high, low := utils.Uint16ToBytes(value)
	*r.High, *r.Low = high, low&r.lowMask
}

// Registers is the SM83 register file.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// NewRegisters returns a zeroed register file with its pairs wired
// to the 8-bit registers.
func NewRegisters() *Registers {
	r := &Registers{}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, lowMask: flagMask}
	r.BC = NewRegisterPair(&r.B, &r.C)
	r.DE = NewRegisterPair(&r.D, &r.E)
	r.HL = NewRegisterPair(&r.H, &r.L)
	return r
}

// Reset clears every register.
func (r *Registers) Reset() {
	r.A, r.B, r.C, r.D, r.E, r.F, r.H, r.L = 0, 0, 0, 0, 0, 0, 0, 0
}
