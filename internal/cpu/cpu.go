// Package cpu implements the SM83 instruction execution engine: the
// fetch-decode-execute loop, the primary and 0xCB prefixed opcode tables
// and the ALU helpers that every opcode calls into.
package cpu

import (
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// initialPC is the program counter after reset.
	initialPC = 0x0000
	// initialSP is the stack pointer after reset.
	initialSP = 0xFFFF
)

// Register and RegisterPair are aliased for brevity.
type (
	Register     = types.Register
	RegisterPair = types.RegisterPair
)

// CPU represents the SM83 CPU. It is responsible for executing
// instructions, one at a time, against the memory it was given.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	*types.Registers

	// Debug logs every executed instruction through Log.
	Debug bool
	Log   log.Logger

	bus mmu.IOBus

	halted   bool
	stopped  bool
	ime      bool
	executed uint64
}

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger used for debug tracing.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.Log = l
	}
}

// Debug enables instruction tracing.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// NewCPU creates a new CPU instance with the given bus, which is used
// for every memory read and write.
func NewCPU(bus mmu.IOBus, opts ...Opt) *CPU {
	c := &CPU{
		Registers: types.NewRegisters(),
		Log:       log.NewNullLogger(),
		bus:       bus,
	}
	c.Reset()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Reset puts the CPU back into its power-on state. Memory is untouched.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.PC = initialPC
	c.SP = initialSP
	c.halted = false
	c.stopped = false
	c.ime = true
	c.executed = 0
}

// Step executes a single instruction and advances PC to the next one.
// A halted CPU does nothing. If the opcode at PC is undefined an
// *UnknownOpcodeError is returned and no state is changed.
func (c *CPU) Step() error {
	if c.halted {
		return nil
	}

	instruction, err := c.decode()
	if err != nil {
		return err
	}

	if c.Debug {
		c.Log.Debugf("%04X\t%-14s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X",
			c.PC, instruction.name, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
	}

	c.PC = instruction.fn(c)
	c.executed++

	return nil
}

// decode looks up the instruction at PC, following the 0xCB prefix.
func (c *CPU) decode() (Instruction, error) {
	opcode := c.bus.Read(c.PC)
	if opcode == prefixCB {
		cb := c.bus.Read(c.PC + 1)
		if instruction := InstructionSetCB[cb]; instruction.fn != nil {
			return instruction, nil
		}
		return Instruction{}, &UnknownOpcodeError{Opcode: cb, PC: c.PC, Prefixed: true}
	}

	if instruction := InstructionSet[opcode]; instruction.fn != nil {
		return instruction, nil
	}
	return Instruction{}, &UnknownOpcodeError{Opcode: opcode, PC: c.PC}
}

// Halted reports whether the CPU is waiting for an external wake.
func (c *CPU) Halted() bool { return c.halted }

// SetHalted is used by the host to halt or wake the CPU between steps.
// Waking also clears the stopped state.
func (c *CPU) SetHalted(halted bool) {
	c.halted = halted
	if !halted {
		c.stopped = false
	}
}

// Stopped reports whether the CPU was halted by STOP rather than HALT.
func (c *CPU) Stopped() bool { return c.stopped }

// InterruptsEnabled returns the interrupt master enable flag.
func (c *CPU) InterruptsEnabled() bool { return c.ime }

// SetInterruptsEnabled sets the interrupt master enable flag.
func (c *CPU) SetInterruptsEnabled(enabled bool) { c.ime = enabled }

// Executed returns the number of instructions executed since reset.
func (c *CPU) Executed() uint64 { return c.executed }

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// readWord reads a little-endian word from memory.
func (c *CPU) readWord(addr uint16) uint16 {
	return uint16(c.bus.Read(addr)) | uint16(c.bus.Read(addr+1))<<8
}

// operand returns the byte following the opcode at PC.
func (c *CPU) operand() uint8 {
	return c.bus.Read(c.PC + 1)
}

// operand16 returns the little-endian word following the opcode at PC.
func (c *CPU) operand16() uint16 {
	return c.readWord(c.PC + 1)
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.halted = s.ReadBool()
	c.stopped = s.ReadBool()
	c.ime = s.ReadBool()
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.halted)
	s.WriteBool(c.stopped)
	s.WriteBool(c.ime)
}
