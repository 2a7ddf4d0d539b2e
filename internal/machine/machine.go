// Package machine wires a CPU to its memory and drives it. It plays the
// part of the host around the core: it installs program images, runs
// the fetch-execute loop until told to stop and takes snapshots.
package machine

import (
	"context"
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Machine represents a SM83 with a flat 64kB memory attached.
type Machine struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	image *boot.Image
	setup []Opt // replayed by Reset
}

// NewMachine returns a new Machine in its power-on state, with opts
// applied in order.
func NewMachine(opts ...Opt) *Machine {
	memBus := mmu.NewMMU()

	m := &Machine{
		CPU:    cpu.NewCPU(memBus),
		MMU:    memBus,
		Logger: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Image returns the program image installed by WithImage, if any.
func (m *Machine) Image() *boot.Image {
	return m.image
}

// Run steps the CPU until it halts, limit instructions have been
// executed (0 means no limit), an unknown opcode is met or ctx is
// done. It returns the number of instructions executed by this call.
// The context is only checked between instructions.
func (m *Machine) Run(ctx context.Context, limit uint64) (uint64, error) {
	start := m.CPU.Executed()
	executed := func() uint64 { return m.CPU.Executed() - start }

	for limit == 0 || executed() < limit {
		select {
		case <-ctx.Done():
			m.Infof("machine: stopped at 0x%04X after %d instructions", m.CPU.PC, executed())
			return executed(), ctx.Err()
		default:
		}

		if m.CPU.Halted() {
			m.Infof("machine: halted at 0x%04X after %d instructions", m.CPU.PC, executed())
			return executed(), nil
		}

		if err := m.CPU.Step(); err != nil {
			var unknown *cpu.UnknownOpcodeError
			if errors.As(err, &unknown) {
				m.Errorf("machine: %v", unknown)
			}
			return executed(), fmt.Errorf("machine: %w", err)
		}
	}

	m.Infof("machine: step limit reached at 0x%04X", m.CPU.PC)
	return executed(), nil
}

// Reset returns the CPU and memory to their power-on state, then
// reapplies the image and any StartAt or WithStackPointer options in the
// order they were given to NewMachine.
func (m *Machine) Reset() {
	for _, r := range []types.Resettable{m.CPU, m.MMU} {
		r.Reset()
	}
	for _, fn := range m.setup {
		fn(m)
	}
}

// Registers formats the register file for display.
func (m *Machine) Registers() string {
	c := m.CPU
	return fmt.Sprintf("AF:%04X BC:%04X DE:%04X HL:%04X SP:%04X PC:%04X IME:%v HALT:%v",
		c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP, c.PC,
		c.InterruptsEnabled(), c.Halted())
}
