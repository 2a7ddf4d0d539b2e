package machine

import (
	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a Machine
// instance.
type Opt func(m *Machine)

// Debug traces every executed instruction through the logger.
func Debug() Opt {
	return func(m *Machine) {
		cpu.Debug()(m.CPU)
	}
}

// WithLogger sets the logger of the machine, its CPU and its memory.
func WithLogger(l log.Logger) Opt {
	return func(m *Machine) {
		m.Logger = l
		m.MMU.Log = l
		cpu.WithLogger(l)(m.CPU)
	}
}

// WithImage installs the image into memory and points PC at its base.
func WithImage(img *boot.Image) Opt {
	return onReset(func(m *Machine) {
		m.image = img
		img.Install(m.MMU)
		m.CPU.PC = img.Base()
		m.Debugf("machine: installed image %s", img)
	})
}

// StartAt overrides the initial program counter.
func StartAt(pc uint16) Opt {
	return onReset(func(m *Machine) {
		m.CPU.PC = pc
	})
}

// WithStackPointer overrides the initial stack pointer.
func WithStackPointer(sp uint16) Opt {
	return onReset(func(m *Machine) {
		m.CPU.SP = sp
	})
}

// onReset applies fn now and again after every Reset.
func onReset(fn Opt) Opt {
	return func(m *Machine) {
		m.setup = append(m.setup, fn)
		fn(m)
	}
}
