package cpu

import (
	"testing"
	"testing/quick"

	"github.com/thelolagemann/sm83/internal/mmu"
)

func TestStack_PushPop(t *testing.T) {
	f := func(sp uint16, value uint16) bool {
		c := NewCPU(mmu.NewMMU())
		c.SP = sp
		c.push(value)
		if c.SP != sp-2 {
			return false
		}
		return c.pop() == value && c.SP == sp
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInstruction_Stack(t *testing.T) {
	testInstruction(t, "PUSH BC", 0xC5, func(t *testing.T, instr instructor) {
		cpu.BC.SetUint16(0x1234)
		instr.Execute()
		if cpu.SP != 0xFFFC {
			t.Errorf("expected SP to be 0xFFFC, got 0x%04X", cpu.SP)
		}
		if mem.Read(0xFFFD) != 0x12 || mem.Read(0xFFFC) != 0x34 {
			t.Errorf("expected 0x1234 to be stored little-endian below SP")
		}
	})
	testInstruction(t, "POP DE", 0xD1, func(t *testing.T, instr instructor) {
		cpu.SP = 0xFFFC
		mem.Write16(0xFFFC, 0xBEEF)
		instr.Execute()
		if cpu.DE.Uint16() != 0xBEEF {
			t.Errorf("expected DE to be 0xBEEF, got 0x%04X", cpu.DE.Uint16())
		}
		if cpu.SP != 0xFFFE {
			t.Errorf("expected SP to be 0xFFFE, got 0x%04X", cpu.SP)
		}
	})
	testInstruction(t, "POP AF", 0xF1, func(t *testing.T, instr instructor) {
		cpu.SP = 0xDFFE
		mem.Write16(0xDFFE, 0x12FF)
		instr.Execute()
		if cpu.A != 0x12 {
			t.Errorf("expected A to be 0x12, got 0x%02X", cpu.A)
		}
		if cpu.F != 0xF0 {
			t.Errorf("expected F to be masked to 0xF0, got 0x%02X", cpu.F)
		}
	})
	testInstruction(t, "PUSH AF", 0xF5, func(t *testing.T, instr instructor) {
		cpu.A = 0x01
		cpu.SetFlags(true, false, true, false)
		instr.Execute()
		if got := mem.Read16(0xFFFC); got != 0x01A0 {
			t.Errorf("expected 0x01A0 on the stack, got 0x%04X", got)
		}
	})
}
