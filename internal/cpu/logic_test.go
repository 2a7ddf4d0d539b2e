package cpu

import "testing"

func TestInstruction_Logic(t *testing.T) {
	testInstruction(t, "AND B", 0xA0, func(t *testing.T, instr instructor) {
		cpu.A, cpu.B = 0x5A, 0x3F
		instr.Execute()
		if cpu.A != 0x1A {
			t.Errorf("expected A to be 0x1A, got 0x%02X", cpu.A)
		}
		expectFlags(t, false, false, true, false)
	})
	testInstruction(t, "AND d8", 0xE6, func(t *testing.T, instr instructor) {
		cpu.A = 0x5A
		cpu.SetCarryFlag(true)
		instr.Execute(0x00)
		expectFlags(t, true, false, true, false)
	})
	testInstruction(t, "OR (HL)", 0xB6, func(t *testing.T, instr instructor) {
		cpu.A = 0x5A
		cpu.HL.SetUint16(0xC000)
		mem.Write(0xC000, 0x0F)
		instr.Execute()
		if cpu.A != 0x5F {
			t.Errorf("expected A to be 0x5F, got 0x%02X", cpu.A)
		}
		expectFlags(t, false, false, false, false)
	})
	testInstruction(t, "XOR A", 0xAF, func(t *testing.T, instr instructor) {
		cpu.A = 0xFF
		cpu.F = 0xF0
		instr.Execute()
		if cpu.A != 0x00 {
			t.Errorf("expected A to be 0x00, got 0x%02X", cpu.A)
		}
		expectFlags(t, true, false, false, false)
	})
	testInstruction(t, "XOR d8", 0xEE, func(t *testing.T, instr instructor) {
		cpu.A = 0xFF
		instr.Execute(0x0F)
		if cpu.A != 0xF0 {
			t.Errorf("expected A to be 0xF0, got 0x%02X", cpu.A)
		}
	})
	testInstruction(t, "CPL", 0x2F, func(t *testing.T, instr instructor) {
		cpu.A = 0x35
		cpu.SetZeroFlag(true)
		cpu.SetCarryFlag(true)
		instr.Execute()
		if cpu.A != 0xCA {
			t.Errorf("expected A to be 0xCA, got 0x%02X", cpu.A)
		}
		expectFlags(t, true, true, true, true)
	})
}
