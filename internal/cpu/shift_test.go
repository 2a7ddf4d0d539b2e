package cpu

import "testing"

func TestInstruction_Shift(t *testing.T) {
	testInstructionCB(t, "SLA D", 0x22, func(t *testing.T, instr instructor) {
		cpu.D = 0x80
		instr.Execute()
		if cpu.D != 0x00 {
			t.Errorf("expected D to be 0x00, got 0x%02X", cpu.D)
		}
		expectFlags(t, true, false, false, true)
	})
	testInstructionCB(t, "SRA A", 0x2F, func(t *testing.T, instr instructor) {
		cpu.A = 0x8A
		instr.Execute()
		if cpu.A != 0xC5 {
			t.Errorf("expected A to be 0xC5, got 0x%02X", cpu.A)
		}
		expectFlags(t, false, false, false, false)
	})
	testInstructionCB(t, "SRL (HL)", 0x3E, func(t *testing.T, instr instructor) {
		cpu.HL.SetUint16(0xC000)
		mem.Write(0xC000, 0xFF)
		instr.Execute()
		if got := mem.Read(0xC000); got != 0x7F {
			t.Errorf("expected (HL) to be 0x7F, got 0x%02X", got)
		}
		expectFlags(t, false, false, false, true)
	})
}

func TestInstruction_Swap(t *testing.T) {
	for i, r := range registerNames {
		index := uint8(i)
		testInstructionCB(t, "SWAP "+r, 0x30|index, func(t *testing.T, instr instructor) {
			cpu.HL.SetUint16(0xC000)
			cpu.F = 0xF0
			cpu.writeIndex(index, 0xF1)
			instr.Execute()
			if got := cpu.readIndex(index); got != 0x1F {
				t.Errorf("expected %s to be 0x1F, got 0x%02X", r, got)
			}
			expectFlags(t, false, false, false, false)
		})
	}
}
