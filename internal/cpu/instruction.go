package cpu

import (
	"fmt"
	"strings"
)

// prefixCB is the escape byte selecting the extended instruction table.
const prefixCB = 0xCB

// Instruction describes a single opcode. fn executes it with PC still
// pointing at the opcode and returns the address of the next
// instruction.
type Instruction struct {
	name   string
	length uint8
	fn     func(*CPU) uint16
}

// Name returns the mnemonic of the instruction, e.g. "LD B, d8".
func (i Instruction) Name() string { return i.name }

// Length returns the size of the instruction in bytes, including any
// prefix and operands.
func (i Instruction) Length() uint8 { return i.length }

// Defined reports whether the instruction has an operation attached.
func (i Instruction) Defined() bool { return i.fn != nil }

var (
	// InstructionSet holds the 256 primary opcodes.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the 256 opcodes following the 0xCB prefix.
	InstructionSetCB [256]Instruction
)

// DefineInstruction defines the instruction in the InstructionSet, with
// the provided opcode.
func DefineInstruction(opcode uint8, name string, length uint8, fn func(*CPU) uint16) {
	InstructionSet[opcode] = Instruction{name: name, length: length, fn: fn}
}

// DefineInstructionCB defines a 2-byte prefixed instruction.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU) uint16) {
	InstructionSetCB[opcode] = Instruction{name: name, length: 2, fn: fn}
}

// undefinedOpcodes have no operation on the SM83.
var undefinedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	for _, opcode := range undefinedOpcodes {
		InstructionSet[opcode] = Instruction{name: "-", length: 1}
	}
	InstructionSet[prefixCB] = Instruction{name: "PREFIX CB", length: 2}
}

// Disassemble decodes the instruction at addr without executing it,
// substituting its operands into the mnemonic. Undefined opcodes are
// rendered as "DB 0xNN" with a length of 1.
func Disassemble(bus interface{ Read(uint16) uint8 }, addr uint16) (string, uint8) {
	opcode := bus.Read(addr)
	if opcode == prefixCB {
		i := InstructionSetCB[bus.Read(addr+1)]
		return i.name, i.length
	}

	i := InstructionSet[opcode]
	if i.fn == nil {
		return fmt.Sprintf("DB 0x%02X", opcode), 1
	}

	lo, hi := bus.Read(addr+1), bus.Read(addr+2)
	name := i.name
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		word := fmt.Sprintf("$%04X", uint16(hi)<<8|uint16(lo))
		name = strings.NewReplacer("d16", word, "a16", word).Replace(name)
	case strings.Contains(name, "r8"):
		// relative jumps read better as their absolute target
		if strings.HasPrefix(name, "JR") {
			target := addr + 2 + uint16(int8(lo))
			name = strings.Replace(name, "r8", fmt.Sprintf("$%04X", target), 1)
		} else if strings.Contains(name, "+r8") {
			name = strings.Replace(name, "+r8", fmt.Sprintf("%+d", int8(lo)), 1)
		} else {
			name = strings.Replace(name, "r8", fmt.Sprintf("%d", int8(lo)), 1)
		}
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"):
		b := fmt.Sprintf("$%02X", lo)
		name = strings.NewReplacer("d8", b, "a8", b).Replace(name)
	}
	return name, i.length
}
