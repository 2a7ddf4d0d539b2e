package cpu

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode matches every *UnknownOpcodeError via errors.Is.
var ErrUnknownOpcode = errors.New("unknown opcode")

// UnknownOpcodeError is returned by Step when the fetched byte has no
// defined operation. PC is the address the opcode (or its 0xCB prefix)
// was fetched from.
type UnknownOpcodeError struct {
	Opcode   uint8
	PC       uint16
	Prefixed bool
}

func (e *UnknownOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("unknown opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}
