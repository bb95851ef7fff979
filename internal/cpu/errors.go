package cpu

import "fmt"

// DecodeError is returned when the byte at Address is not a
// valid opcode. It is fatal.
type DecodeError struct {
	Opcode   uint8
	Prefixed bool
	Address  uint16
}

func (e *DecodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: illegal opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.Address)
	}
	return fmt.Sprintf("cpu: illegal opcode 0x%02X at 0x%04X", e.Opcode, e.Address)
}

// ExecuteError is returned when a decoded instruction has no
// implementation. It is fatal.
type ExecuteError struct {
	Op Op
	PC uint16
}

func (e *ExecuteError) Error() string {
	return fmt.Sprintf("cpu: unhandled operation %s at 0x%04X", e.Op, e.PC)
}
