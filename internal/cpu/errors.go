package cpu

import "fmt"

// UnknownOpcodeError is returned by Step, when StrictOpcodes is set, for
// an opcode that decodes to no instruction.
type UnknownOpcodeError struct {
	Opcode  uint8
	Address uint16
}

func (e *UnknownOpcodeError) Error() string {
	for _, opcode := range disallowedOpcodes {
		if opcode == e.Opcode {
			return fmt.Sprintf("disallowed opcode %02X at %04X", e.Opcode, e.Address)
		}
	}
	return fmt.Sprintf("unimplemented opcode %02X at %04X", e.Opcode, e.Address)
}
