package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalOpcode is matched by every IllegalOpcodeError.
	ErrIllegalOpcode = errors.New("illegal opcode")
	// ErrFaulted is returned by Step once the CPU has faulted, until
	// it is Reset.
	ErrFaulted = errors.New("cpu faulted")
)

// IllegalOpcodeError is raised when the CPU fetches an opcode that
// has no operation on the LR35902. The hardware locks up on these, so
// the CPU stops stepping rather than executing garbage.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16 // address the opcode was fetched from
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *IllegalOpcodeError) Is(err error) bool {
	return err == ErrIllegalOpcode
}
