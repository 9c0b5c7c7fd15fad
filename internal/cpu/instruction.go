package cpu

import (
	"fmt"
	"strings"
)

// Operand is the kind of immediate operand that follows an opcode.
type Operand uint8

const (
	OperandNone     Operand = iota
	OperandD8               // 8-bit immediate value
	OperandD16              // 16-bit immediate value, little-endian
	OperandA8               // 8-bit offset into 0xFF00 - 0xFFFF
	OperandA16              // 16-bit address, little-endian
	OperandRelative         // signed 8-bit jump displacement
	OperandSigned           // signed 8-bit value added to SP
)

// placeholders are the tokens in instruction names that are replaced
// by the formatted operand.
var placeholders = [...]string{"", "d8", "d16", "a8", "a16", "r8", "r8"}

// Length returns the number of bytes the operand occupies.
func (o Operand) Length() int {
	switch o {
	case OperandD16, OperandA16:
		return 2
	case OperandNone:
		return 0
	}
	return 1
}

// Instruction describes a single opcode: its mnemonic, the operand
// it consumes, the cycles it costs and the function that executes it.
// Conditional instructions return true from fn when the branch is
// taken, which costs branch cycles on top of cycles.
type Instruction struct {
	name    string
	operand Operand
	cycles  uint8
	branch  uint8
	fn      func(c *CPU, operands []uint8) bool
}

// InstructionOpt configures an Instruction when it is defined.
type InstructionOpt func(*Instruction)

// Operands sets the kind of operand the instruction consumes.
func Operands(o Operand) InstructionOpt {
	return func(i *Instruction) {
		i.operand = o
	}
}

// Cycles sets the base cycle cost of the instruction.
func Cycles(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.cycles = n
	}
}

// Branch sets the extra cycles a conditional instruction costs when
// the branch is taken.
func Branch(n uint8) InstructionOpt {
	return func(i *Instruction) {
		i.branch = n
	}
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string { return i.name }

// Operand returns the kind of operand the instruction consumes.
func (i Instruction) Operand() Operand { return i.operand }

// Cycles returns the cycles the instruction costs, not counting any
// taken branch.
func (i Instruction) Cycles() uint8 { return i.cycles }

// BranchCycles returns the cycles the instruction costs when its
// branch is taken. For unconditional instructions this is Cycles.
func (i Instruction) BranchCycles() uint8 { return i.cycles + i.branch }

// Length returns the number of bytes the opcode and its operand take,
// not counting the 0xCB prefix.
func (i Instruction) Length() int { return 1 + i.operand.Length() }

// Defined returns true if the instruction has been defined.
func (i Instruction) Defined() bool { return i.fn != nil }

// format returns the mnemonic with its operand filled in. pc is the
// address of the instruction, used to resolve relative jumps.
func (i Instruction) format(pc uint16, operands []uint8) string {
	if i.operand == OperandNone || len(operands) < i.operand.Length() {
		return i.name
	}

	var value string
	switch i.operand {
	case OperandD8:
		value = fmt.Sprintf("$%02X", operands[0])
	case OperandA8:
		value = fmt.Sprintf("$FF%02X", operands[0])
	case OperandD16, OperandA16:
		value = fmt.Sprintf("$%04X", uint16(operands[0])|uint16(operands[1])<<8)
	case OperandRelative:
		value = fmt.Sprintf("$%04X", pc+2+uint16(int8(operands[0])))
	case OperandSigned:
		value = fmt.Sprintf("%+d", int8(operands[0]))
	}

	// SP+r8 already carries its sign
	if i.operand == OperandSigned && strings.Contains(i.name, "+r8") {
		return strings.Replace(i.name, "+r8", value, 1)
	}
	return strings.Replace(i.name, placeholders[i.operand], value, 1)
}

var (
	// InstructionSet holds the 256 base opcodes.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the 256 opcodes that follow the 0xCB prefix.
	InstructionSetCB [256]Instruction
)

const prefixCB = 0xCB

// DefineInstruction defines the instruction for the opcode in the
// InstructionSet. It costs 4 cycles unless Cycles is given.
func DefineInstruction(opcode uint8, name string, fn func(c *CPU, operands []uint8), opts ...InstructionOpt) {
	DefineBranch(opcode, name, func(c *CPU, operands []uint8) bool {
		fn(c, operands)
		return false
	}, opts...)
}

// DefineBranch defines a conditional instruction, where fn reports
// whether the branch was taken.
func DefineBranch(opcode uint8, name string, fn func(c *CPU, operands []uint8) bool, opts ...InstructionOpt) {
	instruction := Instruction{
		name:   name,
		cycles: 4,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(&instruction)
	}

	InstructionSet[opcode] = instruction
}

// DefineInstructionCB defines the instruction for the opcode in the
// InstructionSetCB. The cycles include fetching the prefix, and are
// 8 unless Cycles is given.
func DefineInstructionCB(opcode uint8, name string, fn func(c *CPU), opts ...InstructionOpt) {
	instruction := Instruction{
		name:   name,
		cycles: 8,
		fn: func(c *CPU, _ []uint8) bool {
			fn(c)
			return false
		},
	}
	for _, opt := range opts {
		opt(&instruction)
	}

	InstructionSetCB[opcode] = instruction
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU, _ []uint8) {})
	DefineInstruction(0x10, "STOP d8", func(c *CPU, _ []uint8) {
		c.log.Debugf("cpu: STOP at 0x%04X", c.instructionPC)
		c.mode = ModeStop
	}, Operands(OperandD8))
	DefineInstruction(0x76, "HALT", func(c *CPU, _ []uint8) {
		if c.IME || !c.hasInterrupts() {
			c.mode = ModeHalt
		} else {
			// IME is disabled but an interrupt is already pending:
			// HALT exits immediately and PC fails to increment
			c.mode = ModeHaltBug
		}
		c.log.Debugf("cpu: HALT at 0x%04X, entering %s mode", c.instructionPC, c.mode)
	})
	DefineInstruction(0xF3, "DI", func(c *CPU, _ []uint8) {
		c.IME = false
		c.imeDelay = 0
	})
	DefineInstruction(0xFB, "EI", func(c *CPU, _ []uint8) {
		if !c.IME && c.imeDelay == 0 {
			// this step, then the next instruction
			c.imeDelay = 2
		}
	})
	// the prefix is never executed, the CPU fetches the next byte and
	// runs the instruction from InstructionSetCB
	DefineInstruction(prefixCB, "PREFIX CB", func(c *CPU, _ []uint8) {})

	for _, opcode := range disallowedOpcodes {
		opcode := opcode
		DefineInstruction(opcode, fmt.Sprintf("ILLEGAL_%02X", opcode), func(c *CPU, _ []uint8) {
			c.fault = &IllegalOpcodeError{Opcode: opcode, PC: c.instructionPC}
		}, Cycles(0))
	}
}

// disallowedOpcodes have no operation on the LR35902.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// IsIllegal returns true if the opcode has no operation.
func IsIllegal(opcode uint8) bool {
	for _, o := range disallowedOpcodes {
		if o == opcode {
			return true
		}
	}
	return false
}
