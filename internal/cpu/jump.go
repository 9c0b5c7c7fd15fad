package cpu

import (
	"encoding/binary"
	"fmt"
)

// Condition is a flag condition tested by conditional jumps, calls
// and returns.
type Condition uint8

const (
	ConditionNZ Condition = iota // Zero flag reset
	ConditionZ                   // Zero flag set
	ConditionNC                  // Carry flag reset
	ConditionC                   // Carry flag set
)

var conditionNames = [4]string{"NZ", "Z", "NC", "C"}

func (cc Condition) String() string {
	return conditionNames[cc&3]
}

// condition returns true if the condition holds for the current flags.
func (c *CPU) condition(cc Condition) bool {
	switch cc {
	case ConditionNZ:
		return !c.Zero
	case ConditionZ:
		return c.Zero
	case ConditionNC:
		return !c.Carry
	}
	return c.Carry
}

// jumpRelative adds the signed displacement to PC.
//
//	JR n
//	n = signed 8-bit immediate
func (c *CPU) jumpRelative(displacement uint8) {
	c.PC += uint16(int8(displacement))
}

// call pushes the address of the next instruction and jumps to addr.
//
//	CALL nn
//	RST n
func (c *CPU) call(addr uint16) {
	c.push(c.PC)
	c.PC = addr
}

// ret pops the return address into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.pop()
}

func init() {
	DefineInstruction(0x18, "JR r8", func(c *CPU, operands []uint8) {
		c.jumpRelative(operands[0])
	}, Operands(OperandRelative), Cycles(12))
	DefineInstruction(0xC3, "JP a16", func(c *CPU, operands []uint8) {
		c.PC = binary.LittleEndian.Uint16(operands)
	}, Operands(OperandA16), Cycles(16))
	DefineInstruction(0xE9, "JP HL", func(c *CPU, _ []uint8) {
		c.PC = c.HL.Uint16()
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU, operands []uint8) {
		c.call(binary.LittleEndian.Uint16(operands))
	}, Operands(OperandA16), Cycles(24))
	DefineInstruction(0xC9, "RET", func(c *CPU, _ []uint8) {
		c.ret()
	}, Cycles(16))
	DefineInstruction(0xD9, "RETI", func(c *CPU, _ []uint8) {
		c.ret()
		// unlike EI, RETI enables interrupts immediately
		c.IME = true
		c.imeDelay = 0
	}, Cycles(16))

	// conditional forms, in opcode encoding order NZ, Z, NC, C
	for i := uint8(0); i < 4; i++ {
		cc := Condition(i)
		DefineBranch(0x20+i<<3, "JR "+cc.String()+", r8", func(c *CPU, operands []uint8) bool {
			if c.condition(cc) {
				c.jumpRelative(operands[0])
				return true
			}
			return false
		}, Operands(OperandRelative), Cycles(8), Branch(4))
		DefineBranch(0xC2+i<<3, "JP "+cc.String()+", a16", func(c *CPU, operands []uint8) bool {
			if c.condition(cc) {
				c.PC = binary.LittleEndian.Uint16(operands)
				return true
			}
			return false
		}, Operands(OperandA16), Cycles(12), Branch(4))
		DefineBranch(0xC4+i<<3, "CALL "+cc.String()+", a16", func(c *CPU, operands []uint8) bool {
			if c.condition(cc) {
				c.call(binary.LittleEndian.Uint16(operands))
				return true
			}
			return false
		}, Operands(OperandA16), Cycles(12), Branch(12))
		DefineBranch(0xC0+i<<3, "RET "+cc.String(), func(c *CPU, _ []uint8) bool {
			if c.condition(cc) {
				c.ret()
				return true
			}
			return false
		}, Cycles(8), Branch(12))
	}

	// 0xC7 - 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) << 3
		DefineInstruction(0xC7+i<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU, _ []uint8) {
			c.call(vector)
		}, Cycles(16))
	}
}
