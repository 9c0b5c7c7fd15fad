package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_RotateAccumulator(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint8
		a        uint8
		carry    bool
		expected uint8
		carryOut bool
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, true},
		{"RLCA zero", 0x07, 0x00, false, 0x00, false},
		{"RRCA", 0x0F, 0x01, false, 0x80, true},
		{"RLA", 0x17, 0x95, true, 0x2B, true},
		{"RLA zero", 0x17, 0x80, false, 0x00, true},
		{"RRA", 0x1F, 0x81, false, 0x40, true},
		{"RRA carry", 0x1F, 0x00, true, 0x80, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU(t)
			c.A, c.Carry = tt.a, tt.carry
			assert.Equal(t, uint8(4), run(t, c, tt.opcode))
			assert.Equal(t, tt.expected, c.A)
			// Z is always reset, even for a zero result
			assertFlags(t, c, flags{false, false, false, tt.carryOut})
		})
	}
}

func TestInstruction_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		op       uint8
		value    uint8
		carry    bool
		expected uint8
		flags    flags
	}{
		{"RLC", 0x00, 0x85, false, 0x0B, flags{false, false, false, true}},
		{"RLC zero", 0x00, 0x00, true, 0x00, flags{true, false, false, false}},
		{"RRC", 0x08, 0x01, false, 0x80, flags{false, false, false, true}},
		{"RL", 0x10, 0x80, false, 0x00, flags{true, false, false, true}},
		{"RL carry", 0x10, 0x11, true, 0x23, flags{}},
		{"RR", 0x18, 0x01, false, 0x00, flags{true, false, false, true}},
		{"RR carry", 0x18, 0x8A, true, 0xC5, flags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := uint8(0); i < 8; i++ {
				c, _ := newTestCPU(t)
				c.HL.SetUint16(0xC000)
				c.writeOperand8(i, tt.value)
				c.Carry = tt.carry

				cycles := run(t, c, 0xCB, tt.op+i)
				if i == indirectHL {
					assert.Equal(t, uint8(16), cycles)
				} else {
					assert.Equal(t, uint8(8), cycles)
				}
				assert.Equal(t, tt.expected, c.readOperand8(i), registerNames[i])
				assertFlags(t, c, tt.flags)
			}
		})
	}
}
