package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Shift(t *testing.T) {
	tests := []struct {
		name     string
		op       uint8
		value    uint8
		expected uint8
		flags    flags
	}{
		{"SLA", 0x20, 0x80, 0x00, flags{true, false, false, true}},
		{"SLA", 0x20, 0x41, 0x82, flags{}},
		{"SRA", 0x28, 0x81, 0xC0, flags{false, false, false, true}},
		{"SRA", 0x28, 0x01, 0x00, flags{true, false, false, true}},
		{"SWAP", 0x30, 0xF1, 0x1F, flags{}},
		{"SWAP", 0x30, 0x00, 0x00, flags{true, false, false, false}},
		{"SRL", 0x38, 0x01, 0x00, flags{true, false, false, true}},
		{"SRL", 0x38, 0xFF, 0x7F, flags{false, false, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := uint8(0); i < 8; i++ {
				c, _ := newTestCPU(t)
				c.HL.SetUint16(0xC000)
				c.writeOperand8(i, tt.value)
				c.setFlags(false, true, true, true)

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
