package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Bit(t *testing.T) {
	for b := uint8(0); b < 8; b++ {
		for i := uint8(0); i < 8; i++ {
			for _, carry := range []bool{false, true} {
				c, _ := newTestCPU(t)
				c.HL.SetUint16(0xC000)
				c.writeOperand8(i, 1<<b)
				c.Carry = carry

				cycles := run(t, c, 0xCB, 0x40+b<<3+i)
				assertFlags(t, c, flags{false, false, true, carry})
				if i == indirectHL {
					assert.Equal(t, uint8(12), cycles)
				} else {
					assert.Equal(t, uint8(8), cycles)
				}

				c.writeOperand8(i, ^uint8(1<<b))
				c.PC = 0x0100
				run(t, c, 0xCB, 0x40+b<<3+i)
				assertFlags(t, c, flags{true, false, true, carry})
			}
		}
	}
}

func TestInstruction_ResSet(t *testing.T) {
	for b := uint8(0); b < 8; b++ {
		for i := uint8(0); i < 8; i++ {
			c, _ := newTestCPU(t)
			c.HL.SetUint16(0xC000)
			c.writeOperand8(i, 0xFF)
			before := c.Flags

			cycles := run(t, c, 0xCB, 0x80+b<<3+i)
			assert.Equal(t, ^uint8(1<<b), c.readOperand8(i), InstructionSetCB[0x80+b<<3+i].Name())

			c.writeOperand8(i, 0x00)
			run(t, c, 0xCB, 0xC0+b<<3+i)
			assert.Equal(t, uint8(1<<b), c.readOperand8(i), InstructionSetCB[0xC0+b<<3+i].Name())
			assert.Equal(t, before, c.Flags)

			if i == indirectHL {
				assert.Equal(t, uint8(16), cycles)
			} else {
				assert.Equal(t, uint8(8), cycles)
			}
		}
	}
}
