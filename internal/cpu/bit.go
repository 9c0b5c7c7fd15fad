package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// testBit tests the bit at the given position of value.
//
//	BIT b, r
//	b = 0 - 7, r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit b of register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.setFlags(value&types.BitMask(position) == 0, false, true, c.Carry)
}

func init() {
	// CB 0x40 - 0xFF - BIT, RES, SET
	for b := uint8(0); b < 8; b++ {
		position := b
		mask := types.BitMask(position)
		for i := uint8(0); i < 8; i++ {
			index := i

			// BIT only reads (HL), so it skips the write back
			cycles := uint8(8)
			if index == indirectHL {
				cycles = 12
			}
			DefineInstructionCB(0x40+position<<3+index, fmt.Sprintf("BIT %d, %s", position, registerNames[index]), func(c *CPU) {
				c.testBit(c.readOperand8(index), position)
			}, Cycles(cycles))

			defineCBModify(0x80+position<<3+index, fmt.Sprintf("RES %d,", position), index, func(c *CPU, n uint8) uint8 {
				return n &^ mask
			})
			defineCBModify(0xC0+position<<3+index, fmt.Sprintf("SET %d,", position), index, func(c *CPU, n uint8) uint8 {
				return n | mask
			})
		}
	}
}
