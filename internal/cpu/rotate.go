package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// rotateLeft rotates n left by one bit. Bit 7 moves into both the
// carry flag and bit 0.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 7.
func (c *CPU) rotateLeft(n uint8) uint8 {
	out := n&types.Bit7 != 0
	result := n<<1 | n>>7
	c.setFlags(result == 0, false, false, out)
	return result
}

// rotateRight rotates n right by one bit. Bit 0 moves into both the
// carry flag and bit 7.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 0.
func (c *CPU) rotateRight(n uint8) uint8 {
	out := n&types.Bit0 != 0
	result := n>>1 | n<<7
	c.setFlags(result == 0, false, false, out)
	return result
}

// rotateLeftThroughCarry rotates n left through the carry flag, so
// the old carry becomes bit 0 and bit 7 becomes the new carry.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 7.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n << 1
	if c.Carry {
		result |= types.Bit0
	}
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

// rotateRightThroughCarry rotates n right through the carry flag, so
// the old carry becomes bit 7 and bit 0 becomes the new carry.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Old bit 0.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n >> 1
	if c.Carry {
		result |= types.Bit7
	}
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// rotations are the CB prefixed rotates in opcode encoding order.
var rotations = [4]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeft},
	{"RRC", (*CPU).rotateRight},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
}

func init() {
	// 0x07 - 0x1F - the accumulator rotates always reset Z
	for i := uint8(0); i < 4; i++ {
		rotation := rotations[i]
		DefineInstruction(0x07+i<<3, rotation.name+"A", func(c *CPU, _ []uint8) {
			c.A = rotation.fn(c, c.A)
			c.Zero = false
		})
	}

	// CB 0x00 - 0x1F - RLC, RRC, RL, RR
	for op := uint8(0); op < 4; op++ {
		rotation := rotations[op]
		for i := uint8(0); i < 8; i++ {
			defineCBModify(op<<3+i, rotation.name, i, rotation.fn)
		}
	}
}

// defineCBModify defines a CB prefixed read-modify-write instruction
// on the operand with the given encoding index. The (HL) form costs
// 16 cycles.
func defineCBModify(opcode uint8, name string, index uint8, fn func(c *CPU, n uint8) uint8) {
	cycles := uint8(8)
	if index == indirectHL {
		cycles = 16
	}
	DefineInstructionCB(opcode, name+" "+registerNames[index], func(c *CPU) {
		c.writeOperand8(index, fn(c, c.readOperand8(index)))
	}, Cycles(cycles))
}
