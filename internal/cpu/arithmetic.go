package cpu

// pairNamesSP are the 16-bit operands of the 0x00 - 0x3F block in opcode
// encoding order, where the last pair is SP.
var pairNamesSP = [4]string{"BC", "DE", "HL", "SP"}

// readPairSP returns the 16-bit register for the encoding index,
// where index 3 is SP.
func (c *CPU) readPairSP(index uint8) uint16 {
	switch index {
	case 0:
		return c.BC.Uint16()
	case 1:
		return c.DE.Uint16()
	case 2:
		return c.HL.Uint16()
	}
	return c.SP
}

// writePairSP sets the 16-bit register for the encoding index, where
// index 3 is SP.
func (c *CPU) writePairSP(index uint8, v uint16) {
	switch index {
	case 0:
		c.BC.SetUint16(v)
	case 1:
		c.DE.SetUint16(v)
	case 2:
		c.HL.SetUint16(v)
	default:
		c.SP = v
	}
}

func init() {
	// 0x04 - 0x3D - INC r, DEC r
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(4)
		if index == indirectHL {
			cycles = 12
		}

		DefineInstruction(0x04+index<<3, "INC "+registerNames[index], func(c *CPU, _ []uint8) {
			c.writeOperand8(index, c.increment(c.readOperand8(index)))
		}, Cycles(cycles))
		DefineInstruction(0x05+index<<3, "DEC "+registerNames[index], func(c *CPU, _ []uint8) {
			c.writeOperand8(index, c.decrement(c.readOperand8(index)))
		}, Cycles(cycles))
	}

	// 0x03 - 0x3B - INC rr, DEC rr, ADD HL, rr
	for i := uint8(0); i < 4; i++ {
		index := i
		DefineInstruction(0x03+index<<4, "INC "+pairNamesSP[index], func(c *CPU, _ []uint8) {
			c.writePairSP(index, c.readPairSP(index)+1)
		}, Cycles(8))
		DefineInstruction(0x0B+index<<4, "DEC "+pairNamesSP[index], func(c *CPU, _ []uint8) {
			c.writePairSP(index, c.readPairSP(index)-1)
		}, Cycles(8))
		DefineInstruction(0x09+index<<4, "ADD HL, "+pairNamesSP[index], func(c *CPU, _ []uint8) {
			c.HL.SetUint16(c.addUint16(c.HL.Uint16(), c.readPairSP(index)))
		}, Cycles(8))
	}

	// 0x80 - 0xBF - ALU A, r
	for op := uint8(0); op < 8; op++ {
		alu := aluOps[op]
		for i := uint8(0); i < 8; i++ {
			index := i
			cycles := uint8(4)
			if index == indirectHL {
				cycles = 8
			}
			DefineInstruction(0x80+op<<3+index, alu.name+registerNames[index], func(c *CPU, _ []uint8) {
				alu.fn(c, c.readOperand8(index))
			}, Cycles(cycles))
		}

		// 0xC6 - 0xFE - ALU A, d8
		DefineInstruction(0xC6+op<<3, alu.name+"d8", func(c *CPU, operands []uint8) {
			alu.fn(c, operands[0])
		}, Operands(OperandD8), Cycles(8))
	}

	DefineInstruction(0x27, "DAA", func(c *CPU, _ []uint8) { c.decimalAdjust() })
	DefineInstruction(0x2F, "CPL", func(c *CPU, _ []uint8) {
		c.A = 0xFF ^ c.A
		c.Subtract = true
		c.HalfCarry = true
	})
	DefineInstruction(0x37, "SCF", func(c *CPU, _ []uint8) {
		c.setFlags(c.Zero, false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU, _ []uint8) {
		c.setFlags(c.Zero, false, false, !c.Carry)
	})
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU, operands []uint8) {
		c.SP = c.addSPSigned(operands[0])
	}, Operands(OperandSigned), Cycles(16))
}
