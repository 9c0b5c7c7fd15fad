package cpu

import "encoding/binary"

// pushPairs are the 16-bit operands of PUSH and POP in opcode encoding
// order, where the last pair is AF.
var pushPairs = [4]Pair{PairBC, PairDE, PairHL, PairAF}

func init() {
	// 0x40 - 0x7F - LD r, r' (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == indirectHL && src == indirectHL {
				continue
			}
			d, s := dst, src
			cycles := uint8(4)
			if d == indirectHL || s == indirectHL {
				cycles = 8
			}
			DefineInstruction(0x40+d<<3+s, "LD "+registerNames[d]+", "+registerNames[s], func(c *CPU, _ []uint8) {
				c.writeOperand8(d, c.readOperand8(s))
			}, Cycles(cycles))
		}
	}

	// 0x06 - 0x3E - LD r, d8
	for i := uint8(0); i < 8; i++ {
		index := i
		cycles := uint8(8)
		if index == indirectHL {
			cycles = 12
		}
		DefineInstruction(0x06+index<<3, "LD "+registerNames[index]+", d8", func(c *CPU, operands []uint8) {
			c.writeOperand8(index, operands[0])
		}, Operands(OperandD8), Cycles(cycles))
	}

	// 0x01 - 0x31 - LD rr, d16
	for i := uint8(0); i < 4; i++ {
		index := i
		DefineInstruction(0x01+index<<4, "LD "+pairNamesSP[index]+", d16", func(c *CPU, operands []uint8) {
			c.writePairSP(index, binary.LittleEndian.Uint16(operands))
		}, Operands(OperandD16), Cycles(12))
	}

	// indirect loads through a register pair
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU, _ []uint8) { c.writeByte(c.BC.Uint16(), c.A) }, Cycles(8))
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU, _ []uint8) { c.writeByte(c.DE.Uint16(), c.A) }, Cycles(8))
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU, _ []uint8) { c.A = c.readByte(c.BC.Uint16()) }, Cycles(8))
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU, _ []uint8) { c.A = c.readByte(c.DE.Uint16()) }, Cycles(8))
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.writeByte(hl, c.A)
		c.HL.SetUint16(hl + 1)
	}, Cycles(8))
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.A = c.readByte(hl)
		c.HL.SetUint16(hl + 1)
	}, Cycles(8))
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.writeByte(hl, c.A)
		c.HL.SetUint16(hl - 1)
	}, Cycles(8))
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU, _ []uint8) {
		hl := c.HL.Uint16()
		c.A = c.readByte(hl)
		c.HL.SetUint16(hl - 1)
	}, Cycles(8))

	// high page and absolute loads
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU, operands []uint8) {
		c.writeByte(0xFF00+uint16(operands[0]), c.A)
	}, Operands(OperandA8), Cycles(12))
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU, operands []uint8) {
		c.A = c.readByte(0xFF00 + uint16(operands[0]))
	}, Operands(OperandA8), Cycles(12))
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU, _ []uint8) {
		c.writeByte(0xFF00+uint16(c.C), c.A)
	}, Cycles(8))
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU, _ []uint8) {
		c.A = c.readByte(0xFF00 + uint16(c.C))
	}, Cycles(8))
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU, operands []uint8) {
		c.writeByte(binary.LittleEndian.Uint16(operands), c.A)
	}, Operands(OperandA16), Cycles(16))
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU, operands []uint8) {
		c.A = c.readByte(binary.LittleEndian.Uint16(operands))
	}, Operands(OperandA16), Cycles(16))

	// stack pointer loads
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU, operands []uint8) {
		c.writeWord(binary.LittleEndian.Uint16(operands), c.SP)
	}, Operands(OperandA16), Cycles(20))
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU, operands []uint8) {
		c.HL.SetUint16(c.addSPSigned(operands[0]))
	}, Operands(OperandSigned), Cycles(12))
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU, _ []uint8) { c.SP = c.HL.Uint16() }, Cycles(8))

	// 0xC1 - 0xF5 - POP rr, PUSH rr
	for i := uint8(0); i < 4; i++ {
		pair := pushPairs[i]
		DefineInstruction(0xC1+i<<4, "POP "+pair.String(), func(c *CPU, _ []uint8) {
			// POP AF goes through Write16, so the low nibble of F is dropped
			c.Write16(pair, c.pop())
		}, Cycles(12))
		DefineInstruction(0xC5+i<<4, "PUSH "+pair.String(), func(c *CPU, _ []uint8) {
			c.push(c.Read16(pair))
		}, Cycles(16))
	}
}
