package cpu

// add adds b to a, plus the carry flag if withCarry is set, and sets
// the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, b uint8, withCarry bool) uint8 {
	var carry uint16
	if withCarry && c.Carry {
		carry = 1
	}
	sum := uint16(a) + uint16(b) + carry
	sumHalf := uint16(a&0xF) + uint16(b&0xF) + carry

	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	return uint8(sum)
}

// sub subtracts b from a, minus the carry flag if withCarry is set,
// and sets the flags accordingly.
//
// Used by:
//
//	SUB n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, b uint8, withCarry bool) uint8 {
	var borrow int16
	if withCarry && c.Carry {
		borrow = 1
	}
	diff := int16(a) - int16(b) - borrow
	diffHalf := int16(a&0xF) - int16(b&0xF) - borrow

	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	return uint8(diff)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare subtracts n from the A Register, setting the flags
// without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	c.sub(c.A, n, false)
}

// increment the given value and set the flags accordingly.
//
//	INC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(value uint8) uint8 {
	incremented := value + 0x01
	c.setFlags(incremented == 0, false, value&0xF == 0xF, c.Carry)
	return incremented
}

// decrement the given value and set the flags accordingly.
//
//	DEC n
//	n = 8-bit value
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(value uint8) uint8 {
	decremented := value - 0x01
	c.setFlags(decremented == 0, true, value&0xF == 0x0, c.Carry)
	return decremented
}

// addUint16 adds two uint16 values together and sets the flags
// accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.Zero, false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned returns SP plus the signed operand. The flags come from
// the unsigned addition of the operand to the low byte of SP.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(value uint8) uint16 {
	result := c.SP + uint16(int8(value))
	c.setFlags(false, false, (c.SP&0xF)+uint16(value&0xF) > 0xF, (c.SP&0xFF)+uint16(value) > 0xFF)
	return result
}

// decimalAdjust adjusts the A Register to a binary coded decimal
// after an addition or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if an adjustment of 0x60 was made.
func (c *CPU) decimalAdjust() {
	var adjust uint8
	carry := c.Carry
	if !c.Subtract {
		if c.HalfCarry || c.A&0xF > 0x9 {
			adjust |= 0x06
		}
		if c.Carry || c.A > 0x99 {
			adjust |= 0x60
			carry = true
		}
		c.A += adjust
	} else {
		if c.HalfCarry {
			adjust |= 0x06
		}
		if c.Carry {
			adjust |= 0x60
		}
		c.A -= adjust
	}
	c.setFlags(c.A == 0, c.Subtract, false, carry)
}

// aluOps are the 8 accumulator operations in opcode encoding order,
// shared by the register forms 0x80 - 0xBF and the immediate forms
// 0xC6 - 0xFE.
var aluOps = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A, ", func(c *CPU, n uint8) { c.A = c.add(c.A, n, false) }},
	{"ADC A, ", func(c *CPU, n uint8) { c.A = c.add(c.A, n, true) }},
	{"SUB ", func(c *CPU, n uint8) { c.A = c.sub(c.A, n, false) }},
	{"SBC A, ", func(c *CPU, n uint8) { c.A = c.sub(c.A, n, true) }},
	{"AND ", func(c *CPU, n uint8) { c.and(n) }},
	{"XOR ", func(c *CPU, n uint8) { c.xor(n) }},
	{"OR ", func(c *CPU, n uint8) { c.or(n) }},
	{"CP ", func(c *CPU, n uint8) { c.compare(n) }},
}
