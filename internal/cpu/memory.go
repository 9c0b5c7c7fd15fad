package cpu

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// readWord reads a 16-bit value from memory, low byte first.
func (c *CPU) readWord(addr uint16) uint16 {
	low := uint16(c.readByte(addr))
	return low | uint16(c.readByte(addr+1))<<8
}

// writeWord writes a 16-bit value to memory, low byte first.
func (c *CPU) writeWord(addr uint16, val uint16) {
	c.writeByte(addr, uint8(val))
	c.writeByte(addr+1, uint8(val>>8))
}

// fetch reads the byte at PC and advances PC. In the HALT bug
// state PC fails to advance once, so the byte is read twice.
func (c *CPU) fetch() uint8 {
	value := c.readByte(c.PC)
	if c.mode == ModeHaltBug {
		c.mode = ModeNormal
		return value
	}
	c.PC++
	return value
}

// push pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) push(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop pops a 16 bit value off the stack, low byte first.
func (c *CPU) pop() uint16 {
	low := uint16(c.readByte(c.SP))
	c.SP++
	high := uint16(c.readByte(c.SP))
	c.SP++
	return high<<8 | low
}
