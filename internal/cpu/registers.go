package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/types"
)

// Registers contains the 8-bit registers, the flags and the
// 16-bit register pairs built over them.
type Registers struct {
	A types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	H types.Register
	L types.Register

	Flags

	BC *types.RegisterPair
	DE *types.RegisterPair
	HL *types.RegisterPair
}

// Reg names a single 8-bit register for the public accessors.
type Reg uint8

const (
	RegA Reg = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

var regNames = [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// Pair names a 16-bit register for the public accessors.
type Pair uint8

const (
	PairAF Pair = iota
	PairBC
	PairDE
	PairHL
	PairSP
	PairPC
)

var pairNames = [...]string{"AF", "BC", "DE", "HL", "SP", "PC"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// registerNames are the operand names in opcode encoding order, where
// index 6 refers to the memory at (HL) rather than a register.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

const indirectHL = 6

// Read8 returns the value of an 8-bit register. Reading RegF packs
// the flags.
func (c *CPU) Read8(r Reg) uint8 {
	switch r {
	case RegA:
		return c.A
	case RegF:
		return c.Flags.Pack()
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	}
	return 0
}

// Write8 sets the value of an 8-bit register. Writing RegF unpacks
// the flags, so the lower nibble is discarded.
func (c *CPU) Write8(r Reg, v uint8) {
	switch r {
	case RegA:
		c.A = v
	case RegF:
		c.Flags.Unpack(v)
	case RegB:
		c.B = v
	case RegC:
		c.C = v
	case RegD:
		c.D = v
	case RegE:
		c.E = v
	case RegH:
		c.H = v
	case RegL:
		c.L = v
	}
}

// Read16 returns the value of a 16-bit register.
func (c *CPU) Read16(p Pair) uint16 {
	switch p {
	case PairAF:
		return uint16(c.A)<<8 | uint16(c.Flags.Pack())
	case PairBC:
		return c.BC.Uint16()
	case PairDE:
		return c.DE.Uint16()
	case PairHL:
		return c.HL.Uint16()
	case PairSP:
		return c.SP
	case PairPC:
		return c.PC
	}
	return 0
}

// Write16 sets the value of a 16-bit register.
func (c *CPU) Write16(p Pair, v uint16) {
	switch p {
	case PairAF:
		c.A = uint8(v >> 8)
		c.Flags.Unpack(uint8(v))
	case PairBC:
		c.BC.SetUint16(v)
	case PairDE:
		c.DE.SetUint16(v)
	case PairHL:
		c.HL.SetUint16(v)
	case PairSP:
		c.SP = v
	case PairPC:
		c.PC = v
	}
}

// readOperand8 returns the 8-bit operand for the given encoding index,
// reading memory at (HL) for index 6.
func (c *CPU) readOperand8(index uint8) uint8 {
	if index == indirectHL {
		return c.readByte(c.HL.Uint16())
	}
	return *c.regs[index]
}

// writeOperand8 sets the 8-bit operand for the given encoding index,
// writing memory at (HL) for index 6.
func (c *CPU) writeOperand8(index uint8, v uint8) {
	if index == indirectHL {
		c.writeByte(c.HL.Uint16(), v)
		return
	}
	*c.regs[index] = v
}
