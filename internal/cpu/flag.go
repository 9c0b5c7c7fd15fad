package cpu

import "github.com/thelolagemann/lr35902/internal/types"

// Flag is the bit position of a flag within the packed F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags holds the four condition flags. They are only packed into a
// byte where the raw F register is needed, such as PUSH AF and POP AF.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Flag returns the value of the given flag.
func (f *Flags) Flag(flag Flag) bool {
	switch flag {
	case FlagZero:
		return f.Zero
	case FlagSubtract:
		return f.Subtract
	case FlagHalfCarry:
		return f.HalfCarry
	case FlagCarry:
		return f.Carry
	}
	return false
}

// SetFlag sets the given flag to v.
func (f *Flags) SetFlag(flag Flag, v bool) {
	switch flag {
	case FlagZero:
		f.Zero = v
	case FlagSubtract:
		f.Subtract = v
	case FlagHalfCarry:
		f.HalfCarry = v
	case FlagCarry:
		f.Carry = v
	}
}

// Pack returns the flags as the F register. The lower nibble is
// always 0.
func (f *Flags) Pack() uint8 {
	var v uint8
	if f.Zero {
		v |= types.Bit7
	}
	if f.Subtract {
		v |= types.Bit6
	}
	if f.HalfCarry {
		v |= types.Bit5
	}
	if f.Carry {
		v |= types.Bit4
	}
	return v
}

// Unpack sets the flags from an F register value, discarding the
// lower nibble.
func (f *Flags) Unpack(v uint8) {
	f.Zero = v&types.Bit7 != 0
	f.Subtract = v&types.Bit6 != 0
	f.HalfCarry = v&types.Bit5 != 0
	f.Carry = v&types.Bit4 != 0
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.Zero = zero
	c.Subtract = subtract
	c.HalfCarry = halfCarry
	c.Carry = carry
}
