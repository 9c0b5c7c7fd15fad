package types

// Register represents an LR35902 register which is used to hold an 8-bit value.
// The CPU has 7 general registers: A, B, C, D, E, H and L. The flag register F
// is not stored as a byte, see cpu.Flags.
type Register = uint8

// RegisterPair represents a pair of Registers which is used to hold a 16-bit
// value. The high and low halves remain two separate Registers, the 16-bit
// value is composed and decomposed explicitly so that the layout does not
// depend on the host's byte order.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// NewRegisterPair returns a RegisterPair over the given halves.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}
