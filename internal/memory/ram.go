package memory

// RAM is a flat 64 KiB block of memory with no mapping or side
// effects, where every address can be both read and written.
type RAM struct {
	data [0x10000]uint8
}

// NewRAM returns a new zeroed RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Load copies data into the RAM starting at the given address,
// wrapping around at the end of the address space.
func (r *RAM) Load(address uint16, data []byte) {
	for i, b := range data {
		r.data[address+uint16(i)] = b
	}
}
