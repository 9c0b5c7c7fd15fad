// Package memory provides the 16-bit byte addressable space the CPU
// reads and writes, along with simple implementations of it.
package memory

// AddressSpace is the byte addressable memory the CPU is bound to.
// Both methods are total over the full 16-bit address range, it is
// up to the implementation to decide what unmapped or special
// addresses do.
type AddressSpace interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// ReadWord reads a little-endian 16-bit value, low byte first.
func ReadWord(a AddressSpace, address uint16) uint16 {
	low := uint16(a.Read(address))
	return low | uint16(a.Read(address+1))<<8
}

// WriteWord writes a little-endian 16-bit value, low byte first.
func WriteWord(a AddressSpace, address uint16, value uint16) {
	a.Write(address, uint8(value))
	a.Write(address+1, uint8(value>>8))
}
