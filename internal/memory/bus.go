package memory

// Hook is a memory-mapped register on the Bus. Either function may
// be nil, in which case reads return 0xFF or writes are dropped.
type Hook struct {
	Read  func() uint8
	Write func(v uint8)
}

// Bus is an AddressSpace backed by a RAM, where individual addresses
// may be claimed by hardware registers. Writes to a hooked address go
// to the hook and never reach the RAM, so any side effect of the write
// is what the very next read observes.
type Bus struct {
	ram   AddressSpace
	hooks [0x10000]*Hook
}

// NewBus returns a new Bus over the given backing memory. If ram is
// nil a fresh RAM is used.
func NewBus(ram AddressSpace) *Bus {
	if ram == nil {
		ram = NewRAM()
	}
	return &Bus{ram: ram}
}

// RegisterHardware maps a hardware register to the given address,
// replacing any previous register at that address.
func (b *Bus) RegisterHardware(address uint16, write func(v uint8), read func() uint8) {
	b.hooks[address] = &Hook{Read: read, Write: write}
}

// IsHardware reports whether a hardware register is mapped at the address.
func (b *Bus) IsHardware(address uint16) bool {
	return b.hooks[address] != nil
}

// Read returns the value at the given address.
func (b *Bus) Read(address uint16) uint8 {
	if h := b.hooks[address]; h != nil {
		if h.Read == nil {
			return 0xFF
		}
		return h.Read()
	}
	return b.ram.Read(address)
}

// Write writes the value to the given address.
func (b *Bus) Write(address uint16, value uint8) {
	if h := b.hooks[address]; h != nil {
		if h.Write != nil {
			h.Write(value)
		}
		return
	}
	b.ram.Write(address, value)
}
