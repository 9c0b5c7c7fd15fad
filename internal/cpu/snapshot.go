package cpu

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// Snapshot is a copy of the architectural state of the CPU.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	IME                    bool
	Mode                   Mode
	Cycles                 uint64
}

// Snapshot returns the current state of the CPU.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.Flags.Pack(),
		B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
		IME:    c.IME,
		Mode:   c.mode,
		Cycles: c.cycles,
	}
}

// Restore loads the registers, IME and mode from a Snapshot. The cycle
// counter is kept, and any pending EI is dropped.
func (c *CPU) Restore(s Snapshot) {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = s.A, s.B, s.C, s.D, s.E, s.H, s.L
	c.Flags.Unpack(s.F)
	c.SP, c.PC = s.SP, s.PC
	c.IME = s.IME
	c.imeDelay = 0
	c.mode = s.Mode
}

// Hash returns the xxhash of the snapshot, for comparing long runs
// against a known state.
func (s Snapshot) Hash() uint64 {
	var b [22]byte
	copy(b[:8], []byte{s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L})
	binary.LittleEndian.PutUint16(b[8:], s.SP)
	binary.LittleEndian.PutUint16(b[10:], s.PC)
	if s.IME {
		b[12] = 1
	}
	b[13] = uint8(s.Mode)
	binary.LittleEndian.PutUint64(b[14:], s.Cycles)
	return xxhash.Sum64(b[:])
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X IME:%t %s",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC, s.IME, s.Mode)
}
