// Package boot identifies boot ROM images. The boot ROM is mapped over
// the start of memory at power on, and executes before the program,
// leaving behind the register values of the model it belongs to.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

const (
	// Size is the size of the DMG, MGB and SGB boot ROMs.
	Size = 0x100
	// SizeCGB is the size of the CGB boot ROM, which is mapped to
	// 0x0000 - 0x00FF and 0x0200 - 0x08FF.
	SizeCGB = 0x900
)

// ROM is a boot ROM image.
type ROM struct {
	raw      []byte
	checksum string // MD5 of raw
}

// Load returns the ROM for the raw image, which must be Size or
// SizeCGB bytes long.
func Load(b []byte) (*ROM, error) {
	if len(b) != Size && len(b) != SizeCGB {
		return nil, fmt.Errorf("boot: invalid boot ROM length %d, expected %d or %d", len(b), Size, SizeCGB)
	}

	sum := md5.Sum(b)
	return &ROM{
		raw:      b,
		checksum: hex.EncodeToString(sum[:]),
	}, nil
}

// Checksum returns the MD5 checksum of the boot ROM.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}

// Model returns the name of the hardware the boot ROM came from, or
// "unknown" if the checksum isn't recognised.
func (r *ROM) Model() string {
	if r == nil {
		return "none"
	}
	if model, ok := knownChecksums[r.checksum]; ok {
		return model
	}
	return "unknown"
}

// Regions returns the address and contents of each memory region the
// boot ROM is mapped over. The CGB boot ROM leaves a hole at 0x0100 -
// 0x01FF for the cartridge header.
func (r *ROM) Regions() map[uint16][]byte {
	if len(r.raw) == SizeCGB {
		return map[uint16][]byte{
			0x0000: r.raw[:0x100],
			0x0200: r.raw[0x200:],
		}
	}
	return map[uint16][]byte{0x0000: r.raw}
}

// knownChecksums maps the MD5 checksums of dumped boot ROMs to the
// hardware they were dumped from.
var knownChecksums = map[string]string{
	"a8f84a0ac44da5d3f0ee19f9cea80a8c": "Game Boy (DMG-0)",
	"32fbbd84168d3482956eb3c5051637f5": "Game Boy (DMG-01)",
	"71a378e71ff30b2d8a1f02bf5c7896aa": "Game Boy Pocket",
	"d574d4f9c12f305074798f54c091a8b4": "Super Game Boy",
	"e0430bca9925fb9882148fd2dc2418c1": "Super Game Boy 2",
	"7c773f3c0b01cb73bca8e83227287b7f": "Game Boy Color (CGB-0)",
	"dbfce9db9deaa2567f6a84fde55f9680": "Game Boy Color (CGB-A/B/C/D/E)",
	"e6cefb5f7d352fab6681989763917c73": "Game Boy Advance (AGB-001)",
}
