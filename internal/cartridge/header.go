// Package cartridge parses the header found at 0x0100 - 0x014F of a
// cartridge image.
package cartridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thelolagemann/lr35902/internal/types"
)

// ErrNoHeader is returned for images too short to hold a header.
var ErrNoHeader = errors.New("cartridge: image too short for a header")

// Flag is the hardware compatibility flag at 0x0143.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

// Type is the memory bank controller and extra hardware declared at
// 0x0147. Images are mapped flat, so only the first 64 KiB of a
// banked cartridge is ever visible.
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	MBC2        Type = 0x05
	MBC2BATT    Type = 0x06
	MBC3        Type = 0x11
	MBC3RAM     Type = 0x12
	MBC3RAMBATT Type = 0x13
	MBC5        Type = 0x19
	MBC5RAM     Type = 0x1A
	MBC5RAMBATT Type = 0x1B
)

var typeNames = map[Type]string{
	ROM:         "ROM",
	MBC1:        "MBC1",
	MBC1RAM:     "MBC1+RAM",
	MBC1RAMBATT: "MBC1+RAM+BATTERY",
	MBC2:        "MBC2",
	MBC2BATT:    "MBC2+BATTERY",
	MBC3:        "MBC3",
	MBC3RAM:     "MBC3+RAM",
	MBC3RAMBATT: "MBC3+RAM+BATTERY",
	MBC5:        "MBC5",
	MBC5RAM:     "MBC5+RAM",
	MBC5RAMBATT: "MBC5+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(0x%02X)", uint8(t))
}

// ramSizes maps the RAM size code at 0x0149 to bytes.
var ramSizes = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the cartridge header.
type Header struct {
	// 0x0134-0x0143 - Title, 15 bytes on CGB cartridges
	Title string
	// 0x0143 - hardware the cartridge runs on
	Mode Flag
	// 0x0147
	CartridgeType Type
	// 0x0148 - 32 KiB << n
	ROMSize uint
	// 0x0149
	RAMSize uint
	// 0x014D - checksum over 0x0134 - 0x014C
	HeaderChecksum uint8
	// 0x014E-0x014F, big-endian
	GlobalChecksum uint16

	checksum uint8 // computed over the image
}

// ParseHeader parses the header of the given image.
func ParseHeader(image []byte) (Header, error) {
	if len(image) < 0x150 {
		return Header{}, ErrNoHeader
	}
	header := image[0x100:0x150]

	h := Header{}
	switch header[0x43] {
	case 0x80:
		h.Mode = FlagSupportsCGB
	case 0xC0:
		h.Mode = FlagOnlyCGB
	default:
		h.Mode = FlagOnlyDMG
	}

	title := header[0x34:0x44]
	if h.Mode != FlagOnlyDMG {
		title = header[0x34:0x43]
	}
	h.Title = strings.TrimRight(string(title), "\x00 ")

	h.CartridgeType = Type(header[0x47])
	h.ROMSize = (32 * 1024) << (header[0x48] & 0x0F)
	h.RAMSize = ramSizes[header[0x49]]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	for _, b := range header[0x34:0x4D] {
		h.checksum = h.checksum - b - 1
	}

	return h, nil
}

// Valid reports whether the header checksum matches. The boot ROM
// refuses to start a cartridge whose header checksum is wrong.
func (h Header) Valid() bool {
	return h.checksum == h.HeaderChecksum
}

// Model returns the model the cartridge expects to run on.
func (h Header) Model() types.Model {
	if h.Mode == FlagOnlyDMG {
		return types.DMG
	}
	return types.CGB
}

func (h Header) String() string {
	return fmt.Sprintf("%s | %s | %s | ROM: %dKiB | RAM: %dKiB", h.Title, h.Model(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
