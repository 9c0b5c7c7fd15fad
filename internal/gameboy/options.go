package gameboy

import (
	"io"

	"github.com/thelolagemann/lr35902/internal/boot"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// Opt is a function that configures a GameBoy before its components
// are created.
type Opt func(gb *GameBoy)

// Debug enables instruction tracing, which is logged at debug level.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.cpuOpts = append(gb.cpuOpts, cpu.Debug())
	}
}

// WithLogger sets the logger used by the GameBoy and its CPU.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.log = l
		gb.cpuOpts = append(gb.cpuOpts, cpu.WithLogger(l))
	}
}

// AsModel selects the register state the CPU starts with.
func AsModel(m types.Model) Opt {
	return func(gb *GameBoy) {
		gb.cpuOpts = append(gb.cpuOpts, cpu.AsModel(m))
	}
}

// WithBootROM maps the boot ROM over the start of memory and starts
// the CPU at 0x0000 with cleared registers. The boot ROM is unmapped
// again when it writes to types.BDIS.
func WithBootROM(rom *boot.ROM) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
		gb.cpuOpts = append(gb.cpuOpts, cpu.WithBootROM())
	}
}

// LoadAt sets the address the program is loaded at, 0x0000 by
// default, so that a cartridge image has its entry point at 0x0100.
func LoadAt(address uint16) Opt {
	return func(gb *GameBoy) {
		gb.loadAt = address
	}
}

// StartAt overrides the address execution starts from.
func StartAt(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.startAt = &pc
	}
}

// SerialOutput copies every byte sent over the serial port to w.
func SerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// StopOnSerial stops Run once the serial output contains any of the
// given words, as test programs report their result this way.
func StopOnSerial(words ...string) Opt {
	return func(gb *GameBoy) {
		gb.stopWords = append(gb.stopWords, words...)
	}
}

// VBlankInterrupts requests a VBlank interrupt once every frame.
func VBlankInterrupts() Opt {
	return func(gb *GameBoy) {
		gb.vblank = true
	}
}
