// Package gameboy assembles a CPU with the memory, interrupt
// controller, timer and serial port it needs to run programs outside
// of a full emulator. Peripherals are driven by a scheduler that is
// advanced by the cycles each CPU step reports.
package gameboy

import (
	"bytes"
	"io"
	"strings"

	"github.com/thelolagemann/lr35902/internal/boot"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/memory"
	"github.com/thelolagemann/lr35902/internal/scheduler"
	"github.com/thelolagemann/lr35902/internal/serial"
	"github.com/thelolagemann/lr35902/internal/timer"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = 70224
)

// GameBoy is a CPU bound to a flat 64 KiB memory, with the interrupt
// controller, timer and serial port mapped onto it.
type GameBoy struct {
	CPU        *cpu.CPU
	Bus        *memory.Bus
	Interrupts *interrupts.Service
	Scheduler  *scheduler.Scheduler
	Timer      *timer.Controller
	Serial     *serial.Controller

	log     log.Logger
	ram     *memory.RAM
	cpuOpts []cpu.Opt

	program   []byte
	bootROM   *boot.ROM
	loadAt    uint16
	startAt   *uint16
	vblank    bool
	serialOut io.Writer
	stopWords []string

	output  bytes.Buffer
	stopped bool
}

// NewGameBoy returns a new GameBoy with the program loaded into
// memory.
func NewGameBoy(program []byte, opts ...Opt) *GameBoy {
	g := &GameBoy{
		log:     log.NewNullLogger(),
		program: program,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ram = memory.NewRAM()
	g.Bus = memory.NewBus(g.ram)
	g.Scheduler = scheduler.NewScheduler()
	g.Interrupts = interrupts.NewService(g.Bus)
	g.Timer = timer.NewController(g.Bus, g.Interrupts, g.Scheduler)
	g.Serial = serial.NewController(g.Bus, g.Interrupts, g.Scheduler, serialWriter{g}, g.log)

	g.ram.Load(g.loadAt, program)
	if g.bootROM != nil {
		g.log.Debugf("gameboy: boot ROM %s (%s)", g.bootROM.Model(), g.bootROM.Checksum())
		for addr, data := range g.bootROM.Regions() {
			g.ram.Load(addr, data)
		}
		g.Bus.RegisterHardware(types.BDIS, func(v uint8) {
			if v != 0 {
				g.unmapBootROM()
			}
		}, nil)
	}

	if g.vblank {
		g.Scheduler.RegisterEvent(scheduler.VBlank, func() {
			g.Interrupts.Request(interrupts.VBlankFlag)
			g.Scheduler.ScheduleEvent(scheduler.VBlank, CyclesPerFrame)
		})
		g.Scheduler.ScheduleEvent(scheduler.VBlank, CyclesPerFrame)
	}

	g.CPU = cpu.NewCPU(g.Bus, append(g.cpuOpts, cpu.WithInterrupts(g.Interrupts))...)
	if g.startAt != nil {
		g.CPU.PC = *g.startAt
	}

	return g
}

// unmapBootROM restores the memory the boot ROM was mapped over.
func (g *GameBoy) unmapBootROM() {
	g.log.Debugf("gameboy: boot ROM disabled at 0x%04X", g.CPU.PC)
	for addr, data := range g.bootROM.Regions() {
		g.ram.Load(addr, make([]byte, len(data)))
	}
	g.ram.Load(g.loadAt, g.program)
	g.Bus.RegisterHardware(types.BDIS, nil, nil)
}

// Step executes a single CPU step and advances the peripherals by
// the cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		return cycles, err
	}
	g.Scheduler.Tick(uint64(cycles))
	return cycles, nil
}

// Run steps until at least budget cycles have elapsed, the CPU
// faults, or the serial output contains a word given to StopOnSerial.
// It returns the number of cycles executed.
func (g *GameBoy) Run(budget uint64) (uint64, error) {
	var elapsed uint64
	for elapsed < budget && !g.stopped {
		cycles, err := g.Step()
		elapsed += uint64(cycles)
		if err != nil {
			g.log.Errorf("gameboy: stopped after %d cycles: %v", elapsed, err)
			return elapsed, err
		}
	}
	return elapsed, nil
}

// Stopped reports whether a stop word has been seen on the serial
// port.
func (g *GameBoy) Stopped() bool {
	return g.stopped
}

// Output returns everything sent over the serial port.
func (g *GameBoy) Output() string {
	return g.output.String()
}

// serialWriter collects serial output and watches for stop words.
type serialWriter struct {
	g *GameBoy
}

func (w serialWriter) Write(p []byte) (int, error) {
	g := w.g
	g.output.Write(p)
	if g.serialOut != nil {
		if _, err := g.serialOut.Write(p); err != nil {
			g.log.Errorf("gameboy: serial output: %v", err)
		}
	}

	for _, word := range g.stopWords {
		if strings.Contains(g.output.String(), word) {
			g.log.Infof("gameboy: %q on serial output, stopping", word)
			g.stopped = true
		}
	}
	return len(p), nil
}
