package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/memory"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU in cycles per second.
	ClockSpeed = 4194304
)

// Mode is the execution mode of the CPU.
type Mode uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal Mode = iota
	// ModeHalt is entered by HALT, the CPU idles until an
	// interrupt is pending.
	ModeHalt
	// ModeStop is entered by STOP, and behaves as ModeHalt.
	ModeStop
	// ModeHaltBug is entered when HALT is executed with IME
	// disabled and an interrupt already pending. The next
	// opcode fetch fails to increment PC.
	ModeHaltBug
)

var modeNames = [...]string{"normal", "halt", "stop", "halt bug"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// InterruptController is the external source of interrupts. The CPU
// asks it once per step whether an enabled interrupt is requested, and
// acknowledges the highest priority one through Vector when it enters
// the interrupt.
type InterruptController interface {
	HasInterrupts() bool
	Vector() uint16
}

// CPU represents the LR35902 CPU. It is responsible for executing
// instructions against the address space it is bound to.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable.
	IME bool

	Debug bool

	bus     memory.AddressSpace
	irq     InterruptController
	log     log.Logger
	model   types.Model
	bootROM bool

	mode     Mode
	imeDelay uint8 // steps until EI takes effect
	cycles   uint64
	fault    error

	instructionPC uint16
	operands      [2]uint8
	regs          [8]*types.Register
}

// NewCPU creates a new CPU bound to the given address space, and
// resets it.
func NewCPU(bus memory.AddressSpace, opts ...Opt) *CPU {
	c := &CPU{
		bus:   bus,
		log:   log.NewNullLogger(),
		model: types.DMG,
	}
	// create register pairs
	c.BC = types.NewRegisterPair(&c.B, &c.C)
	c.DE = types.NewRegisterPair(&c.D, &c.E)
	c.HL = types.NewRegisterPair(&c.H, &c.L)
	c.regs = [8]*types.Register{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}

	for _, opt := range opts {
		opt(c)
	}

	c.Reset()
	return c
}

// Reset restores the power-on register state. Unless WithBootROM was
// given, this is the state the boot ROM of the configured model leaves
// behind, with execution starting at 0x0100.
func (c *CPU) Reset() {
	if c.bootROM {
		c.Write16(PairAF, 0)
		c.Write16(PairBC, 0)
		c.Write16(PairDE, 0)
		c.Write16(PairHL, 0)
		c.SP = 0x0000
		c.PC = 0x0000
	} else {
		p := c.model.PowerOn()
		c.Write16(PairAF, p.AF)
		c.Write16(PairBC, p.BC)
		c.Write16(PairDE, p.DE)
		c.Write16(PairHL, p.HL)
		c.SP = p.SP
		c.PC = p.PC
	}

	c.IME = false
	c.imeDelay = 0
	c.mode = ModeNormal
	c.cycles = 0
	c.fault = nil
}

// Mode returns the current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Cycles returns the total number of cycles executed since Reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Fault returns the fault that stopped the CPU, or nil.
func (c *CPU) Fault() error {
	return c.fault
}

// Step executes exactly one instruction, one interrupt entry, or one
// idle period while halted, and returns the number of cycles it took.
// If the fetched opcode is illegal the CPU faults: the error is
// returned, and every later Step returns ErrFaulted until Reset.
func (c *CPU) Step() (uint8, error) {
	if c.fault != nil {
		return 0, fmt.Errorf("%w: %w", ErrFaulted, c.fault)
	}

	var cycles uint8
	if c.mode == ModeHalt || c.mode == ModeStop {
		// in halt, stop mode the CPU does not execute any instructions
		// and is woken by any pending interrupt, regardless of IME
		if !c.hasInterrupts() {
			return c.tick(4), nil
		}
		c.log.Debugf("cpu: leaving %s mode at 0x%04X", c.mode, c.PC)
		c.mode = ModeNormal
		cycles = 4

		if !c.IME {
			return c.tick(cycles), nil
		}
	}

	if c.IME && c.hasInterrupts() {
		return c.tick(cycles + c.executeInterrupt()), nil
	}

	cycles, err := c.runInstruction()
	if err != nil {
		return 0, err
	}

	// EI enables interrupts after the instruction following it
	if c.imeDelay > 0 {
		c.imeDelay--
		if c.imeDelay == 0 {
			c.IME = true
		}
	}

	return c.tick(cycles), nil
}

// tick accounts for the given cycles and returns them.
func (c *CPU) tick(cycles uint8) uint8 {
	c.cycles += uint64(cycles)
	return cycles
}

// runInstruction fetches, decodes and executes a single instruction,
// returning the cycles it took.
func (c *CPU) runInstruction() (uint8, error) {
	c.instructionPC = c.PC
	opcode := c.fetch()

	instruction := &InstructionSet[opcode]
	// do we need to run a CB instruction?
	if opcode == prefixCB {
		instruction = &InstructionSetCB[c.fetch()]
	}

	// read the immediate operands
	operands := c.operands[:instruction.operand.Length()]
	for i := range operands {
		operands[i] = c.fetch()
	}

	if c.Debug {
		c.log.Debugf("%04X  %-20s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X",
			c.instructionPC, instruction.format(c.instructionPC, operands),
			c.A, c.Flags.Pack(), c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
	}

	taken := instruction.fn(c, operands)
	if c.fault != nil {
		c.log.Errorf("cpu: %v", c.fault)
		return 0, c.fault
	}

	if taken {
		return instruction.cycles + instruction.branch, nil
	}
	return instruction.cycles, nil
}

// hasInterrupts returns true if the interrupt controller has an
// interrupt that is both requested and enabled.
func (c *CPU) hasInterrupts() bool {
	return c.irq != nil && c.irq.HasInterrupts()
}

// executeInterrupt pushes PC and jumps to the vector of the highest
// priority pending interrupt, disabling IME.
func (c *CPU) executeInterrupt() uint8 {
	ret := c.PC
	if c.mode == ModeHaltBug {
		// HALT never completed, so the handler returns to it
		ret--
		c.mode = ModeNormal
	}

	// save the high byte of the PC
	c.SP--
	c.writeByte(c.SP, uint8(ret>>8))

	// the vector is resolved between the two pushes, so a push that
	// overwrites IE can still cancel the interrupt (vector 0x0000)
	vector := c.irq.Vector()

	// save the low byte of the PC
	c.SP--
	c.writeByte(c.SP, uint8(ret))

	c.log.Debugf("cpu: interrupt 0x%04X from 0x%04X", vector, ret)

	// jump to the interrupt vector and disable IME
	c.PC = vector
	c.IME = false
	c.imeDelay = 0

	return 20
}
