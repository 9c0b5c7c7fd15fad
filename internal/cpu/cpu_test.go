package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/memory"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// newTestCPU returns a CPU in its post-boot state, with the program
// loaded at 0x0100.
func newTestCPU(t *testing.T, program ...uint8) (*CPU, *memory.RAM) {
	t.Helper()
	ram := memory.NewRAM()
	ram.Load(0x0100, program)
	return NewCPU(ram), ram
}

// step executes a single step, failing the test on error.
func step(t *testing.T, c *CPU) uint8 {
	t.Helper()
	cycles, err := c.Step()
	require.NoError(t, err)
	return cycles
}

// run writes the program at PC and executes a single step.
func run(t *testing.T, c *CPU, program ...uint8) uint8 {
	t.Helper()
	for i, b := range program {
		c.bus.Write(c.PC+uint16(i), b)
	}
	return step(t, c)
}

func TestCPU_Reset(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Opt
		state [6]uint16 // AF, BC, DE, HL, SP, PC
	}{
		{"DMG", nil, [6]uint16{0x01B0, 0x0013, 0x00D8, 0x014D, 0xFFFE, 0x0100}},
		{"CGB", []Opt{AsModel(types.CGB)}, [6]uint16{0x1180, 0x0000, 0xFF56, 0x000D, 0xFFFE, 0x0100}},
		{"boot ROM", []Opt{WithBootROM()}, [6]uint16{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCPU(memory.NewRAM(), tt.opts...)
			for i, p := range []Pair{PairAF, PairBC, PairDE, PairHL, PairSP, PairPC} {
				assert.Equal(t, tt.state[i], c.Read16(p), "register %s", p)
			}
			assert.False(t, c.IME)
			assert.Equal(t, ModeNormal, c.Mode())
			assert.Zero(t, c.Cycles())
		})
	}
}

func TestCPU_Step(t *testing.T) {
	c, ram := newTestCPU(t,
		0x00,       // NOP
		0x06, 0x12, // LD B, 0x12
		0x21, 0x00, 0xC0, // LD HL, 0xC000
		0x70,       // LD (HL), B
		0x34,       // INC (HL)
		0xCB, 0x7E, // BIT 7, (HL)
		0xC3, 0x00, 0x01, // JP 0x0100
	)

	expected := []uint8{4, 8, 12, 8, 12, 12, 16}
	var total uint64
	for _, cycles := range expected {
		assert.Equal(t, cycles, step(t, c))
		total += uint64(cycles)
	}

	assert.Equal(t, total, c.Cycles())
	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint8(0x13), ram.Read(0xC000))
	assert.True(t, c.Zero)
}

func TestCPU_IllegalOpcode(t *testing.T) {
	for _, opcode := range disallowedOpcodes {
		t.Run(InstructionSet[opcode].Name(), func(t *testing.T) {
			c, _ := newTestCPU(t, opcode)
			before := c.Snapshot()

			cycles, err := c.Step()
			assert.Zero(t, cycles)
			require.ErrorIs(t, err, ErrIllegalOpcode)

			var illegal *IllegalOpcodeError
			require.ErrorAs(t, err, &illegal)
			assert.Equal(t, opcode, illegal.Opcode)
			assert.Equal(t, uint16(0x0100), illegal.PC)

			// only the fetch has happened
			assert.Equal(t, uint16(0x0101), c.PC)
			after := c.Snapshot()
			after.PC = before.PC
			assert.Equal(t, before, after)

			// the CPU stays faulted until reset
			_, err = c.Step()
			assert.ErrorIs(t, err, ErrFaulted)
			assert.ErrorIs(t, err, ErrIllegalOpcode)
			assert.Equal(t, uint16(0x0101), c.PC)

			c.Reset()
			assert.NoError(t, c.Fault())
			assert.Equal(t, uint16(0x0100), c.PC)
		})
	}
}

func TestCPU_Stack(t *testing.T) {
	t.Run("push pop", func(t *testing.T) {
		c, ram := newTestCPU(t)
		for _, pair := range []Pair{PairBC, PairDE, PairHL, PairAF} {
			for v := 0; v <= 0xFFFF; v++ {
				c.Write16(pair, uint16(v))
				c.push(c.Read16(pair))
				assert.Equal(t, uint16(0xFFFC), c.SP)
				assert.Equal(t, uint8(v>>8), ram.Read(0xFFFD))

				c.Write16(pair, 0)
				c.Write16(pair, c.pop())
				assert.Equal(t, uint16(0xFFFE), c.SP)

				expected := uint16(v)
				if pair == PairAF {
					expected &= 0xFFF0
				}
				if c.Read16(pair) != expected {
					t.Fatalf("%s: expected 0x%04X, got 0x%04X", pair, expected, c.Read16(pair))
				}
			}
		}
	})
	t.Run("PUSH BC POP AF", func(t *testing.T) {
		c, ram := newTestCPU(t, 0xC5, 0xF1)
		c.BC.SetUint16(0x12FF)

		assert.Equal(t, uint8(16), step(t, c))
		assert.Equal(t, uint8(0x12), ram.Read(0xFFFD))
		assert.Equal(t, uint8(0xFF), ram.Read(0xFFFC))

		assert.Equal(t, uint8(12), step(t, c))
		assert.Equal(t, uint16(0x12F0), c.Read16(PairAF))
		assert.Equal(t, uint16(0xFFFE), c.SP)
		assert.True(t, c.Zero && c.Subtract && c.HalfCarry && c.Carry)
	})
	t.Run("pairs", func(t *testing.T) {
		// every PUSH, POP combination moves the value between pairs
		pushes := map[uint8]Pair{0xC5: PairBC, 0xD5: PairDE, 0xE5: PairHL, 0xF5: PairAF}
		pops := map[uint8]Pair{0xC1: PairBC, 0xD1: PairDE, 0xE1: PairHL, 0xF1: PairAF}
		for push, from := range pushes {
			for pop, to := range pops {
				c, _ := newTestCPU(t, push, pop)
				c.Write16(from, 0xA5C0)
				step(t, c)
				step(t, c)
				assert.Equal(t, uint16(0xA5C0), c.Read16(to), "%s -> %s", from, to)
			}
		}
	})
}

func newInterruptCPU(t *testing.T, program ...uint8) (*CPU, *memory.RAM, *interrupts.Service) {
	t.Helper()
	ram := memory.NewRAM()
	ram.Load(0x0100, program)
	irq := interrupts.NewService(nil)
	irq.Enable = 0x1F
	return NewCPU(ram, WithInterrupts(irq)), ram, irq
}

func TestCPU_Interrupts(t *testing.T) {
	t.Run("entry", func(t *testing.T) {
		c, ram, irq := newInterruptCPU(t, 0x00)
		c.IME = true
		irq.Request(interrupts.TimerFlag | interrupts.SerialFlag)

		assert.Equal(t, uint8(20), step(t, c))
		assert.Equal(t, uint16(types.TimerVector), c.PC)
		assert.Equal(t, uint16(0xFFFC), c.SP)
		assert.Equal(t, uint8(0x01), ram.Read(0xFFFD))
		assert.Equal(t, uint8(0x00), ram.Read(0xFFFC))
		assert.False(t, c.IME)

		// the lower priority interrupt is left pending
		assert.Equal(t, interrupts.SerialFlag, irq.Flag)
	})
	t.Run("disabled", func(t *testing.T) {
		c, _, irq := newInterruptCPU(t, 0x00)
		irq.Request(interrupts.VBlankFlag)

		assert.Equal(t, uint8(4), step(t, c))
		assert.Equal(t, uint16(0x0101), c.PC)
		assert.Equal(t, interrupts.VBlankFlag, irq.Flag)
	})
	t.Run("EI delay", func(t *testing.T) {
		c, _, irq := newInterruptCPU(t, 0xFB, 0x00, 0x00)
		irq.Request(interrupts.VBlankFlag)

		step(t, c) // EI
		assert.False(t, c.IME)
		step(t, c) // NOP
		assert.True(t, c.IME)

		assert.Equal(t, uint8(20), step(t, c))
		assert.Equal(t, uint16(types.VBlankVector), c.PC)
		assert.Equal(t, uint16(0x0102), c.readWord(c.SP))
	})
	t.Run("EI DI", func(t *testing.T) {
		c, _, _ := newInterruptCPU(t, 0xFB, 0xF3, 0x00)
		step(t, c)
		step(t, c)
		step(t, c)
		assert.False(t, c.IME)
	})
	t.Run("RETI", func(t *testing.T) {
		c, _, _ := newInterruptCPU(t, 0xD9)
		c.push(0x1234)

		assert.Equal(t, uint8(16), step(t, c))
		assert.Equal(t, uint16(0x1234), c.PC)
		assert.True(t, c.IME)
	})
	t.Run("cancelled", func(t *testing.T) {
		// the high byte push lands on IE and disables the interrupt
		bus := memory.NewBus(nil)
		irq := interrupts.NewService(bus)
		c := NewCPU(bus, WithInterrupts(irq))
		c.SP = 0x0000
		c.PC = 0x0200
		c.IME = true
		irq.Enable = interrupts.JoypadFlag
		irq.Request(interrupts.JoypadFlag)

		assert.Equal(t, uint8(20), step(t, c))
		assert.Equal(t, uint16(0x0000), c.PC)
		assert.Equal(t, interrupts.JoypadFlag, irq.Flag)
	})
}

func TestCPU_Halt(t *testing.T) {
	t.Run("interrupt", func(t *testing.T) {
		c, _, irq := newInterruptCPU(t, 0x76, 0x00)
		c.IME = true

		assert.Equal(t, uint8(4), step(t, c))
		assert.Equal(t, ModeHalt, c.Mode())
		for i := 0; i < 10; i++ {
			assert.Equal(t, uint8(4), step(t, c))
		}
		assert.Equal(t, uint16(0x0101), c.PC)

		irq.Request(interrupts.LCDFlag)
		assert.Equal(t, uint8(24), step(t, c))
		assert.Equal(t, ModeNormal, c.Mode())
		assert.Equal(t, uint16(types.LCDVector), c.PC)
		assert.Equal(t, uint16(0x0101), c.readWord(c.SP))
	})
	t.Run("IME disabled", func(t *testing.T) {
		c, _, irq := newInterruptCPU(t, 0x76, 0x3C)
		a := c.A
		step(t, c)
		assert.Equal(t, ModeHalt, c.Mode())

		irq.Request(interrupts.TimerFlag)
		assert.Equal(t, uint8(4), step(t, c))
		assert.Equal(t, ModeNormal, c.Mode())
		assert.Equal(t, uint16(0x0101), c.PC)

		step(t, c)
		assert.Equal(t, a+1, c.A)
		assert.Equal(t, uint16(0x0102), c.PC)
	})
	t.Run("bug", func(t *testing.T) {
		c, _, irq := newInterruptCPU(t, 0x76, 0x3C)
		irq.Request(interrupts.TimerFlag)
		a := c.A

		step(t, c)
		assert.Equal(t, ModeHaltBug, c.Mode())

		// INC A is read twice
		step(t, c)
		assert.Equal(t, uint16(0x0101), c.PC)
		assert.Equal(t, ModeNormal, c.Mode())
		step(t, c)
		assert.Equal(t, uint16(0x0102), c.PC)
		assert.Equal(t, a+2, c.A)
	})
	t.Run("bug after EI", func(t *testing.T) {
		c, ram, irq := newInterruptCPU(t, 0xFB, 0x76) // EI; HALT
		ram.Load(types.TimerVector, []uint8{0x3C, 0x3C})
		irq.Request(interrupts.TimerFlag)
		a := c.A

		step(t, c)
		step(t, c)
		assert.True(t, c.IME)

		assert.Equal(t, uint8(20), step(t, c))
		assert.Equal(t, ModeNormal, c.Mode())
		assert.Equal(t, uint16(types.TimerVector), c.PC)
		assert.Equal(t, uint16(0x0101), c.readWord(c.SP), "returns to HALT")

		// the handler runs normally
		step(t, c)
		assert.Equal(t, uint16(types.TimerVector+1), c.PC)
		step(t, c)
		assert.Equal(t, uint16(types.TimerVector+2), c.PC)
		assert.Equal(t, a+2, c.A)
	})
	t.Run("no controller", func(t *testing.T) {
		c, _ := newTestCPU(t, 0x76)
		c.IME = true
		for i := 0; i < 4; i++ {
			step(t, c)
		}
		assert.Equal(t, ModeHalt, c.Mode())
		assert.Equal(t, uint64(16), c.Cycles())
	})
}

func TestCPU_Stop(t *testing.T) {
	c, _, irq := newInterruptCPU(t, 0x10, 0x00, 0x00)
	assert.Equal(t, uint8(4), step(t, c))
	assert.Equal(t, ModeStop, c.Mode())
	assert.Equal(t, uint16(0x0102), c.PC)

	assert.Equal(t, uint8(4), step(t, c))
	assert.Equal(t, ModeStop, c.Mode())

	irq.Request(interrupts.JoypadFlag)
	step(t, c)
	assert.Equal(t, ModeNormal, c.Mode())
}

func TestCPU_Instances(t *testing.T) {
	a, ramA := newTestCPU(t, 0x3E, 0x42, 0xEA, 0x00, 0xC0) // LD A, 0x42; LD (0xC000), A
	b, ramB := newTestCPU(t, 0x3E, 0x42, 0xEA, 0x00, 0xC0)

	step(t, a)
	step(t, a)

	assert.Equal(t, uint8(0x42), ramA.Read(0xC000))
	assert.Zero(t, ramB.Read(0xC000))
	assert.Equal(t, uint16(0x0100), b.PC)
	assert.Zero(t, b.Cycles())
}

func TestCPU_Debug(t *testing.T) {
	var buf bytes.Buffer
	ram := memory.NewRAM()
	ram.Load(0x0100, []byte{0x00, 0x3E, 0x42, 0xD3})
	c := NewCPU(ram, WithLogger(log.NewWithOutput(&buf, true)), Debug())

	step(t, c)
	step(t, c)
	_, err := c.Step()
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "0100  NOP")
	assert.Contains(t, out, "0101  LD A, $42")
	assert.Contains(t, out, "illegal opcode 0xD3 at 0x0103")
}
