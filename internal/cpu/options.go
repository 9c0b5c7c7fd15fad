package cpu

import (
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug enables instruction tracing through the CPU's logger.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithLogger sets the logger used for faults, mode changes and
// tracing. The default logger discards everything.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithInterrupts connects the CPU to an interrupt controller. Without
// one, interrupts are never taken and HALT never ends.
func WithInterrupts(irq InterruptController) Opt {
	return func(c *CPU) {
		c.irq = irq
	}
}

// AsModel selects the post-boot register values to Reset to.
func AsModel(m types.Model) Opt {
	return func(c *CPU) {
		c.model = m
	}
}

// WithBootROM makes Reset clear every register and start at 0x0000,
// as the hardware does before the boot ROM has run.
func WithBootROM() Opt {
	return func(c *CPU) {
		c.bootROM = true
	}
}
