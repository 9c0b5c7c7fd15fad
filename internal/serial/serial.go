// Package serial provides the serial port of the host harness. There
// is never a link partner: transfers clocked by the CPU shift out the
// byte in SB, shift in 0xFF, and hand the outgoing byte to a writer.
package serial

import (
	"io"

	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/scheduler"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

const (
	// cyclesPerBit is the time to shift one bit with the
	// internal clock (8192 Hz).
	cyclesPerBit = 512

	transferStart = types.Bit7
	internalClock = types.Bit0
)

// Controller is the serial controller. A transfer is started by
// writing SC with both the start and internal clock bits set, after
// which the byte in SB is sent a bit at a time. Once all 8 bits have
// been sent, the start bit is cleared and a serial interrupt is
// requested.
type Controller struct {
	data    uint8 // types.SB
	control uint8 // types.SC

	out io.Writer
	log log.Logger
	irq *interrupts.Service
	s   *scheduler.Scheduler
}

// NewController returns a new Controller mapping SB and SC onto the
// mapper. Every transferred byte is written to out, which may be nil.
// Errors from out are reported to l, which may also be nil.
func NewController(mapper interrupts.HardwareMapper, irq *interrupts.Service, s *scheduler.Scheduler, out io.Writer, l log.Logger) *Controller {
	if l == nil {
		l = log.NewNullLogger()
	}
	c := &Controller{
		out: out,
		log: l,
		irq: irq,
		s:   s,
	}

	mapper.RegisterHardware(
		types.SB,
		func(v uint8) {
			c.data = v
		}, func() uint8 {
			return c.data
		},
	)
	mapper.RegisterHardware(
		types.SC,
		func(v uint8) {
			c.control = v & (transferStart | internalClock)

			// with the external clock selected the transfer waits for
			// a partner that never arrives
			if c.control == transferStart|internalClock {
				c.s.ScheduleEvent(scheduler.SerialTransfer, 8*cyclesPerBit)
			} else {
				c.s.DescheduleEvent(scheduler.SerialTransfer)
			}
		}, func() uint8 {
			return c.control | 0x7E // bits 1-6 are always set
		},
	)

	s.RegisterEvent(scheduler.SerialTransfer, c.complete)
	return c
}

// complete finishes the transfer in progress.
func (c *Controller) complete() {
	if c.out != nil {
		if _, err := c.out.Write([]byte{c.data}); err != nil {
			c.log.Errorf("serial: writing 0x%02X: %v", c.data, err)
		}
	}

	// nothing is connected, so the incoming bits are all 1
	c.data = 0xFF
	c.control &^= transferStart
	c.irq.Request(interrupts.SerialFlag)
}

// Transferring reports whether a transfer is in progress.
func (c *Controller) Transferring() bool {
	return c.control&transferStart != 0
}
