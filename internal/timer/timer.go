// Package timer provides the timer of the host harness. It is driven
// by the scheduler rather than ticked every cycle: DIV is derived from
// the scheduler's cycle count, and every increment of TIMA is a
// scheduled event.
package timer

import (
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/scheduler"
	"github.com/thelolagemann/lr35902/internal/types"
)

// periods are the cycles between TIMA increments for each clock
// select value of TAC.
var periods = [4]uint64{1024, 16, 64, 256}

// Controller is a timer controller. It requests a timer interrupt
// each time TIMA overflows, at a rate configured by types.TAC.
type Controller struct {
	tima uint8
	tma  uint8
	tac  uint8

	// divReset is the cycle the system counter was last reset at
	divReset uint64

	irq *interrupts.Service
	s   *scheduler.Scheduler
}

// NewController returns a new timer controller, mapping DIV, TIMA,
// TMA and TAC onto the mapper.
func NewController(mapper interrupts.HardwareMapper, irq *interrupts.Service, s *scheduler.Scheduler) *Controller {
	c := &Controller{
		irq: irq,
		s:   s,
	}

	mapper.RegisterHardware(
		types.DIV,
		func(uint8) {
			// any write resets the system counter
			c.divReset = c.s.Cycle()
			c.reschedule()
		}, func() uint8 {
			return uint8(c.counter() >> 8)
		},
	)
	mapper.RegisterHardware(
		types.TIMA,
		func(v uint8) {
			c.tima = v
		}, func() uint8 {
			return c.tima
		},
	)
	mapper.RegisterHardware(
		types.TMA,
		func(v uint8) {
			c.tma = v
		}, func() uint8 {
			return c.tma
		},
	)
	mapper.RegisterHardware(
		types.TAC,
		func(v uint8) {
			c.tac = v & 0x07
			c.reschedule()
		}, func() uint8 {
			return c.tac | 0xF8 // bits 3-7 are always set
		},
	)

	s.RegisterEvent(scheduler.TimerIncrement, c.increment)
	return c
}

// Enabled reports whether TIMA is counting.
func (c *Controller) Enabled() bool {
	return c.tac&types.Bit2 != 0
}

// counter returns the 16-bit system counter.
func (c *Controller) counter() uint16 {
	return uint16(c.s.Cycle() - c.divReset)
}

// reschedule schedules the next increment of TIMA, aligned to the
// system counter, or cancels it when the timer is disabled.
func (c *Controller) reschedule() {
	if !c.Enabled() {
		c.s.DescheduleEvent(scheduler.TimerIncrement)
		return
	}

	period := periods[c.tac&0x03]
	c.s.ScheduleEvent(scheduler.TimerIncrement, period-uint64(c.counter())%period)
}

// increment increments TIMA, reloading it from TMA and requesting a
// timer interrupt on overflow.
func (c *Controller) increment() {
	c.tima++
	if c.tima == 0 {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
	}

	c.s.ScheduleEvent(scheduler.TimerIncrement, periods[c.tac&0x03])
}
