package interrupts

import (
	"github.com/thelolagemann/lr35902/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4
)

// HardwareMapper is implemented by address spaces that can map
// hardware registers, such as memory.Bus.
type HardwareMapper interface {
	RegisterHardware(address uint16, write func(v uint8), read func() uint8)
}

// Service is the interrupt controller, used to request
// interrupts and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. The CPU owns the master enable (IME) and asks
// the Service whether anything is pending once per step.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service. If a HardwareMapper is given,
// the IF and IE registers are mapped onto it.
func NewService(mapper HardwareMapper) *Service {
	s := &Service{}
	if mapper == nil {
		return s
	}

	mapper.RegisterHardware(
		types.IF,
		func(v uint8) {
			s.Flag = v & 0x1F // only the first 5 bits are used
		}, func() uint8 {
			return s.Flag | 0xE0 // the upper 3 bits are always set
		},
	)
	mapper.RegisterHardware(
		types.IE,
		func(v uint8) {
			s.Enable = v
		}, func() uint8 {
			return s.Enable
		},
	)

	return s
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Vector returns the vector of the highest priority interrupt
// that is both requested and enabled, or 0 if there is none.
// This acknowledges the interrupt by clearing its bit in the
// Flag register.
func (s *Service) Vector() uint16 {
	if !s.HasInterrupts() {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		// get the flag for the current interrupt
		flag := uint8(1 << i)

		// check if the interrupt is requested and enabled
		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			// clear the interrupt flag and return the vector
			s.Flag ^= flag
			return types.VBlankVector + uint16(i)*8
		}
	}

	return 0
}

// Reset clears both the Flag and Enable registers.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
}
