package types

// HardwareAddress represents the address of a memory-mapped
// hardware register. The hardware registers are mapped to
// 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the serial transfer data register. Test programs
	// commonly write their output here one character at a time.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register. Writing 0x81
	// starts a transfer of the byte held in SB.
	SC HardwareAddress = 0xFF02
	// DIV is the divider register, the upper 8 bits of the 16-bit
	// system counter. Writing any value resets the counter.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter, incremented at the rate selected
	// by TAC. When it overflows it is reloaded from TMA and a timer
	// interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the timer modulo, loaded into TIMA on overflow.
	TMA HardwareAddress = 0xFF06
	// TAC is the timer control register.
	//
	//  Bit 2: Timer Enable
	//  Bit 1-0: Input Clock Select
	//	00: 4096 Hz (1024 cycles)
	//	01: 262144 Hz (16 cycles)
	//	10: 65536 Hz (64 cycles)
	//	11: 16384 Hz (256 cycles)
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt flag register, used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// BDIS disables the boot ROM when written with a non-zero value,
	// mapping the program back over 0x0000 - 0x00FF.
	BDIS HardwareAddress = 0xFF50
	// IE is the interrupt enable register, using the same bit
	// layout as IF.
	IE HardwareAddress = 0xFFFF
)

// Interrupt vectors, in priority order.
const (
	VBlankVector uint16 = 0x0040
	LCDVector    uint16 = 0x0048
	TimerVector  uint16 = 0x0050
	SerialVector uint16 = 0x0058
	JoypadVector uint16 = 0x0060
)
