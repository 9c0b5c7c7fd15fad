package cpu

import (
	"fmt"

	"github.com/thelolagemann/lr35902/internal/memory"
)

// Disassemble decodes the instruction at addr without executing it,
// returning its mnemonic and its length in bytes, including the 0xCB
// prefix. Illegal opcodes decode as a single byte.
func Disassemble(bus memory.AddressSpace, addr uint16) (string, int) {
	opcode := bus.Read(addr)
	if opcode == prefixCB {
		return InstructionSetCB[bus.Read(addr+1)].name, 2
	}

	instruction := InstructionSet[opcode]
	var operands [2]uint8
	for i := 0; i < instruction.operand.Length(); i++ {
		operands[i] = bus.Read(addr + 1 + uint16(i))
	}
	return instruction.format(addr, operands[:instruction.operand.Length()]), instruction.Length()
}

// DisassembleRange decodes every instruction from start up to, but not
// including, end. Each line holds the address and the raw bytes.
func DisassembleRange(bus memory.AddressSpace, start, end uint16) []string {
	var lines []string
	for addr := uint32(start); addr < uint32(end); {
		name, length := Disassemble(bus, uint16(addr))

		raw := ""
		for i := 0; i < length; i++ {
			raw += fmt.Sprintf("%02X ", bus.Read(uint16(addr)+uint16(i)))
		}
		lines = append(lines, fmt.Sprintf("%04X  %-9s %s", addr, raw, name))
		addr += uint32(length)
	}
	return lines
}
