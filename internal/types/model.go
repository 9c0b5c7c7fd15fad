package types

import "strings"

type Model int // The Model used to select power-on register values.

const (
	Unset Model = iota // Unset - Model hasn't been set - behaves as DMG
	DMG                // DMG - Standard Game Boy
	MGB                // MGB - Pocket Game Boy
	CGB                // CGB - Game Boy Colour
)

var ModelNames = map[Model]string{
	Unset: "Unset",
	DMG:   "DMG",
	MGB:   "MGB",
	CGB:   "CGB",
}

// StringToModel converts a string to a Model.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return Unset
}

func (m Model) String() string {
	return ModelNames[m]
}

// PowerOn holds the register values left behind by the boot ROM
// of a model, which is where execution starts when no boot ROM is
// run.
type PowerOn struct {
	AF, BC, DE, HL uint16
	SP, PC         uint16
}

// ModelPowerOn contains the post-boot register values for each Model.
var ModelPowerOn = map[Model]PowerOn{
	DMG: {AF: 0x01B0, BC: 0x0013, DE: 0x00D8, HL: 0x014D, SP: 0xFFFE, PC: 0x0100},
	MGB: {AF: 0xFFB0, BC: 0x0013, DE: 0x00D8, HL: 0x014D, SP: 0xFFFE, PC: 0x0100},
	CGB: {AF: 0x1180, BC: 0x0000, DE: 0xFF56, HL: 0x000D, SP: 0xFFFE, PC: 0x0100},
}

// PowerOn returns the post-boot register values of the Model,
// falling back to DMG when the Model is Unset.
func (m Model) PowerOn() PowerOn {
	if p, ok := ModelPowerOn[m]; ok {
		return p
	}
	return ModelPowerOn[DMG]
}
