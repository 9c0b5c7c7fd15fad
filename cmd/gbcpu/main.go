package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/lr35902/internal/boot"
	"github.com/thelolagemann/lr35902/internal/cartridge"
	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/gameboy"
	"github.com/thelolagemann/lr35902/internal/memory"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/utils"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gbcpu",
		Short: "Run and disassemble LR35902 programs",
	}

	// run command
	var (
		loadAt      uint16
		startAt     uint16
		budget      uint64
		model       string
		bootROM     string
		trace       bool
		vblank      bool
		stopOn      []string
		fingerprint bool
	)

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Run a program image for a number of cycles, printing its serial output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			logger := log.NewWithOutput(os.Stderr, trace)
			opts := []gameboy.Opt{
				gameboy.WithLogger(logger),
				gameboy.LoadAt(loadAt),
				gameboy.SerialOutput(cmd.OutOrStdout()),
				gameboy.StopOnSerial(stopOn...),
			}

			// images loaded at 0x0000 carry a cartridge header
			header, headerErr := cartridge.ParseHeader(program)
			if headerErr == nil && loadAt == 0 {
				logger.Infof("cartridge: %s", header)
				if !header.Valid() {
					logger.Infof("cartridge: header checksum mismatch")
				}
			}

			m := types.StringToModel(model)
			switch {
			case strings.EqualFold(model, "auto"):
				m = types.DMG
				if headerErr == nil && loadAt == 0 {
					m = header.Model()
				}
			case m == types.Unset:
				return fmt.Errorf("unknown model %q", model)
			}
			opts = append(opts, gameboy.AsModel(m))

			if bootROM != "" {
				raw, err := utils.LoadFile(bootROM)
				if err != nil {
					return err
				}
				rom, err := boot.Load(raw)
				if err != nil {
					return err
				}
				logger.Infof("boot: %s", rom.Model())
				opts = append(opts, gameboy.WithBootROM(rom))
			}
			if cmd.Flags().Changed("pc") {
				opts = append(opts, gameboy.StartAt(startAt))
			}
			if trace {
				opts = append(opts, gameboy.Debug())
			}
			if vblank {
				opts = append(opts, gameboy.VBlankInterrupts())
			}

			gb := gameboy.NewGameBoy(program, opts...)
			cycles, runErr := gb.Run(budget)

			snapshot := gb.CPU.Snapshot()
			logger.Infof("ran %d cycles (%.3fs emulated)", cycles, float64(cycles)/gameboy.ClockSpeed)
			logger.Infof("%s", snapshot)
			if fingerprint {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%016x\n", snapshot.Hash())
			}
			return runErr
		},
	}
	runCmd.Flags().Uint16Var(&loadAt, "load", 0x0000, "Address to load the image at")
	runCmd.Flags().Uint16Var(&startAt, "pc", 0x0100, "Address to start executing from")
	runCmd.Flags().Uint64Var(&budget, "cycles", 60*gameboy.CyclesPerFrame, "Number of cycles to run for")
	runCmd.Flags().StringVar(&model, "model", "auto", "Register state to start with (auto, dmg, mgb or cgb)")
	runCmd.Flags().StringVar(&bootROM, "boot", "", "Boot ROM to run before the image")
	runCmd.Flags().BoolVarP(&trace, "trace", "t", false, "Log every executed instruction")
	runCmd.Flags().BoolVar(&vblank, "vblank", false, "Request a VBlank interrupt every frame")
	runCmd.Flags().StringSliceVar(&stopOn, "stop-on", []string{"Passed", "Failed"}, "Stop once the serial output contains any of these")
	runCmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "Print a hash of the final CPU state")

	// disasm command
	var (
		disasmLoad  uint16
		disasmStart uint16
		disasmEnd   uint16
		disasmCount int
	)

	disasmCmd := &cobra.Command{
		Use:   "disasm [image]",
		Short: "Disassemble instructions from a program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := utils.LoadFile(args[0])
			if err != nil {
				return err
			}

			ram := memory.NewRAM()
			ram.Load(disasmLoad, program)

			if cmd.Flags().Changed("end") {
				for _, line := range cpu.DisassembleRange(ram, disasmStart, disasmEnd) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			}

			addr := disasmStart
			for i := 0; i < disasmCount; i++ {
				text, length := cpu.Disassemble(ram, addr)
				fmt.Fprintf(cmd.OutOrStdout(), "%04X  %s\n", addr, text)
				addr += uint16(length)
			}
			return nil
		},
	}
	disasmCmd.Flags().Uint16Var(&disasmLoad, "load", 0x0000, "Address to load the image at")
	disasmCmd.Flags().Uint16Var(&disasmStart, "start", 0x0100, "Address to start disassembling from")
	disasmCmd.Flags().Uint16Var(&disasmEnd, "end", 0, "Disassemble every instruction up to this address, with raw bytes")
	disasmCmd.Flags().IntVarP(&disasmCount, "count", "n", 32, "Number of instructions to disassemble")

	rootCmd.AddCommand(runCmd, disasmCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
