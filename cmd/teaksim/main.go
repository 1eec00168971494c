// Package main provides the entry point for teaksim, a Teak DSP core
// simulator. It runs firmware images directly or under an interactive
// monitor.
package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/spf13/cobra"

	"github.com/sarchlab/teaksim/emu"
	"github.com/sarchlab/teaksim/loader"
	"github.com/sarchlab/teaksim/timing"
)

func main() {
	root := &cobra.Command{
		Use:   "teaksim",
		Short: "Teak DSP core simulator",
	}
	root.CompletionOptions.DisableDefaultCmd = true

	var (
		cycles  uint64
		useTick bool
		verbose bool
	)
	runCmd := &cobra.Command{
		Use:   "run <image.tkfw>",
		Short: "Run a firmware image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], cycles, useTick, verbose)
		},
	}
	runCmd.Flags().Uint64Var(&cycles, "cycles", 1_000_000, "number of instructions to execute")
	runCmd.Flags().BoolVar(&useTick, "timing", false, "drive the core through the event engine")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	root.AddCommand(runCmd)

	debugCmd := &cobra.Command{
		Use:   "debug <image.tkfw>",
		Short: "Run a firmware image under the interactive monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return debug(args[0])
		},
	}
	root.AddCommand(debugCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "teaksim: %v\n", err)
		os.Exit(1)
	}
}

func newCore(path string, verbose bool) (*emu.Emulator, *emu.RegisterState, error) {
	prog, err := loader.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading image: %w", err)
	}
	memory := emu.NewMemory()
	prog.LoadInto(memory)
	if verbose {
		fmt.Printf("Loaded: %s\n", path)
		fmt.Printf("Entry point: 0x%05X\n", prog.EntryPoint)
		fmt.Printf("Segments: %d\n", len(prog.Segments))
	}
	regs := &emu.RegisterState{Pc: prog.EntryPoint}
	return emu.NewEmulator(regs, memory), regs, nil
}

func run(path string, cycles uint64, useTick, verbose bool) error {
	core, regs, err := newCore(path, verbose)
	if err != nil {
		return err
	}

	if useTick {
		engine := sim.NewSerialEngine()
		dsp := timing.NewCore("DSP", engine, 100*sim.MHz, core)
		dsp.Start(cycles)
		if err := engine.Run(); err != nil {
			return err
		}
		stats := dsp.Stats()
		fmt.Printf("Instructions: %d\n", stats.Instructions)
		if stats.Err != nil {
			return stats.Err
		}
	} else {
		runErr := core.Run(cycles)
		fmt.Printf("Instructions: %d\n", core.InstructionCount())
		if runErr != nil {
			return runErr
		}
	}
	fmt.Printf("pc=0x%05X sp=0x%04X a0=0x%010X a1=0x%010X\n",
		regs.Pc, regs.Sp, regs.A[0]&0xFF_FFFF_FFFF, regs.A[1]&0xFF_FFFF_FFFF)
	return nil
}
