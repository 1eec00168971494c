package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sarchlab/teaksim/emu"
	"github.com/sarchlab/teaksim/insts"
)

const monitorHelp = `commands:
  s [n]         step n instructions (default 1)
  g <n>         go: run n instructions
  r             print registers
  d <addr> [n]  dump data memory
  p <addr> [n]  dump program memory
  int <n>       raise interrupt line 0..2
  vint <addr>   raise the vectored interrupt
  q             quit`

// debug runs the interactive monitor on a loaded image.
func debug(path string) error {
	core, regs, err := newCore(path, true)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "teaksim> ",
		HistoryFile: "/tmp/teaksim_history.txt",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	fmt.Println(monitorHelp)
	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "q", "quit", "exit":
			return nil
		case "h", "help":
			fmt.Println(monitorHelp)
		case "s", "step":
			n := uint64(1)
			if len(fields) > 1 {
				n = parseNum(fields[1], 1)
			}
			stepAndReport(core, regs, n)
		case "g", "go":
			if len(fields) < 2 {
				fmt.Println("usage: g <n>")
				continue
			}
			stepAndReport(core, regs, parseNum(fields[1], 0))
		case "r", "regs":
			printRegs(regs)
		case "d":
			dumpMemory(core, regs, fields[1:], false)
		case "p":
			dumpMemory(core, regs, fields[1:], true)
		case "int":
			if len(fields) < 2 {
				fmt.Println("usage: int <0..2>")
				continue
			}
			i := int(parseNum(fields[1], 0))
			if i < 0 || i > 2 {
				fmt.Println("interrupt line must be 0..2")
				continue
			}
			core.SignalInterrupt(i)
			fmt.Printf("line %d raised\n", i)
		case "vint":
			if len(fields) < 2 {
				fmt.Println("usage: vint <addr>")
				continue
			}
			core.SignalVectoredInterrupt(uint32(parseNum(fields[1], 0)))
			fmt.Println("vectored line raised")
		default:
			fmt.Printf("unknown command %q (h for help)\n", fields[0])
		}
	}
}

var monitorDecoder = insts.NewDecoder()

func stepAndReport(core *emu.Emulator, regs *emu.RegisterState, n uint64) {
	if err := core.Run(n); err != nil {
		fmt.Printf("fault: %v\n", err)
	}
	next := monitorDecoder.Decode(core.Memory().ProgramRead(regs.Pc))
	fmt.Printf("pc=0x%05X next=%v\n", regs.Pc, next.Op)
}

func printRegs(regs *emu.RegisterState) {
	fmt.Printf("pc=0x%05X sp=0x%04X repc=0x%04X lc=0x%04X mixp=0x%04X sv=0x%04X\n",
		regs.Pc, regs.Sp, regs.Repc, regs.Lc(), regs.Mixp, regs.Sv)
	fmt.Printf("a0=0x%010X a1=0x%010X b0=0x%010X b1=0x%010X\n",
		regs.A[0]&0xFF_FFFF_FFFF, regs.A[1]&0xFF_FFFF_FFFF,
		regs.B[0]&0xFF_FFFF_FFFF, regs.B[1]&0xFF_FFFF_FFFF)
	fmt.Printf("p0=0x%08X p1=0x%08X x=%04X,%04X y=%04X,%04X\n",
		regs.P[0], regs.P[1], regs.X[0], regs.X[1], regs.Y[0], regs.Y[1])
	for i := 0; i < 8; i++ {
		fmt.Printf("r%d=0x%04X ", i, regs.R[i])
	}
	fmt.Println()
	fmt.Printf("fz=%d fm=%d fn=%d fv=%d fe=%d fc=%d,%d fls=%d flv=%d fr=%d ie=%d\n",
		regs.Fz, regs.Fm, regs.Fn, regs.Fv, regs.Fe,
		regs.Fc[0], regs.Fc[1], regs.Fls, regs.Flv, regs.Fr, regs.Ie)
}

func dumpMemory(core *emu.Emulator, regs *emu.RegisterState, args []string, program bool) {
	if len(args) < 1 {
		fmt.Println("usage: d|p <addr> [words]")
		return
	}
	addr := parseNum(args[0], 0)
	count := uint64(16)
	if len(args) > 1 {
		count = parseNum(args[1], 16)
	}
	mem := core.Memory()
	for i := uint64(0); i < count; i++ {
		if i%8 == 0 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%05X:", addr+i)
		}
		if program {
			fmt.Printf(" %04X", mem.ProgramRead(uint32(addr+i)))
		} else {
			fmt.Printf(" %04X", mem.DataRead(uint16(addr+i)))
		}
	}
	fmt.Println()
}

func parseNum(s string, def uint64) uint64 {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
	if err != nil {
		v, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return def
		}
	}
	return v
}
