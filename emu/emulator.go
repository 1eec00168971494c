package emu

import (
	"sync/atomic"

	"github.com/sarchlab/teaksim/insts"
)

// Emulator executes Teak DSP instructions functionally.
//
// The emulator owns no memory: it drives the RegisterState and
// MemoryInterface it was constructed with, which lets a host share the
// state with loaders, debuggers and peripheral models.
type Emulator struct {
	regs    *RegisterState
	mem     MemoryInterface
	decoder *insts.Decoder

	// Execution units
	alu  *ALU
	mul  *Multiplier
	addr *AddressUnit

	// Interrupt lines, written from any goroutine, drained at the
	// post-dispatch poll.
	pendingInt   [3]atomic.Uint32
	pendingVInt  atomic.Uint32
	pendingVAddr atomic.Uint32

	instructionCount uint64

	// Context of the instruction in flight, for fault reports.
	curPC     uint32
	curOpcode uint16
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithDecoder substitutes a shared decoder instance.
func WithDecoder(d *insts.Decoder) EmulatorOption {
	return func(e *Emulator) {
		e.decoder = d
	}
}

// NewEmulator creates a new Teak core over the given register state and
// memory interface.
func NewEmulator(regs *RegisterState, mem MemoryInterface, opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regs:    regs,
		mem:     mem,
		decoder: insts.NewDecoder(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.alu = NewALU(regs)
	e.mul = NewMultiplier(regs)
	e.addr = NewAddressUnit(regs)
	return e
}

// Regs returns the core's register state.
func (e *Emulator) Regs() *RegisterState {
	return e.regs
}

// Memory returns the core's memory interface.
func (e *Emulator) Memory() MemoryInterface {
	return e.mem
}

// InstructionCount returns the number of retired instructions.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// SignalInterrupt raises one of the three masked interrupt lines. Safe
// to call from any goroutine; the core observes the line after the next
// retired instruction.
func (e *Emulator) SignalInterrupt(i int) {
	e.pendingInt[i].Store(1)
}

// SignalVectoredInterrupt raises the vectored interrupt line with its
// target address. Safe to call from any goroutine.
func (e *Emulator) SignalVectoredInterrupt(addr uint32) {
	e.pendingVAddr.Store(addr & 0x3FFFF)
	e.pendingVInt.Store(1)
}

// Run executes exactly cycles instructions. Repeat re-executions count
// as one cycle each. A fault stops the run and is returned; it records
// the pc and opcode of the faulting instruction. The register state is
// not rolled back: pc is already past the faulting instruction.
func (e *Emulator) Run(cycles uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()
	for i := uint64(0); i < cycles; i++ {
		e.step()
	}
	return nil
}

// step runs one fetch/decode/repeat/dispatch/interrupt cycle.
func (e *Emulator) step() {
	regs := e.regs

	e.curPC = regs.Pc
	opcode := e.mem.ProgramRead(regs.Pc)
	regs.Pc++
	e.curOpcode = opcode
	inst := e.decoder.Decode(opcode)
	var expand uint16
	if inst.NeedExpansion {
		expand = e.mem.ProgramRead(regs.Pc)
		regs.Pc++
	}

	if regs.Rep {
		if regs.Repc == 0 {
			regs.Rep = false
		} else {
			regs.Repc--
			regs.Pc--
		}
	}

	if regs.Lp == 1 && regs.BkrepStack[regs.Bcn-1].End+1 == regs.Pc {
		if regs.BkrepStack[regs.Bcn-1].Lc == 0 {
			regs.Bcn--
			regs.Lp = b2u(regs.Bcn != 0)
		} else {
			regs.BkrepStack[regs.Bcn-1].Lc--
			regs.Pc = regs.BkrepStack[regs.Bcn-1].Start
		}
	}

	e.execute(inst, opcode, expand)
	e.instructionCount++

	e.drainInterruptLines()

	// A single-instruction repeat runs with interrupts held off.
	if regs.Ie == 1 && !regs.Rep {
		for i := 0; i < 3; i++ {
			if regs.Im[i] == 1 && regs.Ip[i] == 1 {
				regs.Ip[i] = 0
				regs.Ie = 0
				e.pushPC()
				regs.Pc = 0x0006 + uint32(i)*8
				if regs.Ic[i] == 1 {
					e.contextStore()
				}
				return
			}
		}
		if regs.Vim == 1 && regs.Vip == 1 {
			regs.Vip = 0
			regs.Ie = 0
			e.pushPC()
			regs.Pc = regs.Viaddr
			if regs.Vic == 1 {
				e.contextStore()
			}
		}
	}
}

// drainInterruptLines moves externally signalled lines into the
// architectural pending bits.
func (e *Emulator) drainInterruptLines() {
	for i := range e.pendingInt {
		if e.pendingInt[i].Swap(0) != 0 {
			e.regs.Ip[i] = 1
		}
	}
	if e.pendingVInt.Swap(0) != 0 {
		e.regs.Viaddr = e.pendingVAddr.Load()
		e.regs.Vip = 1
	}
}

// pushPC spills pc to the data-memory stack in the configured word
// order.
func (e *Emulator) pushPC() {
	regs := e.regs
	l := regs.GetPcL()
	h := regs.GetPcH()
	if regs.PcEndian == 1 {
		regs.Sp--
		e.mem.DataWrite(regs.Sp, h)
		regs.Sp--
		e.mem.DataWrite(regs.Sp, l)
	} else {
		regs.Sp--
		e.mem.DataWrite(regs.Sp, l)
		regs.Sp--
		e.mem.DataWrite(regs.Sp, h)
	}
}

// popPC reloads pc from the data-memory stack.
func (e *Emulator) popPC() {
	regs := e.regs
	var l, h uint16
	if regs.PcEndian == 1 {
		l = e.mem.DataRead(regs.Sp)
		regs.Sp++
		h = e.mem.DataRead(regs.Sp)
		regs.Sp++
	} else {
		h = e.mem.DataRead(regs.Sp)
		regs.Sp++
		l = e.mem.DataRead(regs.Sp)
		regs.Sp++
	}
	regs.SetPC(l, h)
}

// setPCChecked assigns pc, faulting on addresses beyond the program
// space.
func (e *Emulator) setPCChecked(newPC uint32) {
	if newPC >= 1<<18 {
		e.fault(FaultPCOutOfRange, "computed pc beyond program space")
	}
	e.regs.Pc = newPC
}

// fault aborts the current Run with a typed fault.
func (e *Emulator) fault(kind FaultKind, msg string) {
	panic(&Fault{Kind: kind, PC: e.curPC, Opcode: e.curOpcode, Msg: msg})
}
