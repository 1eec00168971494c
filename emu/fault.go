package emu

import "fmt"

// FaultKind classifies the fatal conditions a core run can hit.
type FaultKind uint8

// Fault kinds.
const (
	// FaultDecode is an opcode with no handler, or one tagged
	// unimplemented.
	FaultDecode FaultKind = iota
	// FaultPCOutOfRange is a computed pc beyond the 18-bit program
	// space.
	FaultPCOutOfRange
	// FaultLoopStackOverflow is a block-repeat entry with all four
	// frames in use.
	FaultLoopStackOverflow
	// FaultLoopInvariant is a break outside a loop or an inconsistent
	// loop-state restore.
	FaultLoopInvariant
	// FaultInternal is a broken internal invariant.
	FaultInternal
)

func (k FaultKind) String() string {
	switch k {
	case FaultDecode:
		return "decode"
	case FaultPCOutOfRange:
		return "pc out of range"
	case FaultLoopStackOverflow:
		return "loop stack overflow"
	case FaultLoopInvariant:
		return "loop invariant"
	default:
		return "internal"
	}
}

// Fault is a fatal simulator error. Faults are not recoverable in-core;
// Run returns them to the host, which may log and halt.
type Fault struct {
	Kind   FaultKind
	PC     uint32 // pc of the faulting instruction
	Opcode uint16 // first program word of the faulting instruction
	Msg    string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault at pc=%05X opcode=%04X: %s",
		f.Kind, f.PC, f.Opcode, f.Msg)
}
