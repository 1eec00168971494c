// Package timing wraps the functional core in an event-driven component
// so a DSP can be simulated against virtual time alongside other Akita
// components (hosts, interrupt sources, peripheral models).
package timing

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/teaksim/emu"
)

// Stats holds run statistics for the core.
type Stats struct {
	// Instructions is the number of instructions retired.
	Instructions uint64
	// Halted reports whether the core stopped before its budget, either
	// by fault or by an explicit Halt.
	Halted bool
	// Err is the fault that halted the core, if any.
	Err error
}

// Core drives one Teak core one instruction per tick.
type Core struct {
	*sim.TickingComponent

	emu *emu.Emulator

	budget   uint64
	executed uint64
	halted   bool
	err      error
}

// NewCore creates a ticking DSP core on the given engine.
func NewCore(name string, engine sim.Engine, freq sim.Freq, e *emu.Emulator) *Core {
	c := &Core{emu: e}
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)
	return c
}

// Start arms the core with an instruction budget and schedules the
// first tick. The engine's Run drains the simulation. Budgets from
// successive starts accumulate on the retired-instruction counter.
func (c *Core) Start(cycles uint64) {
	c.budget = c.executed + cycles
	c.halted = false
	c.err = nil
	c.TickLater()
}

// Halt stops the core at the next tick boundary.
func (c *Core) Halt() {
	c.halted = true
}

// Emulator exposes the wrapped functional core.
func (c *Core) Emulator() *emu.Emulator {
	return c.emu
}

// Tick retires one instruction. Returning false parks the component
// until the next Start.
func (c *Core) Tick() bool {
	if c.halted || c.executed >= c.budget {
		return false
	}
	if err := c.emu.Run(1); err != nil {
		c.err = err
		c.halted = true
		return false
	}
	c.executed++
	return true
}

// Stats returns run statistics for the core.
func (c *Core) Stats() Stats {
	return Stats{
		Instructions: c.executed,
		Halted:       c.halted,
		Err:          c.err,
	}
}
