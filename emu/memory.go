// Package emu provides functional Teak DSP emulation.
package emu

// MemoryInterface is the seam between the core and the outside world.
//
// The core sees two 16-bit-word address spaces: data (16-bit addresses)
// and program (18-bit addresses). Implementations may route accesses to
// RAM, ROM or memory-mapped peripherals; the core does not distinguish
// and never reads speculatively, so reads with side effects (FIFO ports)
// are safe behind this interface.
type MemoryInterface interface {
	DataRead(addr uint16) uint16
	DataWrite(addr uint16, value uint16)
	ProgramRead(addr uint32) uint16
	ProgramWrite(addr uint32, value uint16)
}

// programWords is the size of the program space in 16-bit words.
const programWords = 1 << 18

// Memory is a flat RAM implementation of MemoryInterface, sufficient for
// tests and stand-alone firmware runs without peripherals.
type Memory struct {
	data    [1 << 16]uint16
	program [programWords]uint16
}

// NewMemory creates zero-filled data and program memory.
func NewMemory() *Memory {
	return &Memory{}
}

// DataRead reads one word of data memory.
func (m *Memory) DataRead(addr uint16) uint16 {
	return m.data[addr]
}

// DataWrite writes one word of data memory.
func (m *Memory) DataWrite(addr uint16, value uint16) {
	m.data[addr] = value
}

// ProgramRead reads one word of program memory.
func (m *Memory) ProgramRead(addr uint32) uint16 {
	return m.program[addr%programWords]
}

// ProgramWrite writes one word of program memory.
func (m *Memory) ProgramWrite(addr uint32, value uint16) {
	m.program[addr%programWords] = value
}

// LoadProgram copies words into program memory starting at addr.
func (m *Memory) LoadProgram(addr uint32, words []uint16) {
	for i, w := range words {
		m.ProgramWrite(addr+uint32(i), w)
	}
}

// LoadData copies words into data memory starting at addr.
func (m *Memory) LoadData(addr uint16, words []uint16) {
	for i, w := range words {
		m.DataWrite(addr+uint16(i), w)
	}
}
