package emu

import "github.com/sarchlab/teaksim/insts"

// Multiplier implements the x*y multiplier and the product bus.
type Multiplier struct {
	regs *RegisterState
}

// NewMultiplier creates a new Multiplier connected to the given register
// state.
func NewMultiplier(regs *RegisterState) *Multiplier {
	return &Multiplier{regs: regs}
}

// Do multiplies x[unit] by y[unit] into p[unit], applying the ym shaping
// of the y operand and the sign modes of both operands.
func (m *Multiplier) Do(unit int, xSign, ySign bool) {
	r := m.regs
	x := uint32(r.X[unit])
	y := uint32(r.Y[unit])
	if r.Ym == 1 || (r.Ym == 3 && unit == 0) {
		y >>= 8 // no sign extension
	} else if r.Ym == 2 || (r.Ym == 3 && unit == 1) {
		y &= 0xFF
	}
	if xSign {
		x = uint32(insts.SignExtend(uint64(x), 16))
	}
	if ySign {
		y = uint32(insts.SignExtend(uint64(y), 16))
	}
	r.P[unit] = x * y
	if xSign || ySign {
		r.Psign[unit] = uint16(r.P[unit] >> 31)
	} else {
		r.Psign[unit] = 0
	}
}

func productUnit(reg insts.Reg) int {
	if reg == insts.RegP1 {
		return 1
	}
	return 0
}

// ToBus32NoShift returns the raw 32-bit product storage.
func (m *Multiplier) ToBus32NoShift(reg insts.Reg) uint32 {
	return m.regs.P[productUnit(reg)]
}

// ToBus40 returns the 40-bit product bus view: the 33-bit signed product
// shifted per the ps code of the unit.
func (m *Multiplier) ToBus40(reg insts.Reg) uint64 {
	unit := productUnit(reg)
	r := m.regs
	value := uint64(r.P[unit]) | uint64(r.Psign[unit]&1)<<32
	switch r.Ps[unit] {
	case 0:
		value = insts.SignExtend(value, 33)
	case 1:
		value >>= 1
		value = insts.SignExtend(value, 32)
	case 2:
		value <<= 1
		value = insts.SignExtend(value, 34)
	case 3:
		value <<= 2
		value = insts.SignExtend(value, 35)
	}
	return value
}

// FromBus32 stores a 32-bit value into a product register, deriving the
// sign companion from bit 31.
func (m *Multiplier) FromBus32(reg insts.Reg, value uint32) {
	unit := productUnit(reg)
	m.regs.P[unit] = value
	m.regs.Psign[unit] = uint16(value >> 31)
}
