package emu

import "github.com/sarchlab/teaksim/insts"

const accMask = uint64(0xFF_FFFF_FFFF)

// debugChecks enables internal invariant asserts on the 40-bit
// discipline. Release builds trust the ALU paths and leave this off.
const debugChecks = false

// ALU implements the 40-bit accumulator data path: add/sub with flag
// generation, saturation, the shift bus and exponent detection.
type ALU struct {
	regs *RegisterState
}

// NewALU creates a new ALU connected to the given register state.
func NewALU(regs *RegisterState) *ALU {
	return &ALU{regs: regs}
}

// GetAcc reads the accumulator behind any of its register views.
func (a *ALU) GetAcc(name insts.Reg) uint64 {
	switch name {
	case insts.RegA0, insts.RegA0h, insts.RegA0l, insts.RegA0e:
		return a.regs.A[0]
	case insts.RegA1, insts.RegA1h, insts.RegA1l, insts.RegA1e:
		return a.regs.A[1]
	case insts.RegB0, insts.RegB0h, insts.RegB0l, insts.RegB0e:
		return a.regs.B[0]
	default:
		return a.regs.B[1]
	}
}

// SetAccSimple stores a value without touching flags or saturation.
func (a *ALU) SetAccSimple(name insts.Reg, value uint64) {
	switch name {
	case insts.RegA0, insts.RegA0h, insts.RegA0l, insts.RegA0e:
		a.regs.A[0] = value
	case insts.RegA1, insts.RegA1h, insts.RegA1l, insts.RegA1e:
		a.regs.A[1] = value
	case insts.RegB0, insts.RegB0h, insts.RegB0l, insts.RegB0e:
		a.regs.B[0] = value
	default:
		a.regs.B[1] = value
	}
}

// SetAccFlag recomputes fz/fm/fe/fn from an accumulator bus value.
func (a *ALU) SetAccFlag(value uint64) {
	if debugChecks && value != insts.SignExtend(value, 40) {
		panic(&Fault{Kind: FaultInternal, Msg: "accumulator bus value not 40-bit sign-extended"})
	}
	r := a.regs
	r.Fz = b2u(value == 0)
	r.Fm = b2u(value>>39&1 != 0)
	r.Fe = b2u(value != insts.SignExtend(value, 32))
	bit31 := value >> 31 & 1
	bit30 := value >> 30 & 1
	r.Fn = b2u(r.Fz == 1 || (r.Fe == 0 && bit31^bit30 != 0))
}

// SetAcc runs the full store path: flags, then saturation, then store.
func (a *ALU) SetAcc(name insts.Reg, value uint64) {
	a.SetAccFlag(value)
	a.SetAccSimple(name, a.Saturate(value, true))
}

// SetAccNoSaturation runs the store path with saturation suppressed.
func (a *ALU) SetAccNoSaturation(name insts.Reg, value uint64) {
	a.SetAccFlag(value)
	a.SetAccSimple(name, value)
}

// AddSub adds or subtracts two 40-bit bus values, producing fc0 from bit
// 40 and fv/flv from two's-complement overflow at bit 39.
func (a *ALU) AddSub(x, y uint64, sub bool) uint64 {
	x &= accMask
	y &= accMask
	var result uint64
	if sub {
		result = x - y
	} else {
		result = x + y
	}
	r := a.regs
	r.Fc[0] = uint16(result >> 40 & 1)
	if sub {
		y = ^y
	}
	r.Fv = uint16((^(x ^ y) & (x ^ result)) >> 39 & 1)
	if r.Fv == 1 {
		r.Flv = 1
	}
	return insts.SignExtend(result, 40)
}

// SaturateUnconditionalNoFlag clamps to the signed 32-bit range without
// touching fls.
func (a *ALU) SaturateUnconditionalNoFlag(value uint64) uint64 {
	if value != insts.SignExtend(value, 32) {
		if value>>39 != 0 {
			return 0xFFFF_FFFF_8000_0000
		}
		return 0x0000_0000_7FFF_FFFF
	}
	return value
}

// SaturateUnconditional clamps to the signed 32-bit range and records
// the clamp in the sticky fls flag.
func (a *ALU) SaturateUnconditional(value uint64) uint64 {
	if value != insts.SignExtend(value, 32) {
		a.regs.Fls = 1
		if value>>39 != 0 {
			return 0xFFFF_FFFF_8000_0000
		}
		return 0x0000_0000_7FFF_FFFF
	}
	return value
}

// Saturate clamps unless the mode bit for the given path disables it.
// storing selects the store path (sar1) over the read path (sar0).
func (a *ALU) Saturate(value uint64, storing bool) uint64 {
	if a.regs.Sar[b2i(storing)] == 0 {
		return a.SaturateUnconditional(value)
	}
	return value
}

// SaturateNoFlag is Saturate without the fls side effect.
func (a *ALU) SaturateNoFlag(value uint64, storing bool) uint64 {
	if a.regs.Sar[b2i(storing)] == 0 {
		return a.SaturateUnconditionalNoFlag(value)
	}
	return value
}

// ShiftBus40 shifts a 40-bit bus value by sv (signed 16-bit count) and
// stores the result to dest with flag generation and the secondary
// 32-bit saturation of the arithmetic shift mode.
func (a *ALU) ShiftBus40(value uint64, sv uint16, dest insts.Reg) {
	r := a.regs
	value &= accMask
	originalSign := uint16(value >> 39)
	if sv>>15 == 0 {
		// left shift
		if sv >= 40 {
			if r.S == 0 {
				r.Fv = b2u(value != 0)
				if r.Fv == 1 {
					r.Flv = 1
				}
			}
			value = 0
			r.Fc[0] = 0
		} else {
			if r.S == 0 {
				r.Fv = b2u(insts.SignExtend(value, 40) != insts.SignExtend(value, 40-uint(sv)))
				if r.Fv == 1 {
					r.Flv = 1
				}
			}
			value <<= sv
			r.Fc[0] = uint16(value >> 40 & 1)
		}
	} else {
		// right shift
		nsv := -sv
		if nsv >= 40 {
			if r.S == 0 {
				r.Fc[0] = uint16(value >> 39 & 1)
				if r.Fc[0] == 1 {
					value = accMask
				} else {
					value = 0
				}
			} else {
				value = 0
				r.Fc[0] = 0
			}
		} else {
			r.Fc[0] = b2u(value>>(nsv-1)&1 != 0)
			value >>= nsv
			if r.S == 0 {
				value = insts.SignExtend(value, 40-uint(nsv))
			}
		}

		if r.S == 0 {
			r.Fv = 0
		}
	}

	value = insts.SignExtend(value, 40)
	a.SetAccFlag(value)
	if r.S == 0 && r.Sar[1] == 0 {
		if r.Fv == 1 || insts.SignExtend(value, 32) != value {
			r.Fls = 1
			if originalSign == 1 {
				value = 0xFFFF_FFFF_8000_0000
			} else {
				value = 0x7FFF_FFFF
			}
		}
	}
	a.SetAccSimple(dest, value)
}

// Exp counts redundant sign bits of a 40-bit value, biased for a 32-bit
// mantissa.
func (a *ALU) Exp(value uint64) uint16 {
	sign := value >> 39 & 1
	bit, count := 38, uint16(0)
	for {
		if value>>bit&1 != sign {
			break
		}
		count++
		if bit == 0 {
			break
		}
		bit--
	}
	return count - 8
}

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
