package emu

import "github.com/sarchlab/teaksim/insts"

// AddressUnit computes effective addresses for indirect accesses through
// r0..r7 with post-modification: linear, modulo/circular and
// bit-reversed stepping, plus the ArRn/ArpRn indirection tables.
type AddressUnit struct {
	regs *RegisterState
}

// NewAddressUnit creates a new AddressUnit connected to the given
// register state.
func NewAddressUnit(regs *RegisterState) *AddressUnit {
	return &AddressUnit{regs: regs}
}

// RnAddress applies the bit-reverse view of a pointer value when the
// unit runs in bit-reversed mode (and modulo mode is off).
func (u *AddressUnit) RnAddress(unit int, value uint16) uint16 {
	if u.regs.Brv[unit] == 1 && u.regs.M[unit] == 0 {
		return insts.BitReverse(value)
	}
	return value
}

// RnAndModify returns the current r[unit] and replaces it with the
// stepped address. Zero-on-access pointers reset instead of stepping for
// every step type except the double-step modes.
func (u *AddressUnit) RnAndModify(unit int, step insts.Step, dmod bool) uint16 {
	r := u.regs
	ret := r.R[unit]
	if (unit == 3 && r.R3z == 1) || (unit == 7 && r.R7z == 1) {
		switch step {
		case insts.StepIncrease2Mode1, insts.StepDecrease2Mode1,
			insts.StepIncrease2Mode2, insts.StepDecrease2Mode2:
		default:
			r.R[unit] = 0
			return ret
		}
	}
	r.R[unit] = u.StepAddress(unit, r.R[unit], step, dmod)
	return ret
}

// RnAddressAndModify is RnAndModify with the bit-reverse view applied to
// the returned address.
func (u *AddressUnit) RnAddressAndModify(unit int, step insts.Step, dmod bool) uint16 {
	return u.RnAddress(unit, u.RnAndModify(unit, step, dmod))
}

// StepAddress computes the post-modified pointer value. The modulo fold
// has two variants: the legacy (and double-step mode 2) negative-aware
// fold, and the plain fold that the double-step mode 1 applies twice
// with a halved step.
func (u *AddressUnit) StepAddress(unit int, address uint16, step insts.Step, dmod bool) uint16 {
	r := u.regs
	var s uint16
	legacy := r.LegacyMod == 1
	step2Mode1 := false
	step2Mode2 := false
	switch step {
	case insts.StepZero:
		s = 0
	case insts.StepIncrease:
		s = 1
	case insts.StepDecrease:
		s = 0xFFFF
	case insts.StepIncrease2Mode1:
		s = 2
		step2Mode1 = !legacy
	case insts.StepDecrease2Mode1:
		s = 0xFFFE
		step2Mode1 = !legacy
	case insts.StepIncrease2Mode2:
		s = 2
		step2Mode2 = !legacy
	case insts.StepDecrease2Mode2:
		s = 0xFFFE
		step2Mode2 = !legacy
	default: // insts.StepPlusStep
		if r.Brv[unit] == 1 && r.M[unit] == 0 {
			s = u.wideStep(unit)
		} else {
			s = uint16(insts.SignExtend(uint64(u.narrowStep(unit)), 7))
		}
		if r.Bankstep == 1 && !legacy {
			s = u.wideStep(unit)
			if r.M[unit] == 1 {
				s = uint16(insts.SignExtend(uint64(s), 9))
			}
		}
	}

	if s == 0 {
		return address
	}

	if !dmod && r.Brv[unit] == 0 && r.M[unit] == 1 {
		mod := u.modSize(unit)

		if mod == 0 {
			return address
		}
		if mod == 1 && step2Mode2 {
			return address
		}

		iteration := 1
		if step2Mode1 {
			iteration = 2
			s = uint16(insts.SignExtend(uint64(s>>1), 15))
		}

		for i := 0; i < iteration; i++ {
			if legacy || step2Mode2 {
				negative := false
				m := mod
				if s>>15 != 0 {
					negative = true
					m |= ^s
				} else {
					m |= s
				}

				var mask uint16
				for j := 0; j < 9; j++ {
					mask |= m >> j
				}

				var next uint16
				if !negative {
					if address&mask == mod && (!step2Mode2 || mod != mask) {
						next = 0
					} else {
						next = (address + s) & mask
					}
				} else {
					if address&mask == 0 && (!step2Mode2 || mod != mask) {
						next = mod
					} else {
						next = (address + s) & mask
					}
				}
				address &^= mask
				address |= next
			} else {
				var mask uint16
				for j := 0; j < 9; j++ {
					mask |= mod >> j
				}

				var next uint16
				if s < 0x8000 {
					next = (address + s) & mask
					if next == (mod+1)&mask {
						next = 0
					}
				} else {
					next = address & mask
					if next == 0 {
						next = mod + 1
					}
					next += s
					next &= mask
				}
				address &^= mask
				address |= next
			}
		}
		return address
	}
	return address + s
}

// OffsetAddress applies the +0/+1/-1/-1-dmod secondary offset of an
// ArStep descriptor, wrapping inside the modulo region when modulo mode
// applies.
func (u *AddressUnit) OffsetAddress(unit int, address uint16, offset insts.Offset, dmod bool) uint16 {
	if offset == insts.OffsetZero {
		return address
	}
	if offset == insts.OffsetMinusOneDmod {
		return address - 1
	}
	r := u.regs
	emod := r.M[unit] == 1 && r.Brv[unit] == 0 && !dmod
	mod := u.modSize(unit)
	mask := uint16(1) // mod = 0 still has a one-bit mask
	for i := 0; i < 9; i++ {
		mask |= mod >> i
	}
	if offset == insts.OffsetPlusOne {
		if !emod {
			return address + 1
		}
		if address&mask == mod {
			return address &^ mask
		}
		return address + 1
	}
	// OffsetMinusOne
	if !emod {
		return address - 1
	}
	if address&mask == 0 {
		return address | mod
	}
	return address - 1
}

func (u *AddressUnit) narrowStep(unit int) uint16 {
	if unit < 4 {
		return u.regs.Stepi
	}
	return u.regs.Stepj
}

func (u *AddressUnit) wideStep(unit int) uint16 {
	if unit < 4 {
		return u.regs.Stepi0
	}
	return u.regs.Stepj0
}

func (u *AddressUnit) modSize(unit int) uint16 {
	if unit < 4 {
		return u.regs.Modi
	}
	return u.regs.Modj
}

// ArRnUnit dereferences an ArRn operand to its r0..r7 unit.
func (u *AddressUnit) ArRnUnit(arrn uint16) int {
	return int(u.regs.Arrn[arrn&3] & 7)
}

// ArStep dereferences an ArStep operand to its step value.
func (u *AddressUnit) ArStep(arstep uint16) insts.Step {
	return insts.ConvertArStep(u.regs.Arstep[arstep&3])
}

// ArStepAlt dereferences the alternate-slot ArStep operand.
func (u *AddressUnit) ArStepAlt(arstep uint16) insts.Step {
	return insts.ConvertArStep(u.regs.Arstep[(arstep+2)&3])
}

// ArOffset dereferences an ArStep operand to its offset value.
func (u *AddressUnit) ArOffset(arstep uint16) insts.Offset {
	return insts.Offset(u.regs.Aroffset[arstep&3] & 3)
}

// ArpRnUnits dereferences an ArpRn operand to its i and j units.
func (u *AddressUnit) ArpRnUnits(arprn uint16) (int, int) {
	i := arprn & 3
	return int(u.regs.Arprni[i] & 3), int(u.regs.Arprnj[i]&3) + 4
}

// ArpSteps dereferences an ArpStep operand pair to its step values.
func (u *AddressUnit) ArpSteps(arpstepi, arpstepj uint16) (insts.Step, insts.Step) {
	return insts.ConvertArStep(u.regs.Arpstepi[arpstepi&3]),
		insts.ConvertArStep(u.regs.Arpstepj[arpstepj&3])
}

// ArpOffsets dereferences an ArpStep operand pair to its offset values.
func (u *AddressUnit) ArpOffsets(arpstepi, arpstepj uint16) (insts.Offset, insts.Offset) {
	return insts.Offset(u.regs.Arpoffseti[arpstepi&3] & 3),
		insts.Offset(u.regs.Arpoffsetj[arpstepj&3] & 3)
}
