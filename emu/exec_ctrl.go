package emu

import "github.com/sarchlab/teaksim/insts"

func (e *Emulator) br(expLow uint16, high uint16, cond insts.Cond) {
	if e.regs.ConditionPass(cond) {
		e.regs.SetPC(expLow, high)
	}
}

func (e *Emulator) brr(rel uint16, cond insts.Cond) {
	if e.regs.ConditionPass(cond) {
		// pc is already the address of the next instruction.
		e.regs.Pc += uint32(insts.SignExtend(uint64(rel), 7))
		e.regs.Pc &= 0x3FFFF
	}
}

func (e *Emulator) call(expLow uint16, high uint16, cond insts.Cond) {
	if e.regs.ConditionPass(cond) {
		e.pushPC()
		e.regs.SetPC(expLow, high)
	}
}

func (e *Emulator) callr(rel uint16, cond insts.Cond) {
	if e.regs.ConditionPass(cond) {
		e.pushPC()
		e.regs.Pc += uint32(insts.SignExtend(uint64(rel), 7))
		e.regs.Pc &= 0x3FFFF
	}
}

func (e *Emulator) callaAxl(a insts.Reg) {
	e.pushPC()
	e.setPCChecked(uint32(e.regToBus16(a, false)))
}

func (e *Emulator) callaAx(a insts.Reg) {
	e.pushPC()
	e.setPCChecked(uint32(e.alu.GetAcc(a)) & 0x3FFFF) // no saturation
}

func (e *Emulator) ret(cond insts.Cond) {
	if e.regs.ConditionPass(cond) {
		e.popPC()
	}
}

func (e *Emulator) reti(cond insts.Cond) {
	if e.regs.ConditionPass(cond) {
		e.popPC()
		e.regs.Ie = 1
	}
}

func (e *Emulator) retic(cond insts.Cond) {
	if e.regs.ConditionPass(cond) {
		e.popPC()
		e.regs.Ie = 1
		e.contextRestore()
	}
}

func (e *Emulator) rets(imm uint16) {
	e.popPC()
	e.regs.Sp += imm & 0xFF
}

func (e *Emulator) repeat(count uint16) {
	e.regs.Repc = count
	e.regs.Rep = true
}

func (e *Emulator) blockRepeat(lc uint16, address uint32) {
	regs := e.regs
	if regs.Bcn > 3 {
		e.fault(FaultLoopStackOverflow, "block repeat with four loops active")
	}
	regs.BkrepStack[regs.Bcn].Start = regs.Pc
	regs.BkrepStack[regs.Bcn].End = address
	regs.BkrepStack[regs.Bcn].Lc = lc
	regs.Lp = 1
	regs.Bcn++
}

func (e *Emulator) bkrepImm(imm uint16, expAddr uint16) {
	address := uint32(expAddr) | e.regs.Pc&0x30000
	e.blockRepeat(imm&0xFF, address)
}

func (e *Emulator) bkrepReg(a insts.Reg, expLow uint16, high uint16) {
	lc := e.regToBus16(a, false)
	e.blockRepeat(lc, uint32(expLow)|uint32(high&3)<<16)
}

func (e *Emulator) bkrepR6(expLow uint16, high uint16) {
	e.blockRepeat(e.regs.R[6], uint32(expLow)|uint32(high&3)<<16)
}

// restoreBlockRepeat reloads the bottom loop frame from memory through
// an ascending address register.
func (e *Emulator) restoreBlockRepeat(addrReg *uint16) {
	regs := e.regs
	if regs.Lp == 1 {
		if regs.Bcn > 3 {
			e.fault(FaultLoopStackOverflow, "loop restore with four loops active")
		}
		copy(regs.BkrepStack[1:regs.Bcn+1], regs.BkrepStack[:regs.Bcn])
		regs.Bcn++
	}
	*addrReg++
	flag := e.mem.DataRead(*addrReg)
	valid := flag >> 15
	if regs.Lp == 1 {
		if valid == 0 {
			e.fault(FaultLoopInvariant, "restoring an invalid loop below a valid one")
		}
	} else if valid == 1 {
		regs.Lp = 1
		regs.Bcn = 1
	}
	*addrReg++
	regs.BkrepStack[0].End = uint32(e.mem.DataRead(*addrReg)) | uint32(flag>>8&3)<<16
	*addrReg++
	regs.BkrepStack[0].Start = uint32(e.mem.DataRead(*addrReg)) | uint32(flag&3)<<16
	*addrReg++
	regs.BkrepStack[0].Lc = e.mem.DataRead(*addrReg)
}

// storeBlockRepeat spills the bottom loop frame through a descending
// address register. The flag word packs the high bits of start into both
// 2-bit fields; the high bits of end are not saved, so restoreBlockRepeat
// gives end the high bits of start.
func (e *Emulator) storeBlockRepeat(addrReg *uint16) {
	regs := e.regs
	e.mem.DataWrite(*addrReg, regs.BkrepStack[0].Lc)
	*addrReg--
	e.mem.DataWrite(*addrReg, uint16(regs.BkrepStack[0].Start))
	*addrReg--
	e.mem.DataWrite(*addrReg, uint16(regs.BkrepStack[0].End))
	*addrReg--
	flag := regs.Lp << 15
	flag |= uint16(regs.BkrepStack[0].Start >> 16)
	flag |= uint16(regs.BkrepStack[0].Start>>16) << 8
	e.mem.DataWrite(*addrReg, flag)
	*addrReg--
	if regs.Lp == 1 {
		copy(regs.BkrepStack[:regs.Bcn-1], regs.BkrepStack[1:regs.Bcn])
		regs.Bcn--
		if regs.Bcn == 0 {
			regs.Lp = 0
		}
	}
}

func (e *Emulator) breakLoop() {
	regs := e.regs
	if regs.Lp == 0 {
		e.fault(FaultLoopInvariant, "break outside a block repeat")
	}
	regs.Bcn--
	regs.Lp = b2u(regs.Bcn != 0)
	// Unlike one would expect, break does not jump out of the block.
}

func (e *Emulator) banke(flags uint16) {
	regs := e.regs
	if flags&1 != 0 {
		regs.Stepi, regs.Stepib = regs.Stepib, regs.Stepi
		regs.Modi, regs.Modib = regs.Modib, regs.Modi
		if regs.Bankstep == 1 {
			regs.Stepi0, regs.Stepi0b = regs.Stepi0b, regs.Stepi0
		}
	}
	if flags&2 != 0 {
		regs.R[4], regs.R4b = regs.R4b, regs.R[4]
	}
	if flags&4 != 0 {
		regs.R[1], regs.R1b = regs.R1b, regs.R[1]
	}
	if flags&8 != 0 {
		regs.R[0], regs.R0b = regs.R0b, regs.R[0]
	}
	if flags&16 != 0 {
		regs.R[7], regs.R7b = regs.R7b, regs.R[7]
	}
	if flags&32 != 0 {
		regs.Stepj, regs.Stepjb = regs.Stepjb, regs.Stepj
		regs.Modj, regs.Modjb = regs.Modjb, regs.Modj
		if regs.Bankstep == 1 {
			regs.Stepj0, regs.Stepj0b = regs.Stepj0b, regs.Stepj0
		}
	}
}

func (e *Emulator) bitrev(unit int, setBrv, clearBrv bool) {
	regs := e.regs
	regs.R[unit] = insts.BitReverse(regs.R[unit])
	if clearBrv {
		regs.Brv[unit] = 0
	}
	if setBrv {
		regs.Brv[unit] = 1
	}
}

// swapAcc is the multi-way accumulator exchange. Every transfer goes
// through SetAcc; the flags left behind are those of the final transfer.
func (e *Emulator) swapAcc(kind uint16) {
	var s0, d0, s1, d1 insts.Reg
	get := e.alu.GetAcc
	set := e.alu.SetAcc
	switch kind {
	case 0: // a0<->b0
		s0, d1 = insts.RegA0, insts.RegA0
		s1, d0 = insts.RegB0, insts.RegB0
	case 1: // a0<->b1
		s0, d1 = insts.RegA0, insts.RegA0
		s1, d0 = insts.RegB1, insts.RegB1
	case 2: // a1<->b0
		s0, d1 = insts.RegA1, insts.RegA1
		s1, d0 = insts.RegB0, insts.RegB0
	case 3: // a1<->b1
		s0, d1 = insts.RegA1, insts.RegA1
		s1, d0 = insts.RegB1, insts.RegB1
	case 4: // a0<->b0, a1<->b1
		u := get(insts.RegA1)
		v := get(insts.RegB1)
		set(insts.RegA1, v)
		set(insts.RegB1, u)
		s0, d1 = insts.RegA0, insts.RegA0
		s1, d0 = insts.RegB0, insts.RegB0
	case 5: // a0<->b1, a1<->b0
		u := get(insts.RegA1)
		v := get(insts.RegB0)
		set(insts.RegA1, v)
		set(insts.RegB0, u)
		s0, d1 = insts.RegA0, insts.RegA0
		s1, d0 = insts.RegB1, insts.RegB1
	case 6: // a0->b0->a1
		s0 = insts.RegA0
		d0, s1 = insts.RegB0, insts.RegB0
		d1 = insts.RegA1
	case 7: // a0->b1->a1
		s0 = insts.RegA0
		d0, s1 = insts.RegB1, insts.RegB1
		d1 = insts.RegA1
	case 8: // a1->b0->a0
		s0 = insts.RegA1
		d0, s1 = insts.RegB0, insts.RegB0
		d1 = insts.RegA0
	case 9: // a1->b1->a0
		s0 = insts.RegA1
		d0, s1 = insts.RegB1, insts.RegB1
		d1 = insts.RegA0
	case 10: // b0->a0->b1
		s0, d1 = insts.RegA0, insts.RegA0
		d0 = insts.RegB1
		s1 = insts.RegB0
	case 11: // b0->a1->b1
		s0, d1 = insts.RegA1, insts.RegA1
		d0 = insts.RegB1
		s1 = insts.RegB0
	case 12: // b1->a0->b0
		s0, d1 = insts.RegA0, insts.RegA0
		d0 = insts.RegB0
		s1 = insts.RegB1
	case 13: // b1->a1->b0
		s0, d1 = insts.RegA1, insts.RegA1
		d0 = insts.RegB0
		s1 = insts.RegB1
	default:
		e.fault(FaultDecode, "bad swap selector")
	}
	u := get(s0)
	v := get(s1)
	set(d0, u)
	set(d1, v) // only this one leaves its flags behind
}
