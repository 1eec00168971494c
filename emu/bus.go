package emu

import "github.com/sarchlab/teaksim/insts"

// regToBus16 reads a register onto the 16-bit bus. enableSatForMov turns
// on read-path saturation for the accumulator halves, which only applies
// to the plain mov-style transfers.
func (e *Emulator) regToBus16(reg insts.Reg, enableSatForMov bool) uint16 {
	regs := e.regs
	switch reg {
	case insts.RegA0, insts.RegA1, insts.RegB0, insts.RegB1:
		// The low half, but unlike the aXl views this never saturates.
		return uint16(e.alu.GetAcc(reg))
	case insts.RegA0l, insts.RegA1l, insts.RegB0l, insts.RegB1l:
		if enableSatForMov {
			return uint16(e.alu.Saturate(e.alu.GetAcc(reg), false))
		}
		return uint16(e.alu.GetAcc(reg))
	case insts.RegA0h, insts.RegA1h, insts.RegB0h, insts.RegB1h:
		if enableSatForMov {
			return uint16(e.alu.Saturate(e.alu.GetAcc(reg), false) >> 16)
		}
		return uint16(e.alu.GetAcc(reg) >> 16)

	case insts.RegR0, insts.RegR1, insts.RegR2, insts.RegR3,
		insts.RegR4, insts.RegR5, insts.RegR6, insts.RegR7:
		return regs.R[reg-insts.RegR0]

	case insts.RegX0:
		return regs.X[0]
	case insts.RegX1:
		return regs.X[1]
	case insts.RegY0:
		return regs.Y[0]
	case insts.RegY1:
		return regs.Y[1]

	case insts.RegP:
		return uint16(e.mul.ToBus40(insts.RegP0) >> 16)

	case insts.RegSP:
		return regs.Sp
	case insts.RegSV:
		return regs.Sv
	case insts.RegLC:
		return regs.Lc()
	case insts.RegMixp:
		return regs.Mixp

	case insts.RegAr0:
		return regs.Ar(0)
	case insts.RegAr1:
		return regs.Ar(1)
	case insts.RegArp0:
		return regs.Arp(0)
	case insts.RegArp1:
		return regs.Arp(1)
	case insts.RegArp2:
		return regs.Arp(2)
	case insts.RegArp3:
		return regs.Arp(3)

	case insts.RegStt0:
		return regs.Stt0()
	case insts.RegStt1:
		return regs.Stt1()
	case insts.RegStt2:
		return regs.Stt2()
	case insts.RegSt0:
		return regs.St0()
	case insts.RegSt1:
		return regs.St1()
	case insts.RegSt2:
		return regs.St2()
	case insts.RegCfgi:
		return regs.Cfgi()
	case insts.RegCfgj:
		return regs.Cfgj()
	case insts.RegMod0:
		return regs.Mod0()
	case insts.RegMod1:
		return regs.Mod1()
	case insts.RegMod2:
		return regs.Mod2()
	case insts.RegMod3:
		return regs.Mod3()
	}
	e.fault(FaultDecode, "register not readable over the 16-bit bus")
	return 0
}

// regFromBus16 writes a 16-bit bus value into a register, with the
// register-specific widening rules for the accumulator views.
func (e *Emulator) regFromBus16(reg insts.Reg, value uint16) {
	regs := e.regs
	switch reg {
	case insts.RegA0, insts.RegA1, insts.RegB0, insts.RegB1:
		e.alu.SetAcc(reg, insts.SignExtend16(value))
	case insts.RegA0l, insts.RegA1l, insts.RegB0l, insts.RegB1l:
		e.alu.SetAcc(reg, uint64(value))
	case insts.RegA0h, insts.RegA1h, insts.RegB0h, insts.RegB1h:
		e.alu.SetAcc(reg, insts.SignExtend(uint64(value)<<16, 32))

	case insts.RegR0, insts.RegR1, insts.RegR2, insts.RegR3,
		insts.RegR4, insts.RegR5, insts.RegR6, insts.RegR7:
		regs.R[reg-insts.RegR0] = value

	case insts.RegX0:
		regs.X[0] = value
	case insts.RegX1:
		regs.X[1] = value
	case insts.RegY0:
		regs.Y[0] = value
	case insts.RegY1:
		regs.Y[1] = value

	case insts.RegP: // p0 high half
		regs.Psign[0] = b2u(value > 0x7FFF)
		regs.P[0] = regs.P[0]&0xFFFF | uint32(value)<<16

	case insts.RegSP:
		regs.Sp = value
	case insts.RegSV:
		regs.Sv = value
	case insts.RegLC:
		regs.SetLc(value)
	case insts.RegMixp:
		regs.Mixp = value

	case insts.RegAr0:
		regs.SetAr(0, value)
	case insts.RegAr1:
		regs.SetAr(1, value)
	case insts.RegArp0:
		regs.SetArp(0, value)
	case insts.RegArp1:
		regs.SetArp(1, value)
	case insts.RegArp2:
		regs.SetArp(2, value)
	case insts.RegArp3:
		regs.SetArp(3, value)

	case insts.RegStt0:
		regs.SetStt0(value)
	case insts.RegStt1:
		regs.SetStt1(value)
	case insts.RegStt2:
		regs.SetStt2(value)
	case insts.RegSt0:
		regs.SetSt0(value)
	case insts.RegSt1:
		regs.SetSt1(value)
	case insts.RegSt2:
		regs.SetSt2(value)
	case insts.RegCfgi:
		regs.SetCfgi(value)
	case insts.RegCfgj:
		regs.SetCfgj(value)
	case insts.RegMod0:
		regs.SetMod0(value)
	case insts.RegMod1:
		regs.SetMod1(value)
	case insts.RegMod2:
		regs.SetMod2(value)
	case insts.RegMod3:
		regs.SetMod3(value)

	default:
		e.fault(FaultDecode, "register not writable over the 16-bit bus")
	}
}

// Memory operand helpers. The 8-bit form is page-relative; the r7 forms
// index off the frame pointer convention.

func (e *Emulator) loadMemImm8(addr uint16) uint16 {
	return e.mem.DataRead(addr&0xFF + e.regs.Page<<8)
}

func (e *Emulator) storeMemImm8(addr uint16, value uint16) {
	e.mem.DataWrite(addr&0xFF+e.regs.Page<<8, value)
}

func (e *Emulator) loadMemR7Imm16(imm uint16) uint16 {
	return e.mem.DataRead(imm + e.regs.R[7])
}

func (e *Emulator) storeMemR7Imm16(imm uint16, value uint16) {
	e.mem.DataWrite(imm+e.regs.R[7], value)
}

func (e *Emulator) loadMemR7Imm7s(imm uint16) uint16 {
	return e.mem.DataRead(uint16(insts.SignExtend(uint64(imm), 7)) + e.regs.R[7])
}

func (e *Emulator) storeMemR7Imm7s(imm uint16, value uint16) {
	e.mem.DataWrite(uint16(insts.SignExtend(uint64(imm), 7))+e.regs.R[7], value)
}

// contextStore saves flags and modes to the shadow bank and rotates
// a1/b1. The b1-to-a1 transfer sets flags.
func (e *Emulator) contextStore() {
	regs := e.regs
	regs.ShadowStore()
	regs.ShadowSwap()
	a := regs.A[1]
	b := regs.B[1]
	regs.B[1] = a
	e.alu.SetAccNoSaturation(insts.RegA1, b)
}

// contextRestore is the inverse rotation; flags come back from the
// shadow bank.
func (e *Emulator) contextRestore() {
	regs := e.regs
	regs.ShadowRestore()
	regs.ShadowSwap()
	regs.A[1], regs.B[1] = regs.B[1], regs.A[1]
}
