package emu

import "github.com/sarchlab/teaksim/insts"

// Stack transfers. Words go through the data-memory stack with sp
// pre-decrement on push and post-increment on pop.

func (e *Emulator) pushWord(value uint16) {
	e.regs.Sp--
	e.mem.DataWrite(e.regs.Sp, value)
}

func (e *Emulator) popWord() uint16 {
	value := e.mem.DataRead(e.regs.Sp)
	e.regs.Sp++
	return value
}

func (e *Emulator) pushReg(a insts.Reg) {
	e.pushWord(e.regToBus16(a, true))
}

func (e *Emulator) pushAbe(a insts.Reg) {
	value := uint16(e.alu.Saturate(e.alu.GetAcc(a), false) >> 32)
	e.pushWord(value)
}

func (e *Emulator) pushPx(a insts.Reg) {
	value := uint32(e.mul.ToBus40(a))
	e.pushWord(uint16(value))
	e.pushWord(uint16(value >> 16))
}

func (e *Emulator) pusha(a insts.Reg) {
	value := uint32(e.alu.Saturate(e.alu.GetAcc(a), false))
	e.pushWord(uint16(value))
	e.pushWord(uint16(value >> 16))
}

func (e *Emulator) popReg(a insts.Reg) {
	e.regFromBus16(a, e.popWord())
}

func (e *Emulator) popAbe(a insts.Reg) {
	value32 := uint32(insts.SignExtend(uint64(e.popWord()&0xFF), 8))
	target := e.alu.GetAcc(a)
	e.alu.SetAcc(a, target&0xFFFF_FFFF|uint64(value32)<<32)
}

func (e *Emulator) popPx(a insts.Reg) {
	h := e.popWord()
	l := e.popWord()
	e.mul.FromBus32(a, uint32(h)<<16|uint32(l))
}

func (e *Emulator) popa(a insts.Reg) {
	h := e.popWord()
	l := e.popWord()
	value := insts.SignExtend(uint64(h)<<16|uint64(l), 32)
	e.alu.SetAcc(a, value)
}

// movp reads program memory through the movpd page.
func (e *Emulator) movpAxlReg(a insts.Reg, b insts.Reg) {
	address := uint32(e.regToBus16(a, false)) | uint32(e.regs.Movpd&3)<<16
	e.regFromBus16(b, e.mem.ProgramRead(address))
}

func (e *Emulator) movpAxReg(a insts.Reg, b insts.Reg) {
	address := uint32(e.alu.GetAcc(a)) & 0x3FFFF // no saturation
	e.regFromBus16(b, e.mem.ProgramRead(address))
}

func (e *Emulator) movpProg(aUnit int, as insts.Step, bUnit int, bs insts.Step) {
	addressS := uint32(e.addr.RnAddressAndModify(aUnit, as, false))
	addressD := e.addr.RnAddressAndModify(bUnit, bs, false)
	addressS |= uint32(e.regs.Movpd&3) << 16
	e.mem.DataWrite(addressD, e.mem.ProgramRead(addressS))
}

func (e *Emulator) movd(aUnit int, as insts.Step, bUnit int, bs insts.Step) {
	addressS := e.addr.RnAddressAndModify(aUnit, as, false)
	addressD := uint32(e.addr.RnAddressAndModify(bUnit, bs, false))
	addressD |= uint32(e.regs.Movpd&3) << 16
	e.mem.ProgramWrite(addressD, e.mem.DataRead(addressS))
}

func (e *Emulator) movpdw(a insts.Reg) {
	address := uint32(e.alu.GetAcc(a)) & 0x3FFFF // no saturation
	// Word order here is fixed; pc_endian does not apply.
	h := e.mem.ProgramRead(address)
	l := e.mem.ProgramRead(address + 1)
	e.regs.SetPC(l, h)
}

// mov between accumulators, through the saturating bus.
func (e *Emulator) movAbAb(a, b insts.Reg) {
	e.alu.SetAcc(b, e.alu.GetAcc(a))
}

func (e *Emulator) movRegBx(a insts.Reg, b insts.Reg) {
	if a == insts.RegP {
		e.alu.SetAcc(b, e.mul.ToBus40(insts.RegP0))
	} else if a == insts.RegA0 || a == insts.RegA1 {
		e.alu.SetAcc(b, e.alu.GetAcc(a))
	} else {
		e.regFromBus16(b, e.regToBus16(a, true))
	}
}

func (e *Emulator) movRegReg(aRaw, bRaw uint16) {
	a := insts.RegisterFromBits(aRaw)
	b := insts.RegisterFromBits(bRaw)
	if a == insts.RegP {
		// b loses its usual meaning: only the low bit picks a0/a1.
		bName := insts.RegA0
		if bRaw&1 != 0 {
			bName = insts.RegA1
		}
		e.alu.SetAcc(bName, e.mul.ToBus40(insts.RegP0))
	} else if a == insts.RegPC {
		if b == insts.RegA0 || b == insts.RegA1 {
			e.alu.SetAcc(b, uint64(e.regs.Pc))
		} else {
			e.regFromBus16(b, uint16(e.regs.Pc))
		}
	} else {
		e.regFromBus16(b, e.regToBus16(a, true))
	}
}

func (e *Emulator) movRegRn(a insts.Reg, bUnit int, bs insts.Step) {
	value := e.regToBus16(a, true)
	address := e.addr.RnAddressAndModify(bUnit, bs, false)
	e.mem.DataWrite(address, value)
}

func (e *Emulator) movRnReg(aUnit int, as insts.Step, b insts.Reg) {
	address := e.addr.RnAddressAndModify(aUnit, as, false)
	e.regFromBus16(b, e.mem.DataRead(address))
}

func (e *Emulator) movPc(a insts.Reg) {
	value := e.alu.GetAcc(a)
	e.setPCChecked(uint32(value & 0xFFFF_FFFF))
}

// mov2/mova dual transfers. When the secondary offset is zero both
// writes land on one address and the second write wins; the order is
// architectural.

func (e *Emulator) mov2PxMem(a insts.Reg, b uint16, bs uint16, shifted bool) {
	var value uint32
	if shifted {
		value = uint32(e.mul.ToBus40(a))
	} else {
		value = e.mul.ToBus32NoShift(a)
	}
	l := uint16(value)
	h := uint16(value >> 16)
	unit := e.addr.ArRnUnit(b)
	address := e.addr.RnAddressAndModify(unit, e.addr.ArStep(bs), false)
	address2 := e.addr.OffsetAddress(unit, address, e.addr.ArOffset(bs), false)
	// NOTE: keep the write order exactly like this.
	e.mem.DataWrite(address2, l)
	e.mem.DataWrite(address, h)
}

func (e *Emulator) mov2MemPx(a uint16, as uint16, b insts.Reg) {
	unit := e.addr.ArRnUnit(a)
	address := e.addr.RnAddressAndModify(unit, e.addr.ArStep(as), false)
	address2 := e.addr.OffsetAddress(unit, address, e.addr.ArOffset(as), false)
	l := e.mem.DataRead(address2)
	h := e.mem.DataRead(address)
	e.mul.FromBus32(b, uint32(h)<<16|uint32(l))
}

func (e *Emulator) movaAbMem(a insts.Reg, b uint16, bs uint16) {
	value := e.alu.Saturate(e.alu.GetAcc(a), false)
	l := uint16(value)
	h := uint16(value >> 16)
	unit := e.addr.ArRnUnit(b)
	address := e.addr.RnAddressAndModify(unit, e.addr.ArStep(bs), false)
	address2 := e.addr.OffsetAddress(unit, address, e.addr.ArOffset(bs), false)
	// NOTE: keep the write order exactly like this. The second one
	// overrides the first one if the offset is zero.
	e.mem.DataWrite(address2, l)
	e.mem.DataWrite(address, h)
}

func (e *Emulator) movaMemAb(a uint16, as uint16, b insts.Reg) {
	unit := e.addr.ArRnUnit(a)
	address := e.addr.RnAddressAndModify(unit, e.addr.ArStep(as), false)
	address2 := e.addr.OffsetAddress(unit, address, e.addr.ArOffset(as), false)
	l := e.mem.DataRead(address2)
	h := e.mem.DataRead(address)
	value := insts.SignExtend(uint64(h)<<16|uint64(l), 32)
	e.alu.SetAcc(b, value)
}

func (e *Emulator) mov2AxhMY0M(a insts.Reg, b uint16, bs uint16) {
	u := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(a), false) >> 16)
	v := e.regs.Y[0]
	unit := e.addr.ArRnUnit(b)
	ua := e.addr.RnAddressAndModify(unit, e.addr.ArStep(bs), false)
	va := e.addr.OffsetAddress(unit, ua, e.addr.ArOffset(bs), false)
	// keep the order
	e.mem.DataWrite(va, v)
	e.mem.DataWrite(ua, u)
}

func (e *Emulator) mov2AxM(a insts.Reg, b uint16, bsi, bsj uint16, ij bool) {
	ui, uj := e.addr.ArpRnUnits(b)
	si, sj := e.addr.ArpSteps(bsi, bsj)
	i := e.addr.RnAddressAndModify(ui, si, false)
	j := e.addr.RnAddressAndModify(uj, sj, false)
	value := e.alu.SaturateNoFlag(e.alu.GetAcc(a), false)
	if ij {
		e.mem.DataWrite(i, uint16(value>>16))
		e.mem.DataWrite(j, uint16(value))
	} else {
		e.mem.DataWrite(j, uint16(value>>16))
		e.mem.DataWrite(i, uint16(value))
	}
}

func (e *Emulator) mov2MAx(a uint16, asi, asj uint16, b insts.Reg, ij bool) {
	ui, uj := e.addr.ArpRnUnits(a)
	si, sj := e.addr.ArpSteps(asi, asj)
	var h, l uint16
	if ij {
		h = e.mem.DataRead(e.addr.RnAddressAndModify(ui, si, false))
		l = e.mem.DataRead(e.addr.RnAddressAndModify(uj, sj, false))
	} else {
		l = e.mem.DataRead(e.addr.RnAddressAndModify(ui, si, false))
		h = e.mem.DataRead(e.addr.RnAddressAndModify(uj, sj, false))
	}
	value := insts.SignExtend(uint64(h)<<16|uint64(l), 32)
	e.alu.SetAccSimple(b, value)
}

func (e *Emulator) mov2AbhM(ax, ay insts.Reg, b uint16, bs uint16) {
	u := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(ax), false) >> 16)
	v := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(ay), false) >> 16)
	unit := e.addr.ArRnUnit(b)
	ua := e.addr.RnAddressAndModify(unit, e.addr.ArStep(bs), false)
	va := e.addr.OffsetAddress(unit, ua, e.addr.ArOffset(bs), false)
	// keep the order
	e.mem.DataWrite(va, v)
	e.mem.DataWrite(ua, u)
}

// exchange writes the high half of an accumulator out while reloading it
// from the other stream, optionally with the rounding bit set.
func (e *Emulator) exchange(a insts.Reg, b uint16, bsi, bsj uint16, storeToJ, round bool) {
	ui, uj := e.addr.ArpRnUnits(b)
	si, sj := e.addr.ArpSteps(bsi, bsj)
	i := e.addr.RnAddressAndModify(ui, si, false)
	j := e.addr.RnAddressAndModify(uj, sj, false)
	value := e.alu.SaturateNoFlag(e.alu.GetAcc(a), false)
	loadAddr := j
	storeAddr := i
	if storeToJ {
		loadAddr = i
		storeAddr = j
	}
	e.mem.DataWrite(storeAddr, uint16(value>>16))
	loaded := uint64(e.mem.DataRead(loadAddr)) << 16
	if round {
		loaded |= 0x8000
	}
	e.alu.SetAccSimple(a, insts.SignExtend(loaded, 32))
}

// movs shifts the source by sv on its way into the accumulator.
func (e *Emulator) movsValue(value uint64, b insts.Reg) {
	e.alu.ShiftBus40(value, e.regs.Sv, b)
}

// movr rounds the source on its way into the accumulator. The 16-bit
// register path does 16-bit arithmetic: carry tracks bit 16 and overflow
// is always cleared.
func (e *Emulator) movr16(value16 uint16, b insts.Reg) {
	result := uint64(value16) + 0x8000
	e.regs.Fc[0] = uint16(result >> 16)
	e.regs.Fv = 0
	result &= 0xFFFF
	e.alu.SetAcc(b, result)
}

func (e *Emulator) movr40(value uint64, b insts.Reg) {
	result := e.alu.AddSub(value, 0x8000, false)
	e.alu.SetAcc(b, result)
}
