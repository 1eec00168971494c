package emu

import "github.com/sarchlab/teaksim/insts"

// mulGeneric runs the accumulate step of the multiply family, then
// refires the multiplier with whatever operands the caller just loaded.
// The product is computed after the accumulate, so each mac sees the
// previous product.
func (e *Emulator) mulGeneric(op insts.MulOp, a insts.Reg) {
	if op != insts.MulMpy && op != insts.MulMpysu {
		value := e.alu.GetAcc(a)
		product := e.mul.ToBus40(insts.RegP0)
		if op == insts.MulMaa || op == insts.MulMaasu {
			product = insts.SignExtend(product>>16, 24)
		}
		result := e.alu.AddSub(value, product, false)
		e.alu.SetAcc(a, result)
	}

	switch op {
	case insts.MulMpy, insts.MulMac, insts.MulMaa:
		e.mul.Do(0, true, true)
	case insts.MulMpysu, insts.MulMacsu, insts.MulMaasu:
		e.mul.Do(0, false, true)
	case insts.MulMacus:
		e.mul.Do(0, true, false)
	case insts.MulMacuu:
		e.mul.Do(0, false, false)
	}
}

func (e *Emulator) mulRnImm16(op insts.MulOp, yUnit int, ys insts.Step, x uint16, a insts.Reg) {
	address := e.addr.RnAddressAndModify(yUnit, ys, false)
	e.regs.Y[0] = e.mem.DataRead(address)
	e.regs.X[0] = x
	e.mulGeneric(op, a)
}

func (e *Emulator) mulY0Rn(op insts.MulOp, xUnit int, xs insts.Step, a insts.Reg) {
	address := e.addr.RnAddressAndModify(xUnit, xs, false)
	e.regs.X[0] = e.mem.DataRead(address)
	e.mulGeneric(op, a)
}

func (e *Emulator) mulY0Reg(op insts.MulOp, x insts.Reg, a insts.Reg) {
	e.regs.X[0] = e.regToBus16(x, false)
	e.mulGeneric(op, a)
}

func (e *Emulator) mulR45R0123(op insts.MulOp, yUnit int, ys insts.Step, xUnit int, xs insts.Step, a insts.Reg) {
	addressY := e.addr.RnAddressAndModify(yUnit, ys, false)
	addressX := e.addr.RnAddressAndModify(xUnit, xs, false)
	e.regs.Y[0] = e.mem.DataRead(addressY)
	e.regs.X[0] = e.mem.DataRead(addressX)
	e.mulGeneric(op, a)
}

func (e *Emulator) mulY0R6(op insts.MulOp, a insts.Reg) {
	e.regs.X[0] = e.regs.R[6]
	e.mulGeneric(op, a)
}

func (e *Emulator) mulY0MemImm8(op insts.MulOp, addr uint16, a insts.Reg) {
	e.regs.X[0] = e.loadMemImm8(addr)
	e.mulGeneric(op, a)
}

func (e *Emulator) mpyi(imm uint16) {
	e.regs.X[0] = uint16(insts.SignExtend(uint64(imm), 8))
	e.mul.Do(0, true, true)
}

// msu subtracts the standing product before loading fresh operands.
func (e *Emulator) msuCommon(a insts.Reg) {
	value := e.alu.GetAcc(a)
	product := e.mul.ToBus40(insts.RegP0)
	result := e.alu.AddSub(value, product, true)
	e.alu.SetAcc(a, result)
}

func (e *Emulator) msuR45R0123(yUnit int, ys insts.Step, xUnit int, xs insts.Step, a insts.Reg) {
	yi := e.addr.RnAddressAndModify(yUnit, ys, false)
	xi := e.addr.RnAddressAndModify(xUnit, xs, false)
	e.msuCommon(a)
	e.regs.Y[0] = e.mem.DataRead(yi)
	e.regs.X[0] = e.mem.DataRead(xi)
	e.mul.Do(0, true, true)
}

func (e *Emulator) msuRnImm16(yUnit int, ys insts.Step, x uint16, a insts.Reg) {
	yi := e.addr.RnAddressAndModify(yUnit, ys, false)
	e.msuCommon(a)
	e.regs.Y[0] = e.mem.DataRead(yi)
	e.regs.X[0] = x
	e.mul.Do(0, true, true)
}

func (e *Emulator) msusu(x uint16, xs uint16, a insts.Reg) {
	xi := e.addr.RnAddressAndModify(e.addr.ArRnUnit(x), e.addr.ArStep(xs), false)
	e.msuCommon(a)
	e.regs.X[0] = e.mem.DataRead(xi)
	e.mul.Do(0, false, true)
}

func (e *Emulator) macX1to0(a insts.Reg) {
	value := e.alu.GetAcc(a)
	product := e.mul.ToBus40(insts.RegP0)
	result := e.alu.AddSub(value, product, false)
	e.alu.SetAcc(a, result)
	e.regs.X[0] = e.regs.X[1]
	e.mul.Do(0, true, true)
}

func (e *Emulator) mac1(xy uint16, xis, yjs uint16, a insts.Reg) {
	ui, uj := e.addr.ArpRnUnits(xy)
	si, sj := e.addr.ArpSteps(xis, yjs)
	i := e.addr.RnAddressAndModify(ui, si, false)
	j := e.addr.RnAddressAndModify(uj, sj, false)
	value := e.alu.GetAcc(a)
	product := e.mul.ToBus40(insts.RegP1)
	result := e.alu.AddSub(value, product, false)
	e.alu.SetAcc(a, result)
	e.regs.X[1] = e.mem.DataRead(i)
	e.regs.Y[1] = e.mem.DataRead(j)
	e.mul.Do(1, true, true)
}

// Dual-memory arithmetic: two reads with distinct addressing, combined
// into the 32-bit halves of an accumulator.

func (e *Emulator) dualAddSub(a uint16, asi, asj uint16, b insts.Reg, subHigh, subLow bool) {
	ui, uj := e.addr.ArpRnUnits(a)
	si, sj := e.addr.ArpSteps(asi, asj)
	oi, oj := e.addr.ArpOffsets(asi, asj)
	i := e.addr.RnAddressAndModify(ui, si, false)
	j := e.addr.RnAddressAndModify(uj, sj, false)
	var high uint64
	if subHigh {
		high = insts.SignExtend16(e.mem.DataRead(j)) - insts.SignExtend16(e.mem.DataRead(i))
	} else {
		high = insts.SignExtend16(e.mem.DataRead(j)) + insts.SignExtend16(e.mem.DataRead(i))
	}
	var low uint16
	vj := e.mem.DataRead(e.addr.OffsetAddress(uj, j, oj, false))
	vi := e.mem.DataRead(e.addr.OffsetAddress(ui, i, oi, false))
	if subLow {
		low = vj - vi
	} else {
		low = vj + vi
	}
	result := high<<16 | uint64(low)
	e.alu.SetAccSimple(b, result)
}

func (e *Emulator) addSubSv(a uint16, as uint16, b insts.Reg, subLow bool) {
	u := e.addr.ArRnUnit(a)
	s := e.addr.ArStep(as)
	o := e.addr.ArOffset(as)
	address := e.addr.RnAddressAndModify(u, s, false)
	sv := e.regs.Sv
	var high uint64
	var low uint16
	if subLow {
		high = insts.SignExtend16(e.mem.DataRead(address)) + insts.SignExtend16(sv)
		low = e.mem.DataRead(e.addr.OffsetAddress(u, address, o, false)) - sv
	} else {
		high = insts.SignExtend16(e.mem.DataRead(address)) - insts.SignExtend16(sv)
		low = e.mem.DataRead(e.addr.OffsetAddress(u, address, o, false)) + sv
	}
	result := high<<16 | uint64(low)
	e.alu.SetAccSimple(b, result)
}

// subAddMovSv: sub/add against sv on one stream while sv reloads from
// the other.
func (e *Emulator) subAddMovSv(a uint16, asi, asj uint16, b insts.Reg, useI bool) {
	ui, uj := e.addr.ArpRnUnits(a)
	si, sj := e.addr.ArpSteps(asi, asj)
	oi, oj := e.addr.ArpOffsets(asi, asj)
	i := e.addr.RnAddressAndModify(ui, si, false)
	j := e.addr.RnAddressAndModify(uj, sj, false)
	sv := e.regs.Sv
	var high uint64
	var low uint16
	if useI {
		high = insts.SignExtend16(e.mem.DataRead(i)) - insts.SignExtend16(sv)
		low = e.mem.DataRead(e.addr.OffsetAddress(ui, i, oi, false)) + sv
	} else {
		high = insts.SignExtend16(e.mem.DataRead(j)) - insts.SignExtend16(sv)
		low = e.mem.DataRead(e.addr.OffsetAddress(uj, j, oj, false)) + sv
	}
	result := high<<16 | uint64(low)
	e.alu.SetAccSimple(b, result)
	if useI {
		e.regs.Sv = e.mem.DataRead(j)
	} else {
		e.regs.Sv = e.mem.DataRead(i)
	}
}

// addSubMov: add/sub against sv on one stream while the accumulator's
// old low half spills to the other.
func (e *Emulator) addSubMov(a uint16, asi, asj uint16, b insts.Reg, useI bool) {
	ui, uj := e.addr.ArpRnUnits(a)
	si, sj := e.addr.ArpSteps(asi, asj)
	oi, oj := e.addr.ArpOffsets(asi, asj)
	i := e.addr.RnAddressAndModify(ui, si, false)
	j := e.addr.RnAddressAndModify(uj, sj, false)
	sv := e.regs.Sv
	var high uint64
	var low uint16
	if useI {
		high = insts.SignExtend16(e.mem.DataRead(i)) + insts.SignExtend16(sv)
		low = e.mem.DataRead(e.addr.OffsetAddress(ui, i, oi, false)) - sv
	} else {
		high = insts.SignExtend16(e.mem.DataRead(j)) + insts.SignExtend16(sv)
		low = e.mem.DataRead(e.addr.OffsetAddress(uj, j, oj, false)) - sv
	}
	result := high<<16 | uint64(low)
	exchange := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(b), false))
	e.alu.SetAccSimple(b, result)
	if useI {
		e.mem.DataWrite(j, exchange)
	} else {
		e.mem.DataWrite(i, exchange)
	}
}

func (e *Emulator) sqrSqrAdd3Ab(a insts.Reg, b insts.Reg) {
	value := e.alu.GetAcc(a)
	e.productSum(insts.SumAcc, b, pAdd, pAdd)
	h := uint16(value >> 16)
	l := uint16(value)
	e.regs.X[0], e.regs.Y[0] = h, h
	e.regs.X[1], e.regs.Y[1] = l, l
	e.mul.Do(0, true, true)
	e.mul.Do(1, true, true)
}

func (e *Emulator) sqrSqrAdd3Mem(a uint16, as uint16, b insts.Reg) {
	e.productSum(insts.SumAcc, b, pAdd, pAdd)
	unit := e.addr.ArRnUnit(a)
	address0 := e.addr.RnAddressAndModify(unit, e.addr.ArStep(as), false)
	address1 := e.addr.OffsetAddress(unit, address0, e.addr.ArOffset(as), false)
	v0 := e.mem.DataRead(address0)
	v1 := e.mem.DataRead(address1)
	e.regs.X[0], e.regs.Y[0] = v0, v0
	e.regs.X[1], e.regs.Y[1] = v1, v1
	e.mul.Do(0, true, true)
	e.mul.Do(1, true, true)
}

func (e *Emulator) sqrMpysuAdd3a(a insts.Reg, b insts.Reg) {
	value := e.alu.GetAcc(a)
	e.productSum(insts.SumAcc, b, pAdd, pAdda)
	h := uint16(value >> 16)
	e.regs.X[0], e.regs.Y[0], e.regs.Y[1] = h, h, h
	e.regs.X[1] = uint16(value)
	e.mul.Do(0, true, true)
	e.mul.Do(1, false, true)
}

// minMax compares the accumulator against its counter accumulator (or a
// memory word) and keeps the extremum, recording the winning pointer in
// mixp.
func (e *Emulator) minMaxAcc(a insts.Reg, bs insts.Step, keep func(d uint64) bool) {
	u := e.alu.GetAcc(a)
	v := e.alu.GetAcc(insts.CounterAcc(a))
	d := v - u
	r0 := e.addr.RnAndModify(0, bs, false)
	if keep(d) {
		e.regs.Fm = 1
		e.regs.Mixp = r0
		e.alu.SetAccSimple(a, v)
	} else {
		e.regs.Fm = 0
	}
}

func (e *Emulator) minMaxR0(a insts.Reg, bs insts.Step, keep func(d uint64) bool) {
	u := e.alu.GetAcc(a)
	r0 := e.addr.RnAndModify(0, bs, false)
	v := insts.SignExtend16(e.mem.DataRead(e.addr.RnAddress(0, r0)))
	d := v - u
	if keep(d) {
		e.regs.Fm = 1
		e.regs.Mixp = r0
		e.alu.SetAccSimple(a, v)
	} else {
		e.regs.Fm = 0
	}
}

func keepGe(d uint64) bool { return d>>63&1 == 0 }
func keepGt(d uint64) bool { return d>>63&1 == 0 && d != 0 }
func keepLe(d uint64) bool { return d>>63&1 == 1 || d == 0 }
func keepLt(d uint64) bool { return d>>63&1 == 1 }

// minMaxVtr does the lateral 24/16-bit split min/max feeding the voice
// trigger shifter.
func (e *Emulator) minMaxVtr(a, b insts.Reg, min bool) {
	regs := e.regs
	u := e.alu.GetAcc(a)
	v := e.alu.GetAcc(b)
	uh := insts.SignExtend(u>>16, 24)
	ul := insts.SignExtend16(uint16(u))
	vh := insts.SignExtend(v>>16, 24)
	vl := insts.SignExtend16(uint16(v))
	var wh, wl uint64
	if min {
		wh = uh - vh
		wl = ul - vl
	} else {
		wh = vh - uh
		wl = vl - ul
	}
	regs.Fc[0] = b2u(wh>>63 == 0)
	if regs.Fc[0] == 1 {
		wh = vh
	} else {
		wh = uh
	}
	regs.Fc[1] = b2u(wl>>63 == 0)
	if regs.Fc[1] == 1 {
		wl = vl
	} else {
		wl = ul
	}
	w := wh<<16 | wl&0xFFFF
	e.alu.SetAccSimple(a, w)
	e.vtrshr()
}

func (e *Emulator) vtrshr() {
	regs := e.regs
	// TODO: hardware delays the vtr0 update by one cycle, vtr1 not.
	regs.Vtr[0] = regs.Vtr[0]>>1 | regs.Fc[0]<<15
	regs.Vtr[1] = regs.Vtr[1]>>1 | regs.Fc[1]<<15
}

// minMaxVtrMov runs minMaxVtr then stores one half of the counter
// accumulator of a to memory.
func (e *Emulator) minMaxVtrMov(a, b insts.Reg, c uint16, cs uint16, min, high bool) {
	e.minMaxVtr(a, b, min)
	value := e.alu.SaturateNoFlag(e.alu.GetAcc(insts.CounterAcc(a)), false)
	address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(c), e.addr.ArStep(cs), false)
	if high {
		e.mem.DataWrite(address, uint16(value>>16))
	} else {
		e.mem.DataWrite(address, uint16(value))
	}
}

func (e *Emulator) minMaxVtrMovIJ(a, b insts.Reg, c uint16, csi, csj uint16, min, ij bool) {
	e.minMaxVtr(a, b, min)
	value := e.alu.SaturateNoFlag(e.alu.GetAcc(insts.CounterAcc(a)), false)
	h := uint16(value >> 16)
	l := uint16(value)
	ui, uj := e.addr.ArpRnUnits(c)
	si, sj := e.addr.ArpSteps(csi, csj)
	i := e.addr.RnAddressAndModify(ui, si, false)
	j := e.addr.RnAddressAndModify(uj, sj, false)
	if ij {
		e.mem.DataWrite(i, h)
		e.mem.DataWrite(j, l)
	} else {
		e.mem.DataWrite(i, l)
		e.mem.DataWrite(j, h)
	}
}

// cbs is one streaming codebook-search step.
func (e *Emulator) cbs(u, v, r uint16, c insts.CbsCond) {
	regs := e.regs
	x0 := regs.X[0]
	regs.X[0] = u
	diff := e.mul.ToBus40(insts.RegP0) - e.mul.ToBus40(insts.RegP1)
	regs.Y[0] = u
	e.mul.Do(0, true, true)
	regs.Y[0] = uint16(e.mul.ToBus40(insts.RegP0) >> 16)
	regs.X[0] = x0
	var cond bool
	switch c {
	case insts.CbsGe:
		cond = diff>>63 == 0
	default:
		cond = diff>>63 == 0 && diff != 0
	}
	if cond {
		regs.Mixp = r
		regs.X[0] = regs.Y[1]
		regs.X[1] = regs.Y[0]
	}
	regs.Y[1] = v
	e.mul.Do(0, true, true)
	e.mul.Do(1, true, true)
}

func (e *Emulator) cbsAxh(a insts.Reg, c insts.CbsCond) {
	u := uint16(e.alu.GetAcc(a) >> 16)
	v := uint16(e.alu.GetAcc(insts.CounterAcc(a)) >> 16)
	e.cbs(u, v, e.regs.R[0], c)
}

func (e *Emulator) cbsAxhBxh(a, b insts.Reg, c insts.CbsCond) {
	u := uint16(e.alu.GetAcc(a) >> 16)
	v := uint16(e.alu.GetAcc(b) >> 16)
	e.cbs(u, v, e.regs.R[0], c)
}

func (e *Emulator) cbsMem(a uint16, asi, asj uint16, c insts.CbsCond) {
	ui, uj := e.addr.ArpRnUnits(a)
	si, sj := e.addr.ArpSteps(asi, asj)
	aip := e.addr.RnAndModify(ui, si, false)
	ai := e.addr.RnAddress(ui, aip)
	aj := e.addr.RnAddressAndModify(uj, sj, false)
	e.cbs(e.mem.DataRead(ai), e.mem.DataRead(aj), aip, c)
}

// The mma family: product sum, then reload multiplier operands per the
// addressing variant, then refire both multipliers.

func (e *Emulator) mmaSwap(a insts.Reg, cfg insts.MmaConfig) {
	e.productSum(cfg.Base, a, productSumConfig{cfg.AlignP0, cfg.SubP0}, productSumConfig{cfg.AlignP1, cfg.SubP1})
	e.regs.X[0], e.regs.X[1] = e.regs.X[1], e.regs.X[0]
	e.mul.Do(0, cfg.X0Sign, cfg.Y0Sign)
	e.mul.Do(1, cfg.X1Sign, cfg.Y1Sign)
}

func (e *Emulator) mmaArp(xy uint16, i, j uint16, a insts.Reg, cfg insts.MmaConfig) {
	e.productSum(cfg.Base, a, productSumConfig{cfg.AlignP0, cfg.SubP0}, productSumConfig{cfg.AlignP1, cfg.SubP1})
	ui, uj := e.addr.ArpRnUnits(xy)
	si, sj := e.addr.ArpSteps(i, j)
	oi, oj := e.addr.ArpOffsets(i, j)
	x := e.addr.RnAddressAndModify(ui, si, cfg.DmodI)
	y := e.addr.RnAddressAndModify(uj, sj, cfg.DmodJ)
	e.regs.X[0] = e.mem.DataRead(x)
	e.regs.Y[0] = e.mem.DataRead(y)
	e.regs.X[1] = e.mem.DataRead(e.addr.OffsetAddress(ui, x, oi, cfg.DmodI))
	e.regs.Y[1] = e.mem.DataRead(e.addr.OffsetAddress(uj, y, oj, cfg.DmodJ))
	e.mul.Do(0, cfg.X0Sign, cfg.Y0Sign)
	e.mul.Do(1, cfg.X1Sign, cfg.Y1Sign)
}

func (e *Emulator) mmaMxXy(y uint16, ys uint16, a insts.Reg, cfg insts.MmaConfig, loadY1 bool) {
	e.productSum(cfg.Base, a, productSumConfig{cfg.AlignP0, cfg.SubP0}, productSumConfig{cfg.AlignP1, cfg.SubP1})
	e.regs.X[0], e.regs.X[1] = e.regs.X[1], e.regs.X[0]
	value := e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(y), e.addr.ArStep(ys), false))
	if loadY1 {
		e.regs.Y[1] = value
	} else {
		e.regs.Y[0] = value
	}
	e.mul.Do(0, cfg.X0Sign, cfg.Y0Sign)
	e.mul.Do(1, cfg.X1Sign, cfg.Y1Sign)
}

func (e *Emulator) mmaMyMy(x uint16, xs uint16, a insts.Reg, cfg insts.MmaConfig) {
	e.productSum(cfg.Base, a, productSumConfig{cfg.AlignP0, cfg.SubP0}, productSumConfig{cfg.AlignP1, cfg.SubP1})
	unit := e.addr.ArRnUnit(x)
	address := e.addr.RnAddressAndModify(unit, e.addr.ArStep(xs), false)
	e.regs.X[0] = e.mem.DataRead(address)
	e.regs.X[1] = e.mem.DataRead(e.addr.OffsetAddress(unit, address, e.addr.ArOffset(xs), false))
	e.mul.Do(0, cfg.X0Sign, cfg.Y0Sign)
	e.mul.Do(1, cfg.X1Sign, cfg.Y1Sign)
}

func (e *Emulator) mmaMovAxhBxh(u, v insts.Reg, w uint16, ws uint16, a insts.Reg, cfg insts.MmaConfig) {
	unit := e.addr.ArRnUnit(w)
	address := e.addr.RnAddressAndModify(unit, e.addr.ArStep(ws), false)
	uValue := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(u), false) >> 16)
	vValue := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(v), false) >> 16)
	// keep the order like this
	e.mem.DataWrite(e.addr.OffsetAddress(unit, address, e.addr.ArOffset(ws), false), vValue)
	e.mem.DataWrite(address, uValue)
	e.productSum(cfg.Base, a, productSumConfig{cfg.AlignP0, cfg.SubP0}, productSumConfig{cfg.AlignP1, cfg.SubP1})
	e.regs.X[0], e.regs.X[1] = e.regs.X[1], e.regs.X[0]
	e.mul.Do(0, cfg.X0Sign, cfg.Y0Sign)
	e.mul.Do(1, cfg.X1Sign, cfg.Y1Sign)
}

func (e *Emulator) mmaMovArRn2(w uint16, ws uint16, a insts.Reg, cfg insts.MmaConfig) {
	unit := e.addr.ArRnUnit(w)
	address := e.addr.RnAddressAndModify(unit, e.addr.ArStep(ws), false)
	uValue := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(a), false) >> 16)
	vValue := uint16(e.alu.SaturateNoFlag(e.alu.GetAcc(insts.CounterAcc(a)), false) >> 16)
	// keep the order like this
	e.mem.DataWrite(e.addr.OffsetAddress(unit, address, e.addr.ArOffset(ws), false), vValue)
	e.mem.DataWrite(address, uValue)
	e.productSum(cfg.Base, a, productSumConfig{cfg.AlignP0, cfg.SubP0}, productSumConfig{cfg.AlignP1, cfg.SubP1})
	e.regs.X[0], e.regs.X[1] = e.regs.X[1], e.regs.X[0]
	e.mul.Do(0, cfg.X0Sign, cfg.Y0Sign)
	e.mul.Do(1, cfg.X1Sign, cfg.Y1Sign)
}

func (e *Emulator) addhp(a uint16, as uint16, b insts.Reg, c insts.Reg) {
	address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(a), e.addr.ArStep(as), false)
	value := insts.SignExtend(uint64(e.mem.DataRead(address))<<16|0x8000, 32)
	p := e.mul.ToBus40(b)
	result := e.alu.AddSub(value, p, false)
	e.alu.SetAcc(c, result)
}
