package emu

import "github.com/sarchlab/teaksim/insts"

// almGeneric applies one alm/alu operation between an already-extended
// operand and an accumulator.
func (e *Emulator) almGeneric(op insts.AlmOp, a uint64, b insts.Reg) {
	regs := e.regs
	switch op {
	case insts.AlmOr:
		value := e.alu.GetAcc(b)
		value |= a
		value = insts.SignExtend(value, 40)
		e.alu.SetAccNoSaturation(b, value)
	case insts.AlmAnd:
		value := e.alu.GetAcc(b)
		value &= a
		value = insts.SignExtend(value, 40)
		e.alu.SetAccNoSaturation(b, value)
	case insts.AlmXor:
		value := e.alu.GetAcc(b)
		value ^= a
		value = insts.SignExtend(value, 40)
		e.alu.SetAccNoSaturation(b, value)
	case insts.AlmTst0:
		value := e.alu.GetAcc(b) & 0xFFFF
		regs.Fz = b2u(value&a == 0)
	case insts.AlmTst1:
		value := e.alu.GetAcc(b) & 0xFFFF
		regs.Fz = b2u(value&^a == 0)
	case insts.AlmCmp, insts.AlmCmpu, insts.AlmSub, insts.AlmSubl,
		insts.AlmSubh, insts.AlmAdd, insts.AlmAddl, insts.AlmAddh:
		value := e.alu.GetAcc(b)
		sub := !(op == insts.AlmAdd || op == insts.AlmAddl || op == insts.AlmAddh)
		result := e.alu.AddSub(value, a, sub)
		if op == insts.AlmCmp || op == insts.AlmCmpu {
			e.alu.SetAccFlag(result)
		} else {
			e.alu.SetAcc(b, result)
		}
	case insts.AlmMsu:
		value := e.alu.GetAcc(b)
		product := e.mul.ToBus40(insts.RegP0)
		result := e.alu.AddSub(value, product, true)
		e.alu.SetAcc(b, result)

		regs.X[0] = uint16(a)
		e.mul.Do(0, true, true)
	case insts.AlmSqra:
		value := e.alu.GetAcc(b)
		product := e.mul.ToBus40(insts.RegP0)
		result := e.alu.AddSub(value, product, false)
		e.alu.SetAcc(b, result)
		fallthrough
	case insts.AlmSqr:
		regs.X[0] = uint16(a)
		regs.Y[0] = uint16(a)
		e.mul.Do(0, true, true)
	default:
		e.fault(FaultDecode, "bad alm operation")
	}
}

// extendOperandForAlm widens a 16-bit operand the way the operation
// expects: sign-extended for the signed adds/subs, shifted for the
// high-half forms, zero-extended otherwise.
func extendOperandForAlm(op insts.AlmOp, a uint16) uint64 {
	switch op {
	case insts.AlmCmp, insts.AlmSub, insts.AlmAdd:
		return insts.SignExtend16(a)
	case insts.AlmAddh, insts.AlmSubh:
		return insts.SignExtend(uint64(a)<<16, 32)
	default:
		return uint64(a)
	}
}

func (e *Emulator) almMemImm8(op insts.AlmOp, addr uint16, b insts.Reg) {
	value := e.loadMemImm8(addr)
	e.almGeneric(op, extendOperandForAlm(op, value), b)
}

func (e *Emulator) almRn(op insts.AlmOp, unit int, step insts.Step, b insts.Reg) {
	address := e.addr.RnAddressAndModify(unit, step, false)
	value := e.mem.DataRead(address)
	e.almGeneric(op, extendOperandForAlm(op, value), b)
}

func (e *Emulator) almReg(op insts.AlmOp, a insts.Reg, b insts.Reg) {
	var value uint64
	checkBus40Allowed := func() {
		switch op {
		case insts.AlmOr, insts.AlmAnd, insts.AlmXor,
			insts.AlmAdd, insts.AlmCmp, insts.AlmSub:
		default:
			e.fault(FaultDecode, "40-bit operand not allowed for this alm operation")
		}
	}
	switch a {
	case insts.RegP:
		checkBus40Allowed()
		value = e.mul.ToBus40(insts.RegP0)
	case insts.RegA0, insts.RegA1:
		checkBus40Allowed()
		value = e.alu.GetAcc(a)
	default:
		value = extendOperandForAlm(op, e.regToBus16(a, false))
	}
	e.almGeneric(op, value, b)
}

func (e *Emulator) almR6(op insts.AlmOp, b insts.Reg) {
	value := e.regs.R[6]
	e.almGeneric(op, extendOperandForAlm(op, value), b)
}

// aluImm8 is the byte-immediate alu form. The and flavor leaves bits
// 8..15 of the accumulator untouched while the flags pretend otherwise.
func (e *Emulator) aluImm8(op insts.AlmOp, imm uint16, b insts.Reg) {
	var andBackup uint64
	if op == insts.AlmAnd {
		andBackup = e.alu.GetAcc(b) & 0xFF00
	}
	e.almGeneric(op, extendOperandForAlm(op, imm), b)
	if op == insts.AlmAnd {
		andNew := e.alu.GetAcc(b) & 0xFFFF_FFFF_FFFF_00FF
		e.alu.SetAccSimple(b, andBackup|andNew)
	}
}

// genericAlb applies one alb operation to a 16-bit destination value.
func (e *Emulator) genericAlb(op insts.AlbOp, a, b uint16) uint16 {
	regs := e.regs
	var result uint16
	switch op {
	case insts.AlbSet:
		result = a | b
		regs.Fm = result >> 15
	case insts.AlbRst:
		result = ^a & b
		regs.Fm = result >> 15
	case insts.AlbChng:
		result = a ^ b
		regs.Fm = result >> 15
	case insts.AlbAddv:
		r := uint32(a) + uint32(b)
		regs.Fc[0] = b2u(r>>16 != 0)
		regs.Fm = uint16((uint32(insts.SignExtend(uint64(b), 16)) + uint32(insts.SignExtend(uint64(a), 16))) >> 31)
		result = uint16(r)
	case insts.AlbTst0:
		result = b2u(a&b != 0)
	case insts.AlbTst1:
		result = b2u(a&^b != 0)
	case insts.AlbCmpv, insts.AlbSubv:
		r := uint32(b) - uint32(a)
		regs.Fc[0] = b2u(r>>16 != 0)
		regs.Fm = uint16((uint32(insts.SignExtend(uint64(b), 16)) - uint32(insts.SignExtend(uint64(a), 16))) >> 31)
		result = uint16(r)
	default:
		e.fault(FaultDecode, "bad alb operation")
	}
	regs.Fz = b2u(result == 0)
	return result
}

func isAlbModifying(op insts.AlbOp) bool {
	switch op {
	case insts.AlbSet, insts.AlbRst, insts.AlbChng, insts.AlbAddv, insts.AlbSubv:
		return true
	default:
		return false
	}
}

func (e *Emulator) albMemImm8(op insts.AlbOp, imm uint16, addr uint16) {
	bv := e.loadMemImm8(addr)
	result := e.genericAlb(op, imm, bv)
	if isAlbModifying(op) {
		e.storeMemImm8(addr, result)
	}
}

func (e *Emulator) albRn(op insts.AlbOp, imm uint16, unit int, step insts.Step) {
	address := e.addr.RnAddressAndModify(unit, step, false)
	bv := e.mem.DataRead(address)
	result := e.genericAlb(op, imm, bv)
	if isAlbModifying(op) {
		e.mem.DataWrite(address, result)
	}
}

func (e *Emulator) albReg(op insts.AlbOp, imm uint16, b insts.Reg) {
	regs := e.regs
	var bv uint16
	switch b {
	case insts.RegP:
		bv = uint16(e.mul.ToBus40(insts.RegP0) >> 16)
	case insts.RegA0, insts.RegA1:
		e.fault(FaultDecode, "alb on a whole accumulator")
	case insts.RegA0l, insts.RegA1l, insts.RegB0l, insts.RegB1l:
		bv = uint16(e.alu.GetAcc(b))
	case insts.RegA0h, insts.RegA1h, insts.RegB0h, insts.RegB1h:
		bv = uint16(e.alu.GetAcc(b) >> 16)
	default:
		bv = e.regToBus16(b, false)
	}
	result := e.genericAlb(op, imm, bv)
	if !isAlbModifying(op) {
		return
	}
	// Accumulator halves bypass the regular bus: no flag or saturation
	// side effects on the store.
	switch b {
	case insts.RegA0l:
		regs.A[0] = regs.A[0]&0xFFFF_FFFF_FFFF_0000 | uint64(result)
	case insts.RegA1l:
		regs.A[1] = regs.A[1]&0xFFFF_FFFF_FFFF_0000 | uint64(result)
	case insts.RegB0l:
		regs.B[0] = regs.B[0]&0xFFFF_FFFF_FFFF_0000 | uint64(result)
	case insts.RegB1l:
		regs.B[1] = regs.B[1]&0xFFFF_FFFF_FFFF_0000 | uint64(result)
	case insts.RegA0h:
		regs.A[0] = regs.A[0]&0xFFFF_FFFF_0000_FFFF | uint64(result)<<16
	case insts.RegA1h:
		regs.A[1] = regs.A[1]&0xFFFF_FFFF_0000_FFFF | uint64(result)<<16
	case insts.RegB0h:
		regs.B[0] = regs.B[0]&0xFFFF_FFFF_0000_FFFF | uint64(result)<<16
	case insts.RegB1h:
		regs.B[1] = regs.B[1]&0xFFFF_FFFF_0000_FFFF | uint64(result)<<16
	default:
		e.regFromBus16(b, result)
	}
}

func (e *Emulator) albR6(op insts.AlbOp, imm uint16) {
	result := e.genericAlb(op, imm, e.regs.R[6])
	if isAlbModifying(op) {
		e.regs.R[6] = result
	}
}

func (e *Emulator) albSttMod(op insts.AlbOp, imm uint16, b insts.Reg) {
	bv := e.regToBus16(b, false)
	result := e.genericAlb(op, imm, bv)
	if isAlbModifying(op) {
		e.regFromBus16(b, result)
	}
}

// productSumConfig mirrors one half of a dual product accumulation.
type productSumConfig struct {
	align bool
	sub   bool
}

var (
	pAdd  = productSumConfig{false, false}
	pAdda = productSumConfig{true, false}
	pSub  = productSumConfig{false, true}
	pSuba = productSumConfig{true, true}
)

// productSum accumulates both product buses onto a base with
// carry/overflow merging across the two sequential adds.
func (e *Emulator) productSum(base insts.SumBase, acc insts.Reg, p0, p1 productSumConfig) {
	regs := e.regs
	valueA := e.mul.ToBus40(insts.RegP0)
	valueB := e.mul.ToBus40(insts.RegP1)
	if p0.align {
		valueA = insts.SignExtend(valueA>>16, 24)
	}
	if p1.align {
		valueB = insts.SignExtend(valueB>>16, 24)
	}
	var valueC uint64
	switch base {
	case insts.SumZero:
		valueC = 0
	case insts.SumAcc:
		valueC = e.alu.GetAcc(acc)
	case insts.SumSv:
		valueC = insts.SignExtend(uint64(regs.Sv)<<16, 32)
	case insts.SumSvRnd:
		valueC = insts.SignExtend(uint64(regs.Sv)<<16, 32) | 0x8000
	}
	result := e.alu.AddSub(valueC, valueA, p0.sub)
	tempC := regs.Fc[0]
	tempV := regs.Fv
	result = e.alu.AddSub(result, valueB, p1.sub)
	if p0.sub == p1.sub {
		regs.Fc[0] |= tempC
		regs.Fv |= tempV
	} else {
		regs.Fc[0] ^= tempC
		regs.Fv ^= tempV
	}
	e.alu.SetAcc(acc, result)
}

// moda is the conditional single-accumulator modify family.
func (e *Emulator) moda(op insts.ModaOp, a insts.Reg, cond insts.Cond) {
	regs := e.regs
	if !regs.ConditionPass(cond) {
		return
	}
	switch op {
	case insts.ModaShr:
		e.alu.ShiftBus40(e.alu.GetAcc(a), 0xFFFF, a)
	case insts.ModaShr4:
		e.alu.ShiftBus40(e.alu.GetAcc(a), 0xFFFC, a)
	case insts.ModaShl:
		e.alu.ShiftBus40(e.alu.GetAcc(a), 1, a)
	case insts.ModaShl4:
		e.alu.ShiftBus40(e.alu.GetAcc(a), 4, a)
	case insts.ModaRor:
		value := e.alu.GetAcc(a) & accMask
		oldFc := regs.Fc[0]
		regs.Fc[0] = uint16(value & 1)
		value >>= 1
		value |= uint64(oldFc) << 39
		value = insts.SignExtend(value, 40)
		e.alu.SetAccNoSaturation(a, value)
	case insts.ModaRol:
		value := e.alu.GetAcc(a)
		oldFc := regs.Fc[0]
		regs.Fc[0] = uint16(value >> 39 & 1)
		value <<= 1
		value |= uint64(oldFc)
		value = insts.SignExtend(value, 40)
		e.alu.SetAccNoSaturation(a, value)
	case insts.ModaClr:
		e.alu.SetAcc(a, 0)
	case insts.ModaNot:
		e.alu.SetAccNoSaturation(a, ^e.alu.GetAcc(a))
	case insts.ModaNeg:
		value := e.alu.GetAcc(a)
		regs.Fc[0] = b2u(value != 0)
		regs.Fv = b2u(value == 0xFFFF_FF80_0000_0000)
		if regs.Fv == 1 {
			regs.Flv = 1
		}
		result := insts.SignExtend(^value+1, 40)
		e.alu.SetAcc(a, result)
	case insts.ModaRnd:
		result := e.alu.AddSub(e.alu.GetAcc(a), 0x8000, false)
		e.alu.SetAcc(a, result)
	case insts.ModaPacr:
		result := e.alu.AddSub(e.mul.ToBus40(insts.RegP0), 0x8000, false)
		e.alu.SetAcc(a, result)
	case insts.ModaClrr:
		e.alu.SetAcc(a, 0x8000)
	case insts.ModaInc:
		result := e.alu.AddSub(e.alu.GetAcc(a), 1, false)
		e.alu.SetAcc(a, result)
	case insts.ModaDec:
		result := e.alu.AddSub(e.alu.GetAcc(a), 1, true)
		e.alu.SetAcc(a, result)
	case insts.ModaCopy:
		// Only the a bank supports the cross copy.
		src := insts.RegA0
		if a == insts.RegA0 {
			src = insts.RegA1
		}
		e.alu.SetAcc(a, e.alu.GetAcc(src))
	default:
		e.fault(FaultDecode, "bad moda operation")
	}
}

// filterDoubleClr rewrites the second target of the double-clear forms
// so the pair never aliases one accumulator.
func filterDoubleClr(a uint16, b uint16) uint16 {
	switch a {
	case 0:
		return 1
	case 1:
		return 0
	case 2:
		if b == 2 {
			return 3
		}
		return b
	default:
		if b == 1 {
			return 1
		}
		return 0
	}
}

func (e *Emulator) norm(a insts.Reg, unit int, step insts.Step) {
	regs := e.regs
	if regs.Fn != 0 {
		return
	}
	value := e.alu.GetAcc(a)
	regs.Fv = b2u(value != insts.SignExtend(value, 39))
	if regs.Fv == 1 {
		regs.Flv = 1
	}
	value <<= 1
	regs.Fc[0] = uint16(value >> 40 & 1)
	value = insts.SignExtend(value, 40)
	e.alu.SetAccNoSaturation(a, value)
	e.addr.RnAndModify(unit, step, false)
	regs.Fr = b2u(regs.R[unit] == 0)
}

func (e *Emulator) divs(addr uint16, b insts.Reg) {
	da := e.loadMemImm8(addr)
	db := e.alu.GetAcc(b)
	value := db - uint64(da)<<15
	if value>>63 != 0 {
		e.alu.SetAccNoSaturation(b, insts.SignExtend(db<<1, 40))
	} else {
		e.alu.SetAccNoSaturation(b, insts.SignExtend(value<<1+1, 40))
	}
}

func (e *Emulator) expStore(b insts.Reg) {
	e.alu.SetAccSimple(b, insts.SignExtend16(e.regs.Sv))
}

func (e *Emulator) expAcc(a insts.Reg) {
	e.regs.Sv = e.alu.Exp(e.alu.GetAcc(a))
}

func (e *Emulator) expRn(unit int, step insts.Step) {
	address := e.addr.RnAddressAndModify(unit, step, false)
	value := insts.SignExtend(uint64(e.mem.DataRead(address))<<16, 32)
	e.regs.Sv = e.alu.Exp(value)
}

func (e *Emulator) expReg(a insts.Reg) {
	var value uint64
	if a == insts.RegA0 || a == insts.RegA1 {
		value = e.alu.GetAcc(a)
	} else {
		// p follows the usual bus rule here.
		value = insts.SignExtend(uint64(e.regToBus16(a, false))<<16, 32)
	}
	e.regs.Sv = e.alu.Exp(value)
}

func (e *Emulator) expR6() {
	value := insts.SignExtend(uint64(e.regs.R[6])<<16, 32)
	e.regs.Sv = e.alu.Exp(value)
}

func (e *Emulator) lim(a, b insts.Reg) {
	value := e.alu.GetAcc(a)
	value = e.alu.SaturateUnconditional(value)
	e.alu.SetAccNoSaturation(b, value)
}

func (e *Emulator) tst4b(b uint16, bs uint16) {
	address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(b), e.addr.ArStep(bs), false)
	value := e.mem.DataRead(address)
	bit := e.alu.GetAcc(insts.RegA0) & 0xF
	r := b2u(value>>bit&1 != 0)
	e.regs.Fz = r
	e.regs.Fc[0] = r
}

func (e *Emulator) tst4bAx(b uint16, bs uint16, c insts.Reg) {
	regs := e.regs
	a := e.alu.GetAcc(insts.RegA0)
	bit := a & 0xF
	fv, flv, fm, fn, fe := regs.Fv, regs.Flv, regs.Fm, regs.Fn, regs.Fe
	e.alu.ShiftBus40(a, regs.Sv, c)
	regs.Fc[1] = regs.Fc[0]
	regs.Fv, regs.Flv, regs.Fm, regs.Fn, regs.Fe = fv, flv, fm, fn, fe
	address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(b), e.addr.ArStep(bs), false)
	value := e.mem.DataRead(address)
	r := b2u(value>>bit&1 != 0)
	regs.Fz = r
	regs.Fc[0] = r
}

func (e *Emulator) tstbBit(value uint16, bit uint16) {
	e.regs.Fz = value >> bit & 1
}
