package emu

import "github.com/sarchlab/teaksim/insts"

// execute dispatches one decoded instruction. Args slots follow the
// operand order of each form's encoding row.
func (e *Emulator) execute(inst insts.Instruction, opcode uint16, exp uint16) {
	regs := e.regs
	args := inst.Args
	switch inst.Op {
	case insts.OpUndefined:
		e.fault(FaultDecode, "undefined opcode")
	case insts.OpNop:
		// literally nothing

	case insts.OpTrap, insts.OpRetd, insts.OpRetid, insts.OpRetidc,
		insts.OpPushPrpage, insts.OpPopPrpage,
		insts.OpMovDvm, insts.OpMovDvmToAb,
		insts.OpMovPrpageAbl, insts.OpMovPrpageToAbl:
		e.fault(FaultDecode, "unimplemented instruction")

	case insts.OpCntxS:
		e.contextStore()
	case insts.OpCntxR:
		e.contextRestore()
	case insts.OpDint:
		regs.Ie = 0
	case insts.OpEint:
		regs.Ie = 1
	case insts.OpBreak:
		e.breakLoop()
	case insts.OpBankrAll:
		regs.SwapAllArArp()
	case insts.OpBankrAr:
		regs.SwapAr(int(args[0] & 1))
	case insts.OpBankrArp:
		regs.SwapArp(int(args[0] & 3))
	case insts.OpBankrArArp:
		regs.SwapAr(int(args[0] & 1))
		regs.SwapArp(int(args[1] & 3))
	case insts.OpBanke:
		e.banke(args[0])

	case insts.OpVtrshr:
		e.vtrshr()
	case insts.OpVtrclr0:
		regs.Vtr[0] = 0
	case insts.OpVtrclr1:
		regs.Vtr[1] = 0
	case insts.OpVtrclr:
		regs.Vtr[0] = 0
		regs.Vtr[1] = 0
	case insts.OpVtrmov0:
		e.alu.SetAcc(insts.AxlFromBits(args[0]), uint64(regs.Vtr[0]))
	case insts.OpVtrmov1:
		e.alu.SetAcc(insts.AxlFromBits(args[0]), uint64(regs.Vtr[1]))
	case insts.OpVtrmov:
		e.alu.SetAcc(insts.AxlFromBits(args[0]),
			uint64(regs.Vtr[1]&0xFF00|regs.Vtr[0]>>8))

	case insts.OpClrp0:
		e.mul.FromBus32(insts.RegP0, 0)
	case insts.OpClrp1:
		e.mul.FromBus32(insts.RegP1, 0)
	case insts.OpClrp:
		e.mul.FromBus32(insts.RegP0, 0)
		e.mul.FromBus32(insts.RegP1, 0)

	case insts.OpBkreprstMemsp:
		e.restoreBlockRepeat(&regs.Sp)
	case insts.OpBkrepstoMemsp:
		e.storeBlockRepeat(&regs.Sp)
	case insts.OpBkreprst:
		e.restoreBlockRepeat(&regs.R[e.addr.ArRnUnit(args[0])])
	case insts.OpBkrepsto:
		e.storeBlockRepeat(&regs.R[e.addr.ArRnUnit(args[0])])

	case insts.OpPushR6:
		e.pushWord(regs.R[6])
	case insts.OpPushRepc:
		e.pushWord(regs.Repc)
	case insts.OpPushX0:
		e.pushWord(regs.X[0])
	case insts.OpPushX1:
		e.pushWord(regs.X[1])
	case insts.OpPushY1:
		e.pushWord(regs.Y[1])
	case insts.OpPopR6:
		regs.R[6] = e.popWord()
	case insts.OpPopRepc:
		regs.Repc = e.popWord()
	case insts.OpPopX0:
		regs.X[0] = e.popWord()
	case insts.OpPopX1:
		regs.X[1] = e.popWord()
	case insts.OpPopY1:
		regs.Y[1] = e.popWord()
	case insts.OpPushImm16:
		e.pushWord(exp)
	case insts.OpPushReg:
		e.pushReg(insts.RegisterFromBits(args[0]))
	case insts.OpPushAbe:
		e.pushAbe(insts.AbeFromBits(args[0]))
	case insts.OpPushArArpSttMod:
		e.pushWord(e.regToBus16(insts.ArArpSttModFromBits(args[0]), false))
	case insts.OpPushPx:
		e.pushPx(insts.PxFromBits(args[0]))
	case insts.OpPushaAx:
		e.pusha(insts.AxFromBits(args[0]))
	case insts.OpPushaBx:
		e.pusha(insts.BxFromBits(args[0]))
	case insts.OpPopReg:
		e.popReg(insts.RegisterFromBits(args[0]))
	case insts.OpPopAbe:
		e.popAbe(insts.AbeFromBits(args[0]))
	case insts.OpPopArArpSttMod:
		e.regFromBus16(insts.ArArpSttModFromBits(args[0]), e.popWord())
	case insts.OpPopBx:
		e.regFromBus16(insts.BxFromBits(args[0]), e.popWord())
	case insts.OpPopPx:
		e.popPx(insts.PxFromBits(args[0]))
	case insts.OpPopa:
		e.popa(insts.AbFromBits(args[0]))

	case insts.OpMovA0hStepi0:
		regs.Stepi0 = e.regToBus16(insts.RegA0h, true)
	case insts.OpMovA0hStepj0:
		regs.Stepj0 = e.regToBus16(insts.RegA0h, true)
	case insts.OpMovStepi0A0h:
		e.regFromBus16(insts.RegA0h, regs.Stepi0)
	case insts.OpMovStepj0A0h:
		e.regFromBus16(insts.RegA0h, regs.Stepj0)
	case insts.OpMovMixpR6:
		regs.R[6] = regs.Mixp
	case insts.OpMovR6Mixp:
		regs.Mixp = regs.R[6]
	case insts.OpMovMemspR6:
		regs.R[6] = e.mem.DataRead(regs.Sp)
	case insts.OpMovP0hR6:
		regs.R[6] = uint16(e.mul.ToBus40(insts.RegP0) >> 16)

	case insts.OpExpR6:
		e.expR6()
	case insts.OpExpR6Ax:
		e.expR6()
		e.expStore(insts.AxFromBits(args[0]))
	case insts.OpExpBx:
		e.expAcc(insts.BxFromBits(args[0]))
	case insts.OpExpBxAx:
		e.expAcc(insts.BxFromBits(args[0]))
		e.expStore(insts.AxFromBits(args[1]))
	case insts.OpExpRn:
		e.expRn(int(args[0]&7), insts.StepFromZIDS(args[1]))
	case insts.OpExpRnAx:
		e.expRn(int(args[0]&7), insts.StepFromZIDS(args[1]))
		e.expStore(insts.AxFromBits(args[2]))
	case insts.OpExpReg:
		e.expReg(insts.RegisterFromBits(args[0]))
	case insts.OpExpRegAx:
		e.expReg(insts.RegisterFromBits(args[0]))
		e.expStore(insts.AxFromBits(args[1]))
	case insts.OpLim:
		e.lim(insts.AxFromBits(args[0]), insts.AxFromBits(args[1]))

	case insts.OpRepImm:
		e.repeat(args[0])
	case insts.OpRepReg:
		e.repeat(e.regToBus16(insts.RegisterFromBits(args[0]), false))
	case insts.OpRepR6:
		e.repeat(regs.R[6])

	case insts.OpCmpB0B1:
		e.alu.SetAccFlag(e.alu.AddSub(e.alu.GetAcc(insts.RegB1), e.alu.GetAcc(insts.RegB0), true))
	case insts.OpCmpB1B0:
		e.alu.SetAccFlag(e.alu.AddSub(e.alu.GetAcc(insts.RegB0), e.alu.GetAcc(insts.RegB1), true))
	case insts.OpCmpAxBx:
		e.alu.SetAccFlag(e.alu.AddSub(e.alu.GetAcc(insts.BxFromBits(args[1])), e.alu.GetAcc(insts.AxFromBits(args[0])), true))
	case insts.OpCmpBxAx:
		e.alu.SetAccFlag(e.alu.AddSub(e.alu.GetAcc(insts.AxFromBits(args[1])), e.alu.GetAcc(insts.BxFromBits(args[0])), true))
	case insts.OpCmpP1:
		e.alu.SetAccFlag(e.alu.AddSub(e.alu.GetAcc(insts.AxFromBits(args[0])), e.mul.ToBus40(insts.RegP1), true))

	case insts.OpMacX1to0:
		e.macX1to0(insts.AxFromBits(args[0]))
	case insts.OpMac1:
		e.mac1(args[0], args[1], args[2], insts.AxFromBits(args[3]))
	case insts.OpCallaAxl:
		e.callaAxl(insts.AxlFromBits(args[0]))
	case insts.OpCallaAx:
		e.callaAx(insts.AxFromBits(args[0]))
	case insts.OpMovpdw:
		e.movpdw(insts.AxFromBits(args[0]))
	case insts.OpMovPcAx:
		e.movPc(insts.AxFromBits(args[0]))
	case insts.OpMovPcBx:
		e.movPc(insts.BxFromBits(args[0]))

	case insts.OpPacr1:
		result := e.alu.AddSub(e.mul.ToBus40(insts.RegP1), 0x8000, false)
		e.alu.SetAcc(insts.AxFromBits(args[0]), result)
	case insts.OpAddP1:
		b := insts.AxFromBits(args[0])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.mul.ToBus40(insts.RegP1), false))
	case insts.OpSubP1:
		b := insts.AxFromBits(args[0])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.mul.ToBus40(insts.RegP1), true))

	case insts.OpAddAbBx:
		b := insts.BxFromBits(args[1])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.alu.GetAcc(insts.AbFromBits(args[0])), false))
	case insts.OpAddBxAx:
		b := insts.AxFromBits(args[1])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.alu.GetAcc(insts.BxFromBits(args[0])), false))
	case insts.OpAddPxBx:
		b := insts.BxFromBits(args[1])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.mul.ToBus40(insts.PxFromBits(args[0])), false))
	case insts.OpSubAbBx:
		b := insts.BxFromBits(args[1])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.alu.GetAcc(insts.AbFromBits(args[0])), true))
	case insts.OpSubBxAx:
		b := insts.AxFromBits(args[1])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.alu.GetAcc(insts.BxFromBits(args[0])), true))
	case insts.OpSubPxBx:
		b := insts.BxFromBits(args[1])
		e.alu.SetAcc(b, e.alu.AddSub(e.alu.GetAcc(b), e.mul.ToBus40(insts.PxFromBits(args[0])), true))

	case insts.OpAddP0P1:
		e.productSum(insts.SumZero, insts.AbFromBits(args[0]), pAdd, pAdd)
	case insts.OpAddP0P1a:
		e.productSum(insts.SumZero, insts.AbFromBits(args[0]), pAdd, pAdda)
	case insts.OpAdd3P0P1:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pAdd, pAdd)
	case insts.OpAdd3P0P1a:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pAdd, pAdda)
	case insts.OpAdd3P0aP1a:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pAdda, pAdda)
	case insts.OpSubP0P1:
		e.productSum(insts.SumZero, insts.AbFromBits(args[0]), pAdd, pSub)
	case insts.OpSubP0P1a:
		e.productSum(insts.SumZero, insts.AbFromBits(args[0]), pAdd, pSuba)
	case insts.OpSub3P0P1:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pSub, pSub)
	case insts.OpSub3P0P1a:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pSub, pSuba)
	case insts.OpSub3P0aP1a:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pSuba, pSuba)
	case insts.OpAddsubP0P1:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pAdd, pSub)
	case insts.OpAddsubP1P0:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pSub, pAdd)
	case insts.OpAddsubP0P1a:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pAdd, pSuba)
	case insts.OpAddsubP1aP0:
		e.productSum(insts.SumAcc, insts.AbFromBits(args[0]), pSub, pAdda)

	case insts.OpClrAbAb:
		b := filterDoubleClr(args[0], args[1])
		e.alu.SetAcc(insts.AbFromBits(args[0]), 0)
		e.alu.SetAcc(insts.AbFromBits(b), 0)
	case insts.OpClrrAbAb:
		b := filterDoubleClr(args[0], args[1])
		e.alu.SetAcc(insts.AbFromBits(args[0]), 0x8000)
		e.alu.SetAcc(insts.AbFromBits(b), 0x8000)

	case insts.OpAndAbAbAx:
		value := e.alu.GetAcc(insts.AbFromBits(args[0])) & e.alu.GetAcc(insts.AbFromBits(args[1]))
		e.alu.SetAccNoSaturation(insts.AxFromBits(args[2]), value)
	case insts.OpOrAbAxAx:
		value := e.alu.GetAcc(insts.AbFromBits(args[0])) | e.alu.GetAcc(insts.AxFromBits(args[1]))
		e.alu.SetAccNoSaturation(insts.AxFromBits(args[2]), value)
	case insts.OpOrAxBxAx:
		value := e.alu.GetAcc(insts.AxFromBits(args[0])) | e.alu.GetAcc(insts.BxFromBits(args[1]))
		e.alu.SetAccNoSaturation(insts.AxFromBits(args[2]), value)
	case insts.OpOrBxBxAx:
		value := e.alu.GetAcc(insts.BxFromBits(args[0])) | e.alu.GetAcc(insts.BxFromBits(args[1]))
		e.alu.SetAccNoSaturation(insts.AxFromBits(args[2]), value)

	case insts.OpRet:
		e.ret(insts.Cond(args[0]))
	case insts.OpReti:
		e.reti(insts.Cond(args[0]))
	case insts.OpRetic:
		e.retic(insts.Cond(args[0]))
	case insts.OpRets:
		e.rets(args[0])
	case insts.OpBr:
		e.br(exp, args[0], insts.Cond(args[1]))
	case insts.OpBrr:
		e.brr(args[0], insts.Cond(args[1]))
	case insts.OpCall:
		e.call(exp, args[0], insts.Cond(args[1]))
	case insts.OpCallr:
		e.callr(args[0], insts.Cond(args[1]))

	case insts.OpBkrepImm:
		e.bkrepImm(args[0], exp)
	case insts.OpBkrepReg:
		e.bkrepReg(insts.RegisterFromBits(args[0]), exp, args[1])
	case insts.OpBkrepR6:
		e.bkrepR6(exp, args[0])

	case insts.OpLoadPage:
		regs.Page = args[0] & 0xFF
	case insts.OpLoadPs:
		regs.Ps[0] = args[0] & 3
	case insts.OpLoadStepi:
		regs.Stepi = args[0] & 0x7F
	case insts.OpLoadStepj:
		regs.Stepj = args[0] & 0x7F
	case insts.OpLoadModi:
		regs.Modi = args[0] & 0x1FF
	case insts.OpLoadModj:
		regs.Modj = args[0] & 0x1FF
	case insts.OpLoadMovpd:
		regs.Movpd = args[0] & 3
	case insts.OpLoadPs01:
		regs.Ps[0] = args[0] & 3
		regs.Ps[1] = args[0] >> 2 & 3

	case insts.OpMpyi:
		e.mpyi(args[0])
	case insts.OpSwap:
		e.swapAcc(args[0])

	case insts.OpBitrev:
		e.bitrev(int(args[0]&7), false, false)
	case insts.OpBitrevDbrv:
		e.bitrev(int(args[0]&7), false, true)
	case insts.OpBitrevEbrv:
		e.bitrev(int(args[0]&7), true, false)

	case insts.OpModr:
		unit := int(args[0] & 7)
		e.addr.RnAndModify(unit, insts.StepFromZIDS(args[1]), false)
		regs.Fr = b2u(regs.R[unit] == 0)
	case insts.OpModrDmod:
		unit := int(args[0] & 7)
		e.addr.RnAndModify(unit, insts.StepFromZIDS(args[1]), true)
		regs.Fr = b2u(regs.R[unit] == 0)
	case insts.OpModrI2:
		unit := int(args[0] & 7)
		e.addr.RnAndModify(unit, insts.StepIncrease2Mode1, false)
		regs.Fr = b2u(regs.R[unit] == 0)
	case insts.OpModrI2Dmod:
		unit := int(args[0] & 7)
		e.addr.RnAndModify(unit, insts.StepIncrease2Mode1, true)
		regs.Fr = b2u(regs.R[unit] == 0)
	case insts.OpModrD2:
		unit := int(args[0] & 7)
		e.addr.RnAndModify(unit, insts.StepDecrease2Mode1, false)
		regs.Fr = b2u(regs.R[unit] == 0)
	case insts.OpModrD2Dmod:
		unit := int(args[0] & 7)
		e.addr.RnAndModify(unit, insts.StepDecrease2Mode1, true)
		regs.Fr = b2u(regs.R[unit] == 0)
	case insts.OpModrEemod, insts.OpModrEdmod, insts.OpModrDemod, insts.OpModrDdmod:
		ui, uj := e.addr.ArpRnUnits(args[0])
		si, sj := e.addr.ArpSteps(args[1], args[2])
		dmodI := inst.Op == insts.OpModrDemod || inst.Op == insts.OpModrDdmod
		dmodJ := inst.Op == insts.OpModrEdmod || inst.Op == insts.OpModrDdmod
		e.addr.RnAndModify(ui, si, dmodI)
		e.addr.RnAndModify(uj, sj, dmodJ)

	case insts.OpNorm:
		e.norm(insts.AxFromBits(args[0]), int(args[1]&7), insts.StepFromZIDS(args[2]))
	case insts.OpDivs:
		e.divs(args[0], insts.AxFromBits(args[1]))

	case insts.OpTst4b:
		e.tst4b(args[0], args[1])
	case insts.OpTst4bAx:
		e.tst4bAx(args[0], args[1], insts.AxFromBits(args[2]))
	case insts.OpTstbMemImm8:
		e.tstbBit(e.loadMemImm8(args[0]), args[1])
	case insts.OpTstbRn:
		address := e.addr.RnAddressAndModify(int(args[0]&7), insts.StepFromZIDS(args[1]), false)
		e.tstbBit(e.mem.DataRead(address), args[2])
	case insts.OpTstbReg:
		e.tstbBit(e.regToBus16(insts.RegisterFromBits(args[0]), false), args[1])
	case insts.OpTstbR6:
		e.tstbBit(regs.R[6], args[0])
	case insts.OpTstbSttMod:
		e.tstbBit(e.regToBus16(insts.SttModFromBits(args[0]), false), exp)

	case insts.OpAlmMemImm8:
		e.almMemImm8(insts.AlmOp(args[0]), args[1], insts.AxFromBits(args[2]))
	case insts.OpAlmRn:
		e.almRn(insts.AlmOp(args[0]), int(args[1]&7), insts.StepFromZIDS(args[2]), insts.AxFromBits(args[3]))
	case insts.OpAlmRegLo, insts.OpAlmRegHi:
		e.almReg(insts.AlmOp(args[0]), insts.RegisterFromBits(args[1]), insts.AxFromBits(args[2]))
	case insts.OpAlmR6:
		e.almR6(insts.AlmOp(args[0]), insts.AxFromBits(args[1]))

	case insts.OpAluMemImm16:
		value := e.mem.DataRead(exp)
		op := insts.AluFromBits(args[0])
		e.almGeneric(op, extendOperandForAlm(op, value), insts.AxFromBits(args[1]))
	case insts.OpAluMemR7Imm16:
		value := e.loadMemR7Imm16(exp)
		op := insts.AluFromBits(args[0])
		e.almGeneric(op, extendOperandForAlm(op, value), insts.AxFromBits(args[1]))
	case insts.OpAluImm16:
		op := insts.AluFromBits(args[0])
		e.almGeneric(op, extendOperandForAlm(op, exp), insts.AxFromBits(args[1]))
	case insts.OpAluImm8:
		e.aluImm8(insts.AluFromBits(args[0]), args[1], insts.AxFromBits(args[2]))
	case insts.OpAluMemR7Imm7s:
		value := e.loadMemR7Imm7s(args[1])
		op := insts.AluFromBits(args[0])
		e.almGeneric(op, extendOperandForAlm(op, value), insts.AxFromBits(args[2]))

	case insts.OpAlbMemImm8:
		e.albMemImm8(insts.AlbOp(args[0]), exp, args[1])
	case insts.OpAlbRn:
		e.albRn(insts.AlbOp(args[0]), exp, int(args[1]&7), insts.StepFromZIDS(args[2]))
	case insts.OpAlbReg:
		e.albReg(insts.AlbOp(args[0]), exp, insts.RegisterFromBits(args[1]))
	case insts.OpAlbR6:
		e.albR6(insts.AlbOp(args[0]), exp)
	case insts.OpAlbSttMod:
		e.albSttMod(insts.AlbOp(args[0]), exp, insts.SttModFromBits(args[1]))

	case insts.OpModa4:
		e.moda(insts.ModaOp(args[0]), insts.AxFromBits(args[1]), insts.Cond(args[2]))
	case insts.OpModa3:
		e.moda(insts.Moda3FromBits(args[0]), insts.BxFromBits(args[1]), insts.Cond(args[2]))
	case insts.OpShfc:
		if regs.ConditionPass(insts.Cond(args[2])) {
			e.alu.ShiftBus40(e.alu.GetAcc(insts.AbFromBits(args[0])), regs.Sv, insts.AbFromBits(args[1]))
		}
	case insts.OpShfi:
		sv := uint16(insts.SignExtend(uint64(args[2]), 6))
		e.alu.ShiftBus40(e.alu.GetAcc(insts.AbFromBits(args[0])), sv, insts.AbFromBits(args[1]))

	case insts.OpMulR45R0123:
		e.mulR45R0123(insts.MulOp(args[0]), int(insts.R45FromBits(args[1])), insts.StepFromZIDS(args[2]),
			int(insts.R0123FromBits(args[3])), insts.StepFromZIDS(args[4]), insts.AxFromBits(args[5]))
	case insts.OpMulRnImm16:
		e.mulRnImm16(insts.MulOp(args[0]), int(args[1]&7), insts.StepFromZIDS(args[2]), exp, insts.AxFromBits(args[3]))
	case insts.OpMulY0Rn:
		e.mulY0Rn(insts.MulOp(args[0]), int(args[1]&7), insts.StepFromZIDS(args[2]), insts.AxFromBits(args[3]))
	case insts.OpMulY0Reg:
		e.mulY0Reg(insts.MulOp(args[0]), insts.RegisterFromBits(args[1]), insts.AxFromBits(args[2]))
	case insts.OpMulY0R6:
		e.mulY0R6(insts.MulOp(args[0]), insts.AxFromBits(args[1]))
	case insts.OpMulY0MemImm8:
		e.mulY0MemImm8(insts.Mul2FromBits(args[0]), args[1], insts.AxFromBits(args[2]))

	case insts.OpMsuR45R0123:
		e.msuR45R0123(int(insts.R45FromBits(args[0])), insts.StepFromZIDS(args[1]),
			int(insts.R0123FromBits(args[2])), insts.StepFromZIDS(args[3]), insts.AxFromBits(args[4]))
	case insts.OpMsuRnImm16:
		e.msuRnImm16(int(args[0]&7), insts.StepFromZIDS(args[1]), exp, insts.AxFromBits(args[2]))
	case insts.OpMsusu:
		e.msusu(args[0], args[1], insts.AxFromBits(args[2]))

	case insts.OpAddAdd:
		e.dualAddSub(args[0], args[1], args[2], insts.AbFromBits(args[3]), false, false)
	case insts.OpAddSub:
		e.dualAddSub(args[0], args[1], args[2], insts.AbFromBits(args[3]), false, true)
	case insts.OpSubAdd:
		e.dualAddSub(args[0], args[1], args[2], insts.AbFromBits(args[3]), true, false)
	case insts.OpSubSub:
		e.dualAddSub(args[0], args[1], args[2], insts.AbFromBits(args[3]), true, true)
	case insts.OpAddSubSv:
		e.addSubSv(args[0], args[1], insts.AbFromBits(args[2]), true)
	case insts.OpSubAddSv:
		e.addSubSv(args[0], args[1], insts.AbFromBits(args[2]), false)
	case insts.OpSubAddIMovJSv:
		e.subAddMovSv(args[0], args[1], args[2], insts.AbFromBits(args[3]), true)
	case insts.OpSubAddJMovISv:
		e.subAddMovSv(args[0], args[1], args[2], insts.AbFromBits(args[3]), false)
	case insts.OpAddSubIMovJ:
		e.addSubMov(args[0], args[1], args[2], insts.AbFromBits(args[3]), true)
	case insts.OpAddSubJMovI:
		e.addSubMov(args[0], args[1], args[2], insts.AbFromBits(args[3]), false)

	case insts.OpSqrSqrAdd3Ab:
		e.sqrSqrAdd3Ab(insts.AbFromBits(args[0]), insts.AbFromBits(args[1]))
	case insts.OpSqrSqrAdd3Mem:
		e.sqrSqrAdd3Mem(args[0], args[1], insts.AbFromBits(args[2]))
	case insts.OpSqrMpysuAdd3a:
		e.sqrMpysuAdd3a(insts.AbFromBits(args[0]), insts.AbFromBits(args[1]))

	case insts.OpMovAddsubsv:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false))
		e.productSum(insts.SumSv, insts.BxFromBits(args[2]), pSub, pAdd)
	case insts.OpMovAddsubsvAlt:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStepAlt(args[1]), false))
		e.productSum(insts.SumSv, insts.BxFromBits(args[2]), pSub, pAdd)
	case insts.OpMovAddsubrndsv:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false))
		e.productSum(insts.SumSvRnd, insts.BxFromBits(args[2]), pSub, pAdd)
	case insts.OpMovAddsubrndsvAlt:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStepAlt(args[1]), false))
		e.productSum(insts.SumSvRnd, insts.BxFromBits(args[2]), pSub, pAdd)
	case insts.OpMovSub3sv:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false))
		e.productSum(insts.SumSv, insts.BxFromBits(args[2]), pSub, pSub)
	case insts.OpMovSub3svAlt:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStepAlt(args[1]), false))
		e.productSum(insts.SumSv, insts.BxFromBits(args[2]), pSub, pSub)
	case insts.OpMovSub3rndsv:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false))
		e.productSum(insts.SumSvRnd, insts.BxFromBits(args[2]), pSub, pSub)
	case insts.OpMovSub3rndsvAlt:
		regs.Sv = e.mem.DataRead(e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStepAlt(args[1]), false))
		e.productSum(insts.SumSvRnd, insts.BxFromBits(args[2]), pSub, pSub)

	case insts.OpMaxGe:
		e.minMaxAcc(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepGe)
	case insts.OpMaxGt:
		e.minMaxAcc(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepGt)
	case insts.OpMinLe:
		e.minMaxAcc(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepLe)
	case insts.OpMinLt:
		e.minMaxAcc(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepLt)
	case insts.OpMaxGeR0:
		e.minMaxR0(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepGe)
	case insts.OpMaxGtR0:
		e.minMaxR0(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepGt)
	case insts.OpMinLeR0:
		e.minMaxR0(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepLe)
	case insts.OpMinLtR0:
		e.minMaxR0(insts.AxFromBits(args[0]), insts.StepFromZIDS(args[1]), keepLt)

	case insts.OpCbsAxh:
		e.cbsAxh(insts.AxhFromBits(args[0]), insts.CbsCond(args[1]&1))
	case insts.OpCbsAxhBxh:
		e.cbsAxhBxh(insts.AxhFromBits(args[0]), insts.BxhFromBits(args[1]), insts.CbsCond(args[2]&1))
	case insts.OpCbsMem:
		e.cbsMem(args[0], args[1], args[2], insts.CbsCond(args[3]&1))

	case insts.OpMax2Vtr:
		a := insts.AxFromBits(args[0])
		e.minMaxVtr(a, insts.CounterAcc(a), false)
	case insts.OpMin2Vtr:
		a := insts.AxFromBits(args[0])
		e.minMaxVtr(a, insts.CounterAcc(a), true)
	case insts.OpMax2VtrAxBx:
		e.minMaxVtr(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), false)
	case insts.OpMin2VtrAxBx:
		e.minMaxVtr(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), true)
	case insts.OpMax2VtrMovlAxBx:
		e.minMaxVtrMov(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], false, false)
	case insts.OpMax2VtrMovhAxBx:
		e.minMaxVtrMov(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], false, true)
	case insts.OpMax2VtrMovlBxAx:
		e.minMaxVtrMov(insts.BxFromBits(args[0]), insts.AxFromBits(args[1]), args[2], args[3], false, false)
	case insts.OpMax2VtrMovhBxAx:
		e.minMaxVtrMov(insts.BxFromBits(args[0]), insts.AxFromBits(args[1]), args[2], args[3], false, true)
	case insts.OpMin2VtrMovlAxBx:
		e.minMaxVtrMov(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], true, false)
	case insts.OpMin2VtrMovhAxBx:
		e.minMaxVtrMov(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], true, true)
	case insts.OpMin2VtrMovlBxAx:
		e.minMaxVtrMov(insts.BxFromBits(args[0]), insts.AxFromBits(args[1]), args[2], args[3], true, false)
	case insts.OpMin2VtrMovhBxAx:
		e.minMaxVtrMov(insts.BxFromBits(args[0]), insts.AxFromBits(args[1]), args[2], args[3], true, true)
	case insts.OpMax2VtrMovij:
		e.minMaxVtrMovIJ(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], args[4], false, true)
	case insts.OpMax2VtrMovji:
		e.minMaxVtrMovIJ(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], args[4], false, false)
	case insts.OpMin2VtrMovij:
		e.minMaxVtrMovIJ(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], args[4], true, true)
	case insts.OpMin2VtrMovji:
		e.minMaxVtrMovIJ(insts.AxFromBits(args[0]), insts.BxFromBits(args[1]), args[2], args[3], args[4], true, false)

	case insts.OpAddhp:
		e.addhp(args[0], args[1], insts.PxFromBits(args[2]), insts.AxFromBits(args[3]))

	case insts.OpMmaSwap:
		e.mmaSwap(insts.AbFromBits(args[0]), insts.DecodeMmaConfig(exp))
	case insts.OpMmaArp1:
		e.mmaArp(args[0], args[1], args[2], insts.AbFromBits(args[3]), insts.DecodeMmaConfig(exp))
	case insts.OpMmaArp2:
		e.mmaArp(args[0], args[1], args[2], insts.AbFromBits(args[3]), insts.DecodeMmaConfig(exp))
	case insts.OpMmaMxXy:
		e.mmaMxXy(args[0], args[1], insts.AbFromBits(args[2]), insts.DecodeMmaConfig(exp), false)
	case insts.OpMmaXyMx:
		e.mmaMxXy(args[0], args[1], insts.AbFromBits(args[2]), insts.DecodeMmaConfig(exp), true)
	case insts.OpMmaMyMy:
		e.mmaMyMy(args[0], args[1], insts.AbFromBits(args[2]), insts.DecodeMmaConfig(exp))
	case insts.OpMmaMovAxhBxh:
		e.mmaMovAxhBxh(insts.AxhFromBits(args[0]), insts.BxhFromBits(args[1]), args[2], args[3],
			insts.AbFromBits(args[4]), insts.DecodeMmaConfig(exp))
	case insts.OpMmaMovArRn2:
		e.mmaMovArRn2(args[0], args[1], insts.AbFromBits(args[2]), insts.DecodeMmaConfig(exp))

	default:
		e.executeMov(inst, opcode, exp)
	}
}
