package emu

import "github.com/sarchlab/teaksim/insts"

// executeMov dispatches the mov-family forms split out of execute to
// keep both switches readable.
func (e *Emulator) executeMov(inst insts.Instruction, opcode uint16, exp uint16) {
	regs := e.regs
	args := inst.Args
	switch inst.Op {
	case insts.OpMovAbAb:
		e.movAbAb(insts.AbFromBits(args[0]), insts.AbFromBits(args[1]))
	case insts.OpMovX0Abl:
		regs.X[0] = e.regToBus16(insts.AblFromBits(args[0]), true)
	case insts.OpMovX1Abl:
		regs.X[1] = e.regToBus16(insts.AblFromBits(args[0]), true)
	case insts.OpMovY1Abl:
		regs.Y[1] = e.regToBus16(insts.AblFromBits(args[0]), true)

	// Stores to data memory.
	case insts.OpMovAblhMemImm8:
		e.storeMemImm8(args[1], e.regToBus16(insts.AblhFromBits(args[0]), true))
	case insts.OpMovAxlMemImm16:
		e.mem.DataWrite(exp, e.regToBus16(insts.AxlFromBits(args[0]), true))
	case insts.OpMovAxlMemR7Imm16:
		e.storeMemR7Imm16(exp, e.regToBus16(insts.AxlFromBits(args[0]), true))
	case insts.OpMovAxlMemR7Imm7s:
		e.storeMemR7Imm7s(args[1], e.regToBus16(insts.AxlFromBits(args[0]), true))
	case insts.OpMovRnOldMemImm8:
		e.storeMemImm8(args[1], e.regToBus16(insts.RnFromBits(args[0]), false))
	case insts.OpMovSvToMemImm8:
		e.storeMemImm8(args[0], regs.Sv)

	// Loads from data memory.
	case insts.OpMovMemImm16Ax:
		e.regFromBus16(insts.AxFromBits(args[0]), e.mem.DataRead(exp))
	case insts.OpMovMemImm8Ab:
		e.regFromBus16(insts.AbFromBits(args[1]), e.loadMemImm8(args[0]))
	case insts.OpMovMemImm8Ablh:
		e.regFromBus16(insts.AblhFromBits(args[1]), e.loadMemImm8(args[0]))
	case insts.OpMovMemImm8RnOld:
		e.regFromBus16(insts.RnFromBits(args[1]), e.loadMemImm8(args[0]))
	case insts.OpMovSvMemImm8:
		regs.Sv = e.loadMemImm8(args[0])
	case insts.OpMovMemR7Imm16Ax:
		e.regFromBus16(insts.AxFromBits(args[0]), e.loadMemR7Imm16(exp))
	case insts.OpMovMemR7Imm7sAx:
		e.regFromBus16(insts.AxFromBits(args[1]), e.loadMemR7Imm7s(args[0]))

	// Immediates.
	case insts.OpMovImm16Bx:
		e.regFromBus16(insts.BxFromBits(args[0]), exp)
	case insts.OpMovImm16Reg:
		e.regFromBus16(insts.RegisterFromBits(args[0]), exp)
	case insts.OpMovImm8sAxh:
		e.regFromBus16(insts.AxhFromBits(args[1]), uint16(insts.SignExtend(uint64(args[0]), 8)))
	case insts.OpMovImm8sRnOld:
		e.regFromBus16(insts.RnFromBits(args[1]), uint16(insts.SignExtend(uint64(args[0]), 8)))
	case insts.OpMovSvImm8s:
		regs.Sv = uint16(insts.SignExtend(uint64(args[0]), 8))
	case insts.OpMovImm8Axl:
		e.regFromBus16(insts.AxlFromBits(args[1]), args[0])
	case insts.OpMovImm16ArArp:
		e.regFromBus16(insts.ArArpFromBits(args[0]), exp)
	case insts.OpMovR6Imm16:
		regs.R[6] = exp
	case insts.OpMovRepcImm16:
		regs.Repc = exp
	case insts.OpMovStepi0Imm16:
		regs.Stepi0 = exp
	case insts.OpMovStepj0Imm16:
		regs.Stepj0 = exp
	case insts.OpMovImm16SttMod:
		e.regFromBus16(insts.SttModFromBits(args[0]), exp)

	// Indirect through Rn.
	case insts.OpMovRnBx:
		address := e.addr.RnAddressAndModify(int(args[0]&7), insts.StepFromZIDS(args[1]), false)
		e.regFromBus16(insts.BxFromBits(args[2]), e.mem.DataRead(address))
	case insts.OpMovRnReg:
		e.movRnReg(int(args[0]&7), insts.StepFromZIDS(args[1]), insts.RegisterFromBits(args[2]))
	case insts.OpMovRegRn:
		e.movRegRn(insts.RegisterFromBits(args[0]), int(args[1]&7), insts.StepFromZIDS(args[2]))

	// Register to register.
	case insts.OpMovRegBx:
		e.movRegBx(insts.RegisterFromBits(args[0]), insts.BxFromBits(args[1]))
	case insts.OpMovRegReg:
		e.movRegReg(args[0], args[1])
	case insts.OpMovMemspReg:
		e.regFromBus16(insts.RegisterFromBits(args[0]), e.mem.DataRead(regs.Sp))
	case insts.OpMovMixpReg:
		e.regFromBus16(insts.RegisterFromBits(args[0]), regs.Mixp)
	case insts.OpMovRegIcr:
		regs.SetIcr(e.regToBus16(insts.RegisterFromBits(args[0]), true))
	case insts.OpMovRegMixp:
		regs.Mixp = e.regToBus16(insts.RegisterFromBits(args[0]), true)
	case insts.OpMovIcrToAb:
		e.regFromBus16(insts.AbFromBits(args[0]), regs.Icr())
	case insts.OpMovRepcToAb:
		e.regFromBus16(insts.AbFromBits(args[0]), regs.Repc)
	case insts.OpMovX0ToAb:
		e.regFromBus16(insts.AbFromBits(args[0]), regs.X[0])
	case insts.OpMovX1ToAb:
		e.regFromBus16(insts.AbFromBits(args[0]), regs.X[1])
	case insts.OpMovY1ToAb:
		e.regFromBus16(insts.AbFromBits(args[0]), regs.Y[1])
	case insts.OpMovRepcAbl:
		regs.Repc = e.regToBus16(insts.AblFromBits(args[0]), true)
	case insts.OpMovRepcToAbl:
		e.regFromBus16(insts.AblFromBits(args[0]), regs.Repc)
	case insts.OpMovAblArArp:
		e.regFromBus16(insts.ArArpFromBits(args[1]), e.regToBus16(insts.AblFromBits(args[0]), true))
	case insts.OpMovAblSttMod:
		e.regFromBus16(insts.SttModFromBits(args[1]), e.regToBus16(insts.AblFromBits(args[0]), true))
	case insts.OpMovArArpAbl:
		e.regFromBus16(insts.AblFromBits(args[1]), e.regToBus16(insts.ArArpFromBits(args[0]), false))
	case insts.OpMovSttModAbl:
		e.regFromBus16(insts.AblFromBits(args[1]), e.regToBus16(insts.SttModFromBits(args[0]), false))

	// ArRn-indirect control transfers.
	case insts.OpMovRepcToArRn:
		address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false)
		e.mem.DataWrite(address, regs.Repc)
	case insts.OpMovArArpArRn:
		address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[1]), e.addr.ArStep(args[2]), false)
		e.mem.DataWrite(address, e.regToBus16(insts.ArArpFromBits(args[0]), false))
	case insts.OpMovSttModArRn:
		address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[1]), e.addr.ArStep(args[2]), false)
		e.mem.DataWrite(address, e.regToBus16(insts.SttModFromBits(args[0]), false))
	case insts.OpMovRepcArRn:
		address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false)
		regs.Repc = e.mem.DataRead(address)
	case insts.OpMovArRnArArp:
		address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false)
		e.regFromBus16(insts.ArArpFromBits(args[2]), e.mem.DataRead(address))
	case insts.OpMovArRnSttMod:
		address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false)
		e.regFromBus16(insts.SttModFromBits(args[2]), e.mem.DataRead(address))

	case insts.OpMovRepcToMemR7Imm16:
		e.storeMemR7Imm16(exp, regs.Repc)
	case insts.OpMovRepcMemR7Imm16:
		regs.Repc = e.loadMemR7Imm16(exp)
	case insts.OpMovArArpSttModMemR7Imm16:
		e.storeMemR7Imm16(exp, e.regToBus16(insts.ArArpSttModFromBits(args[0]), false))
	case insts.OpMovMemR7Imm16ArArpSttMod:
		e.regFromBus16(insts.ArArpSttModFromBits(args[0]), e.loadMemR7Imm16(exp))

	case insts.OpMovMixpToBx:
		e.regFromBus16(insts.BxFromBits(args[0]), regs.Mixp)
	case insts.OpMovR6ToBx:
		e.regFromBus16(insts.BxFromBits(args[0]), regs.R[6])
	case insts.OpMovP0hToBx:
		e.regFromBus16(insts.BxFromBits(args[0]), uint16(e.mul.ToBus40(insts.RegP0)>>16))
	case insts.OpMovP0hToReg:
		e.regFromBus16(insts.RegisterFromBits(args[0]), uint16(e.mul.ToBus40(insts.RegP0)>>16))
	case insts.OpMovP0Ab:
		value := uint32(e.alu.Saturate(e.alu.GetAcc(insts.AbFromBits(args[0])), false))
		e.mul.FromBus32(insts.RegP0, value)
	case insts.OpMovP1ToAb:
		e.alu.SetAcc(insts.AbFromBits(args[0]), e.mul.ToBus40(insts.RegP1))

	case insts.OpMovR6ToReg:
		e.regFromBus16(insts.RegisterFromBits(args[0]), regs.R[6])
	case insts.OpMovRegR6:
		regs.R[6] = e.regToBus16(insts.RegisterFromBits(args[0]), true)
	case insts.OpMovR6ToRn:
		address := e.addr.RnAddressAndModify(int(args[0]&7), insts.StepFromZIDS(args[1]), false)
		e.mem.DataWrite(address, regs.R[6])
	case insts.OpMovRnToR6:
		address := e.addr.RnAddressAndModify(int(args[0]&7), insts.StepFromZIDS(args[1]), false)
		regs.R[6] = e.mem.DataRead(address)

	// Program-memory transfers.
	case insts.OpMovd:
		e.movd(int(insts.R0123FromBits(args[0])), insts.StepFromZIDS(args[1]),
			int(insts.R45FromBits(args[2])), insts.StepFromZIDS(args[3]))
	case insts.OpMovpAxlReg:
		e.movpAxlReg(insts.AxlFromBits(args[0]), insts.RegisterFromBits(args[1]))
	case insts.OpMovpAxReg:
		e.movpAxReg(insts.AxFromBits(args[0]), insts.RegisterFromBits(args[1]))
	case insts.OpMovpProg:
		e.movpProg(int(args[0]&7), insts.StepFromZIDS(args[1]),
			int(insts.R0123FromBits(args[2])), insts.StepFromZIDS(args[3]))

	// Dual transfers.
	case insts.OpMov2PxMem:
		e.mov2PxMem(insts.PxFromBits(args[0]), args[1], args[2], false)
	case insts.OpMov2sPxMem:
		e.mov2PxMem(insts.PxFromBits(args[0]), args[1], args[2], true)
	case insts.OpMov2MemPx:
		e.mov2MemPx(args[0], args[1], insts.PxFromBits(args[2]))
	case insts.OpMovaAbMem:
		e.movaAbMem(insts.AbFromBits(args[0]), args[1], args[2])
	case insts.OpMovaMemAb:
		e.movaMemAb(args[0], args[1], insts.AbFromBits(args[2]))
	case insts.OpMov2AxhMY0M:
		e.mov2AxhMY0M(insts.AxhFromBits(args[0]), args[1], args[2])
	case insts.OpMov2AxMij:
		e.mov2AxM(insts.AbFromBits(args[0]), args[1], args[2], args[3], true)
	case insts.OpMov2AxMji:
		e.mov2AxM(insts.AbFromBits(args[0]), args[1], args[2], args[3], false)
	case insts.OpMov2MijAx:
		e.mov2MAx(args[0], args[1], args[2], insts.AbFromBits(args[3]), true)
	case insts.OpMov2MjiAx:
		e.mov2MAx(args[0], args[1], args[2], insts.AbFromBits(args[3]), false)
	case insts.OpMov2AbhM:
		e.mov2AbhM(insts.AbhFromBits(args[0]), insts.AbhFromBits(args[1]), args[2], args[3])
	case insts.OpExchangeIaj:
		e.exchange(insts.AxhFromBits(args[0]), args[1], args[2], args[3], true, false)
	case insts.OpExchangeRiaj:
		e.exchange(insts.AxhFromBits(args[0]), args[1], args[2], args[3], true, true)
	case insts.OpExchangeJai:
		e.exchange(insts.AxhFromBits(args[0]), args[1], args[2], args[3], false, false)
	case insts.OpExchangeRjai:
		e.exchange(insts.AxhFromBits(args[0]), args[1], args[2], args[3], false, true)

	// Shifted and rounded moves.
	case insts.OpMovsMemImm8:
		e.movsValue(insts.SignExtend16(e.loadMemImm8(args[0])), insts.AbFromBits(args[1]))
	case insts.OpMovsRn:
		address := e.addr.RnAddressAndModify(int(args[0]&7), insts.StepFromZIDS(args[1]), false)
		e.movsValue(insts.SignExtend16(e.mem.DataRead(address)), insts.AbFromBits(args[2]))
	case insts.OpMovsReg:
		e.movsValue(insts.SignExtend16(e.regToBus16(insts.RegisterFromBits(args[0]), false)), insts.AbFromBits(args[1]))
	case insts.OpMovsR6:
		e.movsValue(insts.SignExtend16(regs.R[6]), insts.AxFromBits(args[0]))
	case insts.OpMovsi:
		value := insts.SignExtend16(e.regToBus16(insts.RnFromBits(args[0]), false))
		sv := uint16(insts.SignExtend(uint64(args[2]), 5))
		e.alu.ShiftBus40(value, sv, insts.AbFromBits(args[1]))

	case insts.OpMovrMem:
		address := e.addr.RnAddressAndModify(e.addr.ArRnUnit(args[0]), e.addr.ArStep(args[1]), false)
		value := insts.SignExtend(uint64(e.mem.DataRead(address))<<16, 32)
		e.movr40(value, insts.AbhFromBits(args[2]))
	case insts.OpMovrRn:
		address := e.addr.RnAddressAndModify(int(args[0]&7), insts.StepFromZIDS(args[1]), false)
		e.movr16(e.mem.DataRead(address), insts.AxFromBits(args[2]))
	case insts.OpMovrReg:
		a := insts.RegisterFromBits(args[0])
		b := insts.AxFromBits(args[1])
		switch a {
		case insts.RegA0, insts.RegA1:
			e.movr40(e.alu.GetAcc(a), b)
		case insts.RegP:
			e.movr40(e.mul.ToBus40(insts.RegP0), b)
		default:
			e.movr16(e.regToBus16(a, false), b)
		}
	case insts.OpMovrBx:
		e.movr40(e.alu.GetAcc(insts.BxFromBits(args[0])), insts.AxFromBits(args[1]))
	case insts.OpMovrR6:
		e.movr16(regs.R[6], insts.AxFromBits(args[0]))

	default:
		e.fault(FaultDecode, "unhandled instruction form")
	}
}
