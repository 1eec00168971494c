// Package insts provides Teak DSP instruction definitions and decoding.
//
// This package implements decoding of 16-bit Teak program words into
// structured instruction representations. Instructions are one or two
// words; the second word, when present, is a raw immediate fetched from
// the program stream by the core.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x0000) // nop
//	fmt.Printf("Op: %v\n", inst.Op)
package insts

// Op identifies one instruction form of the Teak ISA.
//
// Every overload of a mnemonic that takes a different operand tuple is a
// distinct Op; the executor binds each Op to exactly one handler.
type Op uint16

// Instruction forms. Grouping and naming follow the mnemonic plus the
// operand shape where a mnemonic has several forms.
const (
	OpUndefined Op = iota

	// System / zero-operand block.
	OpNop
	OpTrap
	OpCntxS
	OpCntxR
	OpDint
	OpEint
	OpBreak
	OpRetd
	OpRetid
	OpRetidc
	OpBankrAll
	OpVtrshr
	OpVtrclr0
	OpVtrclr1
	OpVtrclr
	OpClrp
	OpClrp0
	OpClrp1
	OpBkreprstMemsp
	OpBkrepstoMemsp
	OpPushPrpage
	OpPopPrpage
	OpPushR6
	OpPushRepc
	OpPushX0
	OpPushX1
	OpPushY1
	OpPopR6
	OpPopRepc
	OpPopX0
	OpPopX1
	OpPopY1
	OpMovA0hStepi0
	OpMovA0hStepj0
	OpMovStepi0A0h
	OpMovStepj0A0h
	OpMovMixpR6
	OpMovR6Mixp
	OpMovMemspR6
	OpExpR6
	OpExpR6Ax
	OpRepR6
	OpMovP0hR6
	OpCmpB0B1
	OpCmpB1B0
	OpMacX1to0
	OpCallaAxl
	OpCallaAx
	OpMovpdw
	OpMovPcAx
	OpMovPcBx
	OpPacr1
	OpAddP1
	OpSubP1
	OpCmpP1
	OpVtrmov0
	OpVtrmov1
	OpVtrmov
	OpMulY0R6

	// Accumulator-accumulator arithmetic.
	OpCmpAxBx
	OpCmpBxAx
	OpAddAbBx
	OpAddBxAx
	OpAddPxBx
	OpSubAbBx
	OpSubBxAx
	OpSubPxBx

	// Product sums.
	OpAddP0P1
	OpAddP0P1a
	OpAdd3P0P1
	OpAdd3P0P1a
	OpAdd3P0aP1a
	OpSubP0P1
	OpSubP0P1a
	OpSub3P0P1
	OpSub3P0P1a
	OpSub3P0aP1a
	OpAddsubP0P1
	OpAddsubP1P0
	OpAddsubP0P1a
	OpAddsubP1aP0

	OpClrAbAb
	OpClrrAbAb
	OpAndAbAbAx
	OpOrAbAxAx
	OpOrAxBxAx
	OpOrBxBxAx
	OpRet
	OpReti
	OpRetic
	OpRets

	// Immediate loads and short system forms.
	OpRepImm
	OpLoadPage
	OpMpyi
	OpBkrepImm
	OpLoadModi
	OpLoadModj
	OpLoadStepi
	OpLoadStepj
	OpLoadPs
	OpLoadMovpd
	OpLoadPs01
	OpSwap
	OpBanke
	OpBankrAr
	OpBankrArp
	OpBankrArArp
	OpBitrev
	OpBitrevDbrv
	OpBitrevEbrv
	OpBkreprst
	OpBkrepsto
	OpMovAbAb
	OpMovDvm
	OpMovX0Abl
	OpMovX1Abl
	OpMovY1Abl
	OpModr
	OpModrDmod
	OpModrI2
	OpModrI2Dmod
	OpModrD2
	OpModrD2Dmod
	OpModrEemod
	OpModrEdmod
	OpModrDemod
	OpModrDdmod
	OpNorm
	OpBr
	OpTst4b
	OpTst4bAx
	OpCall
	OpAlmR6
	OpDivs
	OpBkrepReg
	OpBkrepR6

	// Stack.
	OpPushArArpSttMod
	OpPushReg
	OpPopReg
	OpPushAbe
	OpPopAbe
	OpPushPx
	OpPopPx
	OpPushaAx
	OpPushaBx
	OpPopBx
	OpPopa
	OpPopArArpSttMod
	OpPushImm16
	OpRepReg

	// mov: expansion and register forms.
	OpMovImm16Bx
	OpMovMemR7Imm16Ax
	OpMovAxlMemImm16
	OpMovAxlMemR7Imm16
	OpMovMemImm16Ax
	OpMovImm16Reg
	OpMovMemspReg
	OpMovMixpReg
	OpMovRegIcr
	OpMovRegMixp
	OpMovR6ToRn
	OpMovRnToR6
	OpMovAblArArp
	OpMovAblSttMod
	OpMovArArpAbl
	OpMovSttModAbl
	OpMovRegBx
	OpMovd
	OpMovpAxlReg
	OpMovpAxReg
	OpMovImm8sAxh
	OpMovpProg
	OpMovRnBx
	OpMovP0Ab
	OpMovP1ToAb
	OpMovRepcToAb
	OpMovX0ToAb
	OpMovX1ToAb
	OpMovY1ToAb
	OpMovDvmToAb
	OpMovIcrToAb
	OpMovImm16ArArp
	OpMovR6Imm16
	OpMovRepcImm16
	OpMovStepi0Imm16
	OpMovStepj0Imm16
	OpMovImm16SttMod
	OpMovPrpageAbl
	OpMovRepcAbl
	OpMovPrpageToAbl
	OpMovRepcToAbl
	OpMovRepcToArRn
	OpMovArArpArRn
	OpMovSttModArRn
	OpMovRepcArRn
	OpMovArRnArArp
	OpMovArRnSttMod
	OpMovRepcToMemR7Imm16
	OpMovRepcMemR7Imm16
	OpMovArArpSttModMemR7Imm16
	OpMovMemR7Imm16ArArpSttMod
	OpMovMixpToBx
	OpMovR6ToBx
	OpMovP0hToBx
	OpMovP0hToReg
	OpMovR6ToReg
	OpMovRegR6
	OpTstbR6
	OpTstbSttMod
	OpMovRnReg

	// Byte-immediate mov family and short branches.
	OpTstbMemImm8
	OpMovImm8Axl
	OpAlmRegLo
	OpAlmRegHi
	OpMovSvImm8s
	OpMovMemR7Imm7sAx
	OpMovImm8sRnOld
	OpMovRegRn
	OpMovRegReg
	OpMovSvMemImm8
	OpMovSvToMemImm8
	OpMovAxlMemR7Imm7s
	OpMovsMemImm8
	OpMovAblhMemImm8
	OpBrr
	OpMovMemImm8RnOld
	OpMovRnOldMemImm8
	OpMovMemImm8Ablh
	OpCallr

	// ALM / ALU / ALB.
	OpAlmMemImm8
	OpAlmRn
	OpAluMemImm16
	OpAluMemR7Imm16
	OpAluImm16
	OpAluImm8
	OpAluMemR7Imm7s
	OpAlbMemImm8
	OpAlbRn
	OpAlbReg
	OpAlbR6
	OpAlbSttMod

	// Multiply family.
	OpMulR45R0123
	OpMulY0MemImm8
	OpMulY0Rn
	OpMulY0Reg
	OpTstbRn
	OpTstbReg
	OpMulRnImm16
	OpMsuR45R0123
	OpMsuRnImm16
	OpMsusu
	OpMac1

	// Dual-memory arithmetic.
	OpAddAdd
	OpAddSub
	OpSubAdd
	OpSubSub
	OpAddSubSv
	OpSubAddSv
	OpSubAddIMovJSv
	OpSubAddJMovISv
	OpAddSubIMovJ
	OpAddSubJMovI

	OpSqrSqrAdd3Ab
	OpSqrSqrAdd3Mem
	OpSqrMpysuAdd3a
	OpMovAddsubsv
	OpMovAddsubsvAlt
	OpMovAddsubrndsv
	OpMovAddsubrndsvAlt
	OpMovSub3sv
	OpMovSub3svAlt
	OpMovSub3rndsv
	OpMovSub3rndsvAlt

	// Min/max and codebook search.
	OpMaxGe
	OpMaxGt
	OpMinLe
	OpMinLt
	OpMaxGeR0
	OpMaxGtR0
	OpMinLeR0
	OpMinLtR0
	OpCbsAxh
	OpCbsAxhBxh
	OpCbsMem
	OpMax2Vtr
	OpMin2Vtr
	OpMax2VtrAxBx
	OpMin2VtrAxBx
	OpMax2VtrMovlAxBx
	OpMax2VtrMovhAxBx
	OpMax2VtrMovlBxAx
	OpMax2VtrMovhBxAx
	OpMin2VtrMovlAxBx
	OpMin2VtrMovhAxBx
	OpMin2VtrMovlBxAx
	OpMin2VtrMovhBxAx
	OpMax2VtrMovij
	OpMax2VtrMovji
	OpMin2VtrMovij
	OpMin2VtrMovji
	OpAddhp

	// Dual mov / exchange.
	OpMov2PxMem
	OpMov2sPxMem
	OpMov2MemPx
	OpMovaAbMem
	OpMovaMemAb
	OpMov2AxhMY0M
	OpMov2AxMij
	OpMov2AxMji
	OpMov2MijAx
	OpMov2MjiAx
	OpMov2AbhM
	OpExchangeIaj
	OpExchangeRiaj
	OpExchangeJai
	OpExchangeRjai

	OpMovMemImm8Ab
	OpShfi
	OpModa4
	OpModa3
	OpShfc
	OpMovsi

	// Multiply-multiply-accumulate family (config in expansion word).
	OpMmaSwap
	OpMmaArp1
	OpMmaMxXy
	OpMmaXyMx
	OpMmaMyMy
	OpMmaMovAxhBxh
	OpMmaMovArRn2
	OpMmaArp2

	// movs / movr / exp / lim.
	OpMovsRn
	OpMovsReg
	OpMovsR6
	OpMovrMem
	OpMovrRn
	OpMovrReg
	OpMovrBx
	OpMovrR6
	OpExpBx
	OpExpBxAx
	OpExpRn
	OpExpRnAx
	OpExpReg
	OpExpRegAx
	OpLim

	numOps
)

// AlmOp is the operation selector of the alm/alu instruction families.
type AlmOp uint8

// alm operations, in encoding order.
const (
	AlmOr AlmOp = iota
	AlmAnd
	AlmXor
	AlmAdd
	AlmTst0
	AlmTst1
	AlmCmp
	AlmSub
	AlmMsu
	AlmAddh
	AlmAddl
	AlmSubh
	AlmSubl
	AlmSqr
	AlmSqra
	AlmCmpu
)

// AluFromBits maps the 3-bit alu selector onto the shared AlmOp space.
// The alu family carries the subset {or, and, xor, add, tst0, cmp, sub, msu}.
func AluFromBits(v uint16) AlmOp {
	return [8]AlmOp{
		AlmOr, AlmAnd, AlmXor, AlmAdd,
		AlmTst0, AlmCmp, AlmSub, AlmMsu,
	}[v&7]
}

// AlbOp is the operation selector of the alb instruction family.
type AlbOp uint8

// alb operations, in encoding order.
const (
	AlbSet AlbOp = iota
	AlbRst
	AlbChng
	AlbAddv
	AlbTst0
	AlbTst1
	AlbCmpv
	AlbSubv
)

// ModaOp is the operation selector of the moda3/moda4 families.
type ModaOp uint8

// moda operations, in encoding order.
const (
	ModaShr ModaOp = iota
	ModaShr4
	ModaShl
	ModaShl4
	ModaRor
	ModaRol
	ModaClr
	ModaNot
	ModaNeg
	ModaRnd
	ModaPacr
	ModaClrr
	ModaInc
	ModaDec
	ModaCopy
)

// Moda3FromBits maps the 3-bit moda selector onto the shared ModaOp space.
// The short form carries the subset {shr, shr4, shl, shl4, ror, rol, clr, clrr}.
func Moda3FromBits(v uint16) ModaOp {
	return [8]ModaOp{
		ModaShr, ModaShr4, ModaShl, ModaShl4,
		ModaRor, ModaRol, ModaClr, ModaClrr,
	}[v&7]
}

// MulOp is the operation selector of the multiply family.
type MulOp uint8

// Multiply operations, in encoding order. The su/us suffix convention is
// "signed y by unsigned x" and vice versa.
const (
	MulMpy MulOp = iota
	MulMpysu
	MulMac
	MulMacsu
	MulMaa
	MulMaasu
	MulMacus
	MulMacuu
)

// Mul2FromBits maps the 2-bit short multiply selector onto MulOp.
func Mul2FromBits(v uint16) MulOp {
	return [4]MulOp{MulMpy, MulMac, MulMaa, MulMacsu}[v&3]
}

// Cond is a Teak condition code.
type Cond uint8

// Condition codes.
const (
	CondTrue Cond = iota // always
	CondEq               // fz == 1
	CondNeq              // fz == 0
	CondGt               // fm == 0 && fz == 0
	CondGe               // fm == 0
	CondLt               // fm == 1
	CondLe               // fm == 1 || fz == 1
	CondNn               // fn == 0
	CondC                // fc0 == 1
	CondV                // fv == 1
	CondE                // fe == 1
	CondL                // fls == 1 || flv == 1
	CondNr               // fr == 0
	CondNiu0             // input pin iu0 == 0
	CondIu0              // input pin iu0 == 1
	CondIu1              // input pin iu1 == 1
)

// Step encodes the post-modification applied to an Rn register.
type Step uint8

// Step values. The ZIDS operand carries the first four; the remaining
// values come from ArStep conversion or dedicated modr forms.
const (
	StepZero Step = iota
	StepIncrease
	StepDecrease
	StepPlusStep
	StepIncrease2Mode1
	StepDecrease2Mode1
	StepIncrease2Mode2
	StepDecrease2Mode2
)

// StepFromZIDS maps the 2-bit ZIDS operand to a Step.
func StepFromZIDS(v uint16) Step {
	return Step(v & 3)
}

// ConvertArStep maps a 3-bit ArStep register field to a Step.
func ConvertArStep(v uint16) Step {
	return Step(v & 7)
}

// Offset encodes the secondary-access offset of an ArStep descriptor.
type Offset uint8

// Offset values.
const (
	OffsetZero Offset = iota
	OffsetPlusOne
	OffsetMinusOne
	OffsetMinusOneDmod
)

// CbsCond selects the comparison of the codebook-search instruction.
type CbsCond uint8

// cbs conditions.
const (
	CbsGe CbsCond = iota
	CbsGt
)

// SumBase selects the accumulation base of a product-sum operation.
type SumBase uint8

// Product-sum bases.
const (
	SumZero SumBase = iota
	SumAcc
	SumSv
	SumSvRnd
)

// Reg names one architectural register reachable over the 16-bit bus.
type Reg uint8

// Bus-addressable registers and accumulator subfields.
const (
	RegR0 Reg = iota
	RegR1
	RegR2
	RegR3
	RegR4
	RegR5
	RegR6
	RegR7
	RegX0
	RegX1
	RegY0
	RegY1
	RegP // p0 high half on the bus, whole p0 through the product bus
	RegP0
	RegP1
	RegA0
	RegA1
	RegB0
	RegB1
	RegA0l
	RegA1l
	RegB0l
	RegB1l
	RegA0h
	RegA1h
	RegB0h
	RegB1h
	RegA0e
	RegA1e
	RegB0e
	RegB1e
	RegPC
	RegSP
	RegSV
	RegLC
	RegMixp
	RegAr0
	RegAr1
	RegArp0
	RegArp1
	RegArp2
	RegArp3
	RegStt0
	RegStt1
	RegStt2
	RegSt0
	RegSt1
	RegSt2
	RegCfgi
	RegCfgj
	RegMod0
	RegMod1
	RegMod2
	RegMod3
	RegExt0
	RegExt1
	RegExt2
	RegExt3
)

// registerBus is the 5-bit "Register" operand encoding.
var registerBus = [32]Reg{
	RegR0, RegR1, RegR2, RegR3, RegR4, RegR5, RegR7, RegY0,
	RegSt0, RegSt1, RegSt2, RegP, RegPC, RegSP, RegCfgi, RegCfgj,
	RegB0h, RegB1h, RegB0l, RegB1l, RegExt0, RegExt1, RegExt2, RegExt3,
	RegA0, RegA1, RegA0l, RegA1l, RegA0h, RegA1h, RegLC, RegSV,
}

// RegisterFromBits maps the 5-bit Register operand to a Reg.
func RegisterFromBits(v uint16) Reg {
	return registerBus[v&31]
}

// AxFromBits maps the 1-bit Ax operand to a0/a1.
func AxFromBits(v uint16) Reg {
	if v&1 != 0 {
		return RegA1
	}
	return RegA0
}

// BxFromBits maps the 1-bit Bx operand to b0/b1.
func BxFromBits(v uint16) Reg {
	if v&1 != 0 {
		return RegB1
	}
	return RegB0
}

// AxlFromBits maps the 1-bit Axl operand.
func AxlFromBits(v uint16) Reg {
	if v&1 != 0 {
		return RegA1l
	}
	return RegA0l
}

// AxhFromBits maps the 1-bit Axh operand.
func AxhFromBits(v uint16) Reg {
	if v&1 != 0 {
		return RegA1h
	}
	return RegA0h
}

// BxhFromBits maps the 1-bit Bxh operand.
func BxhFromBits(v uint16) Reg {
	if v&1 != 0 {
		return RegB1h
	}
	return RegB0h
}

// PxFromBits maps the 1-bit Px operand to p0/p1.
func PxFromBits(v uint16) Reg {
	if v&1 != 0 {
		return RegP1
	}
	return RegP0
}

// AbFromBits maps the 2-bit Ab operand: b0, b1, a0, a1.
func AbFromBits(v uint16) Reg {
	return [4]Reg{RegB0, RegB1, RegA0, RegA1}[v&3]
}

// AbeFromBits maps the 2-bit Abe operand: b0e, b1e, a0e, a1e.
func AbeFromBits(v uint16) Reg {
	return [4]Reg{RegB0e, RegB1e, RegA0e, RegA1e}[v&3]
}

// AblFromBits maps the 2-bit Abl operand: b0l, b1l, a0l, a1l.
func AblFromBits(v uint16) Reg {
	return [4]Reg{RegB0l, RegB1l, RegA0l, RegA1l}[v&3]
}

// AbhFromBits maps the 2-bit Abh operand: b0h, b1h, a0h, a1h.
func AbhFromBits(v uint16) Reg {
	return [4]Reg{RegB0h, RegB1h, RegA0h, RegA1h}[v&3]
}

// AblhFromBits maps the 3-bit Ablh operand.
func AblhFromBits(v uint16) Reg {
	return [8]Reg{
		RegB0l, RegB0h, RegB1l, RegB1h,
		RegA0l, RegA0h, RegA1l, RegA1h,
	}[v&7]
}

// RnFromBits maps the 3-bit Rn operand to r0..r7.
func RnFromBits(v uint16) Reg {
	return Reg(v & 7)
}

// R0123FromBits maps the 2-bit low-bank Rn operand to r0..r3.
func R0123FromBits(v uint16) Reg {
	return Reg(v & 3)
}

// R45FromBits maps the 1-bit high-bank Rn operand to r4/r5.
func R45FromBits(v uint16) Reg {
	return Reg(4 + v&1)
}

// SttModFromBits maps the 3-bit SttMod operand. Encoding 3 aliases stt2.
func SttModFromBits(v uint16) Reg {
	return [8]Reg{
		RegStt0, RegStt1, RegStt2, RegStt2,
		RegMod0, RegMod1, RegMod2, RegMod3,
	}[v&7]
}

// ArArpFromBits maps the 3-bit ArArp operand. Encodings 6 and 7 alias
// ar0/ar1.
func ArArpFromBits(v uint16) Reg {
	return [8]Reg{
		RegAr0, RegAr1, RegArp0, RegArp1,
		RegArp2, RegArp3, RegAr0, RegAr1,
	}[v&7]
}

// ArArpSttModFromBits maps the combined 4-bit operand.
func ArArpSttModFromBits(v uint16) Reg {
	return [16]Reg{
		RegAr0, RegAr1, RegArp0, RegArp1,
		RegArp2, RegArp3, RegAr0, RegAr1,
		RegStt0, RegStt1, RegStt2, RegStt2,
		RegMod0, RegMod1, RegMod2, RegMod3,
	}[v&15]
}

// CounterAcc returns the paired accumulator of the same width view.
func CounterAcc(r Reg) Reg {
	switch r {
	case RegA0:
		return RegA1
	case RegA1:
		return RegA0
	case RegB0:
		return RegB1
	case RegB1:
		return RegB0
	case RegA0l:
		return RegA1l
	case RegA1l:
		return RegA0l
	case RegB0l:
		return RegB1l
	case RegB1l:
		return RegB0l
	case RegA0h:
		return RegA1h
	case RegA1h:
		return RegA0h
	case RegB0h:
		return RegB1h
	case RegB1h:
		return RegB0h
	case RegA0e:
		return RegA1e
	case RegA1e:
		return RegA0e
	case RegB0e:
		return RegB1e
	case RegB1e:
		return RegB0e
	}
	return r
}

// Instruction is one decoded Teak instruction.
//
// Args holds the raw operand fields in the order their letters first
// appear, most significant first, in the declarative pattern that
// produced the decode. The executor knows the meaning of each slot from
// the Op.
type Instruction struct {
	Op   Op
	Args [6]uint16

	// NeedExpansion reports that the instruction occupies two program
	// words; the core fetches the second word and passes it alongside.
	NeedExpansion bool
}

// MmaConfig is the decoded configuration immediate of the mma family.
type MmaConfig struct {
	X0Sign, Y0Sign, X1Sign, Y1Sign bool
	Base                           SumBase
	SubP0, AlignP0                 bool
	SubP1, AlignP1                 bool
	DmodI, DmodJ                   bool
}

// DecodeMmaConfig unpacks the mma expansion word.
func DecodeMmaConfig(v uint16) MmaConfig {
	return MmaConfig{
		X0Sign:  v&(1<<0) != 0,
		Y0Sign:  v&(1<<1) != 0,
		X1Sign:  v&(1<<2) != 0,
		Y1Sign:  v&(1<<3) != 0,
		Base:    SumBase((v >> 4) & 3),
		SubP0:   v&(1<<6) != 0,
		AlignP0: v&(1<<7) != 0,
		SubP1:   v&(1<<8) != 0,
		AlignP1: v&(1<<9) != 0,
		DmodI:   v&(1<<10) != 0,
		DmodJ:   v&(1<<11) != 0,
	}
}

// SignExtend sign-extends the low bits of v as a width-bit two's
// complement value.
func SignExtend(v uint64, bits uint) uint64 {
	sign := uint64(1) << (bits - 1)
	v &= sign<<1 - 1
	return (v ^ sign) - sign
}

// SignExtend16 sign-extends a 16-bit value to 64 bits.
func SignExtend16(v uint16) uint64 {
	return uint64(int64(int16(v)))
}

// BitReverse reverses the bit order of a 16-bit value.
func BitReverse(v uint16) uint16 {
	v = (v&0x5555)<<1 | (v&0xAAAA)>>1
	v = (v&0x3333)<<2 | (v&0xCCCC)>>2
	v = (v&0x0F0F)<<4 | (v&0xF0F0)>>4
	return v<<8 | v>>8
}
