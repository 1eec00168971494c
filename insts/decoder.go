package insts

import (
	"fmt"
	"strings"
)

// dispatch is the 65,536-entry decode table, fully materialized: every
// program word indexes directly to its decoded instruction. The table is
// immutable after package initialization and safe to share between
// concurrently running cores.
var dispatch [1 << 16]Instruction

func init() {
	for _, def := range opcodeTable {
		expandDef(def)
	}
}

// expandDef enumerates every word the pattern matches and claims the
// still-undefined ones for the row.
func expandDef(def instDef) {
	pattern := strings.ReplaceAll(def.pattern, " ", "")
	if len(pattern) != 16 {
		panic(fmt.Sprintf("pattern %q is not 16 bits", def.pattern))
	}

	var base uint16
	var varBits []int // bit positions, MSB-side first
	letterOf := make([]byte, 0, 16)
	for i, c := range []byte(pattern) {
		bit := 15 - i
		switch {
		case c == '0':
		case c == '1':
			base |= 1 << bit
		default:
			varBits = append(varBits, bit)
			letterOf = append(letterOf, c)
		}
	}

	// Alphabetical letter order defines the Args slots.
	letters := uniqueSorted(letterOf)

	n := len(varBits)
	for fill := 0; fill < 1<<n; fill++ {
		word := base
		for i, bit := range varBits {
			if fill&(1<<(n-1-i)) != 0 {
				word |= 1 << bit
			}
		}
		if dispatch[word].Op != OpUndefined {
			continue
		}

		inst := Instruction{Op: def.op, NeedExpansion: def.exp}
		for slot, letter := range letters {
			var v uint16
			for i, c := range letterOf {
				if c == letter {
					v = v<<1 | (word>>varBits[i])&1
				}
			}
			inst.Args[slot] = v
		}
		inst.Args[0] += def.bias
		dispatch[word] = inst
	}
}

func uniqueSorted(letters []byte) []byte {
	var seen [256]bool
	for _, c := range letters {
		seen[c] = true
	}
	out := make([]byte, 0, 6)
	for c := byte('a'); c <= 'z'; c++ {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// Decoder decodes Teak program words into instructions.
type Decoder struct{}

// NewDecoder creates a new Teak instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 16-bit program word. Words no table row claims come
// back with Op == OpUndefined.
func (d *Decoder) Decode(word uint16) Instruction {
	return dispatch[word]
}

// String returns the mnemonic of the instruction form.
func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint16(o))
}

var opNames = [numOps]string{
	OpUndefined: "undefined",

	OpNop: "nop", OpTrap: "trap", OpCntxS: "cntx s", OpCntxR: "cntx r",
	OpDint: "dint", OpEint: "eint", OpBreak: "break",
	OpRetd: "retd", OpRetid: "retid", OpRetidc: "retidc",
	OpBankrAll: "bankr", OpVtrshr: "vtrshr",
	OpVtrclr0: "vtrclr0", OpVtrclr1: "vtrclr1", OpVtrclr: "vtrclr",
	OpClrp: "clrp", OpClrp0: "clrp0", OpClrp1: "clrp1",
	OpBkreprstMemsp: "bkreprst [sp]", OpBkrepstoMemsp: "bkrepsto [sp]",
	OpPushPrpage: "push prpage", OpPopPrpage: "pop prpage",
	OpPushR6: "push r6", OpPushRepc: "push repc",
	OpPushX0: "push x0", OpPushX1: "push x1", OpPushY1: "push y1",
	OpPopR6: "pop r6", OpPopRepc: "pop repc",
	OpPopX0: "pop x0", OpPopX1: "pop x1", OpPopY1: "pop y1",
	OpMovA0hStepi0: "mov a0h stepi0", OpMovA0hStepj0: "mov a0h stepj0",
	OpMovStepi0A0h: "mov stepi0 a0h", OpMovStepj0A0h: "mov stepj0 a0h",
	OpMovMixpR6: "mov mixp r6", OpMovR6Mixp: "mov r6 mixp",
	OpMovMemspR6: "mov [sp] r6",
	OpExpR6:      "exp r6", OpExpR6Ax: "exp r6 ax", OpRepR6: "rep r6",
	OpMovP0hR6: "mov p0h r6",
	OpCmpB0B1:  "cmp b0 b1", OpCmpB1B0: "cmp b1 b0",
	OpMacX1to0: "mac x1->x0",
	OpCallaAxl: "calla axl", OpCallaAx: "calla ax", OpMovpdw: "movpdw",
	OpMovPcAx: "mov pc ax", OpMovPcBx: "mov pc bx",
	OpPacr1: "pacr1", OpAddP1: "add p1", OpSubP1: "sub p1", OpCmpP1: "cmp p1",
	OpVtrmov0: "vtrmov0", OpVtrmov1: "vtrmov1", OpVtrmov: "vtrmov",
	OpMulY0R6: "mul y0 r6",

	OpCmpAxBx: "cmp ax bx", OpCmpBxAx: "cmp bx ax",
	OpAddAbBx: "add ab bx", OpAddBxAx: "add bx ax", OpAddPxBx: "add px bx",
	OpSubAbBx: "sub ab bx", OpSubBxAx: "sub bx ax", OpSubPxBx: "sub px bx",
	OpAddP0P1: "add p0 p1", OpAddP0P1a: "add p0 p1a",
	OpAdd3P0P1: "add3 p0 p1", OpAdd3P0P1a: "add3 p0 p1a",
	OpAdd3P0aP1a: "add3 p0a p1a",
	OpSubP0P1:    "sub p0 p1", OpSubP0P1a: "sub p0 p1a",
	OpSub3P0P1: "sub3 p0 p1", OpSub3P0P1a: "sub3 p0 p1a",
	OpSub3P0aP1a: "sub3 p0a p1a",
	OpAddsubP0P1: "addsub p0 p1", OpAddsubP1P0: "addsub p1 p0",
	OpAddsubP0P1a: "addsub p0 p1a", OpAddsubP1aP0: "addsub p1a p0",
	OpClrAbAb: "clr", OpClrrAbAb: "clrr", OpAndAbAbAx: "and",
	OpOrAbAxAx: "or", OpOrAxBxAx: "or", OpOrBxBxAx: "or",
	OpRet: "ret", OpReti: "reti", OpRetic: "retic", OpRets: "rets",

	OpRepImm: "rep", OpLoadPage: "load page", OpMpyi: "mpyi",
	OpBkrepImm: "bkrep", OpLoadModi: "load modi", OpLoadModj: "load modj",
	OpLoadStepi: "load stepi", OpLoadStepj: "load stepj",
	OpLoadPs: "load ps", OpLoadMovpd: "load movpd", OpLoadPs01: "load ps01",
	OpSwap: "swap", OpBanke: "banke",
	OpBankrAr: "bankr ar", OpBankrArp: "bankr arp", OpBankrArArp: "bankr ar arp",
	OpBitrev: "bitrev", OpBitrevDbrv: "bitrev dbrv", OpBitrevEbrv: "bitrev ebrv",
	OpBkreprst: "bkreprst", OpBkrepsto: "bkrepsto",
	OpMovAbAb: "mov ab ab", OpMovDvm: "mov dvm",
	OpMovX0Abl: "mov x0", OpMovX1Abl: "mov x1", OpMovY1Abl: "mov y1",
	OpModr: "modr", OpModrDmod: "modr dmod",
	OpModrI2: "modr i2", OpModrI2Dmod: "modr i2 dmod",
	OpModrD2: "modr d2", OpModrD2Dmod: "modr d2 dmod",
	OpModrEemod: "modr eemod", OpModrEdmod: "modr edmod",
	OpModrDemod: "modr demod", OpModrDdmod: "modr ddmod",
	OpNorm: "norm", OpBr: "br", OpTst4b: "tst4b", OpTst4bAx: "tst4b ax",
	OpCall: "call", OpAlmR6: "alm r6", OpDivs: "divs",
	OpBkrepReg: "bkrep reg", OpBkrepR6: "bkrep r6",

	OpPushArArpSttMod: "push", OpPushReg: "push", OpPopReg: "pop",
	OpPushAbe: "push abe", OpPopAbe: "pop abe",
	OpPushPx: "push px", OpPopPx: "pop px",
	OpPushaAx: "pusha ax", OpPushaBx: "pusha bx",
	OpPopBx: "pop bx", OpPopa: "popa", OpPopArArpSttMod: "pop",
	OpPushImm16: "push imm16", OpRepReg: "rep reg",

	OpMovImm16Bx: "mov imm16 bx", OpMovMemR7Imm16Ax: "mov [r7+imm16] ax",
	OpMovAxlMemImm16: "mov axl [imm16]", OpMovAxlMemR7Imm16: "mov axl [r7+imm16]",
	OpMovMemImm16Ax: "mov [imm16] ax", OpMovImm16Reg: "mov imm16 reg",
	OpMovMemspReg: "mov [sp] reg", OpMovMixpReg: "mov mixp reg",
	OpMovRegIcr: "mov reg icr", OpMovRegMixp: "mov reg mixp",
	OpMovR6ToRn: "mov r6 [rn]", OpMovRnToR6: "mov [rn] r6",
	OpMovAblArArp: "mov abl ararp", OpMovAblSttMod: "mov abl sttmod",
	OpMovArArpAbl: "mov ararp abl", OpMovSttModAbl: "mov sttmod abl",
	OpMovRegBx: "mov reg bx", OpMovd: "movd",
	OpMovpAxlReg: "movp axl reg", OpMovpAxReg: "movp ax reg",
	OpMovImm8sAxh: "mov imm8s axh", OpMovpProg: "movp",
	OpMovRnBx: "mov [rn] bx",
	OpMovP0Ab: "mov ab p0", OpMovP1ToAb: "mov p1 ab",
	OpMovRepcToAb: "mov repc ab", OpMovX0ToAb: "mov x0 ab",
	OpMovX1ToAb: "mov x1 ab", OpMovY1ToAb: "mov y1 ab",
	OpMovDvmToAb: "mov dvm ab", OpMovIcrToAb: "mov icr ab",
	OpMovImm16ArArp: "mov imm16 ararp", OpMovR6Imm16: "mov imm16 r6",
	OpMovRepcImm16: "mov imm16 repc",
	OpMovStepi0Imm16: "mov imm16 stepi0", OpMovStepj0Imm16: "mov imm16 stepj0",
	OpMovImm16SttMod: "mov imm16 sttmod",
	OpMovPrpageAbl: "mov prpage abl", OpMovRepcAbl: "mov abl repc",
	OpMovPrpageToAbl: "mov prpage abl", OpMovRepcToAbl: "mov repc abl",
	OpMovRepcToArRn: "mov repc [arrn]", OpMovArArpArRn: "mov ararp [arrn]",
	OpMovSttModArRn: "mov sttmod [arrn]", OpMovRepcArRn: "mov [arrn] repc",
	OpMovArRnArArp: "mov [arrn] ararp", OpMovArRnSttMod: "mov [arrn] sttmod",
	OpMovRepcToMemR7Imm16: "mov repc [r7+imm16]",
	OpMovRepcMemR7Imm16:   "mov [r7+imm16] repc",
	OpMovArArpSttModMemR7Imm16: "mov ararpsttmod [r7+imm16]",
	OpMovMemR7Imm16ArArpSttMod: "mov [r7+imm16] ararpsttmod",
	OpMovMixpToBx: "mov mixp bx", OpMovR6ToBx: "mov r6 bx",
	OpMovP0hToBx: "mov p0h bx", OpMovP0hToReg: "mov p0h reg",
	OpMovR6ToReg: "mov r6 reg", OpMovRegR6: "mov reg r6",
	OpTstbR6: "tstb r6", OpTstbSttMod: "tstb sttmod",
	OpMovRnReg: "mov [rn] reg",

	OpTstbMemImm8: "tstb", OpMovImm8Axl: "mov imm8 axl",
	OpAlmRegLo: "alm reg", OpAlmRegHi: "alm reg",
	OpMovSvImm8s: "mov imm8s sv", OpMovMemR7Imm7sAx: "mov [r7+imm7s] ax",
	OpMovImm8sRnOld: "mov imm8s rn", OpMovRegRn: "mov reg [rn]",
	OpMovRegReg: "mov reg reg", OpMovSvMemImm8: "mov [imm8] sv",
	OpMovSvToMemImm8: "mov sv [imm8]", OpMovAxlMemR7Imm7s: "mov axl [r7+imm7s]",
	OpMovsMemImm8: "movs", OpMovAblhMemImm8: "mov ablh [imm8]",
	OpBrr: "brr", OpMovMemImm8RnOld: "mov [imm8] rn",
	OpMovRnOldMemImm8: "mov rn [imm8]", OpMovMemImm8Ablh: "mov [imm8] ablh",
	OpCallr: "callr",

	OpAlmMemImm8: "alm", OpAlmRn: "alm [rn]",
	OpAluMemImm16: "alu [imm16]", OpAluMemR7Imm16: "alu [r7+imm16]",
	OpAluImm16: "alu imm16", OpAluImm8: "alu imm8",
	OpAluMemR7Imm7s: "alu [r7+imm7s]",
	OpAlbMemImm8:    "alb", OpAlbRn: "alb [rn]", OpAlbReg: "alb reg",
	OpAlbR6: "alb r6", OpAlbSttMod: "alb sttmod",

	OpMulR45R0123: "mul", OpMulY0MemImm8: "mul y0 [imm8]",
	OpMulY0Rn: "mul y0 [rn]", OpMulY0Reg: "mul y0 reg",
	OpTstbRn: "tstb [rn]", OpTstbReg: "tstb reg",
	OpMulRnImm16: "mul [rn] imm16",
	OpMsuR45R0123: "msu", OpMsuRnImm16: "msu [rn] imm16",
	OpMsusu: "msusu", OpMac1: "mac1",

	OpAddAdd: "add||add", OpAddSub: "add||sub",
	OpSubAdd: "sub||add", OpSubSub: "sub||sub",
	OpAddSubSv: "add||sub sv", OpSubAddSv: "sub||add sv",
	OpSubAddIMovJSv: "sub||add i,mov j sv", OpSubAddJMovISv: "sub||add j,mov i sv",
	OpAddSubIMovJ: "add||sub i,mov j", OpAddSubJMovI: "add||sub j,mov i",

	OpSqrSqrAdd3Ab: "sqr||sqr add3", OpSqrSqrAdd3Mem: "sqr||sqr add3 mem",
	OpSqrMpysuAdd3a: "sqr||mpysu add3a",
	OpMovAddsubsv:   "mov||addsub sv", OpMovAddsubsvAlt: "mov||addsub sv",
	OpMovAddsubrndsv: "mov||addsubrnd sv", OpMovAddsubrndsvAlt: "mov||addsubrnd sv",
	OpMovSub3sv: "mov||sub3 sv", OpMovSub3svAlt: "mov||sub3 sv",
	OpMovSub3rndsv: "mov||sub3rnd sv", OpMovSub3rndsvAlt: "mov||sub3rnd sv",

	OpMaxGe: "max ge", OpMaxGt: "max gt", OpMinLe: "min le", OpMinLt: "min lt",
	OpMaxGeR0: "max ge [r0]", OpMaxGtR0: "max gt [r0]",
	OpMinLeR0: "min le [r0]", OpMinLtR0: "min lt [r0]",
	OpCbsAxh: "cbs", OpCbsAxhBxh: "cbs", OpCbsMem: "cbs mem",
	OpMax2Vtr: "max2 vtr", OpMin2Vtr: "min2 vtr",
	OpMax2VtrAxBx: "max2 vtr", OpMin2VtrAxBx: "min2 vtr",
	OpMax2VtrMovlAxBx: "max2 vtr movl", OpMax2VtrMovhAxBx: "max2 vtr movh",
	OpMax2VtrMovlBxAx: "max2 vtr movl", OpMax2VtrMovhBxAx: "max2 vtr movh",
	OpMin2VtrMovlAxBx: "min2 vtr movl", OpMin2VtrMovhAxBx: "min2 vtr movh",
	OpMin2VtrMovlBxAx: "min2 vtr movl", OpMin2VtrMovhBxAx: "min2 vtr movh",
	OpMax2VtrMovij: "max2 vtr movij", OpMax2VtrMovji: "max2 vtr movji",
	OpMin2VtrMovij: "min2 vtr movij", OpMin2VtrMovji: "min2 vtr movji",
	OpAddhp: "addhp",

	OpMov2PxMem: "mov2 px mem", OpMov2sPxMem: "mov2s px mem",
	OpMov2MemPx: "mov2 mem px",
	OpMovaAbMem: "mova ab mem", OpMovaMemAb: "mova mem ab",
	OpMov2AxhMY0M: "mov2 axh y0", OpMov2AxMij: "mov2 ax mij",
	OpMov2AxMji: "mov2 ax mji", OpMov2MijAx: "mov2 mij ax",
	OpMov2MjiAx: "mov2 mji ax", OpMov2AbhM: "mov2 abh",
	OpExchangeIaj: "exchange iaj", OpExchangeRiaj: "exchange riaj",
	OpExchangeJai: "exchange jai", OpExchangeRjai: "exchange rjai",

	OpMovMemImm8Ab: "mov [imm8] ab", OpShfi: "shfi",
	OpModa4: "moda", OpModa3: "moda", OpShfc: "shfc", OpMovsi: "movsi",

	OpMmaSwap: "mma", OpMmaArp1: "mma arp", OpMmaMxXy: "mma mx xy",
	OpMmaXyMx: "mma xy mx", OpMmaMyMy: "mma my my",
	OpMmaMovAxhBxh: "mma mov", OpMmaMovArRn2: "mma mov", OpMmaArp2: "mma arp",

	OpMovsRn: "movs [rn]", OpMovsReg: "movs reg", OpMovsR6: "movs r6",
	OpMovrMem: "movr mem", OpMovrRn: "movr [rn]", OpMovrReg: "movr reg",
	OpMovrBx: "movr bx", OpMovrR6: "movr r6",
	OpExpBx: "exp bx", OpExpBxAx: "exp bx ax",
	OpExpRn: "exp [rn]", OpExpRnAx: "exp [rn] ax",
	OpExpReg: "exp reg", OpExpRegAx: "exp reg ax", OpLim: "lim",
}
