package insts

// instDef is one row of the declarative opcode table.
//
// The pattern is 16 characters of '0', '1' and field letters, most
// significant bit first. Spaces are ignored. Each distinct letter names
// one operand field; split fields concatenate their runs MSB-first. The
// decoder stores field values into Instruction.Args in alphabetical
// letter order, which every row keeps equal to the operand order of the
// executing handler.
//
// Rows are matched in order; the first row claiming a word wins, and
// words no row claims decode as OpUndefined.
type instDef struct {
	pattern string
	op      Op
	exp     bool // second program word required
	bias    uint16
}

// opcodeTable is the single source of truth for the instruction
// encodings. It is folded into the 65,536-entry dispatch table once, at
// package initialization.
var opcodeTable = []instDef{
	// System block.
	{"0000 0000 0000 0000", OpNop, false, 0},
	{"0000 0000 0000 0001", OpTrap, false, 0},
	{"0000 0000 0000 0010", OpCntxS, false, 0},
	{"0000 0000 0000 0011", OpCntxR, false, 0},
	{"0000 0000 0000 0100", OpDint, false, 0},
	{"0000 0000 0000 0101", OpEint, false, 0},
	{"0000 0000 0000 0110", OpBreak, false, 0},
	{"0000 0000 0000 0111", OpRetd, false, 0},
	{"0000 0000 0000 1000", OpRetid, false, 0},
	{"0000 0000 0000 1001", OpRetidc, false, 0},
	{"0000 0000 0000 1010", OpBankrAll, false, 0},
	{"0000 0000 0000 1011", OpVtrshr, false, 0},
	{"0000 0000 0000 1100", OpVtrclr0, false, 0},
	{"0000 0000 0000 1101", OpVtrclr1, false, 0},
	{"0000 0000 0000 1110", OpVtrclr, false, 0},
	{"0000 0000 0000 1111", OpClrp, false, 0},
	{"0000 0000 0001 0000", OpClrp0, false, 0},
	{"0000 0000 0001 0001", OpClrp1, false, 0},
	{"0000 0000 0001 0010", OpBkreprstMemsp, false, 0},
	{"0000 0000 0001 0011", OpBkrepstoMemsp, false, 0},
	{"0000 0000 0001 0100", OpPushPrpage, false, 0},
	{"0000 0000 0001 0101", OpPopPrpage, false, 0},
	{"0000 0000 0001 0110", OpPushR6, false, 0},
	{"0000 0000 0001 0111", OpPushRepc, false, 0},
	{"0000 0000 0001 1000", OpPushX0, false, 0},
	{"0000 0000 0001 1001", OpPushX1, false, 0},
	{"0000 0000 0001 1010", OpPushY1, false, 0},
	{"0000 0000 0001 1011", OpPopR6, false, 0},
	{"0000 0000 0001 1100", OpPopRepc, false, 0},
	{"0000 0000 0001 1101", OpPopX0, false, 0},
	{"0000 0000 0001 1110", OpPopX1, false, 0},
	{"0000 0000 0001 1111", OpPopY1, false, 0},
	{"0000 0000 0010 0000", OpMovA0hStepi0, false, 0},
	{"0000 0000 0010 0001", OpMovA0hStepj0, false, 0},
	{"0000 0000 0010 0010", OpMovStepi0A0h, false, 0},
	{"0000 0000 0010 0011", OpMovStepj0A0h, false, 0},
	{"0000 0000 0010 0100", OpMovMixpR6, false, 0},
	{"0000 0000 0010 0101", OpMovR6Mixp, false, 0},
	{"0000 0000 0010 0110", OpMovMemspR6, false, 0},
	{"0000 0000 0010 0111", OpExpR6, false, 0},
	{"0000 0000 0010 100a", OpExpR6Ax, false, 0},
	{"0000 0000 0010 1010", OpRepR6, false, 0},
	{"0000 0000 0010 1011", OpMovP0hR6, false, 0},
	{"0000 0000 0010 1100", OpCmpB0B1, false, 0},
	{"0000 0000 0010 1101", OpCmpB1B0, false, 0},
	{"0000 0000 0010 111a", OpMacX1to0, false, 0},
	{"0000 0000 0011 000a", OpCallaAxl, false, 0},
	{"0000 0000 0011 001a", OpCallaAx, false, 0},
	{"0000 0000 0011 010a", OpMovpdw, false, 0},
	{"0000 0000 0011 011a", OpMovPcAx, false, 0},
	{"0000 0000 0011 100a", OpMovPcBx, false, 0},
	{"0000 0000 0011 101a", OpPacr1, false, 0},
	{"0000 0000 0011 110a", OpAddP1, false, 0},
	{"0000 0000 0011 111a", OpSubP1, false, 0},
	{"0000 0000 0100 000a", OpCmpP1, false, 0},
	{"0000 0000 0100 010a", OpVtrmov0, false, 0},
	{"0000 0000 0100 011a", OpVtrmov1, false, 0},
	{"0000 0000 0100 100a", OpVtrmov, false, 0},
	{"0000 0000 0101 aaab", OpMulY0R6, false, 0},
	{"0000 0000 0110 00ab", OpCmpAxBx, false, 0},
	{"0000 0000 0110 01ab", OpCmpBxAx, false, 0},
	{"0000 0000 0110 1aab", OpAddAbBx, false, 0},
	{"0000 0000 0111 00ab", OpAddBxAx, false, 0},
	{"0000 0000 0111 01ab", OpAddPxBx, false, 0},
	{"0000 0000 0111 1aab", OpSubAbBx, false, 0},
	{"0000 0000 1000 00ab", OpSubBxAx, false, 0},
	{"0000 0000 1000 01ab", OpSubPxBx, false, 0},
	{"0000 0000 1000 10aa", OpAddP0P1, false, 0},
	{"0000 0000 1000 11aa", OpAddP0P1a, false, 0},
	{"0000 0000 1001 00aa", OpAdd3P0P1, false, 0},
	{"0000 0000 1001 01aa", OpAdd3P0P1a, false, 0},
	{"0000 0000 1001 10aa", OpAdd3P0aP1a, false, 0},
	{"0000 0000 1001 11aa", OpSubP0P1, false, 0},
	{"0000 0000 1010 00aa", OpSubP0P1a, false, 0},
	{"0000 0000 1010 01aa", OpSub3P0P1, false, 0},
	{"0000 0000 1010 10aa", OpSub3P0P1a, false, 0},
	{"0000 0000 1010 11aa", OpSub3P0aP1a, false, 0},
	{"0000 0000 1011 00aa", OpAddsubP0P1, false, 0},
	{"0000 0000 1011 01aa", OpAddsubP1P0, false, 0},
	{"0000 0000 1011 10aa", OpAddsubP0P1a, false, 0},
	{"0000 0000 1011 11aa", OpAddsubP1aP0, false, 0},
	{"0000 0000 1100 aabb", OpClrAbAb, false, 0},
	{"0000 0000 1101 aabb", OpClrrAbAb, false, 0},
	{"0000 0000 111a abbc", OpAndAbAbAx, false, 0},

	// Byte immediates.
	{"0000 0001 aaaa aaaa", OpRepImm, false, 0},
	{"0000 0010 aaaa aaaa", OpRets, false, 0},
	{"0000 0011 aaaa aaaa", OpLoadPage, false, 0},
	{"0000 0100 aaaa aaaa", OpMpyi, false, 0},
	{"0000 0101 aaaa aaaa", OpBkrepImm, true, 0},
	{"0000 011a aaaa aaaa", OpLoadModi, false, 0},
	{"0000 100a aaaa aaaa", OpLoadModj, false, 0},
	{"0000 1010 0aaa aaaa", OpLoadStepi, false, 0},
	{"0000 1010 1aaa aaaa", OpLoadStepj, false, 0},
	{"0000 1011 0000 00aa", OpLoadPs, false, 0},
	{"0000 1011 0000 01aa", OpLoadMovpd, false, 0},
	{"0000 1011 0001 aaaa", OpLoadPs01, false, 0},
	{"0000 1011 1000 aaaa", OpSwap, false, 0},

	// Bank, bit-reverse and loop-state transfer.
	{"0000 1100 00aa aaaa", OpBanke, false, 0},
	{"0000 1100 0100 000a", OpBankrAr, false, 0},
	{"0000 1100 0100 10aa", OpBankrArp, false, 0},
	{"0000 1100 0101 aabb", OpMovAbAb, false, 0},
	{"0000 1100 0110 0abb", OpBankrArArp, false, 0},
	{"0000 1100 0111 00aa", OpMovDvm, false, 0},
	{"0000 1100 0111 01aa", OpMovX0Abl, false, 0},
	{"0000 1100 0111 10aa", OpMovX1Abl, false, 0},
	{"0000 1100 0111 11aa", OpMovY1Abl, false, 0},
	{"0000 1100 1000 0aaa", OpBitrev, false, 0},
	{"0000 1100 1000 1aaa", OpBitrevDbrv, false, 0},
	{"0000 1100 1001 0aaa", OpBitrevEbrv, false, 0},
	{"0000 1100 1010 00aa", OpBkreprst, false, 0},
	{"0000 1100 1010 10aa", OpBkrepsto, false, 0},
	{"0000 1100 1011 aabc", OpOrAbAxAx, false, 0},
	{"0000 1100 1100 0abc", OpOrAxBxAx, false, 0},
	{"0000 1100 1100 1abc", OpOrBxBxAx, false, 0},
	{"0000 1100 1101 aaaa", OpRet, false, 0},
	{"0000 1100 1110 aaaa", OpReti, false, 0},
	{"0000 1100 1111 aaaa", OpRetic, false, 0},

	// Pointer modification.
	{"0000 1101 000a aabb", OpModr, false, 0},
	{"0000 1101 001a aabb", OpModrDmod, false, 0},
	{"0000 1101 0100 0aaa", OpModrI2, false, 0},
	{"0000 1101 0100 1aaa", OpModrI2Dmod, false, 0},
	{"0000 1101 0101 0aaa", OpModrD2, false, 0},
	{"0000 1101 0101 1aaa", OpModrD2Dmod, false, 0},
	{"0000 1101 10aa bbcc", OpModrEemod, false, 0},
	{"0000 1101 11aa bbcc", OpModrEdmod, false, 0},
	{"0000 1110 00aa bbcc", OpModrDemod, false, 0},
	{"0000 1110 01aa bbcc", OpModrDdmod, false, 0},
	{"0000 1110 10ab bbcc", OpNorm, false, 0},
	{"0000 1110 11aa bbbb", OpBr, true, 0},
	{"0000 1111 0000 aabb", OpTst4b, false, 0},
	{"0000 1111 001a abbc", OpTst4bAx, false, 0},
	{"0000 1111 01aa bbbb", OpCall, true, 0},
	{"0000 1111 100a aaab", OpAlmR6, false, 0},

	{"0001 000b aaaa aaaa", OpDivs, false, 0},
	{"0001 0010 0aaa aabb", OpBkrepReg, true, 0},
	{"0001 0010 1000 00aa", OpBkrepR6, true, 0},
	{"0001 0010 1001 aaaa", OpPushArArpSttMod, false, 0},
	{"0001 0010 101a aaaa", OpPushReg, false, 0},
	{"0001 0010 110a aaaa", OpPopReg, false, 0},
	{"0001 0010 1110 00aa", OpPushAbe, false, 0},
	{"0001 0010 1110 01aa", OpPopAbe, false, 0},
	{"0001 0010 1110 100a", OpPushPx, false, 0},
	{"0001 0010 1110 101a", OpPopPx, false, 0},
	{"0001 0010 1110 110a", OpPushaAx, false, 0},
	{"0001 0010 1110 111a", OpPushaBx, false, 0},
	{"0001 0010 1111 000a", OpPopBx, false, 0},
	{"0001 0010 1111 01aa", OpPopa, false, 0},
	{"0001 0011 0000 aaaa", OpPopArArpSttMod, false, 0},
	{"0001 0011 0001 0000", OpPushImm16, true, 0},
	{"0001 0011 001a aaaa", OpRepReg, false, 0},
	{"0001 0011 0100 000a", OpMovImm16Bx, true, 0},
	{"0001 0011 0100 010a", OpMovMemR7Imm16Ax, true, 0},
	{"0001 0011 0100 100a", OpMovAxlMemImm16, true, 0},
	{"0001 0011 0100 110a", OpMovAxlMemR7Imm16, true, 0},
	{"0001 0011 0101 000a", OpMovMemImm16Ax, true, 0},
	{"0001 0011 011a aaaa", OpMovImm16Reg, true, 0},
	{"0001 0011 100a aaaa", OpMovMemspReg, false, 0},
	{"0001 0011 101a aaaa", OpMovMixpReg, false, 0},
	{"0001 0011 110a aaaa", OpMovRegIcr, false, 0},
	{"0001 0011 111a aaaa", OpMovRegMixp, false, 0},
	{"0001 0100 000a aabb", OpMovR6ToRn, false, 0},
	{"0001 0100 001a aabb", OpMovRnToR6, false, 0},
	{"0001 0100 010a abbb", OpMovAblArArp, false, 0},
	{"0001 0100 011a abbb", OpMovAblSttMod, false, 0},
	{"0001 0100 100a aabb", OpMovArArpAbl, false, 0},
	{"0001 0100 101a aabb", OpMovSttModAbl, false, 0},
	{"0001 0100 11aa aaab", OpMovRegBx, false, 0},
	{"0001 0101 0aab bcdd", OpMovd, false, 0},
	{"0001 0101 10ab bbbb", OpMovpAxlReg, false, 0},
	{"0001 0101 11ab bbbb", OpMovpAxReg, false, 0},
	{"0001 011b aaaa aaaa", OpMovImm8sAxh, false, 0},
	{"0001 100a aabb ccdd", OpMovpProg, false, 0},
	{"0001 1010 00ca aabb", OpMovRnBx, false, 0},
	{"0001 1010 0100 00aa", OpMovP0Ab, false, 0},
	{"0001 1010 0100 01aa", OpMovP1ToAb, false, 0},
	{"0001 1010 0100 10aa", OpMovRepcToAb, false, 0},
	{"0001 1010 0100 11aa", OpMovX0ToAb, false, 0},
	{"0001 1010 0101 00aa", OpMovX1ToAb, false, 0},
	{"0001 1010 0101 01aa", OpMovY1ToAb, false, 0},
	{"0001 1010 0101 10aa", OpMovDvmToAb, false, 0},
	{"0001 1010 0101 11aa", OpMovIcrToAb, false, 0},
	{"0001 1010 0110 0aaa", OpMovImm16ArArp, true, 0},
	{"0001 1010 0110 1000", OpMovR6Imm16, true, 0},
	{"0001 1010 0110 1001", OpMovRepcImm16, true, 0},
	{"0001 1010 0110 1010", OpMovStepi0Imm16, true, 0},
	{"0001 1010 0110 1011", OpMovStepj0Imm16, true, 0},
	{"0001 1010 0111 0aaa", OpMovImm16SttMod, true, 0},
	{"0001 1010 0111 10aa", OpMovPrpageAbl, false, 0},
	{"0001 1010 0111 11aa", OpMovRepcAbl, false, 0},
	{"0001 1010 1000 00aa", OpMovPrpageToAbl, false, 0},
	{"0001 1010 1000 01aa", OpMovRepcToAbl, false, 0},
	{"0001 1010 1001 00ab", OpMovRepcToArRn, false, 0},
	{"0001 1010 101a aabc", OpMovArArpArRn, false, 0},
	{"0001 1010 110a aabc", OpMovSttModArRn, false, 0},
	{"0001 1010 1110 00ab", OpMovRepcArRn, false, 0},
	{"0001 1011 000a bccc", OpMovArRnArArp, false, 0},
	{"0001 1011 001a bccc", OpMovArRnSttMod, false, 0},
	{"0001 1011 0100 0000", OpMovRepcToMemR7Imm16, true, 0},
	{"0001 1011 0100 0001", OpMovRepcMemR7Imm16, true, 0},
	{"0001 1011 0101 aaaa", OpMovArArpSttModMemR7Imm16, true, 0},
	{"0001 1011 0110 aaaa", OpMovMemR7Imm16ArArpSttMod, true, 0},
	{"0001 1011 0111 000a", OpMovMixpToBx, false, 0},
	{"0001 1011 0111 001a", OpMovR6ToBx, false, 0},
	{"0001 1011 0111 010a", OpMovP0hToBx, false, 0},
	{"0001 1011 100a aaaa", OpMovP0hToReg, false, 0},
	{"0001 1011 101a aaaa", OpMovR6ToReg, false, 0},
	{"0001 1011 110a aaaa", OpMovRegR6, false, 0},
	{"0001 1011 1110 aaaa", OpTstbR6, false, 0},
	{"0001 1011 1111 0aaa", OpTstbSttMod, true, 0},
	{"0001 11aa abbc cccc", OpMovRnReg, false, 0},

	{"0010 bbbb aaaa aaaa", OpTstbMemImm8, false, 0},
	{"0011 000b aaaa aaaa", OpMovImm8Axl, false, 0},
	{"0011 001a aabb bbbc", OpAlmRegLo, false, 0},
	{"0011 010a aabb bbbc", OpAlmRegHi, false, 8},
	{"0011 0110 aaaa aaaa", OpMovSvImm8s, false, 0},
	{"0011 0111 baaa aaaa", OpMovMemR7Imm7sAx, false, 0},
	{"0011 1bbb aaaa aaaa", OpMovImm8sRnOld, false, 0},
	{"0100 00aa aaab bbcc", OpMovRegRn, false, 0},
	{"0100 01aa aaab bbbb", OpMovRegReg, false, 0},
	{"0100 1000 aaaa aaaa", OpMovSvMemImm8, false, 0},
	{"0100 1001 aaaa aaaa", OpMovSvToMemImm8, false, 0},
	{"0100 1010 abbb bbbb", OpMovAxlMemR7Imm7s, false, 0},
	{"0100 11bb aaaa aaaa", OpMovsMemImm8, false, 0},
	{"0101 0aaa bbbb bbbb", OpMovAblhMemImm8, false, 0},
	{"0101 1aaa aaaa bbbb", OpBrr, false, 0},
	{"0110 0bbb aaaa aaaa", OpMovMemImm8RnOld, false, 0},
	{"0110 1aaa bbbb bbbb", OpMovRnOldMemImm8, false, 0},
	{"0111 0bbb aaaa aaaa", OpMovMemImm8Ablh, false, 0},
	{"0111 1aaa aaaa bbbb", OpCallr, false, 0},

	{"100a aaac bbbb bbbb", OpAlmMemImm8, false, 0},
	{"1100 10aa aabb bccd", OpAlmRn, false, 0},

	{"1010 0aaa bccd deef", OpMulR45R0123, false, 0},
	{"1010 1aaa cbbb bbbb", OpAluMemR7Imm7s, false, 0},
	{"1011 0aac bbbb bbbb", OpMulY0MemImm8, false, 0},
	{"1011 100a aabb bccd", OpMulY0Rn, false, 0},
	{"1011 101a aabb bbbc", OpMulY0Reg, false, 0},
	{"1011 110a aabb cccc", OpTstbRn, false, 0},
	{"1011 111a aabb bccd", OpMulRnImm16, true, 0},

	// Dual-memory arithmetic.
	{"1100 0000 000a bcdd", OpAddAdd, false, 0},
	{"1100 0000 001a bcdd", OpAddSub, false, 0},
	{"1100 0000 010a bcdd", OpSubAdd, false, 0},
	{"1100 0000 011a bcdd", OpSubSub, false, 0},
	{"1100 0000 1000 abcc", OpAddSubSv, false, 0},
	{"1100 0000 1001 abcc", OpSubAddSv, false, 0},
	{"1100 0000 101a bcdd", OpSubAddIMovJSv, false, 0},
	{"1100 0000 110a bcdd", OpSubAddJMovISv, false, 0},
	{"1100 0000 111a bcdd", OpAddSubIMovJ, false, 0},
	{"1100 0001 000a bcdd", OpAddSubJMovI, false, 0},

	{"1100 0010 abbc cdde", OpMsuR45R0123, false, 0},
	{"1100 0011 00aa abbc", OpMsuRnImm16, true, 0},
	{"1100 0011 010a abbc", OpMsusu, false, 0},
	{"1100 0011 0110 abcd", OpMac1, false, 0},
	{"1100 0011 0111 aabb", OpSqrSqrAdd3Ab, false, 0},
	{"1100 0011 10aa bbcc", OpSqrSqrAdd3Mem, false, 0},
	{"1100 0011 1100 aabb", OpSqrMpysuAdd3a, false, 0},
	{"1100 0011 1101 0abc", OpMovAddsubsv, false, 0},
	{"1100 0011 1101 1abc", OpMovAddsubsvAlt, false, 0},
	{"1100 0011 1110 0abc", OpMovAddsubrndsv, false, 0},
	{"1100 0011 1110 1abc", OpMovAddsubrndsvAlt, false, 0},
	{"1100 0011 1111 0abc", OpMovSub3sv, false, 0},
	{"1100 0011 1111 1abc", OpMovSub3svAlt, false, 0},
	{"1100 0100 0000 0abc", OpMovSub3rndsv, false, 0},
	{"1100 0100 0000 1abc", OpMovSub3rndsvAlt, false, 0},
	{"1100 0100 0001 0abb", OpMaxGe, false, 0},
	{"1100 0100 0001 1abb", OpMaxGt, false, 0},
	{"1100 0100 0010 0abb", OpMinLe, false, 0},
	{"1100 0100 0010 1abb", OpMinLt, false, 0},
	{"1100 0100 0011 0abb", OpMaxGeR0, false, 0},
	{"1100 0100 0011 1abb", OpMaxGtR0, false, 0},
	{"1100 0100 0100 0abb", OpMinLeR0, false, 0},
	{"1100 0100 0100 1abb", OpMinLtR0, false, 0},
	{"1100 0100 0101 00ab", OpCbsAxh, false, 0},
	{"1100 0100 0101 1abc", OpCbsAxhBxh, false, 0},
	{"1100 0100 0110 abcd", OpCbsMem, false, 0},
	{"1100 0100 0111 000a", OpMax2Vtr, false, 0},
	{"1100 0100 0111 001a", OpMin2Vtr, false, 0},
	{"1100 0100 0111 10ab", OpMax2VtrAxBx, false, 0},
	{"1100 0100 0111 11ab", OpMin2VtrAxBx, false, 0},
	{"1100 0100 1000 abcd", OpMax2VtrMovlAxBx, false, 0},
	{"1100 0100 1001 abcd", OpMax2VtrMovhAxBx, false, 0},
	{"1100 0100 1010 abcd", OpMax2VtrMovlBxAx, false, 0},
	{"1100 0100 1011 abcd", OpMax2VtrMovhBxAx, false, 0},
	{"1100 0100 1100 abcd", OpMin2VtrMovlAxBx, false, 0},
	{"1100 0100 1101 abcd", OpMin2VtrMovhAxBx, false, 0},
	{"1100 0100 1110 abcd", OpMin2VtrMovlBxAx, false, 0},
	{"1100 0100 1111 abcd", OpMin2VtrMovhBxAx, false, 0},
	{"1100 0101 000a bcde", OpMax2VtrMovij, false, 0},
	{"1100 0101 001a bcde", OpMax2VtrMovji, false, 0},
	{"1100 0101 010a bcde", OpMin2VtrMovij, false, 0},
	{"1100 0101 011a bcde", OpMin2VtrMovji, false, 0},
	{"1100 0101 10aa bbcd", OpAddhp, false, 0},
	{"1100 011a aaaa bbbb", OpTstbReg, false, 0},

	// Dual mov and exchange.
	{"1100 1100 000a bbcc", OpMov2PxMem, false, 0},
	{"1100 1100 001a bbcc", OpMov2sPxMem, false, 0},
	{"1100 1100 010a abbc", OpMov2MemPx, false, 0},
	{"1100 1100 10aa bbcc", OpMovaAbMem, false, 0},
	{"1100 1100 11aa bbcc", OpMovaMemAb, false, 0},
	{"1100 1101 000a bbcc", OpMov2AxhMY0M, false, 0},
	{"1100 1101 001a abcd", OpMov2AxMij, false, 0},
	{"1100 1101 010a abcd", OpMov2AxMji, false, 0},
	{"1100 1101 011a bcdd", OpMov2MijAx, false, 0},
	{"1100 1101 100a bcdd", OpMov2MjiAx, false, 0},
	{"1100 1101 11aa bbcd", OpMov2AbhM, false, 0},
	{"1100 1110 0abb ccdd", OpExchangeIaj, false, 0},
	{"1100 1110 1abb ccdd", OpExchangeRiaj, false, 0},
	{"1100 1111 0abb ccdd", OpExchangeJai, false, 0},
	{"1100 1111 1abb ccdd", OpExchangeRjai, false, 0},

	{"1101 00bb aaaa aaaa", OpMovMemImm8Ab, false, 0},
	{"1101 01aa bbcc cccc", OpShfi, false, 0},
	{"1101 100a aaab cccc", OpModa4, false, 0},
	{"1101 1010 aaab cccc", OpModa3, false, 0},
	{"1101 1011 aabb cccc", OpShfc, false, 0},
	{"1101 11aa abbc cccc", OpMovsi, false, 0},

	// ALB and the expansion-word ALU forms.
	{"1110 0aaa bbbb bbbb", OpAlbMemImm8, true, 0},
	{"1110 1000 aaab bbcc", OpAlbRn, true, 0},
	{"1110 1001 aaab bbbb", OpAlbReg, true, 0},
	{"1110 1010 0000 0aaa", OpAlbR6, true, 0},
	{"1110 1010 01aa abbb", OpAlbSttMod, true, 0},
	{"1110 1010 1000 aaab", OpAluMemImm16, true, 0},
	{"1110 1010 1001 aaab", OpAluMemR7Imm16, true, 0},
	{"1110 1010 1010 aaab", OpAluImm16, true, 0},

	// mma family; configuration rides in the expansion word.
	{"1110 1011 0000 00aa", OpMmaSwap, true, 0},
	{"1110 1011 001a bcdd", OpMmaArp1, true, 0},
	{"1110 1011 0100 abcc", OpMmaMxXy, true, 0},
	{"1110 1011 0101 abcc", OpMmaXyMx, true, 0},
	{"1110 1011 0110 abcc", OpMmaMyMy, true, 0},
	{"1110 1011 10ab cdee", OpMmaMovAxhBxh, true, 0},
	{"1110 1011 110a abcc", OpMmaMovArRn2, true, 0},
	{"1110 1100 aabb ccdd", OpMmaArp2, true, 0},

	// movs / movr / exp / lim.
	{"1110 1101 0aaa bbcc", OpMovsRn, false, 0},
	{"1110 1101 1aaa aabb", OpMovsReg, false, 0},
	{"1110 1110 0000 000a", OpMovsR6, false, 0},
	{"1110 1110 01aa bbcc", OpMovrMem, false, 0},
	{"1110 1110 10aa abbc", OpMovrRn, false, 0},
	{"1110 1110 11aa aaab", OpMovrReg, false, 0},
	{"1110 1111 0000 00ab", OpMovrBx, false, 0},
	{"1110 1111 0000 010a", OpMovrR6, false, 0},
	{"1110 1111 0001 000a", OpExpBx, false, 0},
	{"1110 1111 0001 01ab", OpExpBxAx, false, 0},
	{"1110 1111 001a aabb", OpExpRn, false, 0},
	{"1110 1111 01aa abbc", OpExpRnAx, false, 0},
	{"1110 1111 100a aaaa", OpExpReg, false, 0},
	{"1110 1111 1010 00ab", OpLim, false, 0},
	{"1110 1111 11aa aaab", OpExpRegAx, false, 0},

	{"1111 aaac bbbb bbbb", OpAluImm8, false, 0},
}
