package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/teaksim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("system block", func() {
		It("should decode nop", func() {
			inst := decoder.Decode(0x0000)
			Expect(inst.Op).To(Equal(insts.OpNop))
			Expect(inst.NeedExpansion).To(BeFalse())
		})

		It("should decode eint and dint", func() {
			Expect(decoder.Decode(0x0005).Op).To(Equal(insts.OpEint))
			Expect(decoder.Decode(0x0004).Op).To(Equal(insts.OpDint))
		})

		It("should decode calla a1", func() {
			inst := decoder.Decode(0x0033)
			Expect(inst.Op).To(Equal(insts.OpCallaAx))
			Expect(inst.Args[0]).To(Equal(uint16(1)))
		})
	})

	Describe("immediate forms", func() {
		// rep #0x42 -> 0x0142
		It("should decode rep imm8", func() {
			inst := decoder.Decode(0x0142)
			Expect(inst.Op).To(Equal(insts.OpRepImm))
			Expect(inst.Args[0]).To(Equal(uint16(0x42)))
		})

		// bkrep #2, <exp> -> 0x0502 plus expansion word
		It("should decode bkrep imm8 with expansion", func() {
			inst := decoder.Decode(0x0502)
			Expect(inst.Op).To(Equal(insts.OpBkrepImm))
			Expect(inst.Args[0]).To(Equal(uint16(2)))
			Expect(inst.NeedExpansion).To(BeTrue())
		})

		// load modi #0x1FF -> 0x06 prefix over nine bits
		It("should decode load modi", func() {
			inst := decoder.Decode(0x07FF)
			Expect(inst.Op).To(Equal(insts.OpLoadModi))
			Expect(inst.Args[0]).To(Equal(uint16(0x1FF)))
		})
	})

	Describe("alm family", func() {
		// alm add a0, [0x34] -> 100 0011 0 0011 0100
		It("should decode alm add with a memory operand", func() {
			inst := decoder.Decode(0x8634)
			Expect(inst.Op).To(Equal(insts.OpAlmMemImm8))
			Expect(insts.AlmOp(inst.Args[0])).To(Equal(insts.AlmAdd))
			Expect(inst.Args[1]).To(Equal(uint16(0x34)))
			Expect(insts.AxFromBits(inst.Args[2])).To(Equal(insts.RegA0))
		})

		// register form, high op bank: op field 0 plus bias 8 is msu (op 8)
		It("should bias the high register-form op bank", func() {
			inst := decoder.Decode(0x3400)
			Expect(inst.Op).To(Equal(insts.OpAlmRegHi))
			Expect(insts.AlmOp(inst.Args[0])).To(Equal(insts.AlmMsu))
		})
	})

	Describe("branches", func() {
		// brr +2, always -> 0101 1 0000010 0000
		It("should decode brr with a relative offset", func() {
			inst := decoder.Decode(0x5820)
			Expect(inst.Op).To(Equal(insts.OpBrr))
			Expect(inst.Args[0]).To(Equal(uint16(2)))
			Expect(insts.Cond(inst.Args[1])).To(Equal(insts.CondTrue))
		})

		// br needs the expansion word for its low 16 address bits
		It("should decode br as a two-word form", func() {
			inst := decoder.Decode(0x0EC0)
			Expect(inst.Op).To(Equal(insts.OpBr))
			Expect(inst.NeedExpansion).To(BeTrue())
		})
	})

	Describe("mov family", func() {
		// mov a0, b0 (whole accumulators) -> 0000 1100 0101 1000
		It("should decode mov between accumulators", func() {
			inst := decoder.Decode(0x0C58)
			Expect(inst.Op).To(Equal(insts.OpMovAbAb))
			Expect(insts.AbFromBits(inst.Args[0])).To(Equal(insts.RegA0))
			Expect(insts.AbFromBits(inst.Args[1])).To(Equal(insts.RegB0))
		})

		// mov #imm16, r0 -> 0x1360 with expansion
		It("should decode mov imm16 to register", func() {
			inst := decoder.Decode(0x1360)
			Expect(inst.Op).To(Equal(insts.OpMovImm16Reg))
			Expect(insts.RegisterFromBits(inst.Args[0])).To(Equal(insts.RegR0))
			Expect(inst.NeedExpansion).To(BeTrue())
		})
	})

	Describe("unclaimed words", func() {
		It("should decode unclaimed words as undefined", func() {
			inst := decoder.Decode(0x4B00)
			Expect(inst.Op).To(Equal(insts.OpUndefined))
		})
	})
})

var _ = Describe("Operand helpers", func() {
	It("should treat 16-bit bit reversal as an involution", func() {
		for _, v := range []uint16{0x0000, 0x0001, 0x8000, 0x1234, 0xFFFF, 0xA5A5} {
			Expect(insts.BitReverse(insts.BitReverse(v))).To(Equal(v))
		}
	})

	It("should reverse single bits end to end", func() {
		Expect(insts.BitReverse(0x0001)).To(Equal(uint16(0x8000)))
		Expect(insts.BitReverse(0x0002)).To(Equal(uint16(0x4000)))
	})

	It("should sign-extend 16-bit values", func() {
		Expect(insts.SignExtend16(0x8000)).To(Equal(uint64(0xFFFF_FFFF_FFFF_8000)))
		Expect(insts.SignExtend16(0x7FFF)).To(Equal(uint64(0x7FFF)))
	})

	It("should pair accumulators through CounterAcc", func() {
		Expect(insts.CounterAcc(insts.RegA0)).To(Equal(insts.RegA1))
		Expect(insts.CounterAcc(insts.RegB1h)).To(Equal(insts.RegB0h))
	})
})
