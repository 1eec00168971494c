package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/teaksim/emu"
	"github.com/sarchlab/teaksim/insts"
)

var _ = Describe("ALU", func() {
	var (
		regs *emu.RegisterState
		alu  *emu.ALU
	)

	BeforeEach(func() {
		regs = &emu.RegisterState{}
		alu = emu.NewALU(regs)
	})

	Describe("AddSub", func() {
		It("should add without carry or overflow for small values", func() {
			result := alu.AddSub(1, 2, false)
			Expect(result).To(Equal(uint64(3)))
			Expect(regs.Fc[0]).To(Equal(uint16(0)))
			Expect(regs.Fv).To(Equal(uint16(0)))
		})

		It("should produce the carry from bit 40", func() {
			alu.AddSub(0xFF_FFFF_FFFF, 1, false)
			Expect(regs.Fc[0]).To(Equal(uint16(1)))
		})

		It("should flag two's-complement overflow at bit 39", func() {
			alu.AddSub(0x7F_FFFF_FFFF, 1, false)
			Expect(regs.Fv).To(Equal(uint16(1)))
			Expect(regs.Flv).To(Equal(uint16(1)))
		})

		It("should keep flv sticky across later operations", func() {
			alu.AddSub(0x7F_FFFF_FFFF, 1, false)
			alu.AddSub(1, 2, false)
			Expect(regs.Fv).To(Equal(uint16(0)))
			Expect(regs.Flv).To(Equal(uint16(1)))
		})

		It("should return a sign-extended 40-bit result", func() {
			result := alu.AddSub(0, 1, true)
			Expect(result).To(Equal(uint64(0xFFFF_FFFF_FFFF_FFFF)))
		})
	})

	Describe("SetAcc", func() {
		It("should always store a value equal to its own 40-bit sign-extension", func() {
			for _, v := range []uint64{0, 1, 0x7F_FFFF_FFFF, 0xFFFF_FF80_0000_0000, 0xFFFF_FFFF_FFFF_FFFF} {
				regs.Sar[1] = 1 // saturation off to see raw storage
				alu.SetAcc(insts.RegA0, v)
				Expect(regs.A[0]).To(Equal(insts.SignExtend(regs.A[0], 40)))
			}
		})

		It("should compute fz, fm, fe and fn", func() {
			alu.SetAcc(insts.RegA0, 0)
			Expect(regs.Fz).To(Equal(uint16(1)))
			Expect(regs.Fn).To(Equal(uint16(1)))

			alu.SetAcc(insts.RegA0, insts.SignExtend(0x80_0000_0000, 40))
			Expect(regs.Fm).To(Equal(uint16(1)))
		})

		It("should flag fe for values beyond 32 bits", func() {
			regs.Sar[1] = 1
			alu.SetAcc(insts.RegA0, 0x01_0000_0000)
			Expect(regs.Fe).To(Equal(uint16(1)))
		})
	})

	Describe("Saturation", func() {
		It("should clamp positive overflow to 0x7FFFFFFF and set fls", func() {
			alu.SetAcc(insts.RegA0, 0x00_8000_0000)
			Expect(regs.A[0]).To(Equal(uint64(0x7FFF_FFFF)))
			Expect(regs.Fls).To(Equal(uint16(1)))
		})

		It("should clamp negative overflow to the 32-bit minimum", func() {
			alu.SetAcc(insts.RegA0, insts.SignExtend(0xFF_0000_0000, 40))
			Expect(regs.A[0]).To(Equal(uint64(0xFFFF_FFFF_8000_0000)))
		})

		It("should be idempotent", func() {
			once := alu.SaturateUnconditional(0x00_8000_0000)
			Expect(alu.SaturateUnconditional(once)).To(Equal(once))
		})

		It("should pass values through when the mode bit disables it", func() {
			regs.Sar[1] = 1
			alu.SetAcc(insts.RegA0, 0x00_8000_0000)
			Expect(regs.A[0]).To(Equal(uint64(0x00_8000_0000)))
			Expect(regs.Fls).To(Equal(uint16(0)))
		})

		It("should never clear fls through ALU paths", func() {
			regs.Fls = 1
			alu.SetAcc(insts.RegA0, 1)
			alu.AddSub(1, 2, false)
			Expect(regs.Fls).To(Equal(uint16(1)))
		})
	})

	Describe("ShiftBus40", func() {
		BeforeEach(func() {
			regs.Sar[1] = 1 // keep results raw unless a test opts in
		})

		It("should shift left and carry out of bit 40", func() {
			alu.ShiftBus40(insts.SignExtend(0x80_0000_0000, 40), 1, insts.RegA0)
			Expect(regs.Fc[0]).To(Equal(uint16(1)))
		})

		It("should zero the value on left shifts of 40 or more", func() {
			alu.ShiftBus40(0x1234, 40, insts.RegA0)
			Expect(regs.A[0]).To(Equal(uint64(0)))
			Expect(regs.Fc[0]).To(Equal(uint16(0)))
			Expect(regs.Fv).To(Equal(uint16(1)))
		})

		It("should replicate the sign on arithmetic right shifts of 40 or more", func() {
			alu.ShiftBus40(insts.SignExtend(0x80_0000_0000, 40), 0x8000, insts.RegA0)
			Expect(regs.A[0]).To(Equal(insts.SignExtend(0xFF_FFFF_FFFF, 40)))
			Expect(regs.Fc[0]).To(Equal(uint16(1)))
		})

		It("should zero the value on logic-mode right shifts of 40 or more", func() {
			regs.S = 1
			alu.ShiftBus40(insts.SignExtend(0x80_0000_0000, 40), 0x8000, insts.RegA0)
			Expect(regs.A[0]).To(Equal(uint64(0)))
			Expect(regs.Fc[0]).To(Equal(uint16(0)))
		})

		It("should sign-extend small arithmetic right shifts", func() {
			alu.ShiftBus40(insts.SignExtend(0x80_0000_0000, 40), 0xFFFC, insts.RegA0) // >> 4
			Expect(regs.A[0]).To(Equal(insts.SignExtend(0xF8_0000_0000, 40)))
		})

		It("should set the carry from the last bit shifted out on right shifts", func() {
			alu.ShiftBus40(0b1000, 0xFFFC, insts.RegA0) // >> 4, bit 3 is the last out
			Expect(regs.Fc[0]).To(Equal(uint16(1)))
		})

		It("should saturate to 32 bits in arithmetic mode when enabled", func() {
			regs.Sar[1] = 0
			alu.ShiftBus40(1, 35, insts.RegA0)
			Expect(regs.A[0]).To(Equal(uint64(0x7FFF_FFFF)))
			Expect(regs.Fls).To(Equal(uint16(1)))
		})
	})

	Describe("Exp", func() {
		It("should count redundant sign bits biased for a 32-bit mantissa", func() {
			Expect(alu.Exp(0x00_4000_0000)).To(Equal(uint16(0)))
			Expect(alu.Exp(0x00_2000_0000)).To(Equal(uint16(1)))
			Expect(alu.Exp(insts.SignExtend(0xFF_BFFF_FFFF, 40))).To(Equal(uint16(0)))
		})
	})
})
