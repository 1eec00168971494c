package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/teaksim/emu"
	"github.com/sarchlab/teaksim/insts"
)

var _ = Describe("AddressUnit", func() {
	var (
		regs *emu.RegisterState
		au   *emu.AddressUnit
	)

	BeforeEach(func() {
		regs = &emu.RegisterState{}
		au = emu.NewAddressUnit(regs)
	})

	Describe("linear stepping", func() {
		It("should return the pointer then post-increment", func() {
			regs.R[2] = 0x100
			Expect(au.RnAndModify(2, insts.StepIncrease, false)).To(Equal(uint16(0x100)))
			Expect(regs.R[2]).To(Equal(uint16(0x101)))
		})

		It("should post-decrement with wraparound", func() {
			regs.R[0] = 0
			au.RnAndModify(0, insts.StepDecrease, false)
			Expect(regs.R[0]).To(Equal(uint16(0xFFFF)))
		})

		It("should apply the 7-bit signed step register", func() {
			regs.R[5] = 0x100
			regs.Stepj = 0x7F // -1 in 7-bit two's complement
			au.RnAndModify(5, insts.StepPlusStep, false)
			Expect(regs.R[5]).To(Equal(uint16(0x0FF)))
		})

		It("should leave the pointer alone on a zero step", func() {
			regs.R[1] = 0x42
			au.RnAndModify(1, insts.StepZero, false)
			Expect(regs.R[1]).To(Equal(uint16(0x42)))
		})
	})

	Describe("modulo stepping", func() {
		BeforeEach(func() {
			regs.M[0] = 1
			regs.Modi = 7 // eight-word circular buffer
		})

		It("should wrap to zero past the modulo boundary", func() {
			regs.R[0] = 7
			au.RnAndModify(0, insts.StepIncrease, false)
			Expect(regs.R[0]).To(Equal(uint16(0)))
		})

		It("should wrap to the modulo on underflow", func() {
			regs.LegacyMod = 1
			regs.R[0] = 0
			au.RnAndModify(0, insts.StepDecrease, false)
			Expect(regs.R[0]).To(Equal(uint16(7)))
		})

		It("should preserve the bits above the fold", func() {
			regs.R[0] = 0x1007
			au.RnAndModify(0, insts.StepIncrease, false)
			Expect(regs.R[0]).To(Equal(uint16(0x1000)))
		})

		It("should treat a zero modulo as a no-op", func() {
			regs.Modi = 0
			regs.R[0] = 5
			au.RnAndModify(0, insts.StepIncrease, false)
			Expect(regs.R[0]).To(Equal(uint16(5)))
		})

		It("should bypass the fold when dmod is set", func() {
			regs.R[0] = 7
			au.RnAndModify(0, insts.StepIncrease, true)
			Expect(regs.R[0]).To(Equal(uint16(8)))
		})
	})

	Describe("bit-reversed addressing", func() {
		It("should reverse the returned address but step linearly", func() {
			regs.Brv[2] = 1
			regs.R[2] = 0x0001
			address := au.RnAddressAndModify(2, insts.StepIncrease, false)
			Expect(address).To(Equal(uint16(0x8000)))
			Expect(regs.R[2]).To(Equal(uint16(0x0002)))
		})

		It("should not reverse while modulo mode is on", func() {
			regs.Brv[2] = 1
			regs.M[2] = 1
			regs.Modi = 7
			regs.R[2] = 0x0001
			Expect(au.RnAddress(2, regs.R[2])).To(Equal(uint16(0x0001)))
		})
	})

	Describe("zero-on-access pointers", func() {
		It("should reset r3 instead of stepping when r3z is set", func() {
			regs.R3z = 1
			regs.R[3] = 0x55
			Expect(au.RnAndModify(3, insts.StepIncrease, false)).To(Equal(uint16(0x55)))
			Expect(regs.R[3]).To(Equal(uint16(0)))
		})

		It("should still step r3 for the double-step modes", func() {
			regs.R3z = 1
			regs.R[3] = 0x10
			au.RnAndModify(3, insts.StepIncrease2Mode1, false)
			Expect(regs.R[3]).To(Equal(uint16(0x12)))
		})
	})

	Describe("OffsetAddress", func() {
		It("should be the identity for a zero offset", func() {
			for _, a := range []uint16{0, 1, 0x1234, 0xFFFF} {
				Expect(au.OffsetAddress(0, a, insts.OffsetZero, false)).To(Equal(a))
			}
		})

		It("should add and subtract one outside modulo mode", func() {
			Expect(au.OffsetAddress(0, 5, insts.OffsetPlusOne, false)).To(Equal(uint16(6)))
			Expect(au.OffsetAddress(0, 5, insts.OffsetMinusOne, false)).To(Equal(uint16(4)))
		})

		It("should wrap at the modulo edges", func() {
			regs.M[0] = 1
			regs.Modi = 7
			Expect(au.OffsetAddress(0, 7, insts.OffsetPlusOne, false)).To(Equal(uint16(0)))
			Expect(au.OffsetAddress(0, 0, insts.OffsetMinusOne, false)).To(Equal(uint16(7)))
		})

		It("should ignore the modulo with the dmod variant", func() {
			regs.M[0] = 1
			regs.Modi = 7
			Expect(au.OffsetAddress(0, 0, insts.OffsetMinusOneDmod, false)).To(Equal(uint16(0xFFFF)))
		})
	})

	Describe("ArRn indirection", func() {
		It("should dereference through the descriptor tables", func() {
			regs.Arrn[1] = 5
			regs.Arstep[2] = 1
			regs.Aroffset[3] = 2
			Expect(au.ArRnUnit(1)).To(Equal(5))
			Expect(au.ArStep(2)).To(Equal(insts.StepIncrease))
			Expect(au.ArOffset(3)).To(Equal(insts.OffsetMinusOne))
		})

		It("should split ArpRn into its i and j units", func() {
			regs.Arprni[2] = 3
			regs.Arprnj[2] = 1
			i, j := au.ArpRnUnits(2)
			Expect(i).To(Equal(3))
			Expect(j).To(Equal(5))
		})
	})
})
