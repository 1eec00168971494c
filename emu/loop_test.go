package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/teaksim/emu"
)

var _ = Describe("Block repeat", func() {
	var (
		regs   *emu.RegisterState
		memory *emu.Memory
		core   *emu.Emulator
	)

	BeforeEach(func() {
		regs = &emu.RegisterState{Pc: 0x100}
		memory = emu.NewMemory()
		core = emu.NewEmulator(regs, memory)
	})

	Describe("bkrep", func() {
		BeforeEach(func() {
			// bkrep #2, 0x102 ; body: modr r0, +1 at 0x102
			memory.LoadProgram(0x100, []uint16{0x0502, 0x0102, 0x0D01})
		})

		It("should enter the loop with bcn 1", func() {
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Bcn).To(Equal(uint16(1)))
			Expect(regs.Lp).To(Equal(uint16(1)))
			Expect(regs.BkrepStack[0].Start).To(Equal(uint32(0x102)))
			Expect(regs.BkrepStack[0].End).To(Equal(uint32(0x102)))
			Expect(regs.BkrepStack[0].Lc).To(Equal(uint16(2)))
		})

		It("should run the body three times and pop the loop", func() {
			Expect(core.Run(4)).To(Succeed())
			Expect(regs.R[0]).To(Equal(uint16(3)))
			Expect(regs.Bcn).To(Equal(uint16(0)))
			Expect(regs.Lp).To(Equal(uint16(0)))
			Expect(regs.Pc).To(Equal(uint32(0x103)))
		})

		It("should expose the live counter through lc", func() {
			Expect(core.Run(2)).To(Succeed())
			Expect(regs.Lc()).To(Equal(uint16(1)))
		})
	})

	Describe("nesting", func() {
		It("should fault past four active loops", func() {
			regs.Bcn = 4
			regs.Lp = 1
			regs.BkrepStack[3].End = 0x9999 // keep the loop check away
			memory.LoadProgram(0x100, []uint16{0x0502, 0x0102})
			err := core.Run(1)
			Expect(err).To(HaveOccurred())
			Expect(err.(*emu.Fault).Kind).To(Equal(emu.FaultLoopStackOverflow))
		})
	})

	Describe("loop state transfer", func() {
		It("should spill and reload a frame through memory", func() {
			regs.Lp = 1
			regs.Bcn = 1
			regs.BkrepStack[0] = emu.BlockRepeatFrame{Start: 0x2_1234, End: 0x2_5678, Lc: 9}
			regs.Sp = 0x1000
			memory.LoadProgram(0x100, []uint16{0x0013}) // bkrepsto [sp]
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Lp).To(Equal(uint16(0)))
			Expect(regs.Bcn).To(Equal(uint16(0)))
			Expect(memory.DataRead(0x1000)).To(Equal(uint16(9)))      // lc
			Expect(memory.DataRead(0x0FFF)).To(Equal(uint16(0x1234))) // start low
			Expect(memory.DataRead(0x0FFE)).To(Equal(uint16(0x5678))) // end low
			// flag word: lp, then start's high bits in both fields
			Expect(memory.DataRead(0x0FFD)).To(Equal(uint16(0x8000 | 0x2<<8 | 0x2)))

			memory.LoadProgram(0x101, []uint16{0x0012}) // bkreprst [sp]
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Lp).To(Equal(uint16(1)))
			Expect(regs.Bcn).To(Equal(uint16(1)))
			Expect(regs.BkrepStack[0].Start).To(Equal(uint32(0x2_1234)))
			// the end high bits come back from the duplicated start field
			Expect(regs.BkrepStack[0].End).To(Equal(uint32(0x2_5678)))
			Expect(regs.BkrepStack[0].Lc).To(Equal(uint16(9)))
			Expect(regs.Sp).To(Equal(uint16(0x1000)))
		})
	})

	Describe("break", func() {
		It("should drop the loop without branching", func() {
			memory.LoadProgram(0x100, []uint16{0x0502, 0x0110, 0x0006}) // bkrep; break
			Expect(core.Run(2)).To(Succeed())
			Expect(regs.Lp).To(Equal(uint16(0)))
			Expect(regs.Bcn).To(Equal(uint16(0)))
			Expect(regs.Pc).To(Equal(uint32(0x103)))
		})
	})
})
