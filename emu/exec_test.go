package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/teaksim/emu"
)

var _ = Describe("Instruction semantics", func() {
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

	Describe("shfi", func() {
		It("should shift a0 into b1 by a signed immediate", func() {
			regs.A[0] = 0x10
			memory.LoadProgram(0x100, []uint16{0xD644}) // shfi a0, b1, #4
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.B[1]).To(Equal(uint64(0x100)))
		})
	})

	Describe("stack transfers", func() {
		It("should push and pop a register through data memory", func() {
			regs.R[0] = 0xBEEF
			memory.LoadProgram(0x100, []uint16{0x12A0, 0x12C1}) // push r0; pop r1
			Expect(core.Run(2)).To(Succeed())
			Expect(regs.R[1]).To(Equal(uint16(0xBEEF)))
			Expect(regs.Sp).To(Equal(uint16(0)))
		})

		It("should push an accumulator pair through pusha/popa", func() {
			regs.A[0] = 0x1234_5678
			// pusha a0; popa b1
			memory.LoadProgram(0x100, []uint16{0x12EC, 0x12F5})
			Expect(core.Run(2)).To(Succeed())
			Expect(regs.B[1]).To(Equal(uint64(0x1234_5678)))
		})
	})

	Describe("alb", func() {
		It("should set bits in a memory word", func() {
			memory.DataWrite(0x0020, 0x0F00)
			// set #0x00FF, [0x20]
			memory.LoadProgram(0x100, []uint16{0xE020, 0x00FF})
			Expect(core.Run(1)).To(Succeed())
			Expect(memory.DataRead(0x0020)).To(Equal(uint16(0x0FFF)))
			Expect(regs.Fz).To(Equal(uint16(0)))
		})

		It("should compare without writing back through cmpv", func() {
			regs.R[6] = 0x1234
			// cmpv #0x1234, r6 -> alb r6 with op 6
			memory.LoadProgram(0x100, []uint16{0xEA06, 0x1234})
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.R[6]).To(Equal(uint16(0x1234)))
			Expect(regs.Fz).To(Equal(uint16(1)))
		})
	})

	Describe("tstb", func() {
		It("should test a single bit of a paged memory word", func() {
			memory.DataWrite(0x0040, 0x0008)
			memory.LoadProgram(0x100, []uint16{0x2340}) // tstb [0x40], #3
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Fz).To(Equal(uint16(1)))
		})
	})

	Describe("banke", func() {
		It("should exchange r0 with its alternate bank", func() {
			regs.R[0] = 0x1111
			regs.R0b = 0x2222
			memory.LoadProgram(0x100, []uint16{0x0C08}) // banke r0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.R[0]).To(Equal(uint16(0x2222)))
			Expect(regs.R0b).To(Equal(uint16(0x1111)))
		})
	})

	Describe("swap", func() {
		It("should exchange a0 and b0", func() {
			regs.A[0] = 0x1111
			regs.B[0] = 0x2222
			memory.LoadProgram(0x100, []uint16{0x0B80}) // swap a0<->b0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.A[0]).To(Equal(uint64(0x2222)))
			Expect(regs.B[0]).To(Equal(uint64(0x1111)))
		})
	})

	Describe("context store and restore", func() {
		It("should rotate a1/b1 and bring the flags back", func() {
			regs.A[1] = 0xAAAA
			regs.B[1] = 0xBBBB
			regs.Fz = 1
			memory.LoadProgram(0x100, []uint16{0x0002, 0x0003}) // cntx s; cntx r
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.A[1]).To(Equal(uint64(0xBBBB)))
			Expect(regs.B[1]).To(Equal(uint64(0xAAAA)))
			regs.Fz = 0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.A[1]).To(Equal(uint64(0xAAAA)))
			Expect(regs.B[1]).To(Equal(uint64(0xBBBB)))
			Expect(regs.Fz).To(Equal(uint16(1)))
		})
	})

	Describe("mac", func() {
		It("should accumulate the previous product before multiplying anew", func() {
			regs.A[0] = 0
			regs.Y[0] = 3
			regs.R[0] = 0x2000
			memory.DataWrite(0x2000, 4)
			memory.DataWrite(0x2001, 5)
			// mac y0, [r0]+, a0 twice: first adds p0 (0), then 3*4
			memory.LoadProgram(0x100, []uint16{0xB882, 0xB882}) // mac y0, [r0]+, a0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.A[0]).To(Equal(uint64(0)))
			Expect(regs.P[0]).To(Equal(uint32(12)))
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.A[0]).To(Equal(uint64(12)))
			Expect(regs.P[0]).To(Equal(uint32(15)))
		})
	})

	Describe("divs", func() {
		It("should run one restoring-division step", func() {
			regs.A[0] = 0x0001_0000
			memory.DataWrite(0x0010, 1) // divisor at page 0, address 0x10
			memory.LoadProgram(0x100, []uint16{0x1010}) // divs [0x10], a0
			Expect(core.Run(1)).To(Succeed())
			// 0x10000 - (1<<15) = 0x8000 >= 0 -> shift in a one
			Expect(regs.A[0]).To(Equal(uint64(0x0001_0001)))
		})
	})

	Describe("exp", func() {
		It("should record the exponent in sv and optionally mirror it", func() {
			regs.B[0] = 0x00_4000_0000
			memory.LoadProgram(0x100, []uint16{0xEF10}) // exp b0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Sv).To(Equal(uint16(0)))

			regs.B[0] = 0x00_0000_4000
			regs.Pc = 0x100
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Sv).To(Equal(uint16(16)))
		})
	})
})
