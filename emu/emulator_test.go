package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/teaksim/emu"
	"github.com/sarchlab/teaksim/insts"
)

var _ = Describe("Emulator", func() {
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

	Describe("basic execution", func() {
		It("should retire nops and advance pc", func() {
			Expect(core.Run(3)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x103)))
			Expect(core.InstructionCount()).To(Equal(uint64(3)))
		})

		It("should load a 16-bit immediate through the expansion word", func() {
			memory.LoadProgram(0x100, []uint16{0x1360, 0x1234}) // mov #0x1234, r0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.R[0]).To(Equal(uint16(0x1234)))
			Expect(regs.Pc).To(Equal(uint32(0x102)))
		})
	})

	Describe("accumulator arithmetic", func() {
		It("should add b0 into a0 with clean flags", func() {
			regs.A[0] = 1
			regs.B[0] = 2
			memory.LoadProgram(0x100, []uint16{0x0070}) // add b0, a0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.A[0]).To(Equal(uint64(3)))
			Expect(regs.Fz).To(Equal(uint16(0)))
			Expect(regs.Fm).To(Equal(uint16(0)))
			Expect(regs.Fc[0]).To(Equal(uint16(0)))
			Expect(regs.Fv).To(Equal(uint16(0)))
		})

		It("should saturate on store and set the sticky limit flag", func() {
			regs.A[0] = 0x00_8000_0000
			memory.LoadProgram(0x100, []uint16{0x0C58}) // mov a0, b0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.B[0]).To(Equal(uint64(0x7FFF_FFFF)))
			Expect(regs.Fls).To(Equal(uint16(1)))
		})

		It("should run an alm add against a paged memory operand", func() {
			regs.Page = 0x12
			memory.DataWrite(0x1234, 5)
			regs.A[0] = 10
			memory.LoadProgram(0x100, []uint16{0x8634}) // add [0x34], a0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.A[0]).To(Equal(uint64(15)))
		})
	})

	Describe("call and return", func() {
		runCallRet := func() {
			memory.LoadProgram(0x100, []uint16{0x0F40, 0x0200}) // call 0x00200
			memory.LoadProgram(0x200, []uint16{0x0CD0})         // ret
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x200)))
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x102)))
			Expect(regs.Sp).To(Equal(uint16(0)))
		}

		It("should restore pc and sp in low-high stack order", func() {
			regs.PcEndian = 0
			runCallRet()
		})

		It("should restore pc and sp in high-low stack order", func() {
			regs.PcEndian = 1
			runCallRet()
		})
	})

	Describe("interrupt dispatch", func() {
		It("should vector a masked line after the next retired instruction", func() {
			regs.Ie = 1
			regs.Im[1] = 1
			regs.Ip[1] = 1
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x000E)))
			Expect(regs.Ie).To(Equal(uint16(0)))
			Expect(regs.Ip[1]).To(Equal(uint16(0)))
			Expect(regs.Sp).To(Equal(uint16(0xFFFE)))
			// pc_endian = 0: high word below the low word
			Expect(memory.DataRead(0xFFFE)).To(Equal(uint16(0x0000)))
			Expect(memory.DataRead(0xFFFF)).To(Equal(uint16(0x0101)))
		})

		It("should prefer line 0 over the vectored line", func() {
			regs.Ie = 1
			regs.Im[0] = 1
			regs.Vim = 1
			core.SignalInterrupt(0)
			core.SignalVectoredInterrupt(0x3000)
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x0006)))
			Expect(regs.Vip).To(Equal(uint16(1))) // still pending
		})

		It("should take the vectored line when no masked line is pending", func() {
			regs.Ie = 1
			regs.Vim = 1
			core.SignalVectoredInterrupt(0x3000)
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x3000)))
			Expect(regs.Vip).To(Equal(uint16(0)))
			Expect(regs.Ie).To(Equal(uint16(0)))
		})

		It("should run the context store when configured", func() {
			regs.Ie = 1
			regs.Im[2] = 1
			regs.Ic[2] = 1
			regs.A[1] = 0x1111
			regs.B[1] = 0x2222
			core.SignalInterrupt(2)
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x0016)))
			Expect(regs.A[1]).To(Equal(uint64(0x2222)))
			Expect(regs.B[1]).To(Equal(uint64(0x1111)))
		})

		It("should hold interrupts off during a single-instruction repeat", func() {
			// rep #2; modr r0, +1
			memory.LoadProgram(0x100, []uint16{0x0102, 0x0D01})
			regs.Ie = 1
			regs.Im[0] = 1
			regs.Ip[0] = 1
			Expect(core.Run(3)).To(Succeed())
			Expect(regs.R[0]).To(Equal(uint16(2)))
			Expect(regs.Pc).To(Equal(uint32(0x101))) // still replaying
			Expect(regs.Ip[0]).To(Equal(uint16(1)))  // untaken
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.R[0]).To(Equal(uint16(3)))
			Expect(regs.Rep).To(BeFalse())
			Expect(regs.Pc).To(Equal(uint32(0x0006))) // now taken
			Expect(regs.Ip[0]).To(Equal(uint16(0)))
		})
	})

	Describe("reti", func() {
		It("should return and re-enable interrupts", func() {
			regs.Ie = 1
			regs.Im[0] = 1
			memory.LoadProgram(0x0006, []uint16{0x0CE0}) // reti always
			core.SignalInterrupt(0)
			Expect(core.Run(1)).To(Succeed()) // nop retires, interrupt taken
			Expect(regs.Pc).To(Equal(uint32(0x0006)))
			Expect(core.Run(1)).To(Succeed()) // reti
			Expect(regs.Pc).To(Equal(uint32(0x101)))
			Expect(regs.Ie).To(Equal(uint16(1)))
		})
	})

	Describe("dual writes to one address", func() {
		It("should let the second (high) write win when the offset is zero", func() {
			regs.A[0] = 0x0123_4567
			regs.R[4] = 0x2000
			regs.Arrn[0] = 4 // descriptor 0 -> r4, step zero, offset zero
			memory.LoadProgram(0x100, []uint16{0xCCA0}) // mova a0, [arrn0]
			Expect(core.Run(1)).To(Succeed())
			Expect(memory.DataRead(0x2000)).To(Equal(uint16(0x0123)))
		})
	})

	Describe("faults", func() {
		It("should report undefined opcodes as decode faults", func() {
			memory.LoadProgram(0x100, []uint16{0x4B00})
			err := core.Run(1)
			var fault *emu.Fault
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(fault))
			Expect(err.(*emu.Fault).Kind).To(Equal(emu.FaultDecode))
			Expect(err.(*emu.Fault).PC).To(Equal(uint32(0x100)))
		})

		It("should fault when pc leaves the program space", func() {
			regs.A[0] = 0x0010_0000
			memory.LoadProgram(0x100, []uint16{0x0036}) // mov a0, pc
			err := core.Run(1)
			Expect(err).To(HaveOccurred())
			Expect(err.(*emu.Fault).Kind).To(Equal(emu.FaultPCOutOfRange))
		})

		It("should fault on break outside a loop", func() {
			memory.LoadProgram(0x100, []uint16{0x0006}) // break
			err := core.Run(1)
			Expect(err).To(HaveOccurred())
			Expect(err.(*emu.Fault).Kind).To(Equal(emu.FaultLoopInvariant))
		})
	})

	Describe("product bus", func() {
		It("should multiply signed through mpyi and read back shifted", func() {
			regs.Y[0] = 0xFFFE                          // -2
			memory.LoadProgram(0x100, []uint16{0x0403}) // mpyi #3
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.P[0]).To(Equal(uint32(0xFFFF_FFFA))) // -6
			Expect(regs.Psign[0]).To(Equal(uint16(1)))
		})
	})

	Describe("movpdw", func() {
		It("should load pc from a program-memory word pair", func() {
			regs.A[0] = 0x0300
			memory.LoadProgram(0x300, []uint16{0x0002, 0x1100}) // h, l
			memory.LoadProgram(0x100, []uint16{0x0034})         // movpdw a0
			Expect(core.Run(1)).To(Succeed())
			Expect(regs.Pc).To(Equal(uint32(0x2_1100)))
		})
	})
})

var _ = Describe("RegisterState", func() {
	var regs *emu.RegisterState

	BeforeEach(func() {
		regs = &emu.RegisterState{}
	})

	It("should round-trip the packed configuration registers", func() {
		regs.SetCfgi(0xABCD)
		Expect(regs.Cfgi()).To(Equal(uint16(0xABCD)))
		Expect(regs.Stepi).To(Equal(uint16(0xABCD & 0x7F)))
		Expect(regs.Modi).To(Equal(uint16(0xABCD >> 7)))

		regs.SetMod2(0x5A3C)
		Expect(regs.Mod2()).To(Equal(uint16(0x5A3C)))

		regs.SetAr(0, 0x5ABC)
		Expect(regs.Ar(0)).To(Equal(uint16(0x5ABC)))
		regs.SetArp(2, 0x4A3C)
		Expect(regs.Arp(2)).To(Equal(uint16(0x4A3C)))
	})

	It("should clear sticky flags only through explicit status writes", func() {
		regs.Fls = 1
		regs.Flv = 1
		regs.SetStt0(0)
		Expect(regs.Fls).To(Equal(uint16(0)))
		Expect(regs.Flv).To(Equal(uint16(0)))
	})

	It("should swap the ar bank", func() {
		regs.SetAr(0, 0x1234)
		regs.SwapAr(0)
		Expect(regs.Ar(0)).To(Equal(uint16(0)))
		regs.SwapAr(0)
		Expect(regs.Ar(0)).To(Equal(uint16(0x1234)))
	})

	It("should evaluate condition codes against the flags", func() {
		regs.Fz = 1
		Expect(regs.ConditionPass(insts.CondEq)).To(BeTrue())
		Expect(regs.ConditionPass(insts.CondNeq)).To(BeFalse())
		regs.Fz = 0
		regs.Fm = 1
		Expect(regs.ConditionPass(insts.CondLt)).To(BeTrue())
		Expect(regs.ConditionPass(insts.CondGe)).To(BeFalse())
		Expect(regs.ConditionPass(insts.CondTrue)).To(BeTrue())
	})

	It("should view the top loop counter through lc", func() {
		regs.SetLc(7)
		Expect(regs.Lc()).To(Equal(uint16(7)))
		regs.Bcn = 1
		regs.BkrepStack[0].Lc = 3
		Expect(regs.Lc()).To(Equal(uint16(3)))
	})
})
