package timing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/teaksim/emu"
	"github.com/sarchlab/teaksim/timing"
)

var _ = Describe("Core", func() {
	var (
		regs   *emu.RegisterState
		memory *emu.Memory
		engine sim.Engine
		core   *timing.Core
	)

	BeforeEach(func() {
		regs = &emu.RegisterState{Pc: 0x100}
		memory = emu.NewMemory()
		engine = sim.NewSerialEngine()
		core = timing.NewCore("DSP", engine, 100*sim.MHz, emu.NewEmulator(regs, memory))
	})

	It("should retire the budgeted instruction count", func() {
		// mov #0x1234, r0 followed by nops
		memory.LoadProgram(0x100, []uint16{0x1360, 0x1234})
		core.Start(10)
		Expect(engine.Run()).To(Succeed())

		stats := core.Stats()
		Expect(stats.Instructions).To(Equal(uint64(10)))
		Expect(stats.Err).To(BeNil())
		Expect(regs.R[0]).To(Equal(uint16(0x1234)))
		Expect(regs.Pc).To(Equal(uint32(0x10B)))
	})

	It("should halt and report a fault", func() {
		memory.LoadProgram(0x100, []uint16{0x4B00}) // undefined word
		core.Start(10)
		Expect(engine.Run()).To(Succeed())

		stats := core.Stats()
		Expect(stats.Halted).To(BeTrue())
		Expect(stats.Err).To(HaveOccurred())
		Expect(stats.Instructions).To(Equal(uint64(0)))
	})
})
