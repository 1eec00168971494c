package emu

import "github.com/sarchlab/teaksim/insts"

// BlockRepeatFrame is one entry of the hardware loop stack.
type BlockRepeatFrame struct {
	Start uint32 // 18-bit first address of the body
	End   uint32 // 18-bit last address of the body
	Lc    uint16 // remaining iterations
}

// RegisterState is the architectural state of the DSP core.
//
// Accumulators are stored sign-extended from bit 39 into the full 64
// bits; every write path maintains that invariant. Flag and mode
// registers are kept unpacked as individual fields; the packed 16-bit
// status views (st0..st2, stt0..stt2, mod0..mod3, cfgi/cfgj, ar/arp,
// icr) are assembled on access.
type RegisterState struct {
	A [2]uint64 // a0, a1
	B [2]uint64 // b0, b1
	R [8]uint16 // r0..r7

	X     [2]uint16 // multiplier x operands
	Y     [2]uint16 // multiplier y operands
	P     [2]uint32 // product storage
	Psign [2]uint16 // product sign companions
	Ps    [2]uint16 // product shift codes

	Stepi, Stepj   uint16 // 7-bit linear steps
	Stepi0, Stepj0 uint16 // 16-bit wide steps
	Modi, Modj     uint16 // 9-bit modulo sizes
	Page           uint16
	Bankstep       uint16
	LegacyMod      uint16
	Movpd          uint16 // program-space page for movp/movd

	// Alternate bank of the step/modulo set and r0/r1/r4/r7, exchanged
	// by banke.
	Stepib, Stepjb   uint16
	Stepi0b, Stepj0b uint16
	Modib, Modjb     uint16
	R0b, R1b, R4b, R7b uint16

	M   [8]uint16 // modulo enable per Rn
	Brv [8]uint16 // bit-reversed addressing per Rn
	R3z, R7z uint16 // zero-on-access for r3/r7

	// ArRn/ArpRn indirection descriptors, unpacked.
	Arrn     [4]uint16 // each selects one of r0..r7
	Arstep   [4]uint16
	Aroffset [4]uint16
	Arprni   [4]uint16 // selects r0..r3
	Arprnj   [4]uint16 // selects r4..r7 after +4
	Arpstepi [4]uint16
	Arpstepj [4]uint16
	Arpoffseti [4]uint16
	Arpoffsetj [4]uint16

	// Alternate bank of ar0/ar1 and arp0..arp3, held packed.
	ArBank  [2]uint16
	ArpBank [4]uint16

	// Flags.
	Fz, Fm, Fn, Fv, Fe, Fr uint16
	Flv, Fls               uint16 // sticky
	Fc                     [2]uint16

	// Modes.
	Sar [2]uint16 // 1 disables saturation; [0] read path, [1] store path
	S   uint16    // shift mode: 0 arithmetic, 1 logic
	Ym  uint16    // multiplier y shaping mode
	Nmic uint16

	Pc       uint32 // 18-bit program counter
	Sp       uint16
	PcEndian uint16
	Mixp     uint16
	Sv       uint16

	// Single-instruction repeat.
	Rep  bool
	Repc uint16

	// Block repeat.
	Lp         uint16
	Bcn        uint16 // 0..4
	BkrepStack [4]BlockRepeatFrame
	LcSave     uint16 // lc view outside any loop

	// Interrupts.
	Ie     uint16
	Im     [3]uint16
	Ip     [3]uint16
	Ic     [3]uint16
	Vim    uint16
	Vip    uint16
	Vic    uint16
	Viaddr uint32

	// Input/output pins.
	Iu [2]uint16
	Ou [2]uint16

	// Voice trigger bitstreams.
	Vtr [2]uint16

	shadow shadowState
}

// shadowState backs ShadowStore/ShadowRestore (flags) and ShadowSwap
// (mode and addressing set).
type shadowState struct {
	fz, fm, fn, fv, fe, fr uint16
	flv, fls               uint16
	fc                     [2]uint16

	sar            [2]uint16
	s, ym, page    uint16
	stepi, stepj   uint16
	stepi0, stepj0 uint16
	modi, modj     uint16
	m              [8]uint16
	brv            [8]uint16
}

// GetPcL returns the low 16 bits of pc.
func (r *RegisterState) GetPcL() uint16 {
	return uint16(r.Pc & 0xFFFF)
}

// GetPcH returns the high 2 bits of pc.
func (r *RegisterState) GetPcH() uint16 {
	return uint16(r.Pc >> 16)
}

// SetPC assembles pc from its low and high words.
func (r *RegisterState) SetPC(l, h uint16) {
	r.Pc = uint32(l) | uint32(h&3)<<16
}

// Lc returns the active loop counter: the top block-repeat frame when a
// loop is running, the save slot otherwise.
func (r *RegisterState) Lc() uint16 {
	if r.Bcn > 0 {
		return r.BkrepStack[r.Bcn-1].Lc
	}
	return r.LcSave
}

// SetLc writes the active loop counter.
func (r *RegisterState) SetLc(v uint16) {
	if r.Bcn > 0 {
		r.BkrepStack[r.Bcn-1].Lc = v
		return
	}
	r.LcSave = v
}

// ConditionPass evaluates a condition code against the current flags.
func (r *RegisterState) ConditionPass(cond insts.Cond) bool {
	switch cond {
	case insts.CondTrue:
		return true
	case insts.CondEq:
		return r.Fz == 1
	case insts.CondNeq:
		return r.Fz == 0
	case insts.CondGt:
		return r.Fm == 0 && r.Fz == 0
	case insts.CondGe:
		return r.Fm == 0
	case insts.CondLt:
		return r.Fm == 1
	case insts.CondLe:
		return r.Fm == 1 || r.Fz == 1
	case insts.CondNn:
		return r.Fn == 0
	case insts.CondC:
		return r.Fc[0] == 1
	case insts.CondV:
		return r.Fv == 1
	case insts.CondE:
		return r.Fe == 1
	case insts.CondL:
		return r.Fls == 1 || r.Flv == 1
	case insts.CondNr:
		return r.Fr == 0
	case insts.CondNiu0:
		return r.Iu[0] == 0
	case insts.CondIu0:
		return r.Iu[0] == 1
	default: // insts.CondIu1
		return r.Iu[1] == 1
	}
}

// ShadowStore copies the flags into the shadow bank.
func (r *RegisterState) ShadowStore() {
	s := &r.shadow
	s.fz, s.fm, s.fn, s.fv, s.fe, s.fr = r.Fz, r.Fm, r.Fn, r.Fv, r.Fe, r.Fr
	s.flv, s.fls = r.Flv, r.Fls
	s.fc = r.Fc
}

// ShadowRestore copies the shadowed flags back.
func (r *RegisterState) ShadowRestore() {
	s := &r.shadow
	r.Fz, r.Fm, r.Fn, r.Fv, r.Fe, r.Fr = s.fz, s.fm, s.fn, s.fv, s.fe, s.fr
	r.Flv, r.Fls = s.flv, s.fls
	r.Fc = s.fc
}

// ShadowSwap exchanges the mode and addressing set with the shadow bank.
func (r *RegisterState) ShadowSwap() {
	s := &r.shadow
	r.Sar, s.sar = s.sar, r.Sar
	r.S, s.s = s.s, r.S
	r.Ym, s.ym = s.ym, r.Ym
	r.Page, s.page = s.page, r.Page
	r.Stepi, s.stepi = s.stepi, r.Stepi
	r.Stepj, s.stepj = s.stepj, r.Stepj
	r.Stepi0, s.stepi0 = s.stepi0, r.Stepi0
	r.Stepj0, s.stepj0 = s.stepj0, r.Stepj0
	r.Modi, s.modi = s.modi, r.Modi
	r.Modj, s.modj = s.modj, r.Modj
	r.M, s.m = s.m, r.M
	r.Brv, s.brv = s.brv, r.Brv
}

// Ar returns the packed arN view covering indirection entries 2n/2n+1.
func (r *RegisterState) Ar(n int) uint16 {
	e, o := 2*n, 2*n+1
	return r.Arrn[o]&7 |
		(r.Arstep[o]&7)<<3 |
		(r.Aroffset[o]&3)<<6 |
		(r.Arrn[e]&7)<<8 |
		(r.Arstep[e]&7)<<11 |
		(r.Aroffset[e]&3)<<14
}

// SetAr writes the packed arN view.
func (r *RegisterState) SetAr(n int, v uint16) {
	e, o := 2*n, 2*n+1
	r.Arrn[o] = v & 7
	r.Arstep[o] = (v >> 3) & 7
	r.Aroffset[o] = (v >> 6) & 3
	r.Arrn[e] = (v >> 8) & 7
	r.Arstep[e] = (v >> 11) & 7
	r.Aroffset[e] = (v >> 14) & 3
}

// Arp returns the packed arpN view.
func (r *RegisterState) Arp(n int) uint16 {
	return r.Arprni[n]&3 |
		(r.Arpstepi[n]&7)<<2 |
		(r.Arpoffseti[n]&3)<<5 |
		(r.Arprnj[n]&3)<<8 |
		(r.Arpstepj[n]&7)<<10 |
		(r.Arpoffsetj[n]&3)<<13
}

// SetArp writes the packed arpN view.
func (r *RegisterState) SetArp(n int, v uint16) {
	r.Arprni[n] = v & 3
	r.Arpstepi[n] = (v >> 2) & 7
	r.Arpoffseti[n] = (v >> 5) & 3
	r.Arprnj[n] = (v >> 8) & 3
	r.Arpstepj[n] = (v >> 10) & 7
	r.Arpoffsetj[n] = (v >> 13) & 3
}

// SwapAr exchanges arN with its alternate bank.
func (r *RegisterState) SwapAr(n int) {
	cur := r.Ar(n)
	r.SetAr(n, r.ArBank[n])
	r.ArBank[n] = cur
}

// SwapArp exchanges arpN with its alternate bank.
func (r *RegisterState) SwapArp(n int) {
	cur := r.Arp(n)
	r.SetArp(n, r.ArpBank[n])
	r.ArpBank[n] = cur
}

// SwapAllArArp exchanges every ar and arp register with its alternate
// bank.
func (r *RegisterState) SwapAllArArp() {
	for i := 0; i < 2; i++ {
		r.SwapAr(i)
	}
	for i := 0; i < 4; i++ {
		r.SwapArp(i)
	}
}

// St0 returns the packed st0 status view.
func (r *RegisterState) St0() uint16 {
	a0e := uint16(r.A[0]>>32) & 0xF
	return r.Sar[0] |
		r.Ie<<1 | r.Im[0]<<2 | r.Im[1]<<3 |
		r.Fr<<4 | r.Fls<<5 | r.Fe<<6 | r.Fc[0]<<7 |
		r.Fv<<8 | r.Fn<<9 | r.Fm<<10 | r.Fz<<11 |
		a0e<<12
}

// SetSt0 writes st0. This is one of the two explicit paths that may
// clear the sticky fls flag.
func (r *RegisterState) SetSt0(v uint16) {
	r.Sar[0] = v & 1
	r.Ie = (v >> 1) & 1
	r.Im[0] = (v >> 2) & 1
	r.Im[1] = (v >> 3) & 1
	r.Fr = (v >> 4) & 1
	r.Fls = (v >> 5) & 1
	r.Fe = (v >> 6) & 1
	r.Fc[0] = (v >> 7) & 1
	r.Fv = (v >> 8) & 1
	r.Fn = (v >> 9) & 1
	r.Fm = (v >> 10) & 1
	r.Fz = (v >> 11) & 1
	a0e := uint64(v>>12) & 0xF
	r.A[0] = insts.SignExtend(r.A[0]&0xFFFF_FFFF|a0e<<32, 36)
}

// St1 returns the packed st1 status view.
func (r *RegisterState) St1() uint16 {
	a1e := uint16(r.A[1]>>32) & 0xF
	return r.Page&0xFF | (r.Ps[0]&3)<<10 | a1e<<12
}

// SetSt1 writes st1.
func (r *RegisterState) SetSt1(v uint16) {
	r.Page = v & 0xFF
	r.Ps[0] = (v >> 10) & 3
	a1e := uint64(v>>12) & 0xF
	r.A[1] = insts.SignExtend(r.A[1]&0xFFFF_FFFF|a1e<<32, 36)
}

// St2 returns the packed st2 status view. The interrupt-pending bits are
// read-only snapshots.
func (r *RegisterState) St2() uint16 {
	var m uint16
	for i := 0; i < 6; i++ {
		m |= r.M[i] << i
	}
	return m | r.Im[2]<<6 | r.S<<7 |
		r.Ou[0]<<8 | r.Ou[1]<<9 |
		r.Iu[0]<<10 | r.Iu[1]<<11 |
		r.Ip[2]<<13 | r.Ip[0]<<14 | r.Ip[1]<<15
}

// SetSt2 writes the writable fields of st2.
func (r *RegisterState) SetSt2(v uint16) {
	for i := 0; i < 6; i++ {
		r.M[i] = (v >> i) & 1
	}
	r.Im[2] = (v >> 6) & 1
	r.S = (v >> 7) & 1
	r.Ou[0] = (v >> 8) & 1
	r.Ou[1] = (v >> 9) & 1
}

// Stt0 returns the packed flag view.
func (r *RegisterState) Stt0() uint16 {
	return r.Fz | r.Fm<<1 | r.Fn<<2 | r.Fv<<3 | r.Fc[0]<<4 |
		r.Fe<<5 | r.Fls<<6 | r.Flv<<7 | r.Fc[1]<<11
}

// SetStt0 writes the flags. This is the second explicit path that may
// clear the sticky fls and flv flags.
func (r *RegisterState) SetStt0(v uint16) {
	r.Fz = v & 1
	r.Fm = (v >> 1) & 1
	r.Fn = (v >> 2) & 1
	r.Fv = (v >> 3) & 1
	r.Fc[0] = (v >> 4) & 1
	r.Fe = (v >> 5) & 1
	r.Fls = (v >> 6) & 1
	r.Flv = (v >> 7) & 1
	r.Fc[1] = (v >> 11) & 1
}

// Stt1 returns the packed stt1 view: fr plus the product sign bits.
func (r *RegisterState) Stt1() uint16 {
	return r.Fr<<4 | (r.Psign[0]&1)<<14 | (r.Psign[1]&1)<<15
}

// SetStt1 writes the writable fields of stt1.
func (r *RegisterState) SetStt1(v uint16) {
	r.Fr = (v >> 4) & 1
}

// Stt2 returns the packed loop/interrupt snapshot. All fields are
// read-only.
func (r *RegisterState) Stt2() uint16 {
	return r.Ip[0] | r.Ip[1]<<1 | r.Ip[2]<<2 | r.Vip<<3 |
		(r.Movpd&3)<<6 | (r.Bcn&7)<<12 | r.Lp<<15
}

// SetStt2 ignores the write; every stt2 field is a hardware snapshot.
func (r *RegisterState) SetStt2(v uint16) {}

// Mod0 returns the packed mod0 view.
func (r *RegisterState) Mod0() uint16 {
	return r.Sar[1] | (r.Ym&3)<<5 | (r.Ps[1]&3)<<11
}

// SetMod0 writes mod0.
func (r *RegisterState) SetMod0(v uint16) {
	r.Sar[1] = v & 1
	r.Ym = (v >> 5) & 3
	r.Ps[1] = (v >> 11) & 3
}

// Mod1 returns the packed mod1 view.
func (r *RegisterState) Mod1() uint16 {
	return r.Page&0xFF | r.Bankstep<<12 | r.LegacyMod<<13 |
		r.R3z<<14 | r.R7z<<15
}

// SetMod1 writes mod1.
func (r *RegisterState) SetMod1(v uint16) {
	r.Page = v & 0xFF
	r.Bankstep = (v >> 12) & 1
	r.LegacyMod = (v >> 13) & 1
	r.R3z = (v >> 14) & 1
	r.R7z = (v >> 15) & 1
}

// Mod2 returns the packed modulo/bit-reverse enable view.
func (r *RegisterState) Mod2() uint16 {
	var v uint16
	for i := 0; i < 8; i++ {
		v |= r.M[i]<<i | r.Brv[i]<<(8+i)
	}
	return v
}

// SetMod2 writes mod2.
func (r *RegisterState) SetMod2(v uint16) {
	for i := 0; i < 8; i++ {
		r.M[i] = (v >> i) & 1
		r.Brv[i] = (v >> (8 + i)) & 1
	}
}

// Mod3 returns the packed interrupt configuration view.
func (r *RegisterState) Mod3() uint16 {
	return r.Ic[0] | r.Ic[1]<<1 | r.Ic[2]<<2 | r.Vic<<3 | r.Nmic<<4 |
		r.Im[0]<<8 | r.Im[1]<<9 | r.Im[2]<<10 | r.Vim<<11
}

// SetMod3 writes mod3.
func (r *RegisterState) SetMod3(v uint16) {
	r.Ic[0] = v & 1
	r.Ic[1] = (v >> 1) & 1
	r.Ic[2] = (v >> 2) & 1
	r.Vic = (v >> 3) & 1
	r.Nmic = (v >> 4) & 1
	r.Im[0] = (v >> 8) & 1
	r.Im[1] = (v >> 9) & 1
	r.Im[2] = (v >> 10) & 1
	r.Vim = (v >> 11) & 1
}

// Cfgi returns the packed i-side step/modulo configuration.
func (r *RegisterState) Cfgi() uint16 {
	return r.Stepi&0x7F | (r.Modi&0x1FF)<<7
}

// SetCfgi writes cfgi.
func (r *RegisterState) SetCfgi(v uint16) {
	r.Stepi = v & 0x7F
	r.Modi = (v >> 7) & 0x1FF
}

// Cfgj returns the packed j-side step/modulo configuration.
func (r *RegisterState) Cfgj() uint16 {
	return r.Stepj&0x7F | (r.Modj&0x1FF)<<7
}

// SetCfgj writes cfgj.
func (r *RegisterState) SetCfgj(v uint16) {
	r.Stepj = v & 0x7F
	r.Modj = (v >> 7) & 0x1FF
}

// Icr returns the packed interrupt context register.
func (r *RegisterState) Icr() uint16 {
	return r.Ic[0] | r.Ic[1]<<1 | r.Ic[2]<<2 | r.Vic<<3 | r.Nmic<<4
}

// SetIcr writes icr.
func (r *RegisterState) SetIcr(v uint16) {
	r.Ic[0] = v & 1
	r.Ic[1] = (v >> 1) & 1
	r.Ic[2] = (v >> 2) & 1
	r.Vic = (v >> 3) & 1
	r.Nmic = (v >> 4) & 1
}
