package cpu

// opcode describes one entry of a dispatch table: the mnemonic (a label for
// readers of the table; nothing in the repository reads it), the addressing
// mode the operand is fetched with, the instruction's base cycle count
// before any addressing-mode extras, and the handler that performs it.
type opcode struct {
	mnemonic string
	mode     AddrMode
	cycles   int
	run      func(c *CPU, mode AddrMode)
}

// --- register selectors -------------------------------------------------
//
// Handlers are built once, at package init, by closing over a selector pair
// rather than being hand-written per register: the accumulator and
// index/stack-register families all share one flag-setting rule per
// mnemonic, and only the storage location differs.

func selA(c *CPU) *byte { return &c.A }
func selB(c *CPU) *byte { return &c.B }

func getX(c *CPU) uint16    { return c.X }
func setX(c *CPU, v uint16) { c.X = v }
func getY(c *CPU) uint16    { return c.Y }
func setY(c *CPU, v uint16) { c.Y = v }
func getU(c *CPU) uint16    { return c.U }
func setU(c *CPU, v uint16) { c.U = v }
func getS(c *CPU) uint16    { return c.S }
func setS(c *CPU, v uint16) { c.SetS(v) }
func getD(c *CPU) uint16    { return c.D() }
func setD(c *CPU, v uint16) { c.SetD(v) }

// --- operand fetch/writeback helpers ------------------------------------
//
// operandAddr remembers the last effective address resolveEA computed, so a
// store or read-modify-write handler can write back to it after the ALU
// primitive runs.

// fetchByte returns the 8-bit operand for mode, advancing PC (immediate) or
// resolving and remembering an effective address (direct/extended/indexed).
func (c *CPU) fetchByte(mode AddrMode) byte {
	if mode == AddrImmediate8 {
		return c.readByteAdvancePC()
	}
	res := c.resolveEA(mode)
	c.operandAddr = res.ea
	c.cycleCounter += res.extraCycles
	v := c.readByte(res.ea)
	if res.deferred != nil {
		res.deferred()
	}
	return v
}

// fetchWord is fetchByte's 16-bit counterpart.
func (c *CPU) fetchWord(mode AddrMode) uint16 {
	if mode == AddrImmediate16 {
		return c.readWordAdvancePC()
	}
	res := c.resolveEA(mode)
	c.operandAddr = res.ea
	c.cycleCounter += res.extraCycles
	v := c.readWord(res.ea)
	if res.deferred != nil {
		res.deferred()
	}
	return v
}

// fetchEA resolves an effective address without reading through it, for
// stores, LEA, and the control-flow instructions. The post-increment timing
// quirk (deferred register update) still applies.
func (c *CPU) fetchEA(mode AddrMode) uint16 {
	res := c.resolveEA(mode)
	c.cycleCounter += res.extraCycles
	if res.deferred != nil {
		res.deferred()
	}
	return res.ea
}

// --- 8-bit read-modify-write family (NEG, COM, LSR, ROR, ASR, ASL, ROL,
// INC, DEC, TST, CLR) ------------------------------------------------------

func rmwAccum(sel func(c *CPU) *byte, op func(c *CPU, v byte) byte) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		p := sel(c)
		*p = op(c, *p)
	}
}

func rmwMemory(op func(c *CPU, v byte) byte) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		v := c.fetchByte(mode)
		c.writeByte(c.operandAddr, op(c, v))
	}
}

func tstAccum(sel func(c *CPU) *byte) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) { c.tst8(*sel(c)) }
}

func tstMemory() func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) { c.tst8(c.fetchByte(mode)) }
}

func clrAccum(sel func(c *CPU) *byte) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) { *sel(c) = c.clr8() }
}

func clrMemory() func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		c.fetchByte(mode) // dummy read, for bus-cycle fidelity only
		c.writeByte(c.operandAddr, c.clr8())
	}
}

// --- 8-bit accumulator load/store/binary-ALU family ----------------------

func load8(sel func(c *CPU) *byte) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		v := c.fetchByte(mode)
		*sel(c) = v
		c.setNZ8(v)
		c.SetV(false)
	}
}

func store8(sel func(c *CPU) *byte) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		ea := c.fetchEA(mode)
		v := *sel(c)
		c.writeByte(ea, v)
		c.setNZ8(v)
		c.SetV(false)
	}
}

// aluBinary8 wires a two-operand ALU primitive (add8/sub8/logic) between an
// accumulator and a fetched operand, optionally storing the result back
// (CMP and BIT discard it; everything else keeps it).
func aluBinary8(sel func(c *CPU) *byte, op func(c *CPU, a, b byte) byte, store bool) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		operand := c.fetchByte(mode)
		p := sel(c)
		result := op(c, *p, operand)
		if store {
			*p = result
		}
	}
}

func logicAnd(c *CPU, a, b byte) byte { r := a & b; c.SetV(false); c.setNZ8(r); return r }
func logicOr(c *CPU, a, b byte) byte  { r := a | b; c.SetV(false); c.setNZ8(r); return r }
func logicEor(c *CPU, a, b byte) byte { r := a ^ b; c.SetV(false); c.setNZ8(r); return r }

// --- 16-bit load/store/compare family (X, Y, U, S, D) ---------------------

func load16(set func(c *CPU, v uint16), mode16 AddrMode) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		v := c.fetchWord(mode)
		set(c, v)
		c.setNZ16(v)
		c.SetV(false)
	}
}

// store16 reads the source register after resolving the effective address
// but before applying any deferred post-increment: an indexed mode may
// auto-increment/decrement that same register as part of computing the
// address, and the datasheet has "STX ,X++" store the pre-increment value
// and "STX ,--X" store the post-decrement value, while the pointer register
// itself ends up updated either way.
func store16(get func(c *CPU) uint16) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		res := c.resolveEA(mode)
		c.cycleCounter += res.extraCycles
		v := get(c)
		c.writeWord(res.ea, v)
		if res.deferred != nil {
			res.deferred()
		}
		c.setNZ16(v)
		c.SetV(false)
	}
}

func cmp16Op(get func(c *CPU) uint16) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		operand := c.fetchWord(mode)
		c.cmp16(get(c), operand)
	}
}

// --- branches -------------------------------------------------------------

func condAlways(c *CPU) bool { return true }
func condNever(c *CPU) bool  { return false }
func condHI(c *CPU) bool     { return !c.C() && !c.Z() }
func condLS(c *CPU) bool     { return c.C() || c.Z() }
func condCC(c *CPU) bool     { return !c.C() }
func condCS(c *CPU) bool     { return c.C() }
func condNE(c *CPU) bool     { return !c.Z() }
func condEQ(c *CPU) bool     { return c.Z() }
func condVC(c *CPU) bool     { return !c.V() }
func condVS(c *CPU) bool     { return c.V() }
func condPL(c *CPU) bool     { return !c.N() }
func condMI(c *CPU) bool     { return c.N() }
func condGE(c *CPU) bool     { return c.N() == c.V() }
func condLT(c *CPU) bool     { return c.N() != c.V() }
func condGT(c *CPU) bool     { return !c.Z() && c.N() == c.V() }
func condLE(c *CPU) bool     { return c.Z() || c.N() != c.V() }

func branchShort(cond func(c *CPU) bool) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		off := int16(int8(c.readByteAdvancePC()))
		if cond(c) {
			c.PC = uint16(int32(c.PC) + int32(off))
		}
	}
}

// branchLong costs one extra cycle over its table base when the branch is
// taken, per the datasheet's 5-not-taken/6-taken timing for the page-2
// conditional forms.
func branchLong(cond func(c *CPU) bool) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		off := int16(c.readWordAdvancePC())
		if cond(c) {
			c.PC = uint16(int32(c.PC) + int32(off))
			c.cycleCounter++
		}
	}
}

func bsrOp(c *CPU, mode AddrMode) {
	off := int16(int8(c.readByteAdvancePC()))
	c.pushWord(&c.S, c.PC)
	c.PC = uint16(int32(c.PC) + int32(off))
}

func lbsrOp(c *CPU, mode AddrMode) {
	off := int16(c.readWordAdvancePC())
	c.pushWord(&c.S, c.PC)
	c.PC = uint16(int32(c.PC) + int32(off))
}

func jmpOp(c *CPU, mode AddrMode) { c.PC = c.fetchEA(mode) }

func jsrOp(c *CPU, mode AddrMode) {
	ea := c.fetchEA(mode)
	c.pushWord(&c.S, c.PC)
	c.PC = ea
}

func rtsOp(c *CPU, mode AddrMode) { c.PC = c.pullWord(&c.S) }

// --- LEA -------------------------------------------------------------------

// leaXY implements LEAX/LEAY, which additionally sets Z from the computed
// address; LEAS/LEAU never touch the condition codes.
func leaXY(set func(c *CPU, v uint16)) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		ea := c.fetchEA(mode)
		set(c, ea)
		c.SetZ(ea == 0)
	}
}

func leaUS(set func(c *CPU, v uint16)) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		ea := c.fetchEA(mode)
		set(c, ea)
	}
}

// --- TFR/EXG ---------------------------------------------------------------

// tfrGet and tfrSet implement the register-field encoding shared by TFR and
// EXG's post byte: 0-5 select the 16-bit registers D,X,Y,U,S,PC; 8-B select
// the 8-bit registers A,B,CC,DP. A transfer or exchange between mismatched
// widths is undefined on real hardware; isWide reports which family a code
// belongs to so tfrOp/exgOp can drop mismatched pairs without touching
// either register.
func isWide(code byte) bool { return code&0x0F <= 0x5 }

func (c *CPU) tfrGet(code byte) uint16 {
	switch code & 0x0F {
	case 0x0:
		return c.D()
	case 0x1:
		return c.X
	case 0x2:
		return c.Y
	case 0x3:
		return c.U
	case 0x4:
		return c.S
	case 0x5:
		return c.PC
	case 0x8:
		return uint16(c.A)
	case 0x9:
		return uint16(c.B)
	case 0xA:
		return uint16(c.CC())
	case 0xB:
		return uint16(c.DP)
	default:
		return 0
	}
}

func (c *CPU) tfrSet(code byte, v uint16) {
	switch code & 0x0F {
	case 0x0:
		c.SetD(v)
	case 0x1:
		c.X = v
	case 0x2:
		c.Y = v
	case 0x3:
		c.U = v
	case 0x4:
		c.SetS(v)
	case 0x5:
		c.PC = v
	case 0x8:
		c.A = byte(v)
	case 0x9:
		c.B = byte(v)
	case 0xA:
		c.SetCC(byte(v))
	case 0xB:
		c.DP = byte(v)
	}
}

func tfrOp(c *CPU, mode AddrMode) {
	postByte := c.readByteAdvancePC()
	srcCode, dstCode := postByte>>4, postByte&0x0F
	if isWide(srcCode) != isWide(dstCode) {
		return
	}
	c.tfrSet(dstCode, c.tfrGet(srcCode))
}

func exgOp(c *CPU, mode AddrMode) {
	postByte := c.readByteAdvancePC()
	aCode, bCode := postByte>>4, postByte&0x0F
	if isWide(aCode) != isWide(bCode) {
		return
	}
	av, bv := c.tfrGet(aCode), c.tfrGet(bCode)
	c.tfrSet(aCode, bv)
	c.tfrSet(bCode, av)
}

// --- stack, interrupt, and misc inherent instructions ----------------------

func pshsOp(c *CPU, mode AddrMode) {
	m := c.readByteAdvancePC()
	c.cycleCounter += c.pushRegisterSet(&c.S, &c.U, m)
}

func pulsOp(c *CPU, mode AddrMode) {
	m := c.readByteAdvancePC()
	c.cycleCounter += c.pullRegisterSet(&c.S, &c.U, m)
}

func pshuOp(c *CPU, mode AddrMode) {
	m := c.readByteAdvancePC()
	c.cycleCounter += c.pushRegisterSet(&c.U, &c.S, m)
}

func puluOp(c *CPU, mode AddrMode) {
	m := c.readByteAdvancePC()
	c.cycleCounter += c.pullRegisterSet(&c.U, &c.S, m)
}

func abxOp(c *CPU, mode AddrMode) { c.X = c.X + uint16(c.B) }
func sexOp(c *CPU, mode AddrMode) { c.sex() }
func daaOp(c *CPU, mode AddrMode) { c.daa() }
func mulOp(c *CPU, mode AddrMode) { c.mul() }
func nopOp(c *CPU, mode AddrMode) {}

func orccOp(c *CPU, mode AddrMode) {
	c.SetCC(c.CC() | c.readByteAdvancePC())
}

func andccOp(c *CPU, mode AddrMode) {
	c.SetCC(c.CC() & c.readByteAdvancePC())
}

// swiOp builds SWI/SWI2/SWI3: all three stack the entire machine state with
// E set, but only SWI itself raises the I and F masks -- SWI2 and SWI3 are
// meant for software use and must not block a higher-priority interrupt
// from nesting over them.
func swiOp(vector uint16, setMasks bool) func(c *CPU, mode AddrMode) {
	return func(c *CPU, mode AddrMode) {
		c.SetE(true)
		c.cycleCounter += c.pushFullState()
		if setMasks {
			c.SetI(true)
			c.SetF(true)
		}
		c.vectorTo(vector)
	}
}

func rtiOp(c *CPU, mode AddrMode) {
	c.SetCC(c.pullByte(&c.S))
	total := 1
	if c.E() {
		total += c.pullRegisterSet(&c.S, &c.U, 0xFF&^pshBitCC)
	} else {
		total += c.pullRegisterSet(&c.S, &c.U, pshBitPC)
	}
	c.cycleCounter += total + 3
}

func cwaiOp(c *CPU, mode AddrMode) {
	operand := c.readByteAdvancePC()
	c.SetCC(c.CC() & operand)
	c.SetE(true)
	c.cycleCounter += c.pushFullState()
	c.syncing = true
	c.cwai = true
}

func syncOp(c *CPU, mode AddrMode) {
	c.syncing = true
	c.cwai = false
}

// resetNoOp stands in for the undocumented $3E opcode. Real MC6809E parts
// vary in their behavior here; this core treats it as a one-byte no-op
// rather than attempting a silicon-specific partial reset.
func resetNoOp(c *CPU, mode AddrMode) {}

// --- dispatch tables --------------------------------------------------

var page0Table = map[byte]opcode{}
var page2Table = map[byte]opcode{}
var page3Table = map[byte]opcode{}

func init() {
	buildRMWFamily(page0Table)
	buildAccumulatorFamily(page0Table)
	buildIndexFamily(page0Table, page2Table, page3Table)
	buildBranchFamily(page0Table, page2Table)
	buildControlFamily(page0Table, page2Table, page3Table)
}

// buildRMWFamily wires NEG/COM/LSR/ROR/ASR/ASL/ROL/INC/DEC/TST/CLR across
// their accumulator, direct, indexed, and extended forms.
func buildRMWFamily(p0 map[byte]opcode) {
	type rmw struct {
		name       string
		op         func(c *CPU, v byte) byte
		accumA     byte
		accumB     byte
		direct     byte
		indexed    byte
		extended   byte
		accumCycle int
	}
	family := []rmw{
		{"NEG", (*CPU).neg8, 0x40, 0x50, 0x00, 0x60, 0x70, 2},
		{"COM", (*CPU).com8, 0x43, 0x53, 0x03, 0x63, 0x73, 2},
		{"LSR", (*CPU).lsr8, 0x44, 0x54, 0x04, 0x64, 0x74, 2},
		{"ROR", (*CPU).ror8, 0x46, 0x56, 0x06, 0x66, 0x76, 2},
		{"ASR", (*CPU).asr8, 0x47, 0x57, 0x07, 0x67, 0x77, 2},
		{"ASL", (*CPU).asl8, 0x48, 0x58, 0x08, 0x68, 0x78, 2},
		{"ROL", (*CPU).rol8, 0x49, 0x59, 0x09, 0x69, 0x79, 2},
		{"DEC", (*CPU).dec8, 0x4A, 0x5A, 0x0A, 0x6A, 0x7A, 2},
		{"INC", (*CPU).inc8, 0x4C, 0x5C, 0x0C, 0x6C, 0x7C, 2},
	}
	for _, f := range family {
		f := f
		p0[f.accumA] = opcode{f.name + "A", AddrInherent, f.accumCycle, rmwAccum(selA, f.op)}
		p0[f.accumB] = opcode{f.name + "B", AddrInherent, f.accumCycle, rmwAccum(selB, f.op)}
		p0[f.direct] = opcode{f.name, AddrDirect, 6, rmwMemory(f.op)}
		p0[f.indexed] = opcode{f.name, AddrIndexed, 6, rmwMemory(f.op)}
		p0[f.extended] = opcode{f.name, AddrExtended, 7, rmwMemory(f.op)}
	}

	p0[0x4D] = opcode{"TSTA", AddrInherent, 2, tstAccum(selA)}
	p0[0x5D] = opcode{"TSTB", AddrInherent, 2, tstAccum(selB)}
	p0[0x0D] = opcode{"TST", AddrDirect, 6, tstMemory()}
	p0[0x6D] = opcode{"TST", AddrIndexed, 6, tstMemory()}
	p0[0x7D] = opcode{"TST", AddrExtended, 7, tstMemory()}

	p0[0x4F] = opcode{"CLRA", AddrInherent, 2, clrAccum(selA)}
	p0[0x5F] = opcode{"CLRB", AddrInherent, 2, clrAccum(selB)}
	p0[0x0F] = opcode{"CLR", AddrDirect, 6, clrMemory()}
	p0[0x6F] = opcode{"CLR", AddrIndexed, 6, clrMemory()}
	p0[0x7F] = opcode{"CLR", AddrExtended, 7, clrMemory()}

	p0[0x0E] = opcode{"JMP", AddrDirect, 3, jmpOp}
	p0[0x6E] = opcode{"JMP", AddrIndexed, 3, jmpOp}
	p0[0x7E] = opcode{"JMP", AddrExtended, 4, jmpOp}
}

// buildAccumulatorFamily wires the 8-bit accumulator load/store/ALU
// instructions (SUBA/B, CMPA/B, SBCA/B, ANDA/B, BITA/B, LDA/B, STA/B,
// EORA/B, ADCA/B, ORA/B, ADDA/B) and the page-0 16-bit instructions
// (SUBD/ADDD/CMPX/LDX/STX/LDU/STU/LDD/STD). The page-2/page-3 16-bit forms
// (CMPY/CMPU/CMPS/CMPD/LDY/STY/LDS/STS) are wired by buildIndexFamily.
func buildAccumulatorFamily(p0 map[byte]opcode) {
	type bin struct {
		name                          string
		op                            func(c *CPU, a, b byte) byte
		store                         bool
		immediate, direct, idx, ext   byte
		immCyc, dirCyc, idxCyc, extCyc int
	}
	binFamily := []bin{
		{"SUBA", (*CPU).sub8WithoutBorrow, true, 0x80, 0x90, 0xA0, 0xB0, 2, 4, 4, 5},
		{"CMPA", nil, false, 0x81, 0x91, 0xA1, 0xB1, 2, 4, 4, 5},
		{"SBCA", (*CPU).sub8WithBorrow, true, 0x82, 0x92, 0xA2, 0xB2, 2, 4, 4, 5},
		{"ANDA", logicAnd, true, 0x84, 0x94, 0xA4, 0xB4, 2, 4, 4, 5},
		{"BITA", logicAnd, false, 0x85, 0x95, 0xA5, 0xB5, 2, 4, 4, 5},
		{"EORA", logicEor, true, 0x88, 0x98, 0xA8, 0xB8, 2, 4, 4, 5},
		{"ADCA", (*CPU).add8WithCarry, true, 0x89, 0x99, 0xA9, 0xB9, 2, 4, 4, 5},
		{"ORA", logicOr, true, 0x8A, 0x9A, 0xAA, 0xBA, 2, 4, 4, 5},
		{"ADDA", (*CPU).add8WithoutCarry, true, 0x8B, 0x9B, 0xAB, 0xBB, 2, 4, 4, 5},
		{"SUBB", (*CPU).sub8WithoutBorrow, true, 0xC0, 0xD0, 0xE0, 0xF0, 2, 4, 4, 5},
		{"CMPB", nil, false, 0xC1, 0xD1, 0xE1, 0xF1, 2, 4, 4, 5},
		{"SBCB", (*CPU).sub8WithBorrow, true, 0xC2, 0xD2, 0xE2, 0xF2, 2, 4, 4, 5},
		{"ANDB", logicAnd, true, 0xC4, 0xD4, 0xE4, 0xF4, 2, 4, 4, 5},
		{"BITB", logicAnd, false, 0xC5, 0xD5, 0xE5, 0xF5, 2, 4, 4, 5},
		{"EORB", logicEor, true, 0xC8, 0xD8, 0xE8, 0xF8, 2, 4, 4, 5},
		{"ADCB", (*CPU).add8WithCarry, true, 0xC9, 0xD9, 0xE9, 0xF9, 2, 4, 4, 5},
		{"ORB", logicOr, true, 0xCA, 0xDA, 0xEA, 0xFA, 2, 4, 4, 5},
		{"ADDB", (*CPU).add8WithoutCarry, true, 0xCB, 0xDB, 0xEB, 0xFB, 2, 4, 4, 5},
	}
	for _, f := range binFamily {
		f := f
		sel := selA
		if f.name[len(f.name)-1] == 'B' {
			sel = selB
		}
		op := f.op
		if op == nil {
			op = func(c *CPU, a, b byte) byte { c.cmp8(a, b); return a }
		}
		p0[f.immediate] = opcode{f.name, AddrImmediate8, f.immCyc, aluBinary8(sel, op, f.store)}
		p0[f.direct] = opcode{f.name, AddrDirect, f.dirCyc, aluBinary8(sel, op, f.store)}
		p0[f.idx] = opcode{f.name, AddrIndexed, f.idxCyc, aluBinary8(sel, op, f.store)}
		p0[f.ext] = opcode{f.name, AddrExtended, f.extCyc, aluBinary8(sel, op, f.store)}
	}

	p0[0x86] = opcode{"LDA", AddrImmediate8, 2, load8(selA)}
	p0[0x96] = opcode{"LDA", AddrDirect, 4, load8(selA)}
	p0[0xA6] = opcode{"LDA", AddrIndexed, 4, load8(selA)}
	p0[0xB6] = opcode{"LDA", AddrExtended, 5, load8(selA)}
	p0[0x97] = opcode{"STA", AddrDirect, 4, store8(selA)}
	p0[0xA7] = opcode{"STA", AddrIndexed, 4, store8(selA)}
	p0[0xB7] = opcode{"STA", AddrExtended, 5, store8(selA)}

	p0[0xC6] = opcode{"LDB", AddrImmediate8, 2, load8(selB)}
	p0[0xD6] = opcode{"LDB", AddrDirect, 4, load8(selB)}
	p0[0xE6] = opcode{"LDB", AddrIndexed, 4, load8(selB)}
	p0[0xF6] = opcode{"LDB", AddrExtended, 5, load8(selB)}
	p0[0xD7] = opcode{"STB", AddrDirect, 4, store8(selB)}
	p0[0xE7] = opcode{"STB", AddrIndexed, 4, store8(selB)}
	p0[0xF7] = opcode{"STB", AddrExtended, 5, store8(selB)}

	// 16-bit loads, stores, adds, subtracts, and compares.
	p0[0x8E] = opcode{"LDX", AddrImmediate16, 3, load16(setX, AddrImmediate16)}
	p0[0x9E] = opcode{"LDX", AddrDirect, 5, load16(setX, AddrDirect)}
	p0[0xAE] = opcode{"LDX", AddrIndexed, 5, load16(setX, AddrIndexed)}
	p0[0xBE] = opcode{"LDX", AddrExtended, 6, load16(setX, AddrExtended)}
	p0[0x9F] = opcode{"STX", AddrDirect, 5, store16(getX)}
	p0[0xAF] = opcode{"STX", AddrIndexed, 5, store16(getX)}
	p0[0xBF] = opcode{"STX", AddrExtended, 6, store16(getX)}

	p0[0xCE] = opcode{"LDU", AddrImmediate16, 3, load16(setU, AddrImmediate16)}
	p0[0xDE] = opcode{"LDU", AddrDirect, 5, load16(setU, AddrDirect)}
	p0[0xEE] = opcode{"LDU", AddrIndexed, 5, load16(setU, AddrIndexed)}
	p0[0xFE] = opcode{"LDU", AddrExtended, 6, load16(setU, AddrExtended)}
	p0[0xDF] = opcode{"STU", AddrDirect, 5, store16(getU)}
	p0[0xEF] = opcode{"STU", AddrIndexed, 5, store16(getU)}
	p0[0xFF] = opcode{"STU", AddrExtended, 6, store16(getU)}

	p0[0xCC] = opcode{"LDD", AddrImmediate16, 3, load16(setD, AddrImmediate16)}
	p0[0xDC] = opcode{"LDD", AddrDirect, 5, load16(setD, AddrDirect)}
	p0[0xEC] = opcode{"LDD", AddrIndexed, 5, load16(setD, AddrIndexed)}
	p0[0xFC] = opcode{"LDD", AddrExtended, 6, load16(setD, AddrExtended)}
	p0[0xDD] = opcode{"STD", AddrDirect, 5, store16(getD)}
	p0[0xED] = opcode{"STD", AddrIndexed, 5, store16(getD)}
	p0[0xFD] = opcode{"STD", AddrExtended, 6, store16(getD)}

	p0[0x83] = opcode{"SUBD", AddrImmediate16, 4, func(c *CPU, mode AddrMode) {
		c.SetD(c.sub16(c.D(), c.fetchWord(mode)))
	}}
	p0[0x93] = opcode{"SUBD", AddrDirect, 6, func(c *CPU, mode AddrMode) {
		c.SetD(c.sub16(c.D(), c.fetchWord(mode)))
	}}
	p0[0xA3] = opcode{"SUBD", AddrIndexed, 6, func(c *CPU, mode AddrMode) {
		c.SetD(c.sub16(c.D(), c.fetchWord(mode)))
	}}
	p0[0xB3] = opcode{"SUBD", AddrExtended, 7, func(c *CPU, mode AddrMode) {
		c.SetD(c.sub16(c.D(), c.fetchWord(mode)))
	}}

	p0[0xC3] = opcode{"ADDD", AddrImmediate16, 4, func(c *CPU, mode AddrMode) {
		c.SetD(c.add16(c.D(), c.fetchWord(mode)))
	}}
	p0[0xD3] = opcode{"ADDD", AddrDirect, 6, func(c *CPU, mode AddrMode) {
		c.SetD(c.add16(c.D(), c.fetchWord(mode)))
	}}
	p0[0xE3] = opcode{"ADDD", AddrIndexed, 6, func(c *CPU, mode AddrMode) {
		c.SetD(c.add16(c.D(), c.fetchWord(mode)))
	}}
	p0[0xF3] = opcode{"ADDD", AddrExtended, 7, func(c *CPU, mode AddrMode) {
		c.SetD(c.add16(c.D(), c.fetchWord(mode)))
	}}

	p0[0x8C] = opcode{"CMPX", AddrImmediate16, 4, cmp16Op(getX)}
	p0[0x9C] = opcode{"CMPX", AddrDirect, 6, cmp16Op(getX)}
	p0[0xAC] = opcode{"CMPX", AddrIndexed, 6, cmp16Op(getX)}
	p0[0xBC] = opcode{"CMPX", AddrExtended, 7, cmp16Op(getX)}
}

// buildIndexFamily wires LEA, the page-2/page-3 Y/U/S variants of LD/ST/CMP,
// and the page-2/page-3 register families.
func buildIndexFamily(p0, p2, p3 map[byte]opcode) {
	p0[0x30] = opcode{"LEAX", AddrIndexed, 4, leaXY(setX)}
	p0[0x31] = opcode{"LEAY", AddrIndexed, 4, leaXY(setY)}
	p0[0x32] = opcode{"LEAS", AddrIndexed, 4, leaUS(setS)}
	p0[0x33] = opcode{"LEAU", AddrIndexed, 4, leaUS(setU)}

	p2[0x8C] = opcode{"CMPY", AddrImmediate16, 5, cmp16Op(getY)}
	p2[0x9C] = opcode{"CMPY", AddrDirect, 7, cmp16Op(getY)}
	p2[0xAC] = opcode{"CMPY", AddrIndexed, 7, cmp16Op(getY)}
	p2[0xBC] = opcode{"CMPY", AddrExtended, 8, cmp16Op(getY)}

	p2[0x8E] = opcode{"LDY", AddrImmediate16, 4, load16(setY, AddrImmediate16)}
	p2[0x9E] = opcode{"LDY", AddrDirect, 6, load16(setY, AddrDirect)}
	p2[0xAE] = opcode{"LDY", AddrIndexed, 6, load16(setY, AddrIndexed)}
	p2[0xBE] = opcode{"LDY", AddrExtended, 7, load16(setY, AddrExtended)}
	p2[0x9F] = opcode{"STY", AddrDirect, 6, store16(getY)}
	p2[0xAF] = opcode{"STY", AddrIndexed, 6, store16(getY)}
	p2[0xBF] = opcode{"STY", AddrExtended, 7, store16(getY)}

	p2[0xCE] = opcode{"LDS", AddrImmediate16, 4, load16(setS, AddrImmediate16)}
	p2[0xDE] = opcode{"LDS", AddrDirect, 6, load16(setS, AddrDirect)}
	p2[0xEE] = opcode{"LDS", AddrIndexed, 6, load16(setS, AddrIndexed)}
	p2[0xFE] = opcode{"LDS", AddrExtended, 7, load16(setS, AddrExtended)}
	p2[0xDF] = opcode{"STS", AddrDirect, 6, store16(getS)}
	p2[0xEF] = opcode{"STS", AddrIndexed, 6, store16(getS)}
	p2[0xFF] = opcode{"STS", AddrExtended, 7, store16(getS)}

	p2[0x83] = opcode{"CMPD", AddrImmediate16, 5, cmp16Op(getD)}
	p2[0x93] = opcode{"CMPD", AddrDirect, 7, cmp16Op(getD)}
	p2[0xA3] = opcode{"CMPD", AddrIndexed, 7, cmp16Op(getD)}
	p2[0xB3] = opcode{"CMPD", AddrExtended, 8, cmp16Op(getD)}

	p3[0x83] = opcode{"CMPU", AddrImmediate16, 5, cmp16Op(getU)}
	p3[0x93] = opcode{"CMPU", AddrDirect, 7, cmp16Op(getU)}
	p3[0xA3] = opcode{"CMPU", AddrIndexed, 7, cmp16Op(getU)}
	p3[0xB3] = opcode{"CMPU", AddrExtended, 8, cmp16Op(getU)}

	p3[0x8C] = opcode{"CMPS", AddrImmediate16, 5, cmp16Op(getS)}
	p3[0x9C] = opcode{"CMPS", AddrDirect, 7, cmp16Op(getS)}
	p3[0xAC] = opcode{"CMPS", AddrIndexed, 7, cmp16Op(getS)}
	p3[0xBC] = opcode{"CMPS", AddrExtended, 8, cmp16Op(getS)}
}

// buildBranchFamily wires the sixteen short branches, their page-2 long
// forms, BRA/LBRA, BRN/LBRN, and BSR/LBSR.
func buildBranchFamily(p0, p2 map[byte]opcode) {
	conds := []struct {
		name string
		fn   func(c *CPU) bool
		op   byte
	}{
		{"BRA", condAlways, 0x20}, {"BRN", condNever, 0x21},
		{"BHI", condHI, 0x22}, {"BLS", condLS, 0x23},
		{"BCC", condCC, 0x24}, {"BCS", condCS, 0x25},
		{"BNE", condNE, 0x26}, {"BEQ", condEQ, 0x27},
		{"BVC", condVC, 0x28}, {"BVS", condVS, 0x29},
		{"BPL", condPL, 0x2A}, {"BMI", condMI, 0x2B},
		{"BGE", condGE, 0x2C}, {"BLT", condLT, 0x2D},
		{"BGT", condGT, 0x2E}, {"BLE", condLE, 0x2F},
	}
	for _, b := range conds {
		p0[b.op] = opcode{b.name, AddrInherent, 3, branchShort(b.fn)}
	}

	p0[0x16] = opcode{"LBRA", AddrInherent, 5, branchLong(condAlways)}
	p2[0x21] = opcode{"LBRN", AddrInherent, 5, branchLong(condNever)}
	p2[0x22] = opcode{"LBHI", AddrInherent, 5, branchLong(condHI)}
	p2[0x23] = opcode{"LBLS", AddrInherent, 5, branchLong(condLS)}
	p2[0x24] = opcode{"LBCC", AddrInherent, 5, branchLong(condCC)}
	p2[0x25] = opcode{"LBCS", AddrInherent, 5, branchLong(condCS)}
	p2[0x26] = opcode{"LBNE", AddrInherent, 5, branchLong(condNE)}
	p2[0x27] = opcode{"LBEQ", AddrInherent, 5, branchLong(condEQ)}
	p2[0x28] = opcode{"LBVC", AddrInherent, 5, branchLong(condVC)}
	p2[0x29] = opcode{"LBVS", AddrInherent, 5, branchLong(condVS)}
	p2[0x2A] = opcode{"LBPL", AddrInherent, 5, branchLong(condPL)}
	p2[0x2B] = opcode{"LBMI", AddrInherent, 5, branchLong(condMI)}
	p2[0x2C] = opcode{"LBGE", AddrInherent, 5, branchLong(condGE)}
	p2[0x2D] = opcode{"LBLT", AddrInherent, 5, branchLong(condLT)}
	p2[0x2E] = opcode{"LBGT", AddrInherent, 5, branchLong(condGT)}
	p2[0x2F] = opcode{"LBLE", AddrInherent, 5, branchLong(condLE)}

	p0[0x8D] = opcode{"BSR", AddrInherent, 7, bsrOp}
	p0[0x17] = opcode{"LBSR", AddrInherent, 9, lbsrOp}

	p0[0x9D] = opcode{"JSR", AddrDirect, 7, jsrOp}
	p0[0xAD] = opcode{"JSR", AddrIndexed, 7, jsrOp}
	p0[0xBD] = opcode{"JSR", AddrExtended, 8, jsrOp}
	p0[0x39] = opcode{"RTS", AddrInherent, 5, rtsOp}
}

// buildControlFamily wires the register-transfer, stack, interrupt, and
// miscellaneous inherent instructions across all three pages.
func buildControlFamily(p0, p2, p3 map[byte]opcode) {
	p0[0x12] = opcode{"NOP", AddrInherent, 2, nopOp}
	p0[0x13] = opcode{"SYNC", AddrInherent, 2, syncOp}
	p0[0x19] = opcode{"DAA", AddrInherent, 2, daaOp}
	p0[0x1A] = opcode{"ORCC", AddrImmediate8, 3, orccOp}
	p0[0x1C] = opcode{"ANDCC", AddrImmediate8, 3, andccOp}
	p0[0x1D] = opcode{"SEX", AddrInherent, 2, sexOp}
	p0[0x1E] = opcode{"EXG", AddrInherent, 8, exgOp}
	p0[0x1F] = opcode{"TFR", AddrInherent, 6, tfrOp}

	p0[0x34] = opcode{"PSHS", AddrInherent, 5, pshsOp}
	p0[0x35] = opcode{"PULS", AddrInherent, 5, pulsOp}
	p0[0x36] = opcode{"PSHU", AddrInherent, 5, pshuOp}
	p0[0x37] = opcode{"PULU", AddrInherent, 5, puluOp}

	p0[0x3A] = opcode{"ABX", AddrInherent, 3, abxOp}
	p0[0x3B] = opcode{"RTI", AddrInherent, 0, rtiOp}
	p0[0x3C] = opcode{"CWAI", AddrImmediate8, 0, cwaiOp}
	p0[0x3D] = opcode{"MUL", AddrInherent, 11, mulOp}
	p0[0x3E] = opcode{"RESET", AddrInherent, 2, resetNoOp}
	p0[0x3F] = opcode{"SWI", AddrInherent, 0, swiOp(0xFFFA, true)}

	p2[0x3F] = opcode{"SWI2", AddrInherent, 0, swiOp(0xFFF4, false)}
	p3[0x3F] = opcode{"SWI3", AddrInherent, 0, swiOp(0xFFF2, false)}
}
