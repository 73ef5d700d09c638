package cpu

import "github.com/m6809/m6809/mask"

// AddrMode names the operand-location strategy an opcode table entry uses.
// Branch targets are resolved separately by the branch handlers, since their
// displacement width varies with the mnemonic rather than a post-byte.
type AddrMode int

const (
	AddrInherent AddrMode = iota
	AddrImmediate8
	AddrImmediate16
	AddrDirect
	AddrExtended
	AddrIndexed
)

// indexedResult carries the outcome of decoding an indexed-addressing
// post-byte: the effective address, the extra cycles the mode charges on
// top of the opcode's base count, and an optional deferred register update.
//
// The deferred update exists because post-increment modes must present the
// pointer register's *old* value to the instruction body (so e.g. "STX ,X+"
// stores the pre-increment X) while pre-decrement modes must present the
// *new* value (so "STX ,--X" stores the post-decrement X) -- the datasheet
// gives these different timings because the real ALU commits a decrement
// before driving the address bus, but commits an increment only after.
type indexedResult struct {
	ea          uint16
	extraCycles int
	deferred    func()
}

// directEA reads the next program byte and concatenates it with DP<<8.
func (c *CPU) directEA() uint16 {
	lo := c.readByteAdvancePC()
	return uint16(c.DP)<<8 | uint16(lo)
}

// extendedEA reads the next two program bytes as a big-endian address.
func (c *CPU) extendedEA() uint16 {
	return c.readWordAdvancePC()
}

// indexedRegister returns the current value of the register selected by the
// 2-bit field in an indexed post-byte (00=X, 01=Y, 10=U, 11=S).
func (c *CPU) indexedRegister(sel byte) uint16 {
	switch sel {
	case 0:
		return c.X
	case 1:
		return c.Y
	case 2:
		return c.U
	default:
		return c.S
	}
}

// setIndexedRegister writes back the register selected by sel, arming NMI on
// the first write to S per the RESET-time NMI lockout.
func (c *CPU) setIndexedRegister(sel byte, v uint16) {
	switch sel {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	case 2:
		c.U = v
	default:
		c.SetS(v)
	}
}

func signExtend5(b byte) int16 {
	if b&0x10 != 0 {
		return int16(int8(b | 0xE0))
	}
	return int16(b)
}

// decodeIndexed implements the post-byte-driven indexed addressing table
// from the datasheet as a single dispatch over the mode nibble, rather than
// a long conditional ladder: each case tags its variant, computes the
// effective address, and reports any extra cycles and deferred side effect.
func (c *CPU) decodeIndexed() indexedResult {
	postByte := c.readByteAdvancePC()

	if !mask.IsSet(postByte, mask.I1) {
		// b7=0: 5-bit signed constant offset, no indirection possible.
		sel := mask.Range(postByte, mask.I2, mask.I3)
		offset := signExtend5(mask.Range(postByte, mask.I4, mask.I8))
		base := c.indexedRegister(sel)
		return indexedResult{ea: base + uint16(offset), extraCycles: 1}
	}

	indirect := mask.IsSet(postByte, mask.I4)
	sel := mask.Range(postByte, mask.I2, mask.I3)
	modeField := mask.Range(postByte, mask.I5, mask.I8)

	var res indexedResult

	switch modeField {
	case 0b0000: // auto-increment by 1; indirect form is illegal, treat as direct
		old := c.indexedRegister(sel)
		res = indexedResult{ea: old, extraCycles: 2, deferred: func() {
			c.setIndexedRegister(sel, old+1)
		}}
		indirect = false

	case 0b0001: // auto-increment by 2
		old := c.indexedRegister(sel)
		res = indexedResult{ea: old, extraCycles: 3, deferred: func() {
			c.setIndexedRegister(sel, old+2)
		}}

	case 0b0010: // auto-decrement by 1; indirect form is illegal, treat as direct
		newVal := c.indexedRegister(sel) - 1
		c.setIndexedRegister(sel, newVal)
		res = indexedResult{ea: newVal, extraCycles: 2}
		indirect = false

	case 0b0011: // auto-decrement by 2
		newVal := c.indexedRegister(sel) - 2
		c.setIndexedRegister(sel, newVal)
		res = indexedResult{ea: newVal, extraCycles: 3}

	case 0b0100: // no offset
		res = indexedResult{ea: c.indexedRegister(sel), extraCycles: 0}

	case 0b0101: // B accumulator offset (signed)
		res = indexedResult{ea: c.indexedRegister(sel) + uint16(int16(int8(c.B))), extraCycles: 1}

	case 0b0110: // A accumulator offset (signed)
		res = indexedResult{ea: c.indexedRegister(sel) + uint16(int16(int8(c.A))), extraCycles: 1}

	case 0b1000: // signed 8-bit offset
		off := int16(int8(c.readByteAdvancePC()))
		res = indexedResult{ea: c.indexedRegister(sel) + uint16(off), extraCycles: 1}

	case 0b1001: // signed 16-bit offset
		off := int16(c.readWordAdvancePC())
		res = indexedResult{ea: c.indexedRegister(sel) + uint16(off), extraCycles: 4}

	case 0b1011: // D accumulator offset (signed)
		res = indexedResult{ea: c.indexedRegister(sel) + c.D(), extraCycles: 4}

	case 0b1100: // PC + signed 8-bit offset; register field ignored
		off := int16(int8(c.readByteAdvancePC()))
		res = indexedResult{ea: c.PC + uint16(off), extraCycles: 1}

	case 0b1101: // PC + signed 16-bit offset; register field ignored
		off := int16(c.readWordAdvancePC())
		res = indexedResult{ea: c.PC + uint16(off), extraCycles: 5}

	case 0b1111: // extended indirect; legal only with the indirect bit set
		// 2 here plus the 3 the indirection below adds: 5 in all.
		res = indexedResult{ea: c.readWordAdvancePC(), extraCycles: 2}

	default: // unused post-byte encodings: no-op, do not crash
		res = indexedResult{ea: 0, extraCycles: 0}
	}

	if indirect {
		res.ea = c.readWord(res.ea)
		res.extraCycles += 3
	}

	return res
}

// resolveEA computes the effective address for direct, extended, and
// indexed modes. Immediate and inherent operands are read directly by the
// instruction handlers instead, since their width varies by mnemonic.
func (c *CPU) resolveEA(mode AddrMode) indexedResult {
	switch mode {
	case AddrDirect:
		return indexedResult{ea: c.directEA()}
	case AddrExtended:
		return indexedResult{ea: c.extendedEA()}
	case AddrIndexed:
		return c.decodeIndexed()
	default:
		return indexedResult{}
	}
}
