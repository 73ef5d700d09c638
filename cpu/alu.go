package cpu

// This file holds the MC6809E's arithmetic and logic primitives. Each
// function performs one operation, updates the condition codes the
// datasheet assigns to it, and returns the result; the opcode table wires
// them to the accumulator or memory operand the addressing mode resolved.
// Splitting the ALU out from dispatch means every flag rule has exactly one
// implementation, shared by the A, B, and memory-direct forms of the same
// mnemonic.

// neg8 computes the two's-complement negation, per NEG.
func (c *CPU) neg8(v byte) byte {
	result := -v
	c.SetV(v == 0x80)
	c.SetC(result != 0)
	c.setNZ8(result)
	return result
}

// com8 computes the one's complement, per COM. COM always sets carry and
// always clears overflow -- it is defined that way on real hardware,
// independent of the operand.
func (c *CPU) com8(v byte) byte {
	result := ^v
	c.SetC(true)
	c.SetV(false)
	c.setNZ8(result)
	return result
}

// lsr8 is a logical shift right: zero into bit 7, old bit 0 into carry.
func (c *CPU) lsr8(v byte) byte {
	c.SetC(v&0x01 != 0)
	result := v >> 1
	c.setNZ8(result)
	return result
}

// ror8 rotates right through carry.
func (c *CPU) ror8(v byte) byte {
	oldC := c.C()
	newC := v&0x01 != 0
	result := v >> 1
	if oldC {
		result |= 0x80
	}
	c.SetC(newC)
	c.setNZ8(result)
	return result
}

// asr8 is an arithmetic shift right: bit 7 is held, old bit 0 into carry.
func (c *CPU) asr8(v byte) byte {
	c.SetC(v&0x01 != 0)
	result := (v >> 1) | (v & 0x80)
	c.setNZ8(result)
	return result
}

// asl8 (equivalently LSL) shifts left, old bit 7 into carry. Overflow is set
// when the sign bit changes as a result of the shift.
func (c *CPU) asl8(v byte) byte {
	c.SetV((v^(v<<1))&0x80 != 0)
	c.SetC(v&0x80 != 0)
	result := v << 1
	c.setNZ8(result)
	return result
}

// rol8 rotates left through carry, with the same overflow rule as ASL.
func (c *CPU) rol8(v byte) byte {
	oldC := c.C()
	c.SetV((v^(v<<1))&0x80 != 0)
	c.SetC(v&0x80 != 0)
	result := v << 1
	if oldC {
		result |= 0x01
	}
	c.setNZ8(result)
	return result
}

// inc8 adds one. Carry is untouched; overflow fires on the 0x7F -> 0x80 edge.
func (c *CPU) inc8(v byte) byte {
	result := v + 1
	c.SetV(v == 0x7F)
	c.setNZ8(result)
	return result
}

// dec8 subtracts one. Carry is untouched; overflow fires on the 0x80 -> 0x7F
// edge.
func (c *CPU) dec8(v byte) byte {
	result := v - 1
	c.SetV(v == 0x80)
	c.setNZ8(result)
	return result
}

// tst8 sets N and Z from v without modifying it; overflow is always
// cleared, carry is untouched.
func (c *CPU) tst8(v byte) {
	c.SetV(false)
	c.setNZ8(v)
}

// clr8 unconditionally zeroes the operand and the three arithmetic flags,
// leaving only zero set.
func (c *CPU) clr8() byte {
	c.SetN(false)
	c.SetZ(true)
	c.SetV(false)
	c.SetC(false)
	return 0
}

// add8 adds two bytes (optionally with an incoming carry, for ADC),
// producing the full-adder carry, half-carry (for DAA), and signed
// overflow in addition to N/Z.
func (c *CPU) add8(a, b byte, carryIn bool) byte {
	var cin uint16
	if carryIn {
		cin = 1
	}
	wide := uint16(a) + uint16(b) + cin
	result := byte(wide)
	c.SetH((a&0x0F)+(b&0x0F)+byte(cin) > 0x0F)
	c.SetC(wide > 0xFF)
	c.SetV((a^b^0x80)&(a^result)&0x80 != 0)
	c.setNZ8(result)
	return result
}

// sub8 subtracts b (and, for SBC, a borrow) from a.
func (c *CPU) sub8(a, b byte, borrowIn bool) byte {
	var bin uint16
	if borrowIn {
		bin = 1
	}
	wide := uint16(a) - uint16(b) - bin
	result := byte(wide)
	c.SetC(wide > 0xFF)
	c.SetV((a^b)&(a^result)&0x80 != 0)
	c.setNZ8(result)
	return result
}

// add8WithoutCarry and add8WithCarry adapt add8 to the two-operand ALU
// binding used by the ADD/ADC opcode families.
func (c *CPU) add8WithoutCarry(a, b byte) byte { return c.add8(a, b, false) }
func (c *CPU) add8WithCarry(a, b byte) byte    { return c.add8(a, b, c.C()) }

// sub8WithoutBorrow and sub8WithBorrow adapt sub8 to the SUB/SBC families.
func (c *CPU) sub8WithoutBorrow(a, b byte) byte { return c.sub8(a, b, false) }
func (c *CPU) sub8WithBorrow(a, b byte) byte    { return c.sub8(a, b, c.C()) }

// cmp8 evaluates sub8's flags without keeping the result, per CMPA/CMPB.
func (c *CPU) cmp8(a, b byte) {
	c.sub8(a, b, false)
}

// add16 is the 16-bit adder behind ADDD; it does not touch H, which the
// datasheet defines only for 8-bit adds.
func (c *CPU) add16(a, b uint16) uint16 {
	wide := uint32(a) + uint32(b)
	result := uint16(wide)
	c.SetC(wide > 0xFFFF)
	c.SetV((a^b^0x8000)&(a^result)&0x8000 != 0)
	c.setNZ16(result)
	return result
}

// sub16 is the 16-bit subtractor behind SUBD and the CMPX/CMPY/CMPU/CMPS/
// CMPD family.
func (c *CPU) sub16(a, b uint16) uint16 {
	wide := uint32(a) - uint32(b)
	result := uint16(wide)
	c.SetC(wide > 0xFFFF)
	c.SetV((a^b)&(a^result)&0x8000 != 0)
	c.setNZ16(result)
	return result
}

// cmp16 evaluates sub16's flags without keeping the result.
func (c *CPU) cmp16(a, b uint16) {
	c.sub16(a, b)
}

// daa decimal-adjusts A after an 8-bit BCD addition, consulting the H and C
// flags left by the ADD/ADC that preceded it.
func (c *CPU) daa() {
	var adjust byte
	carry := c.C()

	lowNibble := c.A & 0x0F
	if c.H() || lowNibble > 9 {
		adjust |= 0x06
	}
	highNibble := c.A >> 4
	if carry || highNibble > 9 || (highNibble >= 9 && lowNibble > 9) {
		adjust |= 0x60
		carry = true
	}

	result := c.A + adjust
	c.SetC(carry)
	c.setNZ8(result)
	c.A = result
}

// mul multiplies the unsigned accumulators into D. Carry takes bit 7 of the
// result (equivalently, the new value of B); overflow is not affected.
func (c *CPU) mul() {
	product := uint16(c.A) * uint16(c.B)
	c.SetD(product)
	c.SetZ(product == 0)
	c.SetC(product&0x80 != 0)
}

// sex sign-extends B into A to widen it into D.
func (c *CPU) sex() {
	if c.B&0x80 != 0 {
		c.A = 0xFF
	} else {
		c.A = 0x00
	}
	c.setNZ16(c.D())
}
