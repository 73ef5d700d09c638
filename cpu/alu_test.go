package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeg(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0x80), c.neg8(0x80))
	assert.True(t, c.V(), "negating 0x80 overflows: there is no positive representation of 128")
	assert.True(t, c.C())
	assert.True(t, c.N())

	assert.Equal(t, byte(0), c.neg8(0))
	assert.False(t, c.C())
	assert.True(t, c.Z())
}

func TestCom(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0x0F), c.com8(0xF0))
	assert.True(t, c.C())
	assert.False(t, c.V())
}

func TestLsrAlwaysClearsN(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0x40), c.lsr8(0x81))
	assert.True(t, c.C())
	assert.False(t, c.N())
}

func TestAsrHoldsSignBit(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0xC0), c.asr8(0x81))
	assert.True(t, c.C())
	assert.True(t, c.N())
}

func TestRorPullsFromCarry(t *testing.T) {
	c := &CPU{}
	c.SetC(true)
	assert.Equal(t, byte(0x80), c.ror8(0x00))
	assert.False(t, c.C())
}

func TestAslSetsOverflowOnSignChange(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0x00), c.asl8(0x80))
	assert.True(t, c.C())
	assert.True(t, c.V())
}

func TestRolPushesIntoCarry(t *testing.T) {
	c := &CPU{}
	c.SetC(true)
	assert.Equal(t, byte(0x03), c.rol8(0x01))
	assert.False(t, c.C())
}

func TestIncOverflowsAt7F(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0x80), c.inc8(0x7F))
	assert.True(t, c.V())
	assert.True(t, c.N())
}

func TestDecOverflowsAt80(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0x7F), c.dec8(0x80))
	assert.True(t, c.V())
}

func TestTstDoesNotModifyCarry(t *testing.T) {
	c := &CPU{}
	c.SetC(true)
	c.tst8(0x80)
	assert.True(t, c.N())
	assert.False(t, c.V())
	assert.True(t, c.C(), "TST must not disturb carry")
}

func TestClr(t *testing.T) {
	c := &CPU{}
	c.SetC(true)
	c.SetN(true)
	assert.Equal(t, byte(0), c.clr8())
	assert.True(t, c.Z())
	assert.False(t, c.C())
	assert.False(t, c.N())
}

func TestAdd8Flags(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0x00), c.add8(0xFF, 0x01, false))
	assert.True(t, c.C())
	assert.True(t, c.Z())
	assert.True(t, c.H())

	assert.Equal(t, byte(0x80), c.add8(0x7F, 0x01, false))
	assert.True(t, c.V(), "0x7F + 1 overflows into the sign bit")
	assert.False(t, c.C())
}

func TestAdc8IncludesCarryIn(t *testing.T) {
	c := &CPU{}
	c.SetC(true)
	assert.Equal(t, byte(0x02), c.add8(0x00, 0x01, true))
}

func TestSub8Borrow(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, byte(0xFF), c.sub8(0x00, 0x01, false))
	assert.True(t, c.C(), "0 - 1 borrows")
	assert.True(t, c.N())
}

func TestCmp8SetsZeroOnEqualOperands(t *testing.T) {
	c := &CPU{}
	c.cmp8(0x05, 0x05)
	assert.True(t, c.Z())
}

func TestAdd16(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, uint16(0x0000), c.add16(0xFFFF, 0x0001))
	assert.True(t, c.C())
	assert.True(t, c.Z())
}

func TestSub16(t *testing.T) {
	c := &CPU{}
	assert.Equal(t, uint16(0xFFFF), c.sub16(0x0000, 0x0001))
	assert.True(t, c.C())
}

func TestDaaAfterBcdAdd(t *testing.T) {
	c := &CPU{}
	// 0x15 + 0x27 in BCD should read 42, not the raw hex sum 0x3C.
	c.A = c.add8(0x15, 0x27, false)
	c.daa()
	assert.Equal(t, byte(0x42), c.A)
	assert.False(t, c.C())
}

func TestMul(t *testing.T) {
	c := &CPU{}
	c.A = 0x0C
	c.B = 0x0A
	c.mul()
	assert.Equal(t, uint16(0x78), c.D())
	assert.False(t, c.Z())
	assert.False(t, c.C(), "bit 7 of the low product byte (0x78) is clear")
}

func TestMulSetsCarryFromBit7OfResult(t *testing.T) {
	c := &CPU{}
	c.A = 0x02
	c.B = 0x80 // 0x02 * 0x80 = 0x0100; low byte 0x00, so bit 7 of it is clear... use a case with it set
	c.mul()
	assert.Equal(t, uint16(0x0100), c.D())
	assert.False(t, c.C())

	c.A = 0x03
	c.B = 0x80 // 0x03 * 0x80 = 0x0180; low byte 0x80, bit 7 set
	c.mul()
	assert.Equal(t, uint16(0x0180), c.D())
	assert.True(t, c.C())
}

func TestSexPositive(t *testing.T) {
	c := &CPU{}
	c.B = 0x7F
	c.sex()
	assert.Equal(t, byte(0x00), c.A)
	assert.False(t, c.N())
}

func TestSexNegative(t *testing.T) {
	c := &CPU{}
	c.B = 0x80
	c.sex()
	assert.Equal(t, byte(0xFF), c.A)
	assert.True(t, c.N())
}
