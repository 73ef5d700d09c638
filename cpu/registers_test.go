package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDIsFusedFromAAndB(t *testing.T) {
	var r Registers
	r.A = 0x12
	r.B = 0x34
	assert.Equal(t, uint16(0x1234), r.D())
}

func TestSetDSplitsAcrossAAndB(t *testing.T) {
	var r Registers
	r.SetD(0xBEEF)
	assert.Equal(t, byte(0xBE), r.A)
	assert.Equal(t, byte(0xEF), r.B)
}

func TestCCRoundTripsThroughNamedFlags(t *testing.T) {
	var r Registers
	r.SetC(true)
	r.SetN(true)
	r.SetE(true)
	assert.Equal(t, ccC|ccN|ccE, r.CC())
	assert.True(t, r.C())
	assert.True(t, r.N())
	assert.True(t, r.E())
	assert.False(t, r.Z())
}

func TestSetCCOverwritesWholeByte(t *testing.T) {
	var r Registers
	r.SetCC(0xFF)
	assert.True(t, r.C())
	assert.True(t, r.V())
	assert.True(t, r.Z())
	assert.True(t, r.N())
	assert.True(t, r.I())
	assert.True(t, r.H())
	assert.True(t, r.F())
	assert.True(t, r.E())
	r.SetCC(0)
	assert.False(t, r.C())
	assert.False(t, r.E())
}

func TestSetNZ8(t *testing.T) {
	var r Registers
	r.setNZ8(0x80)
	assert.True(t, r.N())
	assert.False(t, r.Z())

	r.setNZ8(0)
	assert.False(t, r.N())
	assert.True(t, r.Z())
}

func TestSetNZ16(t *testing.T) {
	var r Registers
	r.setNZ16(0x8000)
	assert.True(t, r.N())
	assert.False(t, r.Z())

	r.setNZ16(0)
	assert.False(t, r.N())
	assert.True(t, r.Z())
}
