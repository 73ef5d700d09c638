package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m6809/m6809/bus"
)

func newTestCPU() (*CPU, *bus.RAM) {
	ram := &bus.RAM{}
	c := New(ram)
	return c, ram
}

func TestDirectEAUsesDP(t *testing.T) {
	c, ram := newTestCPU()
	c.DP = 0x30
	ram.Mem[0x0000] = 0x42 // the operand byte at PC
	ea := c.directEA()
	assert.Equal(t, uint16(0x3042), ea)
	assert.Equal(t, uint16(0x0001), c.PC)
}

func TestExtendedEAReadsTwoBytes(t *testing.T) {
	c, ram := newTestCPU()
	ram.Mem[0] = 0x12
	ram.Mem[1] = 0x34
	assert.Equal(t, uint16(0x1234), c.extendedEA())
	assert.Equal(t, uint16(2), c.PC)
}

func TestIndexed5BitOffset(t *testing.T) {
	c, _ := newTestCPU()
	c.X = 0x1000
	// b7=0: register X (bits 2-3 = 00), offset 5 (0b00101).
	ram := c.Bus.(*bus.RAM)
	ram.Mem[0] = 0b0000_0101
	res := c.decodeIndexed()
	assert.Equal(t, uint16(0x1005), res.ea)
}

func TestIndexed5BitOffsetNegative(t *testing.T) {
	c, _ := newTestCPU()
	c.X = 0x1000
	ram := c.Bus.(*bus.RAM)
	// 5-bit offset 0b11111 == -1.
	ram.Mem[0] = 0b0001_1111
	res := c.decodeIndexed()
	assert.Equal(t, uint16(0x0FFF), res.ea)
}

func TestIndexedAutoIncrementByOneIsDeferred(t *testing.T) {
	c, _ := newTestCPU()
	c.X = 0x2000
	ram := c.Bus.(*bus.RAM)
	ram.Mem[0] = 0b1000_0000 // indirect=0, reg=X(00), mode=0000 (inc by 1)
	res := c.decodeIndexed()
	assert.Equal(t, uint16(0x2000), res.ea, "post-increment presents the OLD pointer")
	assert.Equal(t, uint16(0x2000), c.X, "the register has not yet been updated")
	res.deferred()
	assert.Equal(t, uint16(0x2001), c.X)
}

func TestIndexedAutoDecrementByOneIsImmediate(t *testing.T) {
	c, _ := newTestCPU()
	c.X = 0x2000
	ram := c.Bus.(*bus.RAM)
	ram.Mem[0] = 0b1000_0010 // indirect=0, reg=X(00), mode=0010 (dec by 1)
	res := c.decodeIndexed()
	assert.Equal(t, uint16(0x1FFF), res.ea)
	assert.Equal(t, uint16(0x1FFF), c.X, "pre-decrement commits before the EA is used")
	assert.Nil(t, res.deferred)
}

func TestIndexedAccumulatorOffset(t *testing.T) {
	c, _ := newTestCPU()
	c.Y = 0x3000
	c.B = 0x10
	ram := c.Bus.(*bus.RAM)
	ram.Mem[0] = 0b1010_0101 // indirect=0, reg=Y(01), mode=0101 (B offset)
	res := c.decodeIndexed()
	assert.Equal(t, uint16(0x3010), res.ea)
}

func TestIndexedExtendedIndirect(t *testing.T) {
	c, _ := newTestCPU()
	ram := c.Bus.(*bus.RAM)
	ram.Mem[0] = 0b1001_1111 // indirect=1, mode=1111 (extended indirect)
	ram.Mem[1] = 0x40        // pointer address high
	ram.Mem[2] = 0x00        // pointer address low
	ram.Mem[0x4000] = 0x56   // the real target, stored at the pointer address
	ram.Mem[0x4001] = 0x78
	res := c.decodeIndexed()
	assert.Equal(t, uint16(0x5678), res.ea)
}

func TestIndexedIndirectOffset(t *testing.T) {
	c, _ := newTestCPU()
	ram := c.Bus.(*bus.RAM)
	c.X = 0x1000
	ram.Mem[0] = 0b1001_1000 // indirect=1, reg=X(00), mode=1000 (8-bit offset)
	ram.Mem[1] = 0x10        // offset
	ram.Mem[0x1010] = 0xAB
	ram.Mem[0x1011] = 0xCD
	res := c.decodeIndexed()
	assert.Equal(t, uint16(0xABCD), res.ea)
}
