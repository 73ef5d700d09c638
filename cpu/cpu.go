// Package cpu implements the Motorola MC6809E 8-bit microprocessor: a
// cycle-accurate functional interpreter for the full instruction set,
// including the page-2 (0x10) and page-3 (0x11) prefixed opcodes, the
// register file and condition codes, the three maskable/non-maskable
// interrupt sources, and the SYNC/CWAI wait states. The core never touches
// memory itself; every access is a single event on the bus.Accessor handed
// to it by the host.
package cpu

import "github.com/m6809/m6809/bus"

// CPU is the MC6809E's complete internal state: the register file, the
// external pins, and the small amount of execution bookkeeping (cycle
// budget, wait-state flags) that does not correspond to a programmer-visible
// register.
type CPU struct {
	Registers

	Pins bus.Pins
	Bus  bus.Accessor

	cycleCounter int
	operandAddr  uint16 // last effective address resolved, for RMW/store writeback

	syncing bool // stalled in SYNC or CWAI
	cwai    bool // the stall came from CWAI: resume directly into the handler

	nmiPending bool // latched the instant NMI was asserted; cleared on service
	nmiArmed   bool // disarmed until the first write to S, per RESET semantics

	irqDeferred bool // skips exactly one instruction boundary's IRQ sample
}

// New returns a CPU wired to the given bus. Reset must be called before
// Execute to load PC from the reset vector and establish the documented
// post-RESET register state.
func New(b bus.Accessor) *CPU {
	return &CPU{Bus: b}
}

// Snapshot is a point-in-time, read-only copy of the register file and
// execution state, for tests and the inspector. It is not part of the
// instruction-execution path.
type Snapshot struct {
	A, B           byte
	D              uint16
	X, Y, U, S, PC uint16
	DP             byte
	CC             byte
	Syncing        bool
	CWAI           bool
}

// Snapshot captures the current register file and wait-state flags.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, B: c.B, D: c.D(),
		X: c.X, Y: c.Y, U: c.U, S: c.S, PC: c.PC,
		DP: c.DP, CC: c.CC(),
		Syncing: c.syncing, CWAI: c.cwai,
	}
}

// --- bus access -------------------------------------------------------

func (c *CPU) readByte(addr uint16) byte {
	c.Pins.Address = addr
	c.Pins.RW = true
	c.Bus.Access(&c.Pins)
	return c.Pins.Data
}

func (c *CPU) writeByte(addr uint16, v byte) {
	c.Pins.Address = addr
	c.Pins.RW = false
	c.Pins.Data = v
	c.Bus.Access(&c.Pins)
}

// readWord performs two consecutive byte reads, high-order byte first at
// addr, low-order at addr+1.
func (c *CPU) readWord(addr uint16) uint16 {
	hi := c.readByte(addr)
	lo := c.readByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) writeWord(addr uint16, v uint16) {
	c.writeByte(addr, byte(v>>8))
	c.writeByte(addr+1, byte(v))
}

func (c *CPU) readByteAdvancePC() byte {
	b := c.readByte(c.PC)
	c.PC++
	return b
}

func (c *CPU) readWordAdvancePC() uint16 {
	hi := c.readByteAdvancePC()
	lo := c.readByteAdvancePC()
	return uint16(hi)<<8 | uint16(lo)
}

// SetS writes the hardware stack pointer directly (as opposed to the
// implicit push/pull adjustments), arming NMI recognition the first time S
// is touched after RESET.
func (c *CPU) SetS(v uint16) {
	c.S = v
	c.nmiArmed = true
}

// --- stack helpers ------------------------------------------------------

func (c *CPU) pushWord(stackPtr *uint16, v uint16) {
	if stackPtr == &c.S {
		c.nmiArmed = true
	}
	*stackPtr--
	c.writeByte(*stackPtr, byte(v))
	*stackPtr--
	c.writeByte(*stackPtr, byte(v>>8))
}

func (c *CPU) pushByte(stackPtr *uint16, v byte) {
	if stackPtr == &c.S {
		c.nmiArmed = true
	}
	*stackPtr--
	c.writeByte(*stackPtr, v)
}

func (c *CPU) pullWord(stackPtr *uint16) uint16 {
	if stackPtr == &c.S {
		c.nmiArmed = true
	}
	hi := c.readByte(*stackPtr)
	*stackPtr++
	lo := c.readByte(*stackPtr)
	*stackPtr++
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) pullByte(stackPtr *uint16) byte {
	if stackPtr == &c.S {
		c.nmiArmed = true
	}
	v := c.readByte(*stackPtr)
	*stackPtr++
	return v
}

// --- reset ----------------------------------------------------------

// Reset performs the RESET sequence: clears the register file, sets the I
// and F masks, disarms NMI until the first S write, and loads PC from
// $FFFE:$FFFF.
func (c *CPU) Reset() {
	c.A, c.B = 0, 0
	c.X, c.Y, c.U, c.S = 0, 0, 0, 0
	c.DP = 0
	c.SetCC(0)
	c.SetI(true)
	c.SetF(true)

	c.syncing = false
	c.cwai = false
	c.nmiPending = false
	c.nmiArmed = false
	c.irqDeferred = false
	c.Pins.NMI, c.Pins.IRQ, c.Pins.FIRQ = false, false, false

	c.Pins.SetState(bus.StateInterruptOrResetAck)
	c.PC = c.readWord(bus.VectorReset)
	c.Pins.SetState(bus.StateNormal)
}

// --- interrupt triggers ------------------------------------------------

// TriggerNMI asserts the NMI pin. NMI is edge-latched: once armed (after the
// first write to S) it remains pending until serviced, regardless of
// whether the host leaves the pin asserted.
func (c *CPU) TriggerNMI() {
	c.Pins.NMI = true
	if c.nmiArmed {
		c.nmiPending = true
	}
}

// TriggerIRQ asserts the IRQ pin. When delay is true, the next instruction
// boundary does not sample IRQ at all -- modeling a peripheral that raises
// IRQ on the same bus cycle that an earlier service routine would have
// cleared it. Zero-delay (delay=false) is the canonical behavior; delay
// exists to reproduce that one paired-peripheral timing quirk and is not
// part of the generic 6809 contract.
func (c *CPU) TriggerIRQ(delay bool) {
	c.Pins.IRQ = true
	if delay {
		c.irqDeferred = true
	}
}

// TriggerFIRQ asserts the FIRQ pin.
func (c *CPU) TriggerFIRQ() {
	c.Pins.FIRQ = true
}

// --- execution loop -----------------------------------------------------

// Execute runs whole instructions until the accumulated cycle count reaches
// or exceeds budget, then returns the signed drift (consumed - budget): how
// far the slice overshot the requested budget. The core never undershoots,
// since it always finishes the instruction (or wait-state check) in
// progress, so drift is always >= 0.
func (c *CPU) Execute(budget int) int {
	c.cycleCounter = 0
	for c.cycleCounter < budget {
		if c.Pins.HALT {
			c.Pins.SetState(bus.StateHaltAck)
			c.cycleCounter = budget
			break
		}

		if c.syncing {
			if !c.serviceInterrupts() {
				c.Pins.SetState(bus.StateSyncAck)
				c.cycleCounter = budget
				break
			}
			continue
		}

		if c.serviceInterrupts() {
			continue
		}

		c.step()
	}
	return c.cycleCounter - budget
}

// serviceInterrupts samples the interrupt lines in NMI > FIRQ > IRQ
// priority. It returns true if it changed machine state this boundary
// (serviced an interrupt, or woke a masked SYNC/CWAI without servicing);
// the caller re-checks the loop condition rather than fetching an opcode
// in that case.
func (c *CPU) serviceInterrupts() bool {
	irqHeld := c.irqDeferred
	c.irqDeferred = false

	if c.nmiPending {
		c.nmiPending = false
		c.syncing = false
		if !c.cwai {
			c.SetE(true)
			c.cycleCounter += c.pushFullState()
		}
		c.cycleCounter += 7
		c.cwai = false
		c.SetI(true)
		c.SetF(true)
		c.vectorTo(bus.VectorNMI)
		return true
	}

	if c.Pins.FIRQ && (!c.F() || c.syncing) {
		if c.F() {
			c.syncing = false
			c.cwai = false
			return true
		}
		c.syncing = false
		if !c.cwai {
			c.SetE(false)
			c.cycleCounter += c.pushPCAndCC()
		}
		c.cycleCounter += 7
		c.cwai = false
		c.SetI(true)
		c.SetF(true)
		c.vectorTo(bus.VectorFIRQ)
		return true
	}

	if c.Pins.IRQ && !irqHeld {
		if c.I() {
			if c.syncing {
				c.syncing = false
				c.cwai = false
				return true
			}
			return false
		}
		c.syncing = false
		if !c.cwai {
			c.SetE(true)
			c.cycleCounter += c.pushFullState()
		}
		c.cycleCounter += 7
		c.cwai = false
		c.SetI(true)
		c.vectorTo(bus.VectorIRQ)
		return true
	}

	return false
}

// vectorTo asserts the interrupt-acknowledge pin state for the vector fetch,
// loads PC from the given vector address, then returns to normal.
func (c *CPU) vectorTo(vectorAddr uint16) {
	c.Pins.SetState(bus.StateInterruptOrResetAck)
	c.PC = c.readWord(vectorAddr)
	c.Pins.SetState(bus.StateNormal)
}
