package cpu

// step fetches one opcode, following the 0x10/0x11 prefix bytes into the
// page-2/page-3 tables when present, and dispatches it. It is the only
// entry point Execute calls once per instruction.
func (c *CPU) step() {
	opByte := c.readByteAdvancePC()
	switch opByte {
	case 0x10:
		c.dispatch(page2Table, c.readByteAdvancePC())
	case 0x11:
		c.dispatch(page3Table, c.readByteAdvancePC())
	default:
		c.dispatch(page0Table, opByte)
	}
}

// dispatch charges the opcode's base cycle count and runs its handler. An
// opcode byte with no table entry is one of the MC6809E's undocumented
// slots; this core treats it as a two-cycle no-op rather than crashing.
func (c *CPU) dispatch(table map[byte]opcode, op byte) {
	entry, ok := table[op]
	if !ok {
		c.cycleCounter += 2
		return
	}
	c.cycleCounter += entry.cycles
	entry.run(c, entry.mode)
}

// --- PSHS/PULS/PSHU/PULU and interrupt stacking --------------------------
//
// The post byte (or, for interrupt entry, a fixed mask) selects which
// registers move, MSB to LSB: PC, the *other* stack pointer (U for an S
// operation, S for a U operation), Y, X, DP, B, A, CC. Each function
// returns the cycle cost of the bytes it moved -- one per 8-bit register,
// two per 16-bit register -- for the caller to add on top of the
// instruction's table base cost.

const (
	pshBitCC byte = 1 << 0
	pshBitA  byte = 1 << 1
	pshBitB  byte = 1 << 2
	pshBitDP byte = 1 << 3
	pshBitX  byte = 1 << 4
	pshBitY  byte = 1 << 5
	pshBitUS byte = 1 << 6
	pshBitPC byte = 1 << 7
)

func (c *CPU) pushRegisterSet(active, other *uint16, regMask byte) int {
	cycles := 0
	if regMask&pshBitPC != 0 {
		c.pushWord(active, c.PC)
		cycles += 2
	}
	if regMask&pshBitUS != 0 {
		c.pushWord(active, *other)
		cycles += 2
	}
	if regMask&pshBitY != 0 {
		c.pushWord(active, c.Y)
		cycles += 2
	}
	if regMask&pshBitX != 0 {
		c.pushWord(active, c.X)
		cycles += 2
	}
	if regMask&pshBitDP != 0 {
		c.pushByte(active, c.DP)
		cycles++
	}
	if regMask&pshBitB != 0 {
		c.pushByte(active, c.B)
		cycles++
	}
	if regMask&pshBitA != 0 {
		c.pushByte(active, c.A)
		cycles++
	}
	if regMask&pshBitCC != 0 {
		c.pushByte(active, c.CC())
		cycles++
	}
	return cycles
}

func (c *CPU) pullRegisterSet(active, other *uint16, regMask byte) int {
	cycles := 0
	if regMask&pshBitCC != 0 {
		c.SetCC(c.pullByte(active))
		cycles++
	}
	if regMask&pshBitA != 0 {
		c.A = c.pullByte(active)
		cycles++
	}
	if regMask&pshBitB != 0 {
		c.B = c.pullByte(active)
		cycles++
	}
	if regMask&pshBitDP != 0 {
		c.DP = c.pullByte(active)
		cycles++
	}
	if regMask&pshBitX != 0 {
		c.X = c.pullWord(active)
		cycles += 2
	}
	if regMask&pshBitY != 0 {
		c.Y = c.pullWord(active)
		cycles += 2
	}
	if regMask&pshBitUS != 0 {
		v := c.pullWord(active)
		if other == &c.S {
			c.SetS(v)
		} else {
			*other = v
		}
		cycles += 2
	}
	if regMask&pshBitPC != 0 {
		c.PC = c.pullWord(active)
		cycles += 2
	}
	return cycles
}

// pushFullState stacks every register onto S, for IRQ/NMI/SWI entry.
func (c *CPU) pushFullState() int {
	return c.pushRegisterSet(&c.S, &c.U, 0xFF)
}

// pushPCAndCC stacks only PC and CC onto S, for FIRQ entry.
func (c *CPU) pushPCAndCC() int {
	return c.pushRegisterSet(&c.S, &c.U, pshBitPC|pshBitCC)
}
