// Package bus models the MC6809E's external pins and the single bus-access
// event the core uses to reach memory. Apart from the pin record it holds
// only the flat reference RAM (see bus.go); the Accessor that maps a real
// host's memory and devices is the host's responsibility, handed to the CPU
// as a thin collaborator.
package bus

// Pins is the flat, programmer-visible record of the MC6809E's external bus
// and control lines. The core owns Address, Data (on writes), and RW; on
// reads it does not own Data — the Accessor must populate it before the
// Access call returns.
type Pins struct {
	Address uint16
	Data    byte
	RW      bool // true = read, false = write

	NMI   bool
	IRQ   bool
	FIRQ  bool
	HALT  bool
	RESET bool

	BS   bool // bus status
	BA   bool // bus available
	LIC  bool // last instruction cycle
	AVMA bool // advanced valid memory address
	BUSY bool
	TSC  bool // three-state control
}

// MPUState reports the state BA/BS jointly encode.
type MPUState byte

const (
	StateNormal MPUState = iota
	StateInterruptOrResetAck
	StateSyncAck
	StateHaltAck
)

// State derives the joint BA/BS encoding: 00 normal, 01 interrupt/reset ack,
// 10 sync ack, 11 halt ack.
func (p *Pins) State() MPUState {
	switch {
	case !p.BA && !p.BS:
		return StateNormal
	case !p.BA && p.BS:
		return StateInterruptOrResetAck
	case p.BA && !p.BS:
		return StateSyncAck
	default:
		return StateHaltAck
	}
}

// SetState packs the named MPU state into BA/BS.
func (p *Pins) SetState(s MPUState) {
	switch s {
	case StateNormal:
		p.BA, p.BS = false, false
	case StateInterruptOrResetAck:
		p.BA, p.BS = false, true
	case StateSyncAck:
		p.BA, p.BS = true, false
	case StateHaltAck:
		p.BA, p.BS = true, true
	}
}
