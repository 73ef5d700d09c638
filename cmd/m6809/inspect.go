package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/m6809/m6809/bus"
	"github.com/m6809/m6809/cpu"
)

func newInspectCmd() *cobra.Command {
	var loadAddr uint16

	cmd := &cobra.Command{
		Use:   "inspect <image>",
		Short: "Step through a raw binary image in an interactive inspector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ram, err := loadImage(args[0], loadAddr)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(inspectModel{cpu: c, ram: ram}).Run()
			return err
		},
	}

	cmd.Flags().Uint16Var(&loadAddr, "addr", 0x8000, "address to load the image at, and to point the reset vector to")
	return cmd
}

type inspectModel struct {
	cpu    *cpu.CPU
	ram    *bus.RAM
	prevPC uint16
	err    error
}

func (m inspectModel) Init() tea.Cmd { return nil }

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Snapshot().PC
			m.cpu.Execute(1) // one instruction, or one interrupt entry; nothing while halted or stalled in SYNC/CWAI
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as a line, highlighting the
// byte the program counter currently points at.
func (m inspectModel) renderPage(start uint16) string {
	pc := m.cpu.Snapshot().PC
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.ram.Mem[addr]
		if addr == pc {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m inspectModel) pageTable() string {
	header := "       | "
	for i := 0; i < 16; i++ {
		header += fmt.Sprintf(" %01X   ", i)
	}

	pc := m.cpu.Snapshot().PC
	base := pc &^ 0x0F
	lines := []string{header}
	for i := -2; i <= 2; i++ {
		lines = append(lines, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(lines, "\n")
}

func (m inspectModel) status() string {
	snap := m.cpu.Snapshot()
	var flags strings.Builder
	for _, bit := range []byte{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01} {
		if snap.CC&bit != 0 {
			flags.WriteString("/ ")
		} else {
			flags.WriteString("  ")
		}
	}
	return fmt.Sprintf(`
 PC: %04X (was %04X)
  A: %02X   B: %02X   D: %04X
  X: %04X  Y: %04X
  U: %04X  S: %04X
 DP: %02X
E F H I N Z V C
%s`,
		snap.PC, m.prevPC,
		snap.A, snap.B, snap.D,
		snap.X, snap.Y,
		snap.U, snap.S,
		snap.DP,
		flags.String())
}

func (m inspectModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(m.cpu.Snapshot()),
	)
}
