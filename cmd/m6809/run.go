package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var loadAddr uint16
	var budget int

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Run a raw binary image for a fixed cycle budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadImage(args[0], loadAddr)
			if err != nil {
				return err
			}

			drift := c.Execute(budget)
			snap := c.Snapshot()

			fmt.Printf("drift: %d cycles\n", drift)
			fmt.Printf("PC=%04X A=%02X B=%02X D=%04X X=%04X Y=%04X U=%04X S=%04X DP=%02X CC=%02X\n",
				snap.PC, snap.A, snap.B, snap.D, snap.X, snap.Y, snap.U, snap.S, snap.DP, snap.CC)
			return nil
		},
	}

	cmd.Flags().Uint16Var(&loadAddr, "addr", 0x8000, "address to load the image at, and to point the reset vector to")
	cmd.Flags().IntVar(&budget, "cycles", 1000, "cycle budget to run for")
	return cmd
}
