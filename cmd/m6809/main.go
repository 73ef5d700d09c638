// Command m6809 hosts the core against a flat-memory bus for two purposes:
// running a binary image for a fixed cycle budget and reporting the
// resulting drift and registers, and stepping through one interactively in
// a terminal inspector.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "m6809",
		Short: "A host harness for the MC6809E core",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
