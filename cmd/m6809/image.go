package main

import (
	"fmt"
	"os"

	"github.com/m6809/m6809/bus"
	"github.com/m6809/m6809/cpu"
)

// loadImage reads path into a fresh RAM-backed bus at loadAddr, points the
// reset vector at loadAddr, and returns a CPU that has already run its
// RESET sequence against it.
func loadImage(path string, loadAddr uint16) (*cpu.CPU, *bus.RAM, error) {
	program, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading image: %w", err)
	}

	ram := &bus.RAM{}
	ram.LoadAt(loadAddr, program)
	ram.SetVector(bus.VectorReset, loadAddr)

	c := cpu.New(ram)
	c.Reset()
	return c, ram, nil
}
