package main

import (
	"os"

	_ "lattice-ca/internal/sims/briansbrain"
	_ "lattice-ca/internal/sims/cubes"
	_ "lattice-ca/internal/sims/seating"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
