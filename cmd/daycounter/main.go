package main

import (
	"os"

	"github.com/rpgo/day-counter/internal/calculation"
)

// Version may be set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := newRootCmd(calculation.RealClock{}).Execute(); err != nil {
		os.Exit(1)
	}
}
