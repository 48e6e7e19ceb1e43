package main

import (
	"os"

	"github.com/peasim/brokerage-simulator/cmd/peasim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
