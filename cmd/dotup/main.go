package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		// Errors are printed by the commands; cobra is silenced.
		os.Exit(1)
	}
}
