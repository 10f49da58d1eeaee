/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

// Command colpetto inspects libinput devices and events.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
