// Package main is the entry point for the VaultGuard CLI.
package main

import (
	"os"

	"github.com/awnumar/memguard"

	"github.com/Brydon13/vaultguard/cmd/vaultguard/cmd"
)

func main() {
	// Wipe enclaves and locked buffers on Ctrl-C as well as normal exit.
	memguard.CatchInterrupt()

	err := cmd.Execute()
	memguard.Purge()
	if err != nil {
		os.Exit(1)
	}
}
