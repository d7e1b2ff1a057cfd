// Package main is the entry point for the keepactive CLI/TUI.
package main

import (
	"os"

	"github.com/antoniofonseca/keepactive-msteams/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
