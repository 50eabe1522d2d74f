// Package main is the entry point for the vlm CLI tool.
package main

import (
	"os"

	"github.com/vellumtools/vellum/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
