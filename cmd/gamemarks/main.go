// Package main implements the gamemarks command that sweeps local browser profiles for game bookmarks.
package main

import (
	"fmt"
	"os"

	"github.com/ilexum-group/gamemarks/internal/cli"
	"github.com/ilexum-group/gamemarks/internal/utils"
)

func main() {
	// Initialize the RFC 5424 compliant logger
	if err := utils.InitDefaultLogger(); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
