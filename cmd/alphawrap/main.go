// Command alphawrap is the CLI entry point for the 2D alpha-wrap carving
// engine: loads a points file, runs the carver, and writes an SVG snapshot
// and a JSON statistics file to the output directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
