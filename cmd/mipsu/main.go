// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"
)

const VERSION = "0.1.0"

// Exit codes
const (
	EXIT_OK       = 0
	EXIT_USAGE    = 1
	EXIT_PARSE    = 2
	EXIT_INTERNAL = 3
)

func main() {
	root := newRootCommand()

	err := root.Execute()
	if err != nil {
		code := exitCode(err)
		reportError(os.Stderr, err)
		if code == EXIT_USAGE {
			root.SetOut(os.Stderr)
			root.Usage()
		}
		os.Exit(code)
	}

	os.Exit(EXIT_OK)
}
