package main

import (
	"fmt"
	"os"

	"firebase-reset/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(cmd.ExitCode(err))
	}
}
