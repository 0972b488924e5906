// Command montecarlo runs the Monte Carlo estimators from the command line.
//
// Usage:
//
//	montecarlo integrate [--func NAME] [--a A] [--b B] [-n N]
//	montecarlo pi [N]
//	montecarlo spheres FILE [N] [--threshold K]
//	montecarlo generate FILE [--count C]
//
// Exit status is 0 on success, 2 for command-line misuse, 3 when the input
// file cannot be read, 4 for configuration errors and 1 otherwise.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}

	return exitOK
}
