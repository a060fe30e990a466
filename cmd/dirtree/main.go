package main

import (
	"fmt"
	"io"
	"os"
)

// run builds the app with initApp, prints the tree to stdout and returns
// the process exit code. Failures are reported on stderr.
func run(initApp func() (*App, error), stdout, stderr io.Writer) int {
	app, err := initApp()
	if err != nil {
		fmt.Fprintf(stderr, "dirtree: %v\n", err)
		return 1
	}

	if err := app.Run(stdout); err != nil {
		fmt.Fprintf(stderr, "dirtree: %v\n", err)
		return 1
	}
	return 0
}

// main is our entrypoint: parse args, wire the app and print the tree
func main() {
	os.Exit(run(InitApp, os.Stdout, os.Stderr))
}
