package main

import (
	"fmt"
	"os"

	"github.com/rshade/vport/internal/cli"
	"github.com/rshade/vport/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a process exit code.
func run() int {
	if err := cli.NewRootCmd(version.GetVersion()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
