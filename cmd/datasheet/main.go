// Command datasheet extracts structured data from PDF datasheets and
// searches distributor catalogs.
package main

import (
	"os"

	"github.com/akiselev/datasheet/internal/cli"
	"github.com/akiselev/datasheet/pkg/version"
)

// run executes the root command and returns its error.
func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

func main() {
	// Cobra prints the error before Execute returns; only the exit code is
	// left to set here.
	if err := run(); err != nil {
		os.Exit(1)
	}
}
