package main

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// cliVersion is bumped by hand; there is no build-time ldflags wiring
// in this harness.
var cliVersion = semver.MustParse("0.1.0")

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the obbench version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("obbench %s\n", cliVersion.String())
		return nil
	},
}
