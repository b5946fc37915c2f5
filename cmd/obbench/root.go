// Command obbench is a benchmark harness and console reporter that
// drives a Book purely through its public interface, used to exercise
// and demonstrate the engine rather than to participate in it.
package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "obbench",
	Short: "Benchmark harness and console reporter for the order book core",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(versionCmd)
}
