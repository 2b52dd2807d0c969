// Command detourgraph builds, validates and exports detour graphs from raw
// GPS point streams.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "detourgraph",
	Short: "Build and inspect detour graphs from GPS point streams",
	Long: `detourgraph turns one or more raw GPS point streams into a detour
graph: a directed multigraph of frequently-visited Stops connected by
recurring Routes, built by spike filtering, stop/motion classification,
spatial node clustering, temporal splitting and edge clustering.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
