// Package main is the CLI entry point for activity.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version info (set via ldflags)
	Version   = "1.0.0"
	Commit    = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "activity",
	Short: "Memory monitor - view processes, memory stats, and clean up",
	Long: `activity shows which processes use your memory and lets you close them.

Run without a subcommand for the interactive monitor. Processes are sorted
into safety tiers (safe, caution, critical); critical processes can never
be killed from the monitor.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(killCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)
}

// commandContext returns the context Execute was given, or a background one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
