package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcPlanner_Go/internal/logger"
	"github.com/osse101/ArcPlanner_Go/internal/report"
)

var (
	verbose     bool
	catalogPath string
	offline     bool
	noColor     bool
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "ArcPlanner - crafting cost calculator",
	Long: `planner expands items into their full crafting trees and totals the raw
materials needed, along with the recyclable items that yield them.

The catalog is read from --catalog (a JSON file or a directory of item files),
from the remote item repository, or from the bundled dataset with --offline.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		cfg := logger.DefaultConfig()
		cfg.Level = level
		cfg.ServiceName = "arc-planner-cli"
		logger.InitLoggerWithWriter(cfg, cmd.ErrOrStderr())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Item catalog file or directory (default: remote repository)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Use the bundled item dataset")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Catalog load timeout")

	rootCmd.AddCommand(planCmd, treeCmd, predecessorCmd)
}

func styles() report.Styles {
	if noColor {
		return report.PlainStyles()
	}
	return report.DefaultStyles()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
