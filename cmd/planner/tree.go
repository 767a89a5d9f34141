package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcPlanner_Go/internal/report"
)

var treeQuantity int

var treeCmd = &cobra.Command{
	Use:   "tree <item-id>",
	Short: "Print the crafting tree of one item",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

var predecessorCmd = &cobra.Command{
	Use:   "predecessor <item-id>",
	Short: "Show the tier an item upgrades from",
	Args:  cobra.ExactArgs(1),
	RunE:  runPredecessor,
}

func init() {
	treeCmd.Flags().IntVarP(&treeQuantity, "quantity", "q", 1, "How many of the item to build")
	treeCmd.Flags().BoolVar(&asJSON, "json", false, "Print the tree as JSON")
}

func runTree(cmd *cobra.Command, args []string) error {
	planner, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}
	root, err := planner.BuildTree(cmd.Context(), args[0], treeQuantity)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), root)
	}
	return report.NewRenderer(cmd.OutOrStdout(), styles()).Tree(root)
}

func runPredecessor(cmd *cobra.Command, args []string) error {
	planner, err := newPlanner(cmd.Context())
	if err != nil {
		return err
	}
	info, err := planner.Predecessor(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return report.NewRenderer(cmd.OutOrStdout(), styles()).Predecessor(info)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
