package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// statsCmd is for summarizing a sequence.
var statsCmd = &cobra.Command{
	Use:                        "stats [seq]",
	Run:                        bioseq.StatsCmd,
	Short:                      "Log a sequence's length, GC content, weight and illegal symbols",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	statsCmd.Flags().BoolP("protein", "p", false, "treat the sequence as protein")

	RootCmd.AddCommand(statsCmd)
}
