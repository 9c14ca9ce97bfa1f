package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// windowCmd is for sliding a fixed-size window over a sequence.
var windowCmd = &cobra.Command{
	Use:                        "window [seq]",
	Run:                        bioseq.WindowCmd,
	Short:                      "Log fixed-size windows over a sequence and the remainder",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	windowCmd.Flags().IntP("size", "s", 0, "window size in symbols (default from config)")
	windowCmd.Flags().IntP("step", "t", 0, "offset between window starts (default from config)")
	windowCmd.Flags().BoolP("protein", "p", false, "treat the sequence as protein")

	RootCmd.AddCommand(windowCmd)
}
