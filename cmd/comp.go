package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// compCmd is for counting the symbols of a sequence.
var compCmd = &cobra.Command{
	Use:                        "comp [seq]",
	Run:                        bioseq.CompCmd,
	Short:                      "Count each symbol of a sequence",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	compCmd.Flags().BoolP("protein", "p", false, "treat the sequence as protein")

	RootCmd.AddCommand(compCmd)
}
