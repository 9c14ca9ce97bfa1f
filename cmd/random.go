package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// randomCmd is for composition-preserving sequence shuffles.
var randomCmd = &cobra.Command{
	Use:   "random [seq]",
	Run:   bioseq.RandomCmd,
	Short: "Shuffle a sequence, or draw one from symbol counts",
	Long: `Draw a random sequence whose composition exactly matches the
input sequence's own composition, or the counts passed with --counts
(e.g. "a=10,c=20,g=30,t=40"). When both a sequence and counts are
given the result's length is the sequence length plus the count sum`,
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	randomCmd.Flags().StringP("counts", "c", "", "comma-separated symbol=count pairs")
	randomCmd.Flags().Int64P("seed", "s", 0, "seed for the random source (0 seeds from the clock)")
	randomCmd.Flags().BoolP("protein", "p", false, "treat the sequence as protein")

	RootCmd.AddCommand(randomCmd)
}
