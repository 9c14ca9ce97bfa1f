package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// spliceCmd is for assembling a spliced product from a location expression.
var spliceCmd = &cobra.Command{
	Use:   "splice [seq] [locations]",
	Run:   bioseq.SpliceCmd,
	Short: "Splice a sequence with a GenBank-style location expression",
	Long: `Assemble a spliced product from ordered location segments,
e.g. 'complement(join(1..5,16..20))'. Segments on the reverse strand
are reverse complemented; replace(4..6,"aac") inserts a literal`,
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	spliceCmd.Flags().BoolP("protein", "p", false, "treat the sequence as protein")

	RootCmd.AddCommand(spliceCmd)
}
