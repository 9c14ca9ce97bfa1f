package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// fastaCmd is for emitting a sequence as FASTA text.
var fastaCmd = &cobra.Command{
	Use:                        "fasta [seq]",
	Run:                        bioseq.FastaCmd,
	Short:                      "Emit a sequence as FASTA text",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	fastaCmd.Flags().StringP("header", "n", "seq", "FASTA header line (without the '>')")
	fastaCmd.Flags().IntP("wrap", "w", 0, "symbols per body line (< 0 for a single line)")
	fastaCmd.Flags().BoolP("protein", "p", false, "treat the sequence as protein")

	RootCmd.AddCommand(fastaCmd)
}
