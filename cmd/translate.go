package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// translateCmd is for translating a nucleic-acid sequence to protein.
var translateCmd = &cobra.Command{
	Use:   "translate [seq]",
	Run:   bioseq.TranslateCmd,
	Short: "Translate a DNA/RNA sequence in a reading frame",
	Long: `Translate a DNA/RNA sequence to protein.

Frames 1-3 read forward from offsets 0-2. Frames 4-6 and -1 through -3
read the reverse complement. Codons without an entry in the genetic code
are emitted as the unknown symbol`,
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	translateCmd.Flags().IntP("frame", "f", 1, "reading frame (1-6 or -1..-3)")
	translateCmd.Flags().IntP("table", "t", 0, "NCBI transl_table number of the genetic code")
	translateCmd.Flags().StringP("unknown", "x", "", "symbol used for untranslatable codons")

	RootCmd.AddCommand(translateCmd)
}
