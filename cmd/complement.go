package cmd

import (
	"github.com/domthu/bioseq/internal/bioseq"
	"github.com/spf13/cobra"
)

// complementCmd is for complementing a nucleic-acid sequence.
var complementCmd = &cobra.Command{
	Use:                        "complement [seq]",
	Run:                        bioseq.ComplementCmd,
	Short:                      "Complement a DNA/RNA sequence (IUPAC ambiguity codes included)",
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	complementCmd.Flags().BoolP("reverse", "r", false, "reverse the symbol order before complementing")
	complementCmd.Flags().BoolP("rna", "u", false, "convert to the RNA form first")

	RootCmd.AddCommand(complementCmd)
}
