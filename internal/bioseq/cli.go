package bioseq

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/domthu/bioseq/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// argSeq builds a Sequence from the first positional argument, amino or
// nucleic per the command's protein flag.
func argSeq(cmd *cobra.Command, args []string) *Sequence {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}
	if protein, _ := cmd.Flags().GetBool("protein"); protein {
		return NewAmino(args[0])
	}
	return NewNucleic(args[0])
}

// CompCmd logs the composition of the passed sequence.
func CompCmd(cmd *cobra.Command, args []string) {
	seq := argSeq(cmd, args)
	counts := Composition(seq)

	symbols := make([]byte, 0, len(counts))
	for sym := range counts {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "symbol\tcount\t\n")
	for _, sym := range symbols {
		fmt.Fprintf(writer, "%c\t%d\t\n", sym, counts[sym])
	}
	writer.Flush()
}

// ComplementCmd logs the forward or reverse complement of the passed
// sequence.
func ComplementCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}
	seq := NewNucleic(args[0])

	if rna, _ := cmd.Flags().GetBool("rna"); rna {
		seq.ToRNAInPlace()
	}

	var (
		out *Sequence
		err error
	)
	if reverse, _ := cmd.Flags().GetBool("reverse"); reverse {
		out, err = seq.ReverseComplement()
	} else {
		out, err = seq.Complement()
	}
	if err != nil {
		stderr.Fatalln(err)
	}
	fmt.Println(out)
}

// TranslateCmd logs the translation of the passed sequence in the
// requested reading frame.
func TranslateCmd(cmd *cobra.Command, args []string) {
	seq := argSeq(cmd, args)
	c := config.New()

	frame, _ := cmd.Flags().GetInt("frame")
	tableID, err := cmd.Flags().GetInt("table")
	if err != nil || tableID == 0 {
		tableID = c.Translate.Table
	}
	unknown := c.Translate.Unknown
	if flagged, err := cmd.Flags().GetString("unknown"); err == nil && flagged != "" {
		unknown = flagged
	}
	if unknown == "" {
		unknown = "X"
	}

	table, err := TableByID(tableID)
	if err != nil {
		stderr.Fatalln(err)
	}
	out, err := seq.Translate(frame, table, unknown[0])
	if err != nil {
		stderr.Fatalln(err)
	}
	fmt.Println(out)
}

// StatsCmd logs the length, GC content, molecular weight and illegal
// symbols of the passed sequence.
func StatsCmd(cmd *cobra.Command, args []string) {
	seq := argSeq(cmd, args)

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "length\t%d\t\n", seq.Len())

	if seq.Variant() == NucleicAcid {
		form := "dna"
		if seq.IsRNA() {
			form = "rna"
		}
		fmt.Fprintf(writer, "form\t%s\t\n", form)

		if gc, err := seq.GC(); err == nil {
			fmt.Fprintf(writer, "gc%%\t%.2f\t\n", gc)
		} else {
			fmt.Fprintf(writer, "gc%%\t-\t\n")
		}
		if illegal := seq.IllegalBases(); len(illegal) > 0 {
			fmt.Fprintf(writer, "illegal\t%s\t\n", string(illegal))
		}
	}

	if w, err := seq.Weight(); err == nil {
		fmt.Fprintf(writer, "weight\t%.3f\t\n", w)
	} else {
		fmt.Fprintf(writer, "weight\t-\t\n")
	}
	writer.Flush()
}

// RandomCmd logs a composition-preserving shuffle of the passed
// sequence, or a fresh draw from --counts.
func RandomCmd(cmd *cobra.Command, args []string) {
	c := config.New()

	seed := c.Random.Seed
	if flagged, err := cmd.Flags().GetInt64("seed"); err == nil && flagged != 0 {
		seed = flagged
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	randomizer := NewRandomizer(rng)

	variant := NucleicAcid
	if protein, _ := cmd.Flags().GetBool("protein"); protein {
		variant = AminoAcid
	}

	spec, _ := cmd.Flags().GetString("counts")
	var counts map[byte]int
	if spec != "" {
		var err error
		if counts, err = parseCounts(spec); err != nil {
			stderr.Fatalln(err)
		}
	}

	var out *Sequence
	switch {
	case len(args) > 0:
		out = randomizer.Randomize(New(args[0], variant), counts, nil)
	case counts != nil:
		out = randomizer.RandomizeFromCounts(variant, counts, nil)
	default:
		cmd.Help()
		stderr.Fatalln("\nno sequence or --counts passed.")
	}
	fmt.Println(out)
}

// parseCounts reads a "a=10,c=20" flag value into a frequency map.
func parseCounts(spec string) (map[byte]int, error) {
	counts := make(map[byte]int)
	for _, field := range strings.Split(spec, ",") {
		sym, val, found := strings.Cut(strings.TrimSpace(field), "=")
		if !found || len(sym) != 1 {
			return nil, fmt.Errorf("bad count %q, want symbol=count", field)
		}
		n, err := strconv.Atoi(val)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad count %q, want a non-negative count", field)
		}
		counts[sym[0]] = n
	}
	return counts, nil
}

// SpliceCmd assembles a spliced product from a sequence and a location
// expression like complement(join(1..5,16..20)).
func SpliceCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		cmd.Help()
		stderr.Fatalln("\nwant a sequence and a location expression.")
	}
	seq := argSeq(cmd, args)
	out, err := seq.SpliceExpr(args[1])
	if err != nil {
		stderr.Fatalln(err)
	}
	fmt.Println(out)
}

// WindowCmd logs every fixed-size window over the sequence and the
// unconsumed remainder.
func WindowCmd(cmd *cobra.Command, args []string) {
	seq := argSeq(cmd, args)
	c := config.New()

	size, err := cmd.Flags().GetInt("size")
	if err != nil || size < 1 {
		size = c.Window.Size
	}
	step, _ := cmd.Flags().GetInt("step")
	if step < 1 {
		step = c.Window.Step
	}
	if step < 1 {
		step = 1
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "start\twindow\t\n")
	offset := 0
	remainder := seq.EachWindow(size, step, func(w *Sequence) {
		fmt.Fprintf(writer, "%d\t%s\t\n", offset+1, w)
		offset += step
	})
	fmt.Fprintf(writer, "remainder\t%s\t\n", remainder)
	writer.Flush()
}

// FastaCmd logs the sequence as FASTA text.
func FastaCmd(cmd *cobra.Command, args []string) {
	seq := argSeq(cmd, args)
	c := config.New()

	header, _ := cmd.Flags().GetString("header")
	wrap, err := cmd.Flags().GetInt("wrap")
	if err != nil || wrap == 0 {
		wrap = c.Fasta.Wrap
	}
	fmt.Print(seq.Fasta(header, wrap))
}
