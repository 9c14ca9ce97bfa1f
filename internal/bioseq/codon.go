package bioseq

import (
	"fmt"
	"strings"
)

// CodonTable maps 3-symbol DNA codons to single amino-acid symbols for
// one of the NCBI genetic codes. Stop codons map to '*'; codons absent
// from the table (for example those holding ambiguity codes) come back
// through the comma-ok form of Translate.
type CodonTable struct {
	// ID is the NCBI transl_table number
	ID int

	// Name is the NCBI name of the code
	Name string

	codons map[string]byte
}

// codonBases orders codon positions the way the NCBI tables are encoded:
// the 64 amino-acid symbols below follow TTT, TTC, TTA, TTG, TCT, ...
const codonBases = "tcag"

// ncbieaa holds each genetic code as its 64-symbol NCBI encoding.
var ncbieaa = map[int]struct {
	name string
	aa   string
}{
	1:  {"Standard", "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	2:  {"Vertebrate Mitochondrial", "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG"},
	3:  {"Yeast Mitochondrial", "FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	4:  {"Mold/Protozoan/Coelenterate Mitochondrial", "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	5:  {"Invertebrate Mitochondrial", "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG"},
	6:  {"Ciliate Nuclear", "FFLLSSSSYYQQCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	9:  {"Echinoderm Mitochondrial", "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG"},
	10: {"Euplotid Nuclear", "FFLLSSSSYY**CCCWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	11: {"Bacterial and Plant Plastid", "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	12: {"Alternative Yeast Nuclear", "FFLLSSSSYY**CC*WLLLSPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	13: {"Ascidian Mitochondrial", "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSGGVVVVAAAADDEEGGGG"},
	14: {"Flatworm Mitochondrial", "FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG"},
	16: {"Chlorophycean Mitochondrial", "FFLLSSSSYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	21: {"Trematode Mitochondrial", "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNNKSSSSVVVVAAAADDEEGGGG"},
	22: {"Scenedesmus obliquus Mitochondrial", "FFLLSS*SYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
	23: {"Thraustochytrium Mitochondrial", "FF*LSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"},
}

var standardTable = mustTable(1)

// StandardTable returns the standard genetic code (transl_table 1).
func StandardTable() *CodonTable {
	return standardTable
}

// TableByID returns the genetic code with the passed NCBI transl_table
// number.
func TableByID(id int) (*CodonTable, error) {
	def, ok := ncbieaa[id]
	if !ok {
		return nil, fmt.Errorf("bioseq: unknown codon table %d", id)
	}
	t := &CodonTable{ID: id, Name: def.name, codons: make(map[string]byte, 64)}
	for i := 0; i < 64; i++ {
		codon := string([]byte{
			codonBases[i/16],
			codonBases[i/4%4],
			codonBases[i%4],
		})
		t.codons[codon] = def.aa[i]
	}
	return t, nil
}

func mustTable(id int) *CodonTable {
	t, err := TableByID(id)
	if err != nil {
		panic(err)
	}
	return t
}

// Translate looks up a codon, case-insensitively and with u folded to t
// so RNA codons resolve too. The second return is false when the table
// has no entry for it.
func (t *CodonTable) Translate(codon string) (byte, bool) {
	key := strings.ReplaceAll(strings.ToLower(codon), "u", "t")
	aa, ok := t.codons[key]
	return aa, ok
}

// IsStop reports whether the codon terminates translation under this code.
func (t *CodonTable) IsStop(codon string) bool {
	aa, ok := t.Translate(codon)
	return ok && aa == '*'
}
