package bioseq

// Lookup data for the molecular-weight, base/residue-name and regex
// pattern providers. Masses are average masses.

// waterWeight is the mass of one water, lost at each bond and kept at
// the free termini.
const waterWeight = 18.0153

// deoxyribonucleotide and ribonucleotide monophosphate masses
var (
	dnaWeights = map[byte]float64{
		'a': 331.222,
		'c': 307.197,
		'g': 347.221,
		't': 322.208,
	}
	rnaWeights = map[byte]float64{
		'a': 347.221,
		'c': 323.197,
		'g': 363.221,
		'u': 324.181,
	}
)

// amino-acid residue masses (peptide-bonded, one water added per chain)
var aminoWeights = map[byte]float64{
	'A': 71.0788,
	'R': 156.1875,
	'N': 114.1038,
	'D': 115.0886,
	'C': 103.1388,
	'E': 129.1155,
	'Q': 128.1307,
	'G': 57.0519,
	'H': 137.1411,
	'I': 113.1594,
	'L': 113.1594,
	'K': 128.1741,
	'M': 131.1926,
	'F': 147.1766,
	'P': 97.1167,
	'S': 87.0782,
	'T': 101.1051,
	'W': 186.2132,
	'Y': 163.1760,
	'V': 99.1326,
	'U': 150.0388,
	'O': 237.3018,
}

// long names per nucleotide symbol
var baseNames = map[byte]string{
	'a': "adenine",
	't': "thymine",
	'u': "uracil",
	'g': "guanine",
	'c': "cytosine",
	'r': "purine",
	'y': "pyrimidine",
	'w': "a or t/u",
	's': "g or c",
	'k': "g or t/u",
	'm': "a or c",
	'b': "not a",
	'd': "not c",
	'h': "not g",
	'v': "not t/u",
	'n': "any base",
}

// regex character classes per ambiguity code
var (
	dnaPatterns = map[byte]string{
		'r': "[ag]",
		'y': "[ct]",
		'm': "[ac]",
		'k': "[gt]",
		's': "[gc]",
		'w': "[at]",
		'd': "[agt]",
		'h': "[act]",
		'v': "[acg]",
		'b': "[cgt]",
		'n': "[atgc]",
	}
	rnaPatterns = map[byte]string{
		'r': "[ag]",
		'y': "[cu]",
		'm': "[ac]",
		'k': "[gu]",
		's': "[gc]",
		'w': "[au]",
		'd': "[agu]",
		'h': "[acu]",
		'v': "[acg]",
		'b': "[cgu]",
		'n': "[augc]",
	}
	aminoPatterns = map[byte]string{
		'B': "[DN]",
		'Z': "[EQ]",
		'J': "[IL]",
		'X': ".",
	}
)

// 1-letter to 3-letter residue codes
var residueCodes = map[byte]string{
	'A': "Ala",
	'R': "Arg",
	'N': "Asn",
	'D': "Asp",
	'C': "Cys",
	'Q': "Gln",
	'E': "Glu",
	'G': "Gly",
	'H': "His",
	'I': "Ile",
	'L': "Leu",
	'K': "Lys",
	'M': "Met",
	'F': "Phe",
	'P': "Pro",
	'S': "Ser",
	'T': "Thr",
	'W': "Trp",
	'Y': "Tyr",
	'V': "Val",
	'B': "Asx",
	'Z': "Glx",
	'J': "Xle",
	'U': "Sec",
	'O': "Pyl",
	'X': "Xaa",
	'*': "Ter",
}

// 3-letter residue codes to long names
var residueNames = map[string]string{
	"Ala": "alanine",
	"Arg": "arginine",
	"Asn": "asparagine",
	"Asp": "aspartic acid",
	"Cys": "cysteine",
	"Gln": "glutamine",
	"Glu": "glutamic acid",
	"Gly": "glycine",
	"His": "histidine",
	"Ile": "isoleucine",
	"Leu": "leucine",
	"Lys": "lysine",
	"Met": "methionine",
	"Phe": "phenylalanine",
	"Pro": "proline",
	"Ser": "serine",
	"Thr": "threonine",
	"Trp": "tryptophan",
	"Tyr": "tyrosine",
	"Val": "valine",
	"Asx": "asparagine or aspartic acid",
	"Glx": "glutamine or glutamic acid",
	"Xle": "isoleucine or leucine",
	"Sec": "selenocysteine",
	"Pyl": "pyrrolysine",
	"Xaa": "unknown",
	"Ter": "termination",
}
