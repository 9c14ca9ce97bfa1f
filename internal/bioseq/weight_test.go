package bioseq

import (
	"math"
	"strings"
	"testing"
)

func Test_Weight(t *testing.T) {
	tests := []struct {
		name string
		seq  *Sequence
		want float64
	}{
		{
			"dna dinucleotide",
			NewNucleic("at"),
			331.222 + 322.208 - waterWeight,
		},
		{
			"rna dinucleotide",
			NewNucleic("au"),
			347.221 + 324.181 - waterWeight,
		},
		{
			"single glycine",
			NewAmino("G"),
			57.0519 + waterWeight,
		},
		{
			"empty sequence",
			NewNucleic(""),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.seq.Weight()
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Weight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Weight_unknownSymbol(t *testing.T) {
	if _, err := NewNucleic("atn").Weight(); err == nil {
		t.Error("Weight() on an ambiguity code should error")
	}
}

func Test_Pattern(t *testing.T) {
	tests := []struct {
		name string
		seq  *Sequence
		want string
	}{
		{
			"dna ambiguity expansion",
			NewNucleic("ayn"),
			"a[ct][atgc]",
		},
		{
			"rna ambiguity expansion",
			NewNucleic("uyn"),
			"u[cu][augc]",
		},
		{
			"amino expansion",
			NewAmino("MBX"),
			"M[DN].",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.Pattern(); got != tt.want {
				t.Errorf("Pattern() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_BaseNames(t *testing.T) {
	names, err := NewNucleic("atn").BaseNames()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(names, ","); got != "adenine,thymine,any base" {
		t.Errorf("BaseNames() = %v", got)
	}

	if _, err := NewAmino("MK").BaseNames(); err != ErrNotNucleic {
		t.Errorf("BaseNames() on protein err = %v, want ErrNotNucleic", err)
	}
}

func Test_ResidueCodes(t *testing.T) {
	codes, err := NewAmino("mk*").ResidueCodes()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(codes, ","); got != "Met,Lys,Ter" {
		t.Errorf("ResidueCodes() = %v", got)
	}

	if _, err := NewNucleic("atgc").ResidueCodes(); err != ErrNotAmino {
		t.Errorf("ResidueCodes() on dna err = %v, want ErrNotAmino", err)
	}
}

func Test_ResidueNames(t *testing.T) {
	names, err := NewAmino("MK").ResidueNames()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(names, ","); got != "methionine,lysine" {
		t.Errorf("ResidueNames() = %v", got)
	}
}
