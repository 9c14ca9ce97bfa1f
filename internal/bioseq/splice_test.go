package bioseq

import "testing"

func Test_Splice(t *testing.T) {
	src := NewNucleic("atgcatgcatgcatgcaaaa")

	tests := []struct {
		name string
		locs Locations
		want string
	}{
		{
			"joined ranges",
			Locations{
				{Start: 1, End: 3, Strand: 1},
				{Start: 7, End: 9, Strand: 1},
			},
			"atggca",
		},
		{
			"reverse strand segments are reverse complemented",
			Locations{
				{Start: 16, End: 20, Strand: -1},
				{Start: 1, End: 5, Strand: -1},
			},
			"ttttgtgcat",
		},
		{
			"literal segments bypass extraction",
			Locations{
				{Start: 1, End: 3, Strand: 1},
				{Literal: "AAC"},
				{Start: 7, End: 9, Strand: 1},
			},
			"atgaacgca",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.Splice(tt.locs)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("Splice() = %v, want %v", got, tt.want)
			}
			if got.Variant() != NucleicAcid {
				t.Errorf("Splice() variant = %v, want NucleicAcid", got.Variant())
			}
		})
	}
}

func Test_SpliceExpr(t *testing.T) {
	src := NewNucleic("atgcatgcatgcatgcaaaa")

	got, err := src.SpliceExpr("complement(join(1..5,16..20))")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "ttttgtgcat" {
		t.Errorf("SpliceExpr() = %v, want ttttgtgcat", got)
	}

	if _, err := src.SpliceExpr("not a location"); err == nil {
		t.Error("SpliceExpr() should reject a bad expression")
	}
}

// a literal with u makes the product read as RNA, which folds its
// remaining t symbols to u
func Test_Splice_unifiesRNAForm(t *testing.T) {
	src := NewNucleic("atgc")

	got, err := src.Splice(Locations{
		{Start: 1, End: 4, Strand: 1},
		{Literal: "uu"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "augcuu" {
		t.Errorf("Splice() = %v, want augcuu", got)
	}
}

// amino-acid sources cannot be strand flipped; the segment is used
// unchanged rather than failing
func Test_Splice_aminoSkipsStrandFlip(t *testing.T) {
	src := NewAmino("MKLV")

	got, err := src.Splice(Locations{{Start: 1, End: 2, Strand: -1}})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "MK" {
		t.Errorf("Splice() = %v, want MK", got)
	}
	if got.Variant() != AminoAcid {
		t.Errorf("Splice() variant = %v, want AminoAcid", got.Variant())
	}
}

func Test_Splice_badRange(t *testing.T) {
	if _, err := NewNucleic("atgc").Splice(Locations{{Start: 0, End: 2, Strand: 1}}); err == nil {
		t.Error("Splice() should reject a range starting below 1")
	}
}
