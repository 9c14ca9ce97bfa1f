package bioseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseLocations(t *testing.T) {
	type want struct {
		locs Locations
		err  bool
	}
	tests := []struct {
		name string
		expr string
		want want
	}{
		{
			"single base",
			"42",
			want{locs: Locations{{Start: 42, End: 42, Strand: 1}}},
		},
		{
			"plain range",
			"1..25",
			want{locs: Locations{{Start: 1, End: 25, Strand: 1}}},
		},
		{
			"fuzz markers are ignored",
			"<1..>25",
			want{locs: Locations{{Start: 1, End: 25, Strand: 1}}},
		},
		{
			"join",
			"join(1..5,16..20)",
			want{locs: Locations{
				{Start: 1, End: 5, Strand: 1},
				{Start: 16, End: 20, Strand: 1},
			}},
		},
		{
			"order behaves like join",
			"order(3..4,8)",
			want{locs: Locations{
				{Start: 3, End: 4, Strand: 1},
				{Start: 8, End: 8, Strand: 1},
			}},
		},
		{
			"complement flips strands and reverses order",
			"complement(join(1..5,16..20))",
			want{locs: Locations{
				{Start: 16, End: 20, Strand: -1},
				{Start: 1, End: 5, Strand: -1},
			}},
		},
		{
			"complement of a complement restores the strand",
			"complement(complement(4..6))",
			want{locs: Locations{{Start: 4, End: 6, Strand: 1}}},
		},
		{
			"replace carries a literal",
			`join(1..3,replace(4..6,"aac"),7..9)`,
			want{locs: Locations{
				{Start: 1, End: 3, Strand: 1},
				{Start: 4, End: 6, Strand: 1, Literal: "aac"},
				{Start: 7, End: 9, Strand: 1},
			}},
		},
		{
			"garbage errors",
			"atgc",
			want{err: true},
		},
		{
			"empty expression errors",
			"",
			want{err: true},
		},
		{
			"unbalanced parens error",
			"join(1..5",
			want{err: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locs, err := ParseLocations(tt.expr)
			if tt.want.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want.locs, locs)
		})
	}
}
