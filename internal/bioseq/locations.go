package bioseq

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is one segment of a splicing description: a 1-based inclusive
// range on a strand, or a literal insert that bypasses extraction from
// the source entirely.
type Location struct {
	// Start and End are 1-based inclusive positions on the source
	Start int
	End   int

	// Strand is +1 for the forward strand, -1 for the reverse
	Strand int

	// Literal, when set, is appended verbatim instead of extracting
	Literal string
}

// Locations is an ordered list of segments describing how a spliced
// product is assembled.
type Locations []Location

// ParseLocations parses a GenBank-style location expression into an
// ordered segment list. Supported forms:
//
//	42              single base
//	1..25           range
//	join(1..5,16..20)
//	order(...)      treated like join
//	complement(...) flips every inner strand and reverses segment order
//	replace(4..6,"aac")  literal insert
//
// Positions may carry fuzz markers (`<`, `>`), which are ignored.
func ParseLocations(expr string) (Locations, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("bioseq: empty location expression")
	}
	return parseLocExpr(expr)
}

func parseLocExpr(expr string) (Locations, error) {
	expr = strings.TrimSpace(expr)

	if inner, ok := callArgs(expr, "complement"); ok {
		locs, err := parseLocExpr(inner)
		if err != nil {
			return nil, err
		}
		// complementing a joined region reverses the segment order as
		// well as each segment's strand
		out := make(Locations, 0, len(locs))
		for i := len(locs) - 1; i >= 0; i-- {
			loc := locs[i]
			loc.Strand = -loc.Strand
			out = append(out, loc)
		}
		return out, nil
	}

	for _, op := range []string{"join", "order"} {
		inner, ok := callArgs(expr, op)
		if !ok {
			continue
		}
		var out Locations
		for _, part := range splitTopLevel(inner) {
			locs, err := parseLocExpr(part)
			if err != nil {
				return nil, err
			}
			out = append(out, locs...)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("bioseq: empty %s() in location expression", op)
		}
		return out, nil
	}

	if inner, ok := callArgs(expr, "replace"); ok {
		parts := splitTopLevel(inner)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bioseq: replace() wants a range and a literal, got %q", inner)
		}
		loc, err := parseRange(parts[0])
		if err != nil {
			return nil, err
		}
		lit := strings.TrimSpace(parts[1])
		lit = strings.Trim(lit, `"'`)
		loc.Literal = lit
		return Locations{loc}, nil
	}

	loc, err := parseRange(expr)
	if err != nil {
		return nil, err
	}
	return Locations{loc}, nil
}

// callArgs returns the argument text of op(...) when expr is exactly one
// such call with balanced parentheses.
func callArgs(expr, op string) (string, bool) {
	if !strings.HasPrefix(expr, op+"(") || !strings.HasSuffix(expr, ")") {
		return "", false
	}
	inner := expr[len(op)+1 : len(expr)-1]
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", false
			}
		}
	}
	return inner, depth == 0
}

// splitTopLevel splits on commas outside parentheses and quotes.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case '(':
			if !quoted {
				depth++
			}
		case ')':
			if !quoted {
				depth--
			}
		case ',':
			if depth == 0 && !quoted {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// parseRange parses "N..M" or a single position "N", ignoring fuzz
// markers.
func parseRange(s string) (Location, error) {
	s = strings.TrimSpace(s)
	clean := strings.NewReplacer("<", "", ">", "").Replace(s)

	from, to, found := strings.Cut(clean, "..")
	if !found {
		to = from
	}
	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return Location{}, fmt.Errorf("bioseq: bad location %q: %v", s, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return Location{}, fmt.Errorf("bioseq: bad location %q: %v", s, err)
	}
	return Location{Start: start, End: end, Strand: 1}, nil
}
