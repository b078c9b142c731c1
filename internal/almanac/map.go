// Package almanac remaps values through chains of range maps, both point by
// point and by walking whole intervals backward from the last map.
//
// All intervals are half-open and all values are non-negative.
package almanac

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/sledgeworks/aoc"
)

// Rule maps [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int
}

func (r Rule) Source() aoc.Interval { return aoc.Span(r.Src, r.Len) }
func (r Rule) Dest() aoc.Interval   { return aoc.Span(r.Dst, r.Len) }

// Offset is added to a source value to get its destination.
func (r Rule) Offset() int { return r.Dst - r.Src }

func (r Rule) String() string {
	return fmt.Sprintf("%v->%v", r.Source(), r.Dest())
}

// Map is one named stage, e.g. "seed-to-soil". When rules overlap in source
// space the earliest one wins. Values outside every rule map to themselves.
type Map struct {
	Name  string
	Rules []Rule
}

// Convert maps a single value.
func (m Map) Convert(v int) int {
	for _, r := range m.Rules {
		if r.Source().Contains(v) {
			return v + r.Offset()
		}
	}
	return v
}

// Piece is a source interval whose values all land at src+Offset.
type Piece struct {
	Src    aoc.Interval
	Offset int
}

func (p Piece) Dest() aoc.Interval { return p.Src.Shift(p.Offset) }

// Invert returns every source interval whose image falls in q, sorted by
// destination. Together the pieces hold all preimages of q, including the
// values that pass through unmapped (Offset 0).
func (m Map) Invert(q aoc.Interval) []Piece {
	var (
		out     []Piece
		claimed []aoc.Interval
	)
	for _, r := range m.Rules {
		for _, e := range subtractAll([]aoc.Interval{r.Source()}, claimed) {
			if ov, ok := aoc.Intersect(e.Shift(r.Offset()), q); ok {
				out = append(out, Piece{Src: ov.Shift(-r.Offset()), Offset: r.Offset()})
			}
		}
		claimed = append(claimed, r.Source())
	}
	for _, iv := range subtractAll([]aoc.Interval{q}, claimed) {
		out = append(out, Piece{Src: iv})
	}
	slices.SortStableFunc(out, func(a, b Piece) int {
		return cmp.Compare(a.Dest().Start, b.Dest().Start)
	})
	return out
}

// segments cuts the destination space [0, MaxInt) at every rule boundary.
func (m Map) segments() []aoc.Interval {
	cuts := []int{0}
	for _, r := range m.Rules {
		cuts = append(cuts, r.Src, r.Src+r.Len, r.Dst, r.Dst+r.Len)
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)
	var out []aoc.Interval
	for i, c := range cuts {
		if c < 0 {
			continue
		}
		end := math.MaxInt
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		out = append(out, aoc.Interval{Start: c, End: end})
	}
	return out
}

func subtractAll(ivs, cuts []aoc.Interval) []aoc.Interval {
	for _, c := range cuts {
		var next []aoc.Interval
		for _, iv := range ivs {
			next = append(next, iv.Subtract(c)...)
		}
		ivs = next
	}
	return ivs
}
