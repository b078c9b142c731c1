package almanac

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sledgeworks/aoc"
)

// SeedRange is Len candidate seeds starting at Start.
type SeedRange struct {
	Start, Len int
}

func (r SeedRange) Interval() aoc.Interval { return aoc.Span(r.Start, r.Len) }

// SeedSet is a list of possibly overlapping seed ranges.
type SeedSet []SeedRange

// PointSeeds returns one single-seed range per value.
func PointSeeds(vals []int) SeedSet {
	out := make(SeedSet, 0, len(vals))
	for _, v := range vals {
		out = append(out, SeedRange{Start: v, Len: 1})
	}
	return out
}

// PairSeeds reads vals as (start, length) pairs.
func PairSeeds(vals []int) (SeedSet, error) {
	if len(vals)%2 != 0 {
		return nil, fmt.Errorf("seed ranges: odd number of values (%d)", len(vals))
	}
	out := make(SeedSet, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		if vals[i+1] < 0 {
			return nil, fmt.Errorf("seed range %d: negative length %d", i/2, vals[i+1])
		}
		out = append(out, SeedRange{Start: vals[i], Len: vals[i+1]})
	}
	return out, nil
}

// Intersects returns the overlap of iv with the seed range that overlaps it
// lowest.
func (s SeedSet) Intersects(iv aoc.Interval) (aoc.Interval, bool) {
	var (
		best  aoc.Interval
		found bool
	)
	for _, r := range s {
		ov, ok := aoc.Intersect(r.Interval(), iv)
		if ok && (!found || ov.Start < best.Start) {
			best, found = ov, true
		}
	}
	return best, found
}

// Coalesce returns the non-empty ranges of s sorted and merged.
func (s SeedSet) Coalesce() SeedSet {
	ivs := make([]aoc.Interval, 0, len(s))
	for _, r := range s {
		if r.Len > 0 {
			ivs = append(ivs, r.Interval())
		}
	}
	slices.SortFunc(ivs, func(a, b aoc.Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})
	var out SeedSet
	for _, iv := range ivs {
		if n := len(out); n > 0 && iv.Start <= out[n-1].Interval().End {
			last := out[n-1].Interval()
			out[n-1].Len = max(last.End, iv.End) - last.Start
			continue
		}
		out = append(out, SeedRange{Start: iv.Start, Len: iv.Len()})
	}
	return out
}

// Min returns the lowest seed. It reports false if s holds no seed.
func (s SeedSet) Min() (int, bool) {
	var (
		m     int
		found bool
	)
	for _, r := range s {
		if r.Len > 0 && (!found || r.Start < m) {
			m, found = r.Start, true
		}
	}
	return m, found
}
