package aoc

import "fmt"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start, End int
}

// Span returns the interval of n values starting at start.
func Span(start, n int) Interval {
	return Interval{start, start + n}
}

func (i Interval) Len() int {
	if i.End < i.Start {
		return 0
	}
	return i.End - i.Start
}

func (i Interval) Empty() bool {
	return i.Start >= i.End
}

func (i Interval) Contains(v int) bool {
	return i.Start <= v && v < i.End
}

// Shift translates i by n.
func (i Interval) Shift(n int) Interval {
	return Interval{i.Start + n, i.End + n}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End)
}

// Intersect returns the overlap of a and b. It reports false when they do
// not overlap.
func Intersect(a, b Interval) (Interval, bool) {
	out := Interval{max(a.Start, b.Start), min(a.End, b.End)}
	if out.Empty() {
		return Interval{}, false
	}
	return out, true
}

// Subtract returns the parts of i not covered by o, in ascending order.
func (i Interval) Subtract(o Interval) []Interval {
	if _, ok := Intersect(i, o); !ok {
		if i.Empty() {
			return nil
		}
		return []Interval{i}
	}
	var out []Interval
	if i.Start < o.Start {
		out = append(out, Interval{i.Start, o.Start})
	}
	if o.End < i.End {
		out = append(out, Interval{o.End, i.End})
	}
	return out
}
