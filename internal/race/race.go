// Package race counts the ways to win toy boat races.
package race

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sledgeworks/aoc"
)

// Race lasts Time ms; the record to beat is Distance mm. Holding the button
// for h ms moves the boat h*(Time-h) mm.
type Race struct {
	Time, Distance int
}

func (r Race) distance(hold int) int {
	return hold * (r.Time - hold)
}

// Ways counts the hold times that beat the record.
func (r Race) Ways() int {
	// hold^2 - Time*hold + Distance < 0
	if r.Time*r.Time-4*r.Distance < 0 {
		return 0
	}
	hi, lo := aoc.SolveQuad(1, -r.Time, r.Distance)
	first := max(int(math.Floor(lo)), 0)
	last := min(int(math.Ceil(hi)), r.Time)
	// The float roots can be off by one either way for big inputs.
	for first > 0 && r.distance(first-1) > r.Distance {
		first--
	}
	for first <= last && r.distance(first) <= r.Distance {
		first++
	}
	for last < r.Time && r.distance(last+1) > r.Distance {
		last++
	}
	for last >= first && r.distance(last) <= r.Distance {
		last--
	}
	if last < first {
		return 0
	}
	return last - first + 1
}

func field(lines []string, i int, prefix string) (string, error) {
	if i >= len(lines) {
		return "", fmt.Errorf("missing %q line", prefix)
	}
	rest, ok := strings.CutPrefix(lines[i], prefix)
	if !ok {
		return "", fmt.Errorf("line %d: want %q prefix, got %q", i+1, prefix, lines[i])
	}
	return rest, nil
}

// Parse reads the races of a "Time:" and a "Distance:" line.
func Parse(lines []string) ([]Race, error) {
	times, err := ints(lines, 0, "Time:")
	if err != nil {
		return nil, err
	}
	dists, err := ints(lines, 1, "Distance:")
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range races {
		races[i] = Race{Time: times[i], Distance: dists[i]}
	}
	return races, nil
}

func ints(lines []string, i int, prefix string) ([]int, error) {
	rest, err := field(lines, i, prefix)
	if err != nil {
		return nil, err
	}
	return aoc.ParseInts(rest)
}

// ParseKerned reads both lines as a single race, ignoring the spaces
// between digits.
func ParseKerned(lines []string) (Race, error) {
	var r Race
	for i, f := range []struct {
		prefix string
		dst    *int
	}{
		{"Time:", &r.Time},
		{"Distance:", &r.Distance},
	} {
		rest, err := field(lines, i, f.prefix)
		if err != nil {
			return Race{}, err
		}
		n, err := strconv.Atoi(strings.Join(strings.Fields(rest), ""))
		if err != nil {
			return Race{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		*f.dst = n
	}
	return r, nil
}
