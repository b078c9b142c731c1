package almanac

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sledgeworks/aoc"
)

// Almanac is the parsed puzzle input: the seed line and the map chain.
type Almanac struct {
	Seeds []int
	Chain Chain
}

// Parse reads
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	...
//
// Map sections are separated by blank lines.
func Parse(lines []string) (Almanac, error) {
	var a Almanac
	if len(lines) == 0 {
		return a, errors.New("empty almanac")
	}
	rest, ok := strings.CutPrefix(lines[0], "seeds:")
	if !ok {
		return a, fmt.Errorf("line 1: want seeds: prefix, got %q", lines[0])
	}
	seeds, err := aoc.ParseInts(rest)
	if err != nil {
		return a, fmt.Errorf("line 1: %w", err)
	}
	for _, s := range seeds {
		if s < 0 {
			return a, fmt.Errorf("line 1: negative seed %d", s)
		}
	}
	a.Seeds = seeds

	var cur *Map
	for i, line := range lines[1:] {
		lineNo := i + 2
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			cur = nil
		case strings.HasSuffix(line, " map:"):
			a.Chain = append(a.Chain, Map{Name: strings.TrimSuffix(line, " map:")})
			cur = &a.Chain[len(a.Chain)-1]
		case cur == nil:
			return a, fmt.Errorf("line %d: rule outside of a map section: %q", lineNo, line)
		default:
			r, err := parseRule(line)
			if err != nil {
				return a, fmt.Errorf("line %d (%s): %w", lineNo, cur.Name, err)
			}
			cur.Rules = append(cur.Rules, r)
		}
	}
	return a, nil
}

func parseRule(line string) (Rule, error) {
	nums, err := aoc.ParseInts(line)
	if err != nil {
		return Rule{}, err
	}
	if len(nums) != 3 {
		return Rule{}, fmt.Errorf("want 3 numbers, got %d", len(nums))
	}
	for _, n := range nums {
		if n < 0 {
			return Rule{}, fmt.Errorf("negative value %d", n)
		}
	}
	return Rule{Dst: nums[0], Src: nums[1], Len: nums[2]}, nil
}
