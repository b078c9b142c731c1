package main

import (
	"errors"
	"math"

	"github.com/sledgeworks/aoc"
	"github.com/sledgeworks/aoc/internal/almanac"
)

var errNoSeeds = errors.New("almanac has no seeds")

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := aoc.MustGet(almanac.Parse(s.Lines()))
	lowest, ok := a.Chain.Minimize(almanac.PointSeeds(a.Seeds))
	if !ok {
		aoc.MustDo(errNoSeeds)
	}
	if s.SampleMode {
		forward := math.MaxInt
		for _, seed := range a.Seeds {
			loc := a.Chain.Apply(seed)
			s.Debugf("seed %d -> location %d", seed, loc)
			forward = min(forward, loc)
		}
		s.Debugf("forward minimum %d, backward minimum %d", forward, lowest)
	}
	return lowest
}

// want=46
func (s solver) D5p2() any {
	a := aoc.MustGet(almanac.Parse(s.Lines()))
	seeds := aoc.MustGet(almanac.PairSeeds(a.Seeds))
	lowest, ok := a.Chain.Minimize(seeds)
	if !ok {
		aoc.MustDo(errNoSeeds)
	}
	return lowest
}
