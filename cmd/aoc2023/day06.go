package main

import (
	"github.com/sledgeworks/aoc"
	"github.com/sledgeworks/aoc/internal/race"
)

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	var ways []int
	for _, r := range aoc.MustGet(race.Parse(s.Lines())) {
		s.Debugf("race %+v: %d ways", r, r.Ways())
		ways = append(ways, r.Ways())
	}
	return aoc.Product(ways...)
}

// want=71503
func (s solver) D6p2() any {
	return aoc.MustGet(race.ParseKerned(s.Lines())).Ways()
}
