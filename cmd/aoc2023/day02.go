package main

import (
	"github.com/sledgeworks/aoc"
	"github.com/sledgeworks/aoc/internal/cubes"
)

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	sum := 0
	for _, g := range aoc.MustGet(cubes.ParseAll(s.Lines())) {
		if g.Possible(cubes.Bag) {
			sum += g.ID
		} else {
			s.Debugf("game %d is impossible", g.ID)
		}
	}
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	for _, g := range aoc.MustGet(cubes.ParseAll(s.Lines())) {
		m := g.Minimum()
		s.Debugf("game %d: minimum %+v, power %d", g.ID, m, m.Power())
		sum += m.Power()
	}
	return sum
}
