package main

import (
	"github.com/sledgeworks/aoc"
	"github.com/sledgeworks/aoc/internal/camelcards"
)

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return camelcards.Winnings(aoc.MustGet(camelcards.ParseAll(s.Lines())), false)
}

// want=5905
func (s solver) D7p2() any {
	hands := aoc.MustGet(camelcards.ParseAll(s.Lines()))
	for _, h := range hands {
		s.Debugf("%s: %v", h.Cards, h.Kind(true))
	}
	return camelcards.Winnings(hands, true)
}
