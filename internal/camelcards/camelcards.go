// Package camelcards ranks poker-like hands and totals their winnings.
package camelcards

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind is the type of a hand, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

type Hand struct {
	Cards string
	Bid   int
}

// Kind classifies h. With jokers, each J counts as whichever card makes
// the strongest hand.
func (h Hand) Kind(jokers bool) Kind {
	counts := make(map[rune]int, HandSize)
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	var groups []int
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	groups = append(groups, 0, 0)
	// Adding the jokers to the biggest group always wins.
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders a before b when it is the weaker hand: by kind, then card
// by card from the left.
func Compare(a, b Hand, jokers bool) int {
	if c := cmp.Compare(a.Kind(jokers), b.Kind(jokers)); c != 0 {
		return c
	}
	strength := order
	if jokers {
		strength = jokerOrder
	}
	for i := range a.Cards {
		if c := cmp.Compare(strings.IndexByte(strength, a.Cards[i]), strings.IndexByte(strength, b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Parse parses a "<cards> <bid>" line.
func Parse(line string) (Hand, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return Hand{}, fmt.Errorf("want \"<cards> <bid>\", got %q", line)
	}
	if len(f[0]) != HandSize {
		return Hand{}, fmt.Errorf("hand %q: want %d cards", f[0], HandSize)
	}
	for _, c := range f[0] {
		if !strings.ContainsRune(order, c) {
			return Hand{}, fmt.Errorf("hand %q: unknown card %q", f[0], c)
		}
	}
	bid, err := strconv.Atoi(f[1])
	if err != nil {
		return Hand{}, fmt.Errorf("hand %q: bad bid: %w", f[0], err)
	}
	return Hand{Cards: f[0], Bid: bid}, nil
}

// ParseAll parses one hand per line.
func ParseAll(lines []string) ([]Hand, error) {
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		h, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// Winnings ranks the hands, weakest is rank 1, and sums rank*bid.
func Winnings(hands []Hand, jokers bool) int {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, func(a, b Hand) int {
		return Compare(a, b, jokers)
	})
	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.Bid
	}
	return total
}
