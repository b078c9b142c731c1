// Package scratchcard scores cards of the form
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
package scratchcard

import (
	"fmt"
	"strconv"
	"strings"

	"tailscale.com/util/set"

	"github.com/sledgeworks/aoc"
)

type Card struct {
	ID      int
	Winning set.Set[int]
	Have    []int
}

// Parse parses one card line.
func Parse(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' in %q", line)
	}
	name, id, ok := strings.Cut(strings.TrimSpace(head), " ")
	if !ok || name != "Card" {
		return Card{}, fmt.Errorf("bad card header %q", head)
	}
	c := Card{Winning: make(set.Set[int])}
	var err error
	if c.ID, err = strconv.Atoi(strings.TrimSpace(id)); err != nil {
		return Card{}, fmt.Errorf("bad card id %q: %w", id, err)
	}
	winning, have, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: missing '|'", c.ID)
	}
	nums, err := aoc.ParseInts(winning)
	if err != nil {
		return Card{}, fmt.Errorf("card %d: %w", c.ID, err)
	}
	for _, n := range nums {
		c.Winning.Add(n)
	}
	if c.Have, err = aoc.ParseInts(have); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", c.ID, err)
	}
	return c, nil
}

// ParseAll parses one card per line.
func ParseAll(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Matches counts the numbers we have that are winning numbers.
func (c Card) Matches() int {
	n := 0
	for _, v := range c.Have {
		if c.Winning.Contains(v) {
			n++
		}
	}
	return n
}

// Score is 1 for the first match, doubled for each further match.
func (c Card) Score() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// TotalCards plays the copy rules: a card with n matches wins one copy of
// each of the next n cards, copies win copies too. It returns how many
// cards, originals included, end up in hand.
func TotalCards(cards []Card) int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}
	return aoc.Sum(counts...)
}
