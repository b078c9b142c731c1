// Package cubes parses cube game records such as
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// Cubes counts cubes per colour.
type Cubes struct {
	Red, Green, Blue int
}

// Power multiplies the non-zero counts.
func (c Cubes) Power() int {
	p := 1
	for _, n := range []int{c.Red, c.Green, c.Blue} {
		if n != 0 {
			p *= n
		}
	}
	return p
}

// Within reports whether every count of c fits in limit.
func (c Cubes) Within(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Game is one record: the cubes shown in each round.
type Game struct {
	ID     int
	Rounds []Cubes
}

// Bag is the content the elf asks about in part 1.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Possible reports whether every round could be drawn from bag.
func (g Game) Possible(bag Cubes) bool {
	for _, r := range g.Rounds {
		if !r.Within(bag) {
			return false
		}
	}
	return true
}

// Minimum returns the fewest cubes of each colour that make g possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, r := range g.Rounds {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}
	return m
}

// tokens splits s on spaces; ':', ',' and ';' are tokens of their own.
func tokens(s string) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, ch := range s {
		switch ch {
		case ' ', '\t':
			flush()
		case ':', ',', ';':
			flush()
			out = append(out, string(ch))
		default:
			cur.WriteRune(ch)
		}
	}
	flush()
	return out
}

// Parse parses one game record.
func Parse(line string) (Game, error) {
	toks := tokens(line)
	if len(toks) < 3 || toks[0] != "Game" || toks[2] != ":" {
		return Game{}, fmt.Errorf("bad game header in %q", line)
	}
	id, err := strconv.Atoi(toks[1])
	if err != nil {
		return Game{}, fmt.Errorf("bad game id %q: %w", toks[1], err)
	}
	g := Game{ID: id}
	var round Cubes
	expectCount := true
	for i := 3; i < len(toks); i++ {
		switch tok := toks[i]; tok {
		case ";":
			g.Rounds = append(g.Rounds, round)
			round = Cubes{}
			expectCount = true
		case ",":
			expectCount = true
		default:
			if !expectCount || i+1 >= len(toks) {
				return Game{}, fmt.Errorf("game %d: unexpected %q", id, tok)
			}
			n, err := strconv.Atoi(tok)
			if err != nil {
				return Game{}, fmt.Errorf("game %d: bad count %q: %w", id, tok, err)
			}
			i++
			switch colour := toks[i]; colour {
			case "red":
				round.Red += n
			case "green":
				round.Green += n
			case "blue":
				round.Blue += n
			default:
				return Game{}, fmt.Errorf("game %d: unknown colour %q", id, colour)
			}
			expectCount = false
		}
	}
	g.Rounds = append(g.Rounds, round)
	return g, nil
}

// ParseAll parses one game per line.
func ParseAll(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		games = append(games, g)
	}
	return games, nil
}
