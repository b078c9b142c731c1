// Package schematic finds the part numbers and gear ratios of an engine
// schematic by sliding a three-row window down the grid.
package schematic

import (
	"errors"
	"fmt"
	"sync"

	"tailscale.com/util/deephash"
	"tailscale.com/util/set"

	"github.com/sledgeworks/aoc"
)

const (
	blank = '.'
	gear  = '*'
)

// Parse validates that every row has the same width.
func Parse(lines []string) (aoc.Grid[byte], error) {
	if len(lines) == 0 {
		return nil, errors.New("empty schematic")
	}
	g := make(aoc.Grid[byte], len(lines))
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("row %d: width %d, want %d", y, len(line), len(lines[0]))
		}
		g[y] = []byte(line)
	}
	return g, nil
}

// Scanner looks at one row of the grid together with the rows above and
// below it. Rows outside the grid read as blank.
type Scanner struct {
	grid aoc.Grid[byte]
	pad  []byte

	row    int
	window aoc.Grid[byte] // previous, current, next
}

// NewScanner returns a scanner positioned on the first row.
func NewScanner(g aoc.Grid[byte]) *Scanner {
	s := &Scanner{
		grid: g,
		pad:  aoc.MakeGrid[byte](g.Size().X, 1).Fill(blank)[0],
		row:  -1,
	}
	s.Next()
	return s
}

func (s *Scanner) rowAt(y int) []byte {
	if y < 0 || y >= len(s.grid) {
		return s.pad
	}
	return s.grid[y]
}

// Row is the index of the current row.
func (s *Scanner) Row() int { return s.row }

// Next advances the window by one row. It reports false once the window has
// moved past the last row.
func (s *Scanner) Next() bool {
	if s.row >= len(s.grid) {
		return false
	}
	s.row++
	s.window = aoc.Grid[byte]{s.rowAt(s.row - 1), s.rowAt(s.row), s.rowAt(s.row + 1)}
	return s.row < len(s.grid)
}

func isSymbol(c byte) bool {
	return c != blank && !aoc.IsDigit(c)
}

// run is a maximal digit run, keyed by its first cell in the window.
type run struct {
	start aoc.Pt
	value int
}

// runAt returns the digit run covering p, if any.
func (s *Scanner) runAt(p aoc.Pt) (run, bool) {
	c, ok := s.window.AtOk(p)
	if !ok || !aoc.IsDigit(c) {
		return run{}, false
	}
	row := s.window[p.Y]
	start := p.X
	for start > 0 && aoc.IsDigit(row[start-1]) {
		start--
	}
	return readRun(row, aoc.Pt{X: start, Y: p.Y}), true
}

func readRun(row []byte, start aoc.Pt) run {
	r := run{start: start}
	for x := start.X; x < len(row) && aoc.IsDigit(row[x]); x++ {
		r.value = r.value*10 + int(row[x]-'0')
	}
	return r
}

// runs returns the digit runs of the current row.
func (s *Scanner) runs() []run {
	row := s.window[1]
	var out []run
	for x := 0; x < len(row); {
		if !aoc.IsDigit(row[x]) {
			x++
			continue
		}
		r := readRun(row, aoc.Pt{X: x, Y: 1})
		out = append(out, r)
		for x < len(row) && aoc.IsDigit(row[x]) {
			x++
		}
	}
	return out
}

func (s *Scanner) touchesSymbol(r run) bool {
	found := false
	for x := r.start.X; x < len(s.window[1]) && aoc.IsDigit(s.window[1][x]); x++ {
		aoc.Pt{X: x, Y: 1}.ForNeighbors(func(n aoc.Pt) bool {
			if c, ok := s.window.AtOk(n); ok && isSymbol(c) {
				found = true
			}
			return !found
		})
		if found {
			break
		}
	}
	return found
}

// SumAdjacentNumbers sums the digit runs of the current row that have a
// symbol among their neighbours, diagonals included.
func (s *Scanner) SumAdjacentNumbers() int {
	sum := 0
	for _, r := range s.runs() {
		if s.touchesSymbol(r) {
			sum += r.value
		}
	}
	return sum
}

// SumGearProducts sums, over the '*' cells of the current row touched by
// exactly two digit runs, the product of those runs.
func (s *Scanner) SumGearProducts() int {
	sum := 0
	for x, c := range s.window[1] {
		if c != gear {
			continue
		}
		seen := set.Set[aoc.Pt]{}
		var values []int
		aoc.Pt{X: x, Y: 1}.ForNeighbors(func(n aoc.Pt) bool {
			r, ok := s.runAt(n)
			if ok && !seen.Contains(r.start) {
				seen.Add(r.start)
				values = append(values, r.value)
			}
			return true
		})
		if len(values) == 2 {
			sum += aoc.Product(values...)
		}
	}
	return sum
}

// Summary holds both answers for one schematic.
type Summary struct {
	PartNumbers int
	GearRatios  int
}

var (
	mu        sync.Mutex
	summaries = map[deephash.Sum]Summary{}
)

// Summarize scans g once for both sums. Results are cached by the content
// of g, so asking again for an unchanged grid does not rescan it.
func Summarize(g aoc.Grid[byte]) Summary {
	mu.Lock()
	defer mu.Unlock()
	h := g.Hash()
	if sum, ok := summaries[h]; ok {
		return sum
	}
	var sum Summary
	if len(g) > 0 {
		s := NewScanner(g)
		for {
			sum.PartNumbers += s.SumAdjacentNumbers()
			sum.GearRatios += s.SumGearProducts()
			if !s.Next() {
				break
			}
		}
	}
	summaries[h] = sum
	return sum
}

// PartNumberSum is the sum of every number adjacent to a symbol.
func PartNumberSum(g aoc.Grid[byte]) int {
	return Summarize(g).PartNumbers
}

// GearRatioSum is the sum of every gear ratio.
func GearRatioSum(g aoc.Grid[byte]) int {
	return Summarize(g).GearRatios
}
