// Package calibration recovers the two-digit calibration value hidden in
// each line of a document.
package calibration

import (
	"fmt"
	"strings"

	"github.com/sledgeworks/aoc"
)

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at line[i], if any. Spelled digits
// only count when words is set.
func digitAt(line string, i int, words bool) (int, bool) {
	if aoc.IsDigit(line[i]) {
		return aoc.Digit(rune(line[i])), true
	}
	if !words {
		return 0, false
	}
	for n, w := range digitWords {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// Value returns ten times the first digit of line plus its last digit.
// Spelled digits may overlap ("eightwo" is 8 then 2).
func Value(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		if d, ok := digitAt(line, i, words); ok {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}

// Sum adds up the values of every line.
func Sum(lines []string, words bool) (int, error) {
	total := 0
	for i, line := range lines {
		v, err := Value(line, words)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += v
	}
	return total, nil
}
