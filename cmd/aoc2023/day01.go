package main

import (
	"github.com/sledgeworks/aoc"
	"github.com/sledgeworks/aoc/internal/calibration"
)

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return aoc.MustGet(calibration.Sum(s.Lines(), false))
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return aoc.MustGet(calibration.Sum(s.Lines(), true))
}
