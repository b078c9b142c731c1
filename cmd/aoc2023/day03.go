package main

import (
	"github.com/sledgeworks/aoc"
	"github.com/sledgeworks/aoc/internal/schematic"
)

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	g := aoc.MustGet(schematic.Parse(s.Lines()))
	return schematic.PartNumberSum(g)
}

// want=467835
func (s solver) D3p2() any {
	g := aoc.MustGet(schematic.Parse(s.Lines()))
	return schematic.GearRatioSum(g)
}
