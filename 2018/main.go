package main

import (
	"embed"

	"github.com/aoc2018/aoc"
)

//go:embed *.go
var src embed.FS

func main() {
	register()
	aoc.Main()
}

func register() {
	aoc.Year = 2018
	aoc.ExtractSamples(src)
	aoc.Add(
		day1, day1b,
		day2, day2b,
		day3, day3b,
		day4, day4b,
		day5, day5b,
		day6, day6b,
		day7, day7b,
		day8, day8b,
		day9, day9b,
		day10, day10b,
		day11, day11b,
		day12, day12b,
		day13, day13b,
	)
}
