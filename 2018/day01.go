package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc2018/aoc"
)

// ErrNoRepeat is returned when cycling through the drifts can never
// revisit a frequency.
var ErrNoRepeat = errors.New("no frequency is ever repeated")

func parseDrifts(lines []string) ([]int, error) {
	drifts := make([]int, 0, len(lines))
	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		drifts = append(drifts, v)
	}
	return drifts, nil
}

func drifts() []int {
	return aoc.MustGet(parseDrifts(aoc.Lines()))
}

// FirstRepeat returns the first running frequency seen twice while
// cycling through drifts, starting at 0.
func FirstRepeat(drifts []int) (int, error) {
	if len(drifts) == 0 {
		return 0, ErrNoRepeat
	}
	var sum, lo, hi int
	for _, d := range drifts {
		sum += d
		lo = min(lo, sum)
		hi = max(hi, sum)
	}
	// A frequency p+k*sum can only collide with another partial sum q
	// while |k*sum| <= hi-lo, so the repeat, if any, comes early.
	passes := 1
	if sum != 0 {
		passes = (hi-lo)/aoc.AbsInt(sum, 0) + 2
	}
	seen := map[int]bool{}
	freq := 0
	for i := 0; i < passes; i++ {
		for _, d := range drifts {
			seen[freq] = true
			freq += d
			if seen[freq] {
				return freq, nil
			}
		}
	}
	return 0, ErrNoRepeat
}

/*
want=3
+1
-2
+3
+1
*/
func day1() any {
	sum := 0
	for _, d := range drifts() {
		sum += d
	}
	return sum
}

// want=2
func day1b() any {
	return aoc.MustGet(FirstRepeat(drifts()))
}
