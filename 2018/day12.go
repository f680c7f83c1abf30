package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/aoc2018/aoc"
)

const (
	plant   = '#'
	noPlant = '.'
)

var (
	errBadGarden      = errors.New("malformed garden")
	errInfiniteGrowth = errors.New("rule ..... => # grows plants without bound")
)

// Garden is a row of pots. row holds pots first..first+len(row)-1 and
// is trimmed so it starts and ends with a plant.
type Garden struct {
	Gen   int
	first int
	row   []byte
	rules [32]bool // 5-pot pattern, leftmost pot as the high bit -> plant
}

func ParseGarden(lines []string) (*Garden, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", errBadGarden)
	}
	state, ok := strings.CutPrefix(strings.TrimSpace(lines[0]), "initial state: ")
	if !ok {
		return nil, fmt.Errorf("%w: no initial state in %q", errBadGarden, lines[0])
	}
	g := &Garden{row: []byte(state)}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pat, res, ok := strings.Cut(line, " => ")
		if !ok || len(pat) != 5 || len(res) != 1 {
			return nil, fmt.Errorf("%w: bad rule %q", errBadGarden, line)
		}
		if res[0] != plant {
			continue
		}
		if pat == "....." {
			return nil, errInfiniteGrowth
		}
		g.rules[patternKey([]byte(pat))] = true
	}
	g.trim()
	return g, nil
}

func patternKey(pat []byte) int {
	k := 0
	for _, c := range pat {
		k <<= 1
		if c == plant {
			k |= 1
		}
	}
	return k
}

func (g *Garden) trim() {
	lo := bytes.IndexByte(g.row, plant)
	if lo < 0 {
		g.first, g.row = 0, nil
		return
	}
	hi := bytes.LastIndexByte(g.row, plant)
	g.first += lo
	g.row = g.row[lo : hi+1]
}

// Pot returns '#' or '.' for the pot at index i.
func (g *Garden) Pot(i int) byte {
	if j := i - g.first; j >= 0 && j < len(g.row) {
		return g.row[j]
	}
	return noPlant
}

// Pattern returns the five pots centred on i.
func (g *Garden) Pattern(i int) string {
	return g.Line(i-2, i+2)
}

// Line renders pots from through to, inclusive.
func (g *Garden) Line(from, to int) string {
	var sb strings.Builder
	for i := from; i <= to; i++ {
		sb.WriteByte(g.Pot(i))
	}
	return sb.String()
}

// Sum adds up the indices of pots holding plants.
func (g *Garden) Sum() int {
	sum := 0
	for j, c := range g.row {
		if c == plant {
			sum += g.first + j
		}
	}
	return sum
}

func (g *Garden) count() int {
	return bytes.Count(g.row, []byte{plant})
}

// Step advances one generation. Only pots within two of a plant can
// change.
func (g *Garden) Step() {
	g.Gen++
	if len(g.row) == 0 {
		return
	}
	from := g.first - 2
	next := make([]byte, len(g.row)+4)
	for j := range next {
		i := from + j
		next[j] = noPlant
		if g.rules[patternKey([]byte(g.Pattern(i)))] {
			next[j] = plant
		}
	}
	g.first, g.row = from, next
	g.trim()
}

// SumAfter returns the plant index sum at generation n. Once the row
// keeps the same shape and only drifts, the rest is extrapolated.
func (g *Garden) SumAfter(n int) int {
	for g.Gen < n {
		prevFirst, prevRow := g.first, g.row
		g.Step()
		if bytes.Equal(prevRow, g.row) {
			shift := g.first - prevFirst
			left := n - g.Gen
			aoc.Log.Debug().Int("gen", g.Gen).Int("shift", shift).Msg("growth stabilized")
			return g.Sum() + left*shift*g.count()
		}
	}
	return g.Sum()
}

func garden() *Garden {
	var lines []string
	aoc.ForLines(func(line string) { lines = append(lines, line) })
	return aoc.MustGet(ParseGarden(lines))
}

/*
want=325
initial state: #..#.#..##......###...###

...## => #
..#.. => #
.#... => #
.#.#. => #
.#.## => #
.##.. => #
.#### => #
#.#.# => #
#.### => #
##.#. => #
##.## => #
###.. => #
###.# => #
####. => #
*/
func day12() any {
	return garden().SumAfter(20)
}

// want=999999999374
func day12b() any {
	return garden().SumAfter(50_000_000_000)
}
