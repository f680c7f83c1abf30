package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/aoc2018/aoc"
)

// maxAlignTime bounds the search for the moment the stars converge.
const maxAlignTime = 1_000_000

var (
	errBadStar = errors.New("malformed star")
	errNoAlign = errors.New("stars never converge")
	starRx     = regexp.MustCompile(`position=<\s*(-?\d+),\s*(-?\d+)>\s*velocity=<\s*(-?\d+),\s*(-?\d+)>`)
)

type Star struct {
	Pos, Vel aoc.Pt
}

func ParseStar(line string) (Star, error) {
	m := starRx.FindStringSubmatch(line)
	if m == nil {
		return Star{}, fmt.Errorf("%w: %q", errBadStar, line)
	}
	var n [4]int
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Star{}, fmt.Errorf("%w: %q: %w", errBadStar, line, err)
		}
		n[i] = v
	}
	return Star{Pos: aoc.Pt{X: n[0], Y: n[1]}, Vel: aoc.Pt{X: n[2], Y: n[3]}}, nil
}

func (s Star) PositionAt(t int) aoc.Pt {
	return aoc.Pt{X: s.Pos.X + s.Vel.X*t, Y: s.Pos.Y + s.Vel.Y*t}
}

// Sky is the set of lit positions at one moment.
type Sky struct {
	Time int
	grid aoc.Grid
}

func NewSky(stars []Star, t int) *Sky {
	g := aoc.Grid{}
	for _, s := range stars {
		g[s.PositionAt(t)] = '#'
	}
	return &Sky{Time: t, grid: g}
}

func (s *Sky) Bounds() (minX, minY, maxX, maxY int) { return s.grid.Bounds() }

// String renders the sky cropped to its bounds.
func (s *Sky) String() string { return s.grid.String() }

// area returns the bounding box area of the stars at time t.
func area(stars []Star, t int) int {
	p := stars[0].PositionAt(t)
	minX, maxX, minY, maxY := p.X, p.X, p.Y, p.Y
	for _, s := range stars[1:] {
		p := s.PositionAt(t)
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return (maxX - minX + 1) * (maxY - minY + 1)
}

// AlignTime returns the first time the stars' bounding box stops
// shrinking, which is when they spell the message.
func AlignTime(stars []Star) (int, error) {
	if len(stars) == 0 {
		return 0, errNoAlign
	}
	cur := area(stars, 0)
	for t := 0; t < maxAlignTime; t++ {
		next := area(stars, t+1)
		if next >= cur {
			aoc.Log.Debug().Int("t", t).Int("area", cur).Msg("stars aligned")
			return t, nil
		}
		cur = next
	}
	return 0, errNoAlign
}

func readStars() []Star {
	var stars []Star
	for _, line := range aoc.Lines() {
		stars = append(stars, aoc.MustGet(ParseStar(line)))
	}
	return stars
}

// day10 returns the rendered message, which is read by eye.
func day10() any {
	stars := readStars()
	return NewSky(stars, aoc.MustGet(AlignTime(stars))).String()
}

/*
want=3
position=< 9,  1> velocity=< 0,  2>
position=< 7,  0> velocity=<-1,  0>
position=< 3, -2> velocity=<-1,  1>
position=< 6, 10> velocity=<-2, -1>
position=< 2, -4> velocity=< 2,  2>
position=<-6, 10> velocity=< 2, -2>
position=< 1,  8> velocity=< 1, -1>
position=< 1,  7> velocity=< 1,  0>
position=<-3, 11> velocity=< 1, -2>
position=< 7,  6> velocity=<-1, -1>
position=<-2,  3> velocity=< 1,  0>
position=<-4,  3> velocity=< 2,  0>
position=<10, -3> velocity=<-1,  1>
position=< 5, 11> velocity=< 1, -2>
position=< 4,  7> velocity=< 0, -1>
position=< 8, -2> velocity=< 0,  1>
position=<15,  0> velocity=<-2,  0>
position=< 1,  6> velocity=< 1,  0>
position=< 8,  9> velocity=< 0, -1>
position=< 3,  3> velocity=<-1,  1>
position=< 0,  5> velocity=< 0, -1>
position=<-2,  2> velocity=< 2,  0>
position=< 5, -2> velocity=< 1,  2>
position=< 1,  4> velocity=< 2,  1>
position=<-2,  7> velocity=< 2, -2>
position=< 3,  6> velocity=<-1, -1>
position=< 5,  0> velocity=< 1,  0>
position=<-6,  0> velocity=< 2,  0>
position=< 5,  9> velocity=< 1, -2>
position=<14,  7> velocity=<-2,  0>
position=<-3,  6> velocity=< 2, -1>
*/
func day10b() any {
	return aoc.MustGet(AlignTime(readStars()))
}
