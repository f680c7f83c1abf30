package main

import (
	"strings"
	"testing"

	"github.com/aoc2018/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStar(t *testing.T) {
	s, err := ParseStar("position=<-6, 10> velocity=< 2, -2>")
	require.NoError(t, err)
	assert.Equal(t, Star{Pos: aoc.Pt{X: -6, Y: 10}, Vel: aoc.Pt{X: 2, Y: -2}}, s)

	s, err = ParseStar("position=< 52484, -20780> velocity=<-5,  2>")
	require.NoError(t, err)
	assert.Equal(t, aoc.Pt{X: 52484, Y: -20780}, s.Pos)

	_, err = ParseStar("position=<1,2>")
	assert.ErrorIs(t, err, errBadStar)
}

func TestPositionAt(t *testing.T) {
	s := Star{Pos: aoc.Pt{X: 10, Y: 10}, Vel: aoc.Pt{X: 1, Y: 1}}
	assert.Equal(t, aoc.Pt{X: 15, Y: 15}, s.PositionAt(5))
	assert.Equal(t, s.Pos, s.PositionAt(0))
}

func TestSky(t *testing.T) {
	stars := []Star{
		{Pos: aoc.Pt{X: 0, Y: 0}},
		{Pos: aoc.Pt{X: 0, Y: 6}, Vel: aoc.Pt{X: 0, Y: -1}},
		{Pos: aoc.Pt{X: -3, Y: 0}, Vel: aoc.Pt{X: 2, Y: 1}},
	}
	sky := NewSky(stars, 3)
	assert.Equal(t, 3, sky.Time)
	minX, minY, maxX, maxY := sky.Bounds()
	assert.Equal(t, [4]int{0, 0, 3, 3}, [4]int{minX, minY, maxX, maxY})
	assert.Equal(t, "#...\n....\n....\n#..#", sky.String())
}

func TestAlignTime(t *testing.T) {
	stars, err := starsFrom(t, day10bSample)
	require.NoError(t, err)

	at, err := AlignTime(stars)
	require.NoError(t, err)
	assert.Equal(t, 3, at)

	want := strings.Join([]string{
		"#...#..###",
		"#...#...#.",
		"#...#...#.",
		"#####...#.",
		"#...#...#.",
		"#...#...#.",
		"#...#...#.",
		"#...#..###",
	}, "\n")
	assert.Equal(t, want, NewSky(stars, at).String())

	_, err = AlignTime(nil)
	assert.ErrorIs(t, err, errNoAlign)
}

func starsFrom(t *testing.T, s string) ([]Star, error) {
	t.Helper()
	var stars []Star
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		st, err := ParseStar(line)
		if err != nil {
			return nil, err
		}
		stars = append(stars, st)
	}
	return stars, nil
}

const day10bSample = `
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
`
