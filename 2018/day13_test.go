package main

import (
	"strings"
	"testing"

	"github.com/aoc2018/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crashTrack = "/->-\\        \n" +
	"|   |  /----\\\n" +
	"| /-+--+-\\  |\n" +
	"| | |  | v  |\n" +
	"\\-+-/  \\-+--/\n" +
	"  \\------/   \n"

const survivorTrack = "/>-<\\  \n" +
	"|   |  \n" +
	"| /<+-\\\n" +
	"| | | v\n" +
	"\\>+</ |\n" +
	"  |   ^\n" +
	"  \\<->/\n"

func TestNewTrack(t *testing.T) {
	tr, err := NewTrack(crashTrack)
	require.NoError(t, err)

	assert.Equal(t, '/', tr.At(aoc.Pt{X: 0, Y: 0}))
	assert.Equal(t, '-', tr.At(aoc.Pt{X: 1, Y: 0}))
	assert.Equal(t, '-', tr.At(aoc.Pt{X: 2, Y: 0}), "rail under a cart")
	assert.Equal(t, '\\', tr.At(aoc.Pt{X: 4, Y: 0}))
	assert.Equal(t, '+', tr.At(aoc.Pt{X: 4, Y: 2}))
	assert.Equal(t, '|', tr.At(aoc.Pt{X: 4, Y: 3}))
	assert.Equal(t, '|', tr.At(aoc.Pt{X: 9, Y: 3}), "rail under a cart")

	require.Len(t, tr.Carts, 2)
	assert.Equal(t, aoc.Pt{X: 2, Y: 0}, tr.Carts[0].Pos)
	assert.Equal(t, aoc.Pt{X: 9, Y: 3}, tr.Carts[1].Pos)
}

func TestTrackString(t *testing.T) {
	tr, err := NewTrack(crashTrack)
	require.NoError(t, err)
	var want strings.Builder
	for _, line := range strings.SplitAfter(crashTrack, "\n") {
		if line == "" {
			continue
		}
		want.WriteString(strings.TrimRight(line, " \n") + "\n")
	}
	assert.Equal(t, want.String(), tr.String())

	_, err = tr.Tick()
	require.NoError(t, err)
	assert.Equal(t, "/-->\\", strings.SplitN(tr.String(), "\n", 2)[0])
}

func TestFirstCrash(t *testing.T) {
	tr, err := NewTrack(crashTrack)
	require.NoError(t, err)
	p, err := tr.FirstCrash()
	require.NoError(t, err)
	assert.Equal(t, "7,3", p.String())
}

func TestLastCart(t *testing.T) {
	tr, err := NewTrack(survivorTrack)
	require.NoError(t, err)
	require.Len(t, tr.Carts, 9)
	p, err := tr.LastCart()
	require.NoError(t, err)
	assert.Equal(t, "6,4", p.String())
}

func TestHeadOnCrash(t *testing.T) {
	tr, err := NewTrack("->-<-\n")
	require.NoError(t, err)
	crashes, err := tr.Tick()
	require.NoError(t, err)
	assert.Equal(t, []aoc.Pt{{X: 2, Y: 0}}, crashes)
	assert.Empty(t, tr.Carts)

	_, err = tr.LastCart()
	assert.ErrorIs(t, err, errNoSurvivor)
}

func TestTrackErrors(t *testing.T) {
	_, err := NewTrack("/--\\\n\\--/\n")
	assert.Error(t, err, "no carts")

	tr, err := NewTrack("->\n")
	require.NoError(t, err)
	_, err = tr.Tick()
	assert.ErrorIs(t, err, errOffTrack)
}
