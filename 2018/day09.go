package main

import (
	"container/ring"
	"fmt"

	"github.com/aoc2018/aoc"
)

// Game is the elves' marble game. The circle is a ring whose current
// element is the current marble.
type Game struct {
	scores  []int
	current *ring.Ring
}

func NewGame(players int) *Game {
	r := ring.New(1)
	r.Value = 0
	return &Game{scores: make([]int, players), current: r}
}

// Current returns the value of the current marble.
func (g *Game) Current() int { return g.current.Value.(int) }

// Play places marble for the given 0-based player.
func (g *Game) Play(player, marble int) {
	if marble%23 != 0 {
		m := ring.New(1)
		m.Value = marble
		g.current.Next().Link(m)
		g.current = m
		return
	}
	before := g.current.Move(-8)
	removed := before.Unlink(1)
	g.scores[player] += marble + removed.Value.(int)
	g.current = before.Next()
}

// Winner returns the 1-based winning player and their score.
func (g *Game) Winner() (player, score int) {
	for i, s := range g.scores {
		if s > score || player == 0 {
			player, score = i+1, s
		}
	}
	return
}

// PlayGame plays marbles 1 through last and returns the winner.
func PlayGame(players, last int) (player, score int) {
	g := NewGame(players)
	for m := 1; m <= last; m++ {
		g.Play((m-1)%players, m)
	}
	return g.Winner()
}

func parseGame(s string) (players, last int, err error) {
	nums := aoc.Ints(s)
	if len(nums) != 2 || nums[0] < 1 {
		return 0, 0, fmt.Errorf("marble game %q: want players and last marble", s)
	}
	return nums[0], nums[1], nil
}

/*
want=32
9 players; last marble is worth 25 points
*/
func day9() any {
	players, last := aoc.MustGet2(parseGame(string(aoc.Input())))
	_, score := PlayGame(players, last)
	return score
}

// want=22563
func day9b() any {
	players, last := aoc.MustGet2(parseGame(string(aoc.Input())))
	_, score := PlayGame(players, last*100)
	return score
}
