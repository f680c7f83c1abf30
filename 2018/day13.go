package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aoc2018/aoc"
)

// maxTicks bounds the simulation; real inputs resolve in a few thousand.
const maxTicks = 1_000_000

var (
	errNoCrash    = errors.New("carts never crash")
	errNoSurvivor = errors.New("no cart survives")
	errOffTrack   = errors.New("cart left the track")
)

// cartDirs maps cart glyphs to indices into aoc.NorthClockwise.
const cartDirs = "^>v<"

type Cart struct {
	Pos   aoc.Pt
	Dir   int // index into aoc.NorthClockwise
	turns int // intersections passed
	dead  bool
}

func (c *Cart) turn(by int) {
	c.Dir = (c.Dir + by + len(aoc.NorthClockwise)) % len(aoc.NorthClockwise)
}

func (c *Cart) vertical() bool { return c.Dir%2 == 0 }

// Track is the mine's rail layout and the carts on it.
type Track struct {
	grid  aoc.Grid
	Carts []*Cart
}

// NewTrack parses a track diagram. The rail under each cart is
// inferred from the cart's heading.
func NewTrack(s string) (*Track, error) {
	t := &Track{grid: aoc.GridFromString(s)}
	for p, r := range t.grid {
		dir := strings.IndexRune(cartDirs, r)
		if dir < 0 {
			continue
		}
		t.Carts = append(t.Carts, &Cart{Pos: p, Dir: dir})
		if dir%2 == 0 {
			t.grid[p] = '|'
		} else {
			t.grid[p] = '-'
		}
	}
	if len(t.Carts) == 0 {
		return nil, fmt.Errorf("track has no carts")
	}
	t.sortCarts()
	return t, nil
}

func (t *Track) At(p aoc.Pt) rune { return t.grid[p] }

func (t *Track) sortCarts() {
	sort.Slice(t.Carts, func(i, j int) bool {
		return aoc.ReadingLess(t.Carts[i].Pos, t.Carts[j].Pos)
	})
}

func (t *Track) move(c *Cart) error {
	c.Pos = aoc.NorthClockwise[c.Dir](c.Pos)
	switch t.At(c.Pos) {
	case '|', '-':
	case '/':
		if c.vertical() {
			c.turn(1)
		} else {
			c.turn(-1)
		}
	case '\\':
		if c.vertical() {
			c.turn(-1)
		} else {
			c.turn(1)
		}
	case '+':
		c.turn(c.turns%3 - 1) // left, straight, right
		c.turns++
	default:
		return fmt.Errorf("%w at %v", errOffTrack, c.Pos)
	}
	return nil
}

// Tick moves every cart once in reading order. Carts that collide are
// removed on the spot; the crash sites are returned in order.
func (t *Track) Tick() ([]aoc.Pt, error) {
	var crashes []aoc.Pt
	for _, c := range t.Carts {
		if c.dead {
			continue
		}
		if err := t.move(c); err != nil {
			return nil, err
		}
		for _, o := range t.Carts {
			if o != c && !o.dead && o.Pos == c.Pos {
				o.dead, c.dead = true, true
				crashes = append(crashes, c.Pos)
				break
			}
		}
	}
	alive := t.Carts[:0]
	for _, c := range t.Carts {
		if !c.dead {
			alive = append(alive, c)
		}
	}
	t.Carts = alive
	t.sortCarts()
	return crashes, nil
}

// FirstCrash runs until two carts collide and returns where.
func (t *Track) FirstCrash() (aoc.Pt, error) {
	for i := 0; i < maxTicks; i++ {
		crashes, err := t.Tick()
		if err != nil {
			return aoc.Pt{}, err
		}
		if len(crashes) > 0 {
			return crashes[0], nil
		}
	}
	return aoc.Pt{}, errNoCrash
}

// LastCart runs until one cart remains and returns its position at the
// end of that tick.
func (t *Track) LastCart() (aoc.Pt, error) {
	for i := 0; i < maxTicks && len(t.Carts) > 1; i++ {
		if _, err := t.Tick(); err != nil {
			return aoc.Pt{}, err
		}
	}
	switch len(t.Carts) {
	case 0:
		return aoc.Pt{}, errNoSurvivor
	case 1:
		return t.Carts[0].Pos, nil
	}
	return aoc.Pt{}, errNoCrash
}

// String draws the track with carts on it.
func (t *Track) String() string {
	minX, minY, maxX, maxY := t.grid.Bounds()
	carts := map[aoc.Pt]byte{}
	for _, c := range t.Carts {
		carts[c.Pos] = cartDirs[c.Dir]
	}
	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		var line strings.Builder
		for x := minX; x <= maxX; x++ {
			p := aoc.Pt{X: x, Y: y}
			if c, ok := carts[p]; ok {
				line.WriteByte(c)
			} else if r, ok := t.grid[p]; ok {
				line.WriteRune(r)
			} else {
				line.WriteByte(' ')
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func track() *Track {
	return aoc.MustGet(NewTrack(string(aoc.Input())))
}

// day13 finds the first crash. Its example track is in the tests: the
// diagram's leading spaces don't survive as a doc comment sample.
func day13() any {
	return aoc.MustGet(track().FirstCrash()).String()
}

func day13b() any {
	return aoc.MustGet(track().LastCart()).String()
}
