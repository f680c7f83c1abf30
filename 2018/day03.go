package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/aoc2018/aoc"
)

const fabricSize = 1000

var (
	errBadClaim = errors.New("malformed claim")
	errNoIntact = errors.New("every claim overlaps another")
	claimRx     = regexp.MustCompile(`^#(\d+) @ (-?\d+),(-?\d+): (\d+)x(\d+)$`)
)

type Rect struct {
	Left, Top, Width, Height int
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }
func (r Rect) Area() int   { return r.Width * r.Height }

// Overlaps reports whether r and o share at least one square inch.
// Rects that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

type Claim struct {
	ID   int
	Rect Rect
}

func ParseClaim(s string) (Claim, error) {
	m := claimRx.FindStringSubmatch(s)
	if m == nil {
		return Claim{}, fmt.Errorf("%w: %q", errBadClaim, s)
	}
	var n [5]int
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Claim{}, fmt.Errorf("%w: %q: %w", errBadClaim, s, err)
		}
		n[i] = v
	}
	return Claim{ID: n[0], Rect: Rect{Left: n[1], Top: n[2], Width: n[3], Height: n[4]}}, nil
}

func parseClaims(lines []string) ([]Claim, error) {
	claims := make([]Claim, 0, len(lines))
	for _, line := range lines {
		c, err := ParseClaim(line)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, nil
}

type inch uint8

const (
	empty inch = iota
	single
	multiple
)

// Fabric counts how many claims cover each square inch.
type Fabric struct {
	width, height int
	inches        []inch
}

func NewFabric(width, height int) *Fabric {
	return &Fabric{width: width, height: height, inches: make([]inch, width*height)}
}

// Fill marks every inch of c that lies on the fabric.
func (f *Fabric) Fill(c Claim) {
	x1, y1 := max(c.Rect.Left, 0), max(c.Rect.Top, 0)
	x2, y2 := min(c.Rect.Right(), f.width), min(c.Rect.Bottom(), f.height)
	aoc.Log.Debug().Int("claim", c.ID).Msgf("filling %d,%d-%d,%d", x1, y1, x2, y2)
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			i := y*f.width + x
			if f.inches[i] < multiple {
				f.inches[i]++
			}
		}
	}
}

func (f *Fabric) count(want inch) int {
	n := 0
	for _, v := range f.inches {
		if v == want {
			n++
		}
	}
	return n
}

// CountMultiples returns the number of inches within two or more claims.
func (f *Fabric) CountMultiples() int { return f.count(multiple) }

// CountSingles returns the number of inches within exactly one claim.
func (f *Fabric) CountSingles() int { return f.count(single) }

// Intact returns the ID of the claim that overlaps no other claim.
func Intact(claims []Claim) (int, error) {
outer:
	for i, c := range claims {
		for j, o := range claims {
			if i != j && c.Rect.Overlaps(o.Rect) {
				continue outer
			}
		}
		return c.ID, nil
	}
	return 0, errNoIntact
}

/*
want=4
#1 @ 1,3: 4x4
#2 @ 3,1: 4x4
#3 @ 5,5: 2x2
*/
func day3() any {
	claims := aoc.MustGet(parseClaims(aoc.Lines()))
	f := NewFabric(fabricSize, fabricSize)
	for _, c := range claims {
		f.Fill(c)
	}
	return f.CountMultiples()
}

// want=3
func day3b() any {
	return aoc.MustGet(Intact(aoc.MustGet(parseClaims(aoc.Lines()))))
}
