package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc2018/aoc"
)

var errNoCoords = errors.New("no coordinates")

func ParsePoint(s string) (aoc.Pt, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return aoc.Pt{}, fmt.Errorf("point %q: missing comma", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return aoc.Pt{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return aoc.Pt{}, fmt.Errorf("point %q: %w", s, err)
	}
	return aoc.Pt{X: x, Y: y}, nil
}

func ParsePoints(lines []string) ([]aoc.Pt, error) {
	pts := make([]aoc.Pt, 0, len(lines))
	for _, line := range lines {
		p, err := ParsePoint(line)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// Coord is one of the named coordinates and the area nearest to it.
type Coord struct {
	Point    aoc.Pt
	Area     int
	Infinite bool // owns a point on the edge of the bounds
}

// Map assigns every point within the coordinates' bounds to its
// nearest coordinate.
type Map struct {
	coords                   []*Coord
	byPoint                  map[aoc.Pt]*Coord
	left, top, right, bottom int
}

func NewMap(points []aoc.Pt) (*Map, error) {
	if len(points) == 0 {
		return nil, errNoCoords
	}
	m := &Map{
		byPoint: map[aoc.Pt]*Coord{},
		left:    points[0].X,
		right:   points[0].X,
		top:     points[0].Y,
		bottom:  points[0].Y,
	}
	for _, p := range points {
		if _, dup := m.byPoint[p]; dup {
			continue
		}
		c := &Coord{Point: p}
		m.coords = append(m.coords, c)
		m.byPoint[p] = c
		m.left = min(m.left, p.X)
		m.right = max(m.right, p.X)
		m.top = min(m.top, p.Y)
		m.bottom = max(m.bottom, p.Y)
	}
	m.calculate()
	return m, nil
}

func (m *Map) CoordAt(p aoc.Pt) *Coord { return m.byPoint[p] }

func (m *Map) Bounds() (left, top, right, bottom int) {
	return m.left, m.top, m.right, m.bottom
}

func (m *Map) calculate() {
	for y := m.top; y <= m.bottom; y++ {
		for x := m.left; x <= m.right; x++ {
			p := aoc.Pt{X: x, Y: y}
			c := m.nearest(p)
			if c == nil {
				continue
			}
			c.Area++
			if m.isEdge(p) {
				c.Infinite = true
			}
		}
	}
}

// nearest returns the unique closest coordinate to p, or nil on a tie.
func (m *Map) nearest(p aoc.Pt) *Coord {
	var best *Coord
	bestDist, tied := 0, false
	for _, c := range m.coords {
		d := p.MDist(c.Point)
		switch {
		case best == nil || d < bestDist:
			best, bestDist, tied = c, d, false
		case d == bestDist:
			tied = true
		}
	}
	if tied {
		return nil
	}
	return best
}

func (m *Map) isEdge(p aoc.Pt) bool {
	return p.X == m.left || p.X == m.right || p.Y == m.top || p.Y == m.bottom
}

// LargestFiniteArea returns the size of the biggest area that does not
// extend past the bounds.
func (m *Map) LargestFiniteArea() int {
	best := 0
	for _, c := range m.coords {
		if !c.Infinite {
			best = max(best, c.Area)
		}
	}
	return best
}

// TotalDistance is the sum of distances from p to every coordinate.
func (m *Map) TotalDistance(p aoc.Pt) int {
	sum := 0
	for _, c := range m.coords {
		sum += p.MDist(c.Point)
	}
	return sum
}

// RegionSize counts points whose total distance is below threshold.
// Points beyond the bounds by more than threshold/len(coords) can't
// qualify, so the scan widens the bounds by that much.
func (m *Map) RegionSize(threshold int) int {
	pad := threshold / len(m.coords)
	n := 0
	for y := m.top - pad; y <= m.bottom+pad; y++ {
		for x := m.left - pad; x <= m.right+pad; x++ {
			if m.TotalDistance(aoc.Pt{X: x, Y: y}) < threshold {
				n++
			}
		}
	}
	return n
}

func coordMap() *Map {
	return aoc.MustGet(NewMap(aoc.MustGet(ParsePoints(aoc.Lines()))))
}

/*
want=17
1, 1
1, 6
8, 3
3, 4
5, 5
8, 9
*/
func day6() any {
	return coordMap().LargestFiniteArea()
}

// want=16
func day6b() any {
	threshold := 10000
	if aoc.Sample() {
		threshold = 32
	}
	return coordMap().RegionSize(threshold)
}
