package main

import (
	"fmt"

	"github.com/aoc2018/aoc"
)

const fuelGridSize = 300

func PowerLevel(x, y, serial int) int {
	rack := x + 10
	return (rack*y+serial)*rack/100%10 - 5
}

// FuelGrid holds a summed-area table of power levels: sum[y][x] is the
// total power of cells (1,1) through (x,y).
type FuelGrid struct {
	Serial int
	sum    [fuelGridSize + 1][fuelGridSize + 1]int
}

func NewFuelGrid(serial int) *FuelGrid {
	g := &FuelGrid{Serial: serial}
	for y := 1; y <= fuelGridSize; y++ {
		for x := 1; x <= fuelGridSize; x++ {
			g.sum[y][x] = PowerLevel(x, y, serial) + g.sum[y-1][x] + g.sum[y][x-1] - g.sum[y-1][x-1]
		}
	}
	return g
}

// SquarePower returns the total power of the size×size square whose
// top-left cell is (x,y).
func (g *FuelGrid) SquarePower(x, y, size int) int {
	x2, y2 := x+size-1, y+size-1
	return g.sum[y2][x2] - g.sum[y-1][x2] - g.sum[y2][x-1] + g.sum[y-1][x-1]
}

// Best returns the top-left corner and power of the strongest square of
// the given size.
func (g *FuelGrid) Best(size int) (x, y, power int) {
	first := true
	for cy := 1; cy+size-1 <= fuelGridSize; cy++ {
		for cx := 1; cx+size-1 <= fuelGridSize; cx++ {
			if p := g.SquarePower(cx, cy, size); first || p > power {
				x, y, power, first = cx, cy, p, false
			}
		}
	}
	return
}

// BestAny returns the strongest square of any size.
func (g *FuelGrid) BestAny() (x, y, size, power int) {
	for s := 1; s <= fuelGridSize; s++ {
		bx, by, p := g.Best(s)
		if s == 1 || p > power {
			x, y, size, power = bx, by, s, p
			aoc.Log.Debug().Int("size", s).Int("power", p).Msg("new best square")
		}
	}
	return
}

func fuelGrid() *FuelGrid {
	return NewFuelGrid(aoc.Int(string(aoc.Input())))
}

/*
want=33,45
18
*/
func day11() any {
	x, y, _ := fuelGrid().Best(3)
	return fmt.Sprintf("%d,%d", x, y)
}

// want=90,269,16
func day11b() any {
	x, y, size, _ := fuelGrid().BestAny()
	return fmt.Sprintf("%d,%d,%d", x, y, size)
}
