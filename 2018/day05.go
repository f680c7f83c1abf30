package main

import (
	"bytes"
	"strings"

	"github.com/aoc2018/aoc"
)

// reacts reports whether two units are the same type with opposite polarity.
func reacts(a, b byte) bool {
	return a != b && a|0x20 == b|0x20
}

// Reduce fully reacts the polymer, cancelling adjacent opposite units.
func Reduce(p string) string {
	stack := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		c := p[i]
		if n := len(stack); n > 0 && reacts(stack[n-1], c) {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, c)
	}
	return string(stack)
}

// Units returns the distinct unit types in p, lowercased and sorted.
func Units(p string) []byte {
	var seen [256]bool
	for i := 0; i < len(p); i++ {
		seen[p[i]|0x20] = true
	}
	var units []byte
	for c := byte('a'); c <= 'z'; c++ {
		if seen[c] {
			units = append(units, c)
		}
	}
	return units
}

// ReduceWithout removes both polarities of unit from p before reducing.
func ReduceWithout(p string, unit byte) string {
	stripped := strings.Map(func(r rune) rune {
		if r|0x20 == rune(unit) {
			return -1
		}
		return r
	}, p)
	return Reduce(stripped)
}

type UnitResult struct {
	Unit byte
	Len  int
}

// RemoveAndReduce reports the reduced length with each unit type removed.
func RemoveAndReduce(p string) []UnitResult {
	var res []UnitResult
	for _, u := range Units(p) {
		res = append(res, UnitResult{Unit: u, Len: len(ReduceWithout(p, u))})
	}
	return res
}

func polymer() string {
	return string(bytes.TrimSpace(aoc.Input()))
}

/*
want=10
dabAcCaCBAcCcaDA
*/
func day5() any {
	return len(Reduce(polymer()))
}

// want=4
func day5b() any {
	p := polymer()
	best := len(p)
	for _, r := range RemoveAndReduce(p) {
		best = min(best, r.Len)
	}
	return best
}
