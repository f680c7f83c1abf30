package main

import (
	"errors"

	"github.com/aoc2018/aoc"
)

var errNoNearMatch = errors.New("no two box IDs differ by exactly one letter")

// letterRepeats reports whether any letter in id occurs exactly twice,
// and whether any occurs exactly three times.
func letterRepeats(id string) (two, three bool) {
	counts := map[rune]int{}
	for _, r := range id {
		counts[r]++
	}
	for _, n := range counts {
		switch n {
		case 2:
			two = true
		case 3:
			three = true
		}
	}
	return
}

func Checksum(ids []string) int {
	var twos, threes int
	for _, id := range ids {
		two, three := letterRepeats(id)
		if two {
			twos++
		}
		if three {
			threes++
		}
	}
	return twos * threes
}

// diffIndex returns the index where a and b differ, if they are the same
// length and differ in exactly one position. Otherwise it returns -1.
func diffIndex(a, b string) int {
	if len(a) != len(b) {
		return -1
	}
	at := -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if at >= 0 {
			return -1
		}
		at = i
	}
	return at
}

// CommonLetters finds the two IDs that differ by one letter and returns
// the letters they share.
func CommonLetters(ids []string) (string, error) {
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if at := diffIndex(a, b); at >= 0 {
				return a[:at] + a[at+1:], nil
			}
		}
	}
	return "", errNoNearMatch
}

/*
want=12
abcdef
bababc
abbcde
abcccd
aabcdd
abcdee
ababab
*/
func day2() any {
	return Checksum(aoc.Lines())
}

/*
want=fgij
abcde
fghij
klmno
pqrst
fguij
axcye
wvxyz
*/
func day2b() any {
	return aoc.MustGet(CommonLetters(aoc.Lines()))
}
