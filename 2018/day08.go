package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aoc2018/aoc"
)

var errTruncated = errors.New("license data ends mid-node")

type Node struct {
	Children []*Node
	Metadata []int
}

// ParseTree builds the node tree from the license numbers and reports
// any numbers left over after the root.
func ParseTree(nums []int) (root *Node, rest []int, err error) {
	if len(nums) < 2 {
		return nil, nil, errTruncated
	}
	nChild, nMeta := nums[0], nums[1]
	if nChild < 0 || nMeta < 0 {
		return nil, nil, fmt.Errorf("negative node header %d %d", nChild, nMeta)
	}
	nums = nums[2:]
	n := &Node{}
	for i := 0; i < nChild; i++ {
		var c *Node
		c, nums, err = ParseTree(nums)
		if err != nil {
			return nil, nil, err
		}
		n.Children = append(n.Children, c)
	}
	if len(nums) < nMeta {
		return nil, nil, errTruncated
	}
	n.Metadata = nums[:nMeta:nMeta]
	return n, nums[nMeta:], nil
}

func parseLicense(s string) (*Node, error) {
	var nums []int
	for _, f := range strings.Fields(s) {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("license: %w", err)
		}
		nums = append(nums, v)
	}
	root, rest, err := ParseTree(nums)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("license: %d trailing numbers", len(rest))
	}
	return root, nil
}

func (n *Node) MetadataSum() int {
	sum := 0
	for _, m := range n.Metadata {
		sum += m
	}
	for _, c := range n.Children {
		sum += c.MetadataSum()
	}
	return sum
}

// Value is the metadata sum for a leaf. Otherwise each metadata entry
// is a 1-based child index and the value is the sum of those children's
// values; missing children count zero.
func (n *Node) Value() int {
	if len(n.Children) == 0 {
		return n.MetadataSum()
	}
	v := 0
	for _, m := range n.Metadata {
		if m >= 1 && m <= len(n.Children) {
			v += n.Children[m-1].Value()
		}
	}
	return v
}

func license() *Node {
	return aoc.MustGet(parseLicense(string(aoc.Input())))
}

/*
want=138
2 3 0 3 10 11 12 1 1 0 1 99 2 1 1 2
*/
func day8() any {
	return license().MetadataSum()
}

// want=66
func day8b() any {
	return license().Value()
}
