package main

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/aoc2018/aoc"
	"golang.org/x/exp/maps"
)

var (
	errBadStep = errors.New("malformed step")
	errCycle   = errors.New("steps have a dependency cycle")

	stepRx = regexp.MustCompile(`^Step ([A-Z]) must be finished before step ([A-Z]) can begin\.$`)
)

func ParseStep(line string) (from, to string, err error) {
	m := stepRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", fmt.Errorf("%w: %q", errBadStep, line)
	}
	return m[1], m[2], nil
}

// Graph maps each step to the steps waiting on it.
type Graph struct {
	nodes map[string]bool
	next  map[string][]string
	pre   map[string][]string
}

func BuildGraph(lines []string) (*Graph, error) {
	g := &Graph{
		nodes: map[string]bool{},
		next:  map[string][]string{},
		pre:   map[string][]string{},
	}
	for _, line := range lines {
		from, to, err := ParseStep(line)
		if err != nil {
			return nil, err
		}
		g.nodes[from] = true
		g.nodes[to] = true
		g.next[from] = append(g.next[from], to)
		g.pre[to] = append(g.pre[to], from)
	}
	for _, m := range []map[string][]string{g.next, g.pre} {
		for k, v := range m {
			slices.Sort(v)
			m[k] = slices.Compact(v)
		}
	}
	return g, nil
}

// Next returns the steps that directly depend on node, sorted.
func (g *Graph) Next(node string) []string { return g.next[node] }

// Prerequisites returns the steps node directly depends on, sorted.
func (g *Graph) Prerequisites(node string) []string { return g.pre[node] }

// StartNodes returns the steps with no prerequisites, sorted.
func (g *Graph) StartNodes() []string {
	var ret []string
	for _, n := range g.sortedNodes() {
		if len(g.pre[n]) == 0 {
			ret = append(ret, n)
		}
	}
	return ret
}

func (g *Graph) sortedNodes() []string {
	ns := maps.Keys(g.nodes)
	slices.Sort(ns)
	return ns
}

// ready returns the not-yet-started steps whose prerequisites are all done.
func (g *Graph) ready(done, started map[string]bool) []string {
	var ret []string
	for _, n := range g.sortedNodes() {
		if started[n] {
			continue
		}
		ok := true
		for _, p := range g.pre[n] {
			if !done[p] {
				ok = false
				break
			}
		}
		if ok {
			ret = append(ret, n)
		}
	}
	return ret
}

// Order returns the steps in completion order, always taking the
// alphabetically first ready step.
func (g *Graph) Order() (string, error) {
	done := map[string]bool{}
	var sb strings.Builder
	for len(done) < len(g.nodes) {
		r := g.ready(done, done)
		if len(r) == 0 {
			return "", errCycle
		}
		done[r[0]] = true
		sb.WriteString(r[0])
	}
	return sb.String(), nil
}

func stepTime(node string, base int) int {
	return base + int(node[0]-'A') + 1
}

// Schedule returns how long the given number of workers take to finish
// every step when each step costs base seconds plus its letter's position.
func (g *Graph) Schedule(workers, base int) (int, error) {
	if workers < 1 {
		return 0, fmt.Errorf("need at least one worker, got %d", workers)
	}
	done := map[string]bool{}
	started := map[string]bool{}
	finishAt := map[string]int{} // in-progress step -> completion time
	now := 0
	for len(done) < len(g.nodes) {
		for _, n := range g.ready(done, started) {
			if len(finishAt) == workers {
				break
			}
			started[n] = true
			finishAt[n] = now + stepTime(n, base)
		}
		if len(finishAt) == 0 {
			return 0, errCycle
		}
		now = slices.Min(maps.Values(finishAt))
		for n, t := range finishAt {
			if t == now {
				done[n] = true
				delete(finishAt, n)
			}
		}
		aoc.Log.Debug().Int("t", now).Int("done", len(done)).Msg("steps finished")
	}
	return now, nil
}

func stepGraph() *Graph {
	return aoc.MustGet(BuildGraph(aoc.Lines()))
}

/*
want=CABDFE
Step C must be finished before step A can begin.
Step C must be finished before step F can begin.
Step A must be finished before step B can begin.
Step A must be finished before step D can begin.
Step B must be finished before step E can begin.
Step D must be finished before step E can begin.
Step F must be finished before step E can begin.
*/
func day7() any {
	return aoc.MustGet(stepGraph().Order())
}

// want=15
func day7b() any {
	workers, base := 5, 60
	if aoc.Sample() {
		workers, base = 2, 0
	}
	return aoc.MustGet(stepGraph().Schedule(workers, base))
}
