package main

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aoc2018/aoc"
	"golang.org/x/exp/maps"
)

const (
	stampLayout  = "2006-01-02 15:04"
	shiftMinutes = 60
)

var (
	errBadRecord = errors.New("malformed guard record")
	errNoGuard   = errors.New("event before any guard began a shift")

	recordRx = regexp.MustCompile(`^\[(\d{4}-\d\d-\d\d \d\d:\d\d)\] (.+)$`)
	guardRx  = regexp.MustCompile(`^Guard #(\d+)`)
)

type EventKind int

const (
	StartShift EventKind = iota
	FallAsleep
	WakeUp
)

type Event struct {
	At    time.Time
	Kind  EventKind
	Guard int // set for StartShift
}

func ParseEvent(line string) (Event, error) {
	m := recordRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Event{}, fmt.Errorf("%w: %q", errBadRecord, line)
	}
	at, err := time.Parse(stampLayout, m[1])
	if err != nil {
		return Event{}, fmt.Errorf("%w: %q: %w", errBadRecord, line, err)
	}
	ev := Event{At: at}
	switch text := m[2]; {
	case guardRx.MatchString(text):
		ev.Kind = StartShift
		ev.Guard, _ = strconv.Atoi(guardRx.FindStringSubmatch(text)[1])
	case text == "falls asleep":
		ev.Kind = FallAsleep
	case text == "wakes up":
		ev.Kind = WakeUp
	default:
		return Event{}, fmt.Errorf("%w: unknown event %q", errBadRecord, text)
	}
	return ev, nil
}

// ParseEvents parses lines and returns the events in time order.
func ParseEvents(lines []string) ([]Event, error) {
	events := make([]Event, 0, len(lines))
	for _, line := range lines {
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})
	return events, nil
}

// Activity is a guard's state for each minute of the midnight hour.
type Activity [shiftMinutes]bool

// Chart renders the activity as '#' for asleep and '.' for awake.
func (a *Activity) Chart() string {
	var sb strings.Builder
	for _, asleep := range a {
		if asleep {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Shift is one guard's night. Guards start awake.
type Shift struct {
	Date     time.Time // midnight the shift covers
	Guard    int
	Activity Activity

	asleep bool
	since  time.Time
}

// ShiftDate returns the midnight a shift starting at t covers: shifts
// that begin before midnight belong to the next day.
func ShiftDate(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() != 0 {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func NewShift(at time.Time, guard int) *Shift {
	return &Shift{Date: ShiftDate(at), Guard: guard}
}

func (s *Shift) Asleep() bool { return s.asleep }

func (s *Shift) FallAsleep(t time.Time) {
	if s.asleep {
		return
	}
	s.asleep = true
	s.since = t
}

func (s *Shift) WakeUp(t time.Time) {
	if !s.asleep {
		return
	}
	s.asleep = false
	from, to := s.minute(s.since), s.minute(t)
	aoc.Log.Debug().Int("guard", s.Guard).Int("from", from).Int("to", to).Msg("recording sleep")
	for m := from; m < to; m++ {
		s.Activity[m] = true
	}
}

// Finish ends the shift at 01:00, recording any sleep still in progress.
func (s *Shift) Finish() {
	s.WakeUp(s.Date.Add(time.Hour))
}

// minute returns t's offset into the midnight hour, clamped to [0, 60].
func (s *Shift) minute(t time.Time) int {
	m := int(t.Sub(s.Date) / time.Minute)
	return max(0, min(m, shiftMinutes))
}

// Shifts replays time-ordered events into finished shifts.
func Shifts(events []Event) ([]*Shift, error) {
	var shifts []*Shift
	var cur *Shift
	for _, ev := range events {
		if ev.Kind == StartShift {
			if cur != nil {
				cur.Finish()
			}
			cur = NewShift(ev.At, ev.Guard)
			shifts = append(shifts, cur)
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("%w at %s", errNoGuard, ev.At.Format(stampLayout))
		}
		switch ev.Kind {
		case FallAsleep:
			cur.FallAsleep(ev.At)
		case WakeUp:
			cur.WakeUp(ev.At)
		}
	}
	if cur != nil {
		cur.Finish()
	}
	return shifts, nil
}

// Histogram counts, per minute, how many shifts a guard slept through it.
type Histogram [shiftMinutes]int

// Top returns the most slept minute, the earliest on ties, and its count.
func (h *Histogram) Top() (minute, count int) {
	for m, n := range h {
		if n > count {
			minute, count = m, n
		}
	}
	return
}

func Histograms(shifts []*Shift) map[int]*Histogram {
	hs := map[int]*Histogram{}
	for _, s := range shifts {
		h, ok := hs[s.Guard]
		if !ok {
			h = new(Histogram)
			hs[s.Guard] = h
		}
		for m, asleep := range s.Activity {
			if asleep {
				h[m]++
			}
		}
	}
	return hs
}

// SleepTotals returns minutes asleep per guard.
func SleepTotals(shifts []*Shift) map[int]int {
	totals := map[int]int{}
	for _, s := range shifts {
		if _, ok := totals[s.Guard]; !ok {
			totals[s.Guard] = 0
		}
		for _, asleep := range s.Activity {
			if asleep {
				totals[s.Guard]++
			}
		}
	}
	return totals
}

func sortedGuards[V any](m map[int]V) []int {
	ids := maps.Keys(m)
	slices.Sort(ids)
	return ids
}

// Strategy1 picks the guard with the most minutes asleep and returns
// the guard ID times their most slept minute.
func Strategy1(shifts []*Shift) int {
	totals := SleepTotals(shifts)
	if len(totals) == 0 {
		return 0
	}
	best, most := 0, -1
	for _, g := range sortedGuards(totals) {
		if totals[g] > most {
			best, most = g, totals[g]
		}
	}
	minute, _ := Histograms(shifts)[best].Top()
	return best * minute
}

// Strategy2 picks the guard most frequently asleep on the same minute
// and returns the guard ID times that minute.
func Strategy2(shifts []*Shift) int {
	hs := Histograms(shifts)
	best, bestMinute, most := 0, 0, -1
	for _, g := range sortedGuards(hs) {
		if m, n := hs[g].Top(); n > most {
			best, bestMinute, most = g, m, n
		}
	}
	return best * bestMinute
}

func readShifts() []*Shift {
	return aoc.MustGet(Shifts(aoc.MustGet(ParseEvents(aoc.Lines()))))
}

/*
want=240
[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:05] falls asleep
[1518-11-01 00:25] wakes up
[1518-11-01 00:30] falls asleep
[1518-11-01 00:55] wakes up
[1518-11-01 23:58] Guard #99 begins shift
[1518-11-02 00:40] falls asleep
[1518-11-02 00:50] wakes up
[1518-11-03 00:05] Guard #10 begins shift
[1518-11-03 00:24] falls asleep
[1518-11-03 00:29] wakes up
[1518-11-04 00:02] Guard #99 begins shift
[1518-11-04 00:36] falls asleep
[1518-11-04 00:46] wakes up
[1518-11-05 00:03] Guard #99 begins shift
[1518-11-05 00:45] falls asleep
[1518-11-05 00:55] wakes up
*/
func day4() any {
	return Strategy1(readShifts())
}

// want=4455
func day4b() any {
	return Strategy2(readShifts())
}
