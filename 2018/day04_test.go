package main

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guardRecords = []string{
	"[1518-11-01 00:00] Guard #10 begins shift",
	"[1518-11-01 00:05] falls asleep",
	"[1518-11-01 00:25] wakes up",
	"[1518-11-01 00:30] falls asleep",
	"[1518-11-01 00:55] wakes up",
	"[1518-11-01 23:58] Guard #99 begins shift",
	"[1518-11-02 00:40] falls asleep",
	"[1518-11-02 00:50] wakes up",
	"[1518-11-03 00:05] Guard #10 begins shift",
	"[1518-11-03 00:24] falls asleep",
	"[1518-11-03 00:29] wakes up",
	"[1518-11-04 00:02] Guard #99 begins shift",
	"[1518-11-04 00:36] falls asleep",
	"[1518-11-04 00:46] wakes up",
	"[1518-11-05 00:03] Guard #99 begins shift",
	"[1518-11-05 00:45] falls asleep",
	"[1518-11-05 00:55] wakes up",
}

// chart draws an hour with the given [from, to) minute ranges asleep.
func chart(ranges ...int) string {
	b := []byte(strings.Repeat(".", shiftMinutes))
	for i := 0; i < len(ranges); i += 2 {
		for m := ranges[i]; m < ranges[i+1]; m++ {
			b[m] = '#'
		}
	}
	return string(b)
}

func mustParseTime(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.Parse(stampLayout, s)
	require.NoError(t, err)
	return at
}

func sampleShifts(t *testing.T) []*Shift {
	t.Helper()
	events, err := ParseEvents(guardRecords)
	require.NoError(t, err)
	shifts, err := Shifts(events)
	require.NoError(t, err)
	return shifts
}

func TestParseEvent(t *testing.T) {
	ev, err := ParseEvent("[1518-11-01 23:58] Guard #99 begins shift")
	require.NoError(t, err)
	assert.Equal(t, StartShift, ev.Kind)
	assert.Equal(t, 99, ev.Guard)
	assert.Equal(t, "1518-11-01 23:58", ev.At.Format(stampLayout))

	ev, err = ParseEvent("[1518-11-02 00:40] falls asleep")
	require.NoError(t, err)
	assert.Equal(t, FallAsleep, ev.Kind)

	ev, err = ParseEvent("[1518-11-02 00:50] wakes up")
	require.NoError(t, err)
	assert.Equal(t, WakeUp, ev.Kind)

	for _, bad := range []string{
		"1518-11-02 00:50 wakes up",
		"[1518-11-02 00:50] dances",
		"[1518-13-02 00:50] wakes up",
	} {
		_, err := ParseEvent(bad)
		assert.ErrorIs(t, err, errBadRecord, bad)
	}
}

func TestParseEventsSorts(t *testing.T) {
	events, err := ParseEvents([]string{
		"[1518-11-01 00:25] wakes up",
		"[1518-11-01 00:00] Guard #10 begins shift",
		"[1518-11-01 00:05] falls asleep",
	})
	require.NoError(t, err)
	var kinds []EventKind
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []EventKind{StartShift, FallAsleep, WakeUp}, kinds)
}

func TestShiftDate(t *testing.T) {
	tests := []struct {
		at, want string
	}{
		{"1518-11-01 00:00", "1518-11-01"},
		{"1518-11-01 23:58", "1518-11-02"},
		{"1518-12-31 23:50", "1519-01-01"},
		{"1518-11-05 00:03", "1518-11-05"},
	}
	for _, tt := range tests {
		got := ShiftDate(mustParseTime(t, tt.at))
		assert.Equal(t, tt.want, got.Format("2006-01-02"), tt.at)
	}
}

func TestShifts(t *testing.T) {
	type row struct {
		Date  string
		Guard int
		Chart string
	}
	var got []row
	for _, s := range sampleShifts(t) {
		got = append(got, row{s.Date.Format("01-02"), s.Guard, s.Activity.Chart()})
	}
	want := []row{
		{"11-01", 10, chart(5, 25, 30, 55)},
		{"11-02", 99, chart(40, 50)},
		{"11-03", 10, chart(24, 29)},
		{"11-04", 99, chart(36, 46)},
		{"11-05", 99, chart(45, 55)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shifts mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleShift(t *testing.T) {
	s := NewShift(mustParseTime(t, "1518-11-01 00:00"), 7)
	assert.False(t, s.Asleep())
	s.FallAsleep(mustParseTime(t, "1518-11-01 00:55"))
	assert.True(t, s.Asleep())
	s.WakeUp(mustParseTime(t, "1518-11-01 00:58"))
	s.Finish()
	assert.Equal(t, strings.Repeat(".", 55)+"###..", s.Activity.Chart())

	s = NewShift(mustParseTime(t, "1518-11-01 23:50"), 7)
	s.FallAsleep(mustParseTime(t, "1518-11-02 00:55"))
	s.Finish()
	assert.False(t, s.Asleep())
	assert.Equal(t, strings.Repeat(".", 55)+"#####", s.Activity.Chart())
}

func TestSleepTotals(t *testing.T) {
	shifts := sampleShifts(t)
	if diff := cmp.Diff(map[int]int{10: 50, 99: 30}, SleepTotals(shifts)); diff != "" {
		t.Errorf("totals mismatch (-want +got):\n%s", diff)
	}

	h := Histograms(shifts)[10]
	assert.Equal(t, 0, h[0])
	assert.Equal(t, 1, h[5])
	assert.Equal(t, 2, h[24])
	minute, count := h.Top()
	assert.Equal(t, 24, minute)
	assert.Equal(t, 2, count)

	minute, count = Histograms(shifts)[99].Top()
	assert.Equal(t, 45, minute)
	assert.Equal(t, 3, count)
}

func TestStrategies(t *testing.T) {
	shifts := sampleShifts(t)
	assert.Equal(t, 240, Strategy1(shifts))
	assert.Equal(t, 4455, Strategy2(shifts))
	assert.Equal(t, 0, Strategy1(nil))
	assert.Equal(t, 0, Strategy2(nil))
}

func TestShiftsEdgeCases(t *testing.T) {
	shifts, err := Shifts(nil)
	require.NoError(t, err)
	assert.Empty(t, shifts)

	events, err := ParseEvents([]string{"[1518-11-01 00:05] falls asleep"})
	require.NoError(t, err)
	_, err = Shifts(events)
	assert.ErrorIs(t, err, errNoGuard)
}
