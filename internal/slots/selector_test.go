package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CsIsLab17/smart-lab-booking/internal/domain"
)

func mustClock(t *testing.T, clock string) int {
	t.Helper()
	m := domain.ClockToMinutes(clock)
	require.NotZero(t, m, "bad clock literal %q", clock)
	return m
}

func at(day string, clock string) time.Time {
	ts, _ := time.Parse("2006-01-02 15:04", day+" "+clock)
	return ts
}

func findOption(t *testing.T, opts []domain.SlotOption, clock string) domain.SlotOption {
	t.Helper()
	want := domain.ClockToMinutes(clock)
	for _, o := range opts {
		if o.Time == want {
			return o
		}
	}
	t.Fatalf("option %s not in candidate set", clock)
	return domain.SlotOption{}
}

func TestGrid_Points(t *testing.T) {
	g := DefaultGrid()

	points := g.Points()
	require.Len(t, points, 19) // 08:00 .. 17:00 inclusive, 30 min apart
	assert.Equal(t, 480, points[0])
	assert.Equal(t, 1020, points[len(points)-1])

	starts := g.StartCandidates()
	assert.Equal(t, 480, starts[0])
	assert.Equal(t, 990, starts[len(starts)-1], "closing point is never a start")

	ends := g.EndCandidates()
	assert.Equal(t, 510, ends[0], "opening point is never an end")
	assert.Equal(t, 1020, ends[len(ends)-1])
}

func TestGrid_PointsRoundTripClock(t *testing.T) {
	for _, p := range DefaultGrid().Points() {
		assert.Equal(t, p, domain.ClockToMinutes(domain.MinutesToClock(p)))
	}
}

func TestGrid_Contains(t *testing.T) {
	g := DefaultGrid()
	assert.True(t, g.Contains(480))
	assert.True(t, g.Contains(1020))
	assert.False(t, g.Contains(495), "off-step point")
	assert.False(t, g.Contains(450), "before opening")
	assert.False(t, g.Contains(1050), "after closing")
}

// Schedule [09:00,10:00) on today's date with the clock at 08:00: start
// 09:00 and end 10:00 are booked, start 08:30 stays free, and an end at
// exactly 09:00 (another booking's start boundary) stays free.
func TestCompute_BookedBoundaries(t *testing.T) {
	const day = "2026-09-07"
	intervals := []domain.BookedInterval{
		{Start: mustClock(t, "09:00"), End: mustClock(t, "10:00")},
	}

	opts := Compute(DefaultGrid(), intervals, at(day, "08:00"), day)

	start9 := findOption(t, opts.Start, "09:00")
	assert.False(t, start9.Enabled)
	assert.Equal(t, domain.ReasonBooked, start9.Reason)

	start930 := findOption(t, opts.Start, "09:30")
	assert.False(t, start930.Enabled, "inside the booked span")

	end10 := findOption(t, opts.End, "10:00")
	assert.False(t, end10.Enabled)
	assert.Equal(t, domain.ReasonBooked, end10.Reason)

	start830 := findOption(t, opts.Start, "08:30")
	assert.True(t, start830.Enabled)

	end9 := findOption(t, opts.End, "09:00")
	assert.True(t, end9.Enabled, "ending exactly at a booking's start is allowed")

	start10 := findOption(t, opts.Start, "10:00")
	assert.True(t, start10.Enabled, "starting exactly at a booking's end is allowed")
}

// Today at 14:37: every start before 14:30 is passed, 14:30 itself is
// still selectable, and end options at or before the current minute are
// passed as well.
func TestCompute_PastTimeToday(t *testing.T) {
	const day = "2026-09-07"

	opts := Compute(DefaultGrid(), nil, at(day, "14:37"), day)

	for _, o := range opts.Start {
		if o.Time < mustClock(t, "14:30") {
			assert.False(t, o.Enabled, "start %s should have passed", o.Clock())
			assert.Equal(t, domain.ReasonPassed, o.Reason)
		}
	}

	assert.True(t, findOption(t, opts.Start, "14:30").Enabled)
	assert.True(t, findOption(t, opts.Start, "15:00").Enabled)

	end1430 := findOption(t, opts.End, "14:30")
	assert.False(t, end1430.Enabled, "an end must be strictly in the future")
	assert.True(t, findOption(t, opts.End, "15:00").Enabled)
}

// Exactly on a grid point the slot just beginning is still startable,
// while the matching end has already passed.
func TestCompute_PastTimeTodayOnGridPoint(t *testing.T) {
	const day = "2026-09-07"

	opts := Compute(DefaultGrid(), nil, at(day, "14:30"), day)

	assert.True(t, findOption(t, opts.Start, "14:30").Enabled)
	assert.False(t, findOption(t, opts.Start, "14:00").Enabled)
	assert.False(t, findOption(t, opts.End, "14:30").Enabled)
	assert.True(t, findOption(t, opts.End, "15:00").Enabled)
}

// A different selected date ignores the wall clock entirely.
func TestCompute_FutureDateIgnoresClock(t *testing.T) {
	opts := Compute(DefaultGrid(), nil, at("2026-09-07", "16:45"), "2026-09-08")

	for _, o := range opts.Start {
		assert.True(t, o.Enabled, "start %s", o.Clock())
	}
	for _, o := range opts.End {
		assert.True(t, o.Enabled, "end %s", o.Clock())
	}
}

// When a candidate is both booked and passed, the booked label wins but
// the option stays disabled either way.
func TestCompute_BookedLabelWinsOverPassed(t *testing.T) {
	const day = "2026-09-07"
	intervals := []domain.BookedInterval{
		{Start: mustClock(t, "08:30"), End: mustClock(t, "09:30")},
	}

	opts := Compute(DefaultGrid(), intervals, at(day, "11:00"), day)

	o := findOption(t, opts.Start, "08:30")
	assert.False(t, o.Enabled)
	assert.Equal(t, domain.ReasonBooked, o.Reason)

	e := findOption(t, opts.End, "09:30")
	assert.False(t, e.Enabled)
	assert.Equal(t, domain.ReasonBooked, e.Reason)
}

// The blocking predicates quantified over every grid point, checked
// directly against the schedule definition.
func TestCompute_BlockingPredicates(t *testing.T) {
	const day = "2026-09-10"
	intervals := []domain.BookedInterval{
		{Start: mustClock(t, "08:30"), End: mustClock(t, "09:30")},
		{Start: mustClock(t, "13:00"), End: mustClock(t, "15:00")},
	}

	opts := Compute(DefaultGrid(), intervals, at("2026-09-07", "12:00"), day)

	for _, o := range opts.Start {
		wantBlocked := false
		for _, iv := range intervals {
			if iv.Start <= o.Time && o.Time < iv.End {
				wantBlocked = true
			}
		}
		assert.Equal(t, !wantBlocked, o.Enabled, "start %s", o.Clock())
	}

	for _, o := range opts.End {
		wantBlocked := false
		for _, iv := range intervals {
			if iv.Start < o.Time && o.Time <= iv.End {
				wantBlocked = true
			}
		}
		assert.Equal(t, !wantBlocked, o.Enabled, "end %s", o.Clock())
	}
}

func TestCompute_Idempotent(t *testing.T) {
	const day = "2026-09-07"
	intervals := []domain.BookedInterval{
		{Start: mustClock(t, "10:00"), End: mustClock(t, "11:00")},
	}
	now := at(day, "09:15")

	first := Compute(DefaultGrid(), intervals, now, day)
	second := Compute(DefaultGrid(), intervals, now, day)
	assert.Equal(t, first, second)
}

func TestOptions_EnabledLookup(t *testing.T) {
	const day = "2026-09-07"
	intervals := []domain.BookedInterval{
		{Start: mustClock(t, "09:00"), End: mustClock(t, "10:00")},
	}

	opts := Compute(DefaultGrid(), intervals, at(day, "08:00"), day)

	assert.False(t, opts.StartEnabled(mustClock(t, "09:00")))
	assert.True(t, opts.StartEnabled(mustClock(t, "08:30")))
	assert.False(t, opts.EndEnabled(mustClock(t, "10:00")))
	assert.False(t, opts.StartEnabled(123), "off-grid minutes are never selectable")
}
