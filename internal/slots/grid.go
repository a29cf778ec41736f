// Package slots generates the fixed booking time grid and computes the
// selectable state of every start/end option against a day's schedule.
package slots

import "github.com/CsIsLab17/smart-lab-booking/internal/domain"

// Grid describes the candidate time-of-day points of a booking day:
// every Step minutes from Open to Close inclusive.
type Grid struct {
	Open  int // minutes since midnight
	Close int
	Step  int
}

// DefaultGrid returns the lab's fixed grid: 08:00-17:00 every 30 minutes.
func DefaultGrid() Grid {
	return Grid{
		Open:  domain.LabOpenMinutes,
		Close: domain.LabCloseMinutes,
		Step:  domain.SlotStepMinutes,
	}
}

// Points returns every grid point in order. The result is freshly
// allocated on each call; the grid has no hidden state.
func (g Grid) Points() []int {
	points := make([]int, 0, (g.Close-g.Open)/g.Step+1)
	for t := g.Open; t <= g.Close; t += g.Step {
		points = append(points, t)
	}
	return points
}

// StartCandidates returns the grid points usable as a start time: every
// point except the closing one.
func (g Grid) StartCandidates() []int {
	points := g.Points()
	return points[:len(points)-1]
}

// EndCandidates returns the grid points usable as an end time: every
// point except the opening one. Any end candidate is strictly later in
// the grid than some start candidate by construction.
func (g Grid) EndCandidates() []int {
	return g.Points()[1:]
}

// Contains reports whether t is exactly on the grid.
func (g Grid) Contains(t int) bool {
	if t < g.Open || t > g.Close {
		return false
	}
	return (t-g.Open)%g.Step == 0
}
