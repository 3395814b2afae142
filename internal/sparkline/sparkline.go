// Package sparkline maps an ordered sequence of mood entries onto normalized
// plot coordinates for a fixed logical canvas. The x axis interpolates by
// elapsed time rather than by index, so unevenly spaced entries are spaced
// proportionally to real time; the y axis inverts mood so a better mood sits
// higher on the canvas.
//
// The mapper is pure and rendering-agnostic: it produces points for a
// polyline and leaves drawing (and the empty-state) to the caller. No points
// are synthesized for missing days; the line simply spans the entries that
// exist.
package sparkline

import (
	"github.com/maeum-app/cbt-journal-backend/internal/domain"
)

// Canvas dimensions used by the mobile client's mood chart.
const (
	DefaultWidth  = 100
	DefaultHeight = 120

	maxMood = 10
)

// Point is one normalized plot coordinate. Y grows downward, as in SVG.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Map converts entries (in chronological input order) to polyline points on a
// width×height canvas.
//
//   - An empty input produces nil (caller renders an empty state).
//   - When all entries share one timestamp the duration is zero, so every x
//     is placed at the horizontal center instead of dividing by zero.
//   - Otherwise x_i is proportional to the entry's elapsed time since the
//     first entry, and y_i = height − mood/10·height.
//
// Non-positive dimensions fall back to the defaults.
func Map(entries []domain.MoodEntry, width, height float64) []Point {
	if len(entries) == 0 {
		return nil
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	first := entries[0].Date
	last := entries[len(entries)-1].Date
	duration := last.Sub(first)

	points := make([]Point, len(entries))
	for i, e := range entries {
		x := width / 2
		if duration > 0 {
			x = float64(e.Date.Sub(first)) / float64(duration) * width
		}
		y := height - float64(e.Mood)/maxMood*height
		points[i] = Point{X: x, Y: y}
	}
	return points
}
