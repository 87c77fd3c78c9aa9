package tracker

import "math"

// Point is a location in the tracker's coordinate space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned indicator frame in the tracker's coordinate space.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside or on the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Axis is the primary layout axis indicators are distributed along.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) project(p Point) float64 {
	if a == AxisVertical {
		return p.Y
	}
	return p.X
}

// IndexClosestTo returns the index of the frame whose center is closest to p
// along axis. Ties go to the lowest index. ok is false when frames is empty.
func IndexClosestTo(p Point, frames []Rect, axis Axis) (index int, ok bool) {
	index = NoPage
	best := math.Inf(1)
	target := axis.project(p)

	for i, frame := range frames {
		d := math.Abs(axis.project(frame.Center()) - target)
		if d < best {
			index = i
			best = d
		}
	}

	return index, index != NoPage
}

// LayoutFrames distributes count equally sized frames along the orientation's
// axis inside bounds, separated by spacing. The cross axis takes the full
// extent of bounds.
func LayoutFrames(count int, orientation Orientation, bounds Rect, spacing float64) []Rect {
	if count <= 0 {
		return nil
	}

	spacing = math.Max(spacing, 0)
	gaps := spacing * float64(count-1)
	frames := make([]Rect, count)

	if orientation == OrientationVertical {
		size := math.Max((bounds.Height-gaps)/float64(count), 0)
		for i := range frames {
			frames[i] = Rect{
				X:      bounds.X,
				Y:      bounds.Y + float64(i)*(size+spacing),
				Width:  bounds.Width,
				Height: size,
			}
		}
		return frames
	}

	size := math.Max((bounds.Width-gaps)/float64(count), 0)
	for i := range frames {
		frames[i] = Rect{
			X:      bounds.X + float64(i)*(size+spacing),
			Y:      bounds.Y,
			Width:  size,
			Height: bounds.Height,
		}
	}
	return frames
}
