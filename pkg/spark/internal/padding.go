package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks r by the padding. Sizes never go negative.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	out := sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// Scaled multiplies every side by the window scale factor.
func (p Padding) Scaled(scale float32) Padding {
	return Padding{
		Top:    int32(float32(p.Top) * scale),
		Right:  int32(float32(p.Right) * scale),
		Bottom: int32(float32(p.Bottom) * scale),
		Left:   int32(float32(p.Left) * scale),
	}
}
