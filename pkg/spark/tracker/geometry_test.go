package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexClosestTo(t *testing.T) {
	frames := fiveFrames()

	tests := []struct {
		name   string
		point  Point
		axis   Axis
		want   int
		wantOK bool
	}{
		{"left of everything", Point{X: -100}, AxisHorizontal, 0, true},
		{"over first", Point{X: 10}, AxisHorizontal, 0, true},
		{"just past boundary", Point{X: 51}, AxisHorizontal, 1, true},
		{"over last", Point{X: 225}, AxisHorizontal, 4, true},
		{"right of everything", Point{X: 1000}, AxisHorizontal, 4, true},
		{"cross axis ignored", Point{X: 125, Y: -500}, AxisHorizontal, 2, true},
		{"tie goes to lowest index", Point{X: 50}, AxisHorizontal, 0, true},
		{"vertical uses y", Point{X: 225, Y: 10}, AxisVertical, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IndexClosestTo(tt.point, frames, tt.axis)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexClosestToEmpty(t *testing.T) {
	got, ok := IndexClosestTo(Point{X: 10}, nil, AxisHorizontal)
	assert.False(t, ok)
	assert.Equal(t, NoPage, got)
}

func TestRectCenterAndContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 40, Height: 10}

	assert.Equal(t, Point{X: 30, Y: 25}, r.Center())
	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.True(t, r.Contains(Point{X: 50, Y: 30}))
	assert.False(t, r.Contains(Point{X: 51, Y: 25}))
}

func TestLayoutFrames(t *testing.T) {
	t.Run("horizontal with spacing", func(t *testing.T) {
		frames := LayoutFrames(3, OrientationHorizontal, Rect{X: 10, Y: 5, Width: 320, Height: 40}, 10)
		assert.Equal(t, []Rect{
			{X: 10, Y: 5, Width: 100, Height: 40},
			{X: 120, Y: 5, Width: 100, Height: 40},
			{X: 230, Y: 5, Width: 100, Height: 40},
		}, frames)
	})

	t.Run("vertical", func(t *testing.T) {
		frames := LayoutFrames(2, OrientationVertical, Rect{Width: 30, Height: 100}, 0)
		assert.Equal(t, []Rect{
			{X: 0, Y: 0, Width: 30, Height: 50},
			{X: 0, Y: 50, Width: 30, Height: 50},
		}, frames)
	})

	t.Run("no pages", func(t *testing.T) {
		assert.Nil(t, LayoutFrames(0, OrientationHorizontal, Rect{Width: 100}, 0))
	})

	t.Run("spacing larger than bounds", func(t *testing.T) {
		frames := LayoutFrames(3, OrientationHorizontal, Rect{Width: 10}, 20)
		for _, f := range frames {
			assert.Zero(t, f.Width)
		}
	})
}
