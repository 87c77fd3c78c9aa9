package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPaddingInset(t *testing.T) {
	p := Padding{Top: 10, Right: 20, Bottom: 30, Left: 40}

	assert.Equal(t, sdl.Rect{X: 40, Y: 10, W: 40, H: 60}, p.Inset(sdl.Rect{W: 100, H: 100}))
	assert.Equal(t, sdl.Rect{X: 40, Y: 10}, p.Inset(sdl.Rect{W: 50, H: 20}), "sizes never go negative")
}

func TestPaddingScaled(t *testing.T) {
	p := Padding{Top: 10, Right: 20, Bottom: 30, Left: 40}

	assert.Equal(t, Padding{Top: 20, Right: 40, Bottom: 60, Left: 80}, p.Scaled(2))
	assert.Equal(t, Padding{Top: 5, Right: 5, Bottom: 5, Left: 5}, UniformPadding(5))
}
