package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func newFakeClock() *fakeClock               { return &fakeClock{t: time.Unix(0, 0)} }
func withClock(d DirectionalInput, c *fakeClock) DirectionalInput {
	d.now = c.now
	d.lastRepeatTime = c.now()
	return d
}

func TestDirectionalInputFollowsOrientation(t *testing.T) {
	horizontal := NewDirectionalInput(false)
	assert.Equal(t, DirectionForward, horizontal.Press(constants.VirtualButtonRight))
	assert.Equal(t, DirectionBackward, horizontal.Press(constants.VirtualButtonLeft))
	assert.Equal(t, DirectionNone, horizontal.Press(constants.VirtualButtonDown))

	vertical := NewDirectionalInput(true)
	assert.Equal(t, DirectionForward, vertical.Press(constants.VirtualButtonDown))
	assert.Equal(t, DirectionBackward, vertical.Press(constants.VirtualButtonUp))
	assert.Equal(t, DirectionNone, vertical.Press(constants.VirtualButtonRight))
	assert.Equal(t, DirectionNone, vertical.Press(constants.VirtualButtonA))
}

func TestDirectionalInputRepeats(t *testing.T) {
	clock := newFakeClock()
	d := withClock(NewDirectionalInputWithTiming(false, 300*time.Millisecond, 100*time.Millisecond), clock)

	d.Press(constants.VirtualButtonRight)
	assert.True(t, d.IsHeld())

	clock.advance(299 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionForward, d.Update())

	clock.advance(99 * time.Millisecond)
	assert.Equal(t, DirectionNone, d.Update())

	clock.advance(time.Millisecond)
	assert.Equal(t, DirectionForward, d.Update())

	d.Release(constants.VirtualButtonRight)
	assert.False(t, d.IsHeld())

	clock.advance(time.Second)
	assert.Equal(t, DirectionNone, d.Update())
}

func TestDirectionalInputReleaseOfOtherButtonKeepsHold(t *testing.T) {
	d := NewDirectionalInput(false)

	d.Press(constants.VirtualButtonLeft)
	d.Press(constants.VirtualButtonRight)
	d.Release(constants.VirtualButtonLeft)
	assert.True(t, d.IsHeld(), "the most recent press is still held")

	d.SetVertical(true)
	assert.False(t, d.IsHeld())
}

func TestDirectionDelta(t *testing.T) {
	assert.Equal(t, 1, DirectionForward.Delta())
	assert.Equal(t, -1, DirectionBackward.Delta())
	assert.Equal(t, 0, DirectionNone.Delta())
	assert.Equal(t, "forward", DirectionForward.String())
}
