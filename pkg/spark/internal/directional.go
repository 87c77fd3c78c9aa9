package internal

import (
	"time"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
)

// Direction is a step along the tracker, independent of its orientation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionBackward
	DirectionForward
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionBackward:
		return "backward"
	case DirectionForward:
		return "forward"
	default:
		return ""
	}
}

// Delta is the page offset the direction moves by.
func (d Direction) Delta() int {
	switch d {
	case DirectionBackward:
		return -1
	case DirectionForward:
		return 1
	default:
		return 0
	}
}

// DirectionalInput maps held d-pad buttons onto tracker steps and handles
// repeat timing. A horizontal tracker listens to left/right, a vertical one
// to up/down.
type DirectionalInput struct {
	vertical       bool
	held           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput(vertical bool) DirectionalInput {
	return NewDirectionalInputWithTiming(vertical, constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(vertical bool, delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		vertical:       vertical,
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetVertical switches the buttons the input listens to and drops any held state.
func (d *DirectionalInput) SetVertical(vertical bool) {
	d.vertical = vertical
	d.Reset()
}

func (d *DirectionalInput) direction(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonLeft:
		if !d.vertical {
			return DirectionBackward
		}
	case constants.VirtualButtonRight:
		if !d.vertical {
			return DirectionForward
		}
	case constants.VirtualButtonUp:
		if d.vertical {
			return DirectionBackward
		}
	case constants.VirtualButtonDown:
		if d.vertical {
			return DirectionForward
		}
	}
	return DirectionNone
}

// Press records a button press. It returns the direction to step immediately,
// or DirectionNone when the button does not navigate this tracker.
func (d *DirectionalInput) Press(button constants.VirtualButton) Direction {
	dir := d.direction(button)
	if dir == DirectionNone {
		return DirectionNone
	}
	d.held = dir
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
	return dir
}

// Release records a button release.
func (d *DirectionalInput) Release(button constants.VirtualButton) {
	if dir := d.direction(button); dir != DirectionNone && dir == d.held {
		d.held = DirectionNone
		d.hasRepeated = false
	}
}

// IsHeld returns true if a navigating direction is held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held != DirectionNone
}

// Update checks if a repeat should fire. Call it every frame.
// The first repeat occurs after repeatDelay, later ones after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	now := d.now()
	if !d.IsHeld() {
		d.lastRepeatTime = now
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}

	return DirectionNone
}

// Reset clears the held direction and timing state.
func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
