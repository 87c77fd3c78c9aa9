package tracker

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDelegate struct {
	pages []int
}

func (d *recordingDelegate) PageDidChange(_ *Controller, page int) {
	d.pages = append(d.pages, page)
}

func newTestController(t *testing.T, policy Policy, current int) *Controller {
	t.Helper()
	c := NewController(Settings{
		NumberOfPages: 5,
		CurrentPage:   current,
		Policy:        policy,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, c.SetFrames(fiveFrames()))
	return c
}

func highlightedPages(c *Controller) []int {
	var pages []int
	for i := 0; i < c.NumberOfPages(); i++ {
		if ind, _ := c.Indicator(i); ind.Highlighted {
			pages = append(pages, i)
		}
	}
	return pages
}

func TestControllerContinuousScenario(t *testing.T) {
	c := newTestController(t, PolicyContinuous, 0)
	delegate := &recordingDelegate{}
	c.SetDelegate(delegate)

	var published []int
	c.OnPageChange(func(page int) { published = append(published, page) })
	valueChanged := 0
	c.OnValueChanged(func() { valueChanged++ })

	c.BeginTouch(at(51))
	assert.Equal(t, 1, c.TrackingPage())
	assert.Equal(t, []int{1}, highlightedPages(c))

	c.MoveTouch(at(101))
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, 2, c.TrackingPage())
	assert.Equal(t, []int{2}, highlightedPages(c))

	c.MoveTouch(at(151))
	assert.Equal(t, 2, c.CurrentPage())
	assert.Equal(t, []int{3}, highlightedPages(c))

	c.EndTouch(at(251))
	assert.Equal(t, 4, c.CurrentPage())
	assert.Equal(t, NoPage, c.TrackingPage())
	assert.False(t, c.IsTracking())
	assert.Empty(t, highlightedPages(c))

	want := []int{1, 2, 3, 4}
	if diff := cmp.Diff(want, published); diff != "" {
		t.Errorf("published pages mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want, delegate.pages)
	assert.Equal(t, 4, valueChanged)
}

func TestControllerDiscreteCommitsOnRelease(t *testing.T) {
	c := newTestController(t, PolicyDiscrete, 0)
	var published []int
	c.OnPageChange(func(page int) { published = append(published, page) })

	c.BeginTouch(at(225))
	c.MoveTouch(at(175))
	assert.Equal(t, 0, c.CurrentPage())
	assert.Equal(t, []int{1}, highlightedPages(c))

	c.EndTouch(at(225))

	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, []int{1}, published)
	assert.Empty(t, highlightedPages(c))
}

func TestControllerNewGestureDiscardsPrevious(t *testing.T) {
	c := newTestController(t, PolicyIndependent, 0)
	var published []int
	c.OnPageChange(func(page int) { published = append(published, page) })

	c.BeginTouch(at(225))
	assert.Equal(t, []int{4}, highlightedPages(c))

	// No EndTouch: the second gesture replaces the first.
	c.BeginTouch(at(125))
	assert.Equal(t, []int{2}, highlightedPages(c))

	c.EndTouch(at(125))
	assert.Equal(t, 2, c.CurrentPage())
	assert.Equal(t, []int{2}, published)
}

func TestControllerCancelClearsHighlight(t *testing.T) {
	c := newTestController(t, PolicyDiscrete, 2)
	var published []int
	c.OnPageChange(func(page int) { published = append(published, page) })

	c.BeginTouch(at(10))
	require.Equal(t, []int{1}, highlightedPages(c))

	c.CancelTouch()

	assert.Empty(t, highlightedPages(c))
	assert.Equal(t, 2, c.CurrentPage())
	assert.False(t, c.IsTracking())
	assert.Empty(t, published)

	// Events after cancellation are ignored.
	c.MoveTouch(at(10))
	c.EndTouch(at(10))
	assert.Equal(t, 2, c.CurrentPage())
}

func TestControllerNonePolicy(t *testing.T) {
	c := newTestController(t, PolicyNone, 1)
	var published []int
	c.OnPageChange(func(page int) { published = append(published, page) })

	c.BeginTouch(at(225))
	c.MoveTouch(at(10))
	c.EndTouch(at(225))

	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, NoPage, c.TrackingPage())
	assert.Empty(t, published)
	assert.False(t, c.StepForward())
}

func TestControllerDisabledIgnoresTouches(t *testing.T) {
	c := newTestController(t, PolicyIndependent, 0)
	c.SetEnabled(false)

	c.BeginTouch(at(225))
	assert.Empty(t, highlightedPages(c))
	c.EndTouch(at(225))

	assert.Equal(t, 0, c.CurrentPage())
	assert.False(t, c.IsEnabled())
	assert.False(t, c.StepForward())

	c.SetEnabled(true)
	c.BeginTouch(at(225))
	c.EndTouch(at(225))
	assert.Equal(t, 4, c.CurrentPage())
}

func TestControllerDisablingMidGestureAbandonsIt(t *testing.T) {
	c := newTestController(t, PolicyIndependent, 0)

	c.BeginTouch(at(225))
	c.SetEnabled(false)
	c.EndTouch(at(225))

	assert.Equal(t, 0, c.CurrentPage())
	assert.Empty(t, highlightedPages(c))
}

func TestControllerPolicyChangeAppliesToNextGesture(t *testing.T) {
	c := newTestController(t, PolicyDiscrete, 0)

	c.BeginTouch(at(225))
	c.SetPolicy(PolicyIndependent)
	c.EndTouch(at(225))
	assert.Equal(t, 1, c.CurrentPage())

	c.BeginTouch(at(225))
	c.EndTouch(at(225))
	assert.Equal(t, 4, c.CurrentPage())
	assert.Equal(t, PolicyIndependent, c.Policy())
}

func TestControllerSetCurrentPageIsSilent(t *testing.T) {
	c := newTestController(t, PolicyIndependent, 0)
	var published []int
	c.OnPageChange(func(page int) { published = append(published, page) })

	c.SetCurrentPage(3)
	assert.Equal(t, 3, c.CurrentPage())
	c.SetCurrentPage(99)
	assert.Equal(t, 4, c.CurrentPage())
	c.SetCurrentPage(-1)
	assert.Equal(t, 0, c.CurrentPage())

	assert.Empty(t, published)

	c.BeginTouch(at(175))
	c.EndTouch(at(175))
	assert.Equal(t, []int{3}, published)
}

func TestControllerSetNumberOfPages(t *testing.T) {
	c := newTestController(t, PolicyIndependent, 4)
	c.SetLabel(0, "Cart")
	c.SetLabel(4, "Done")

	c.BeginTouch(at(10))
	c.SetNumberOfPages(3)

	assert.False(t, c.IsTracking())
	assert.Equal(t, 3, c.NumberOfPages())
	assert.Equal(t, 2, c.CurrentPage())
	assert.Equal(t, "Cart", c.Label(0))
	assert.Empty(t, highlightedPages(c))

	c.SetNumberOfPages(0)
	assert.Equal(t, 1, c.NumberOfPages())
	assert.Equal(t, 0, c.CurrentPage())
}

func TestControllerSetFramesRejectsMismatch(t *testing.T) {
	c := newTestController(t, PolicyDiscrete, 0)

	err := c.SetFrames(fiveFrames()[:3])

	assert.ErrorIs(t, err, ErrFrameCount)
	assert.Equal(t, fiveFrames(), c.Frames())
}

func TestControllerLayout(t *testing.T) {
	c := NewController(Settings{NumberOfPages: 2, Orientation: OrientationVertical})

	c.Layout(Rect{Width: 10, Height: 110}, 10)

	assert.Equal(t, []Rect{
		{Width: 10, Height: 50},
		{Y: 60, Width: 10, Height: 50},
	}, c.Frames())
}

func TestControllerStepping(t *testing.T) {
	c := newTestController(t, PolicyDiscrete, 0)
	var published []int
	c.OnPageChange(func(page int) { published = append(published, page) })

	assert.False(t, c.StepBackward())
	assert.True(t, c.StepForward())
	assert.True(t, c.StepForward())
	assert.True(t, c.StepBackward())

	c.BeginTouch(at(10))
	assert.False(t, c.StepForward(), "stepping is disabled during a gesture")
	c.CancelTouch()

	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, []int{1, 2, 1}, published)

	c.SetCurrentPage(4)
	assert.False(t, c.StepForward())
}

func TestControllerLabels(t *testing.T) {
	c := NewController(Settings{NumberOfPages: 3, Labels: []string{"Cart", "", "Pay", "extra"}})

	assert.Equal(t, "Cart", c.Label(0))
	assert.Equal(t, "Step 2", c.Label(1))
	assert.Equal(t, "Pay", c.Label(2))

	c.SetLabel(2, "")
	assert.Equal(t, "Step 3", c.Label(2))
}

func TestControllerCompletedPages(t *testing.T) {
	c := newTestController(t, PolicyDiscrete, 2)

	assert.True(t, c.IsCompleted(0))
	assert.True(t, c.IsCompleted(1))
	assert.False(t, c.IsCompleted(2))
	assert.False(t, c.IsCompleted(3))
}

func TestControllerOrientationChange(t *testing.T) {
	c := newTestController(t, PolicyDiscrete, 0)

	c.BeginTouch(at(225))
	c.SetOrientation(OrientationVertical)

	assert.False(t, c.IsTracking())
	assert.Empty(t, highlightedPages(c))
	assert.Equal(t, OrientationVertical, c.Orientation())
}
