package internal

import (
	"os"
	"sync"
	"testing"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader replays a fixed event script, then blocks until closed.
// idle is closed once the script has been fully consumed.
type scriptedReader struct {
	script   []*evdev.InputEvent
	idle     chan struct{}
	closed   chan struct{}
	idleOnce sync.Once
	once     sync.Once
}

func newScriptedReader(script []*evdev.InputEvent) *scriptedReader {
	return &scriptedReader{
		script: script,
		idle:   make(chan struct{}),
		closed: make(chan struct{}),
	}
}

func (r *scriptedReader) ReadOne() (*evdev.InputEvent, error) {
	if len(r.script) > 0 {
		ev := r.script[0]
		r.script = r.script[1:]
		return ev, nil
	}
	r.idleOnce.Do(func() { close(r.idle) })
	<-r.closed
	return nil, os.ErrClosed
}

func (r *scriptedReader) Close() error {
	r.once.Do(func() { close(r.closed) })
	return nil
}

func touchDown(x, y int32) []*evdev.InputEvent {
	return []*evdev.InputEvent{
		{Type: evdev.EV_KEY, Code: evdev.BTN_TOUCH, Value: 1},
		{Type: evdev.EV_ABS, Code: evdev.ABS_X, Value: x},
		{Type: evdev.EV_ABS, Code: evdev.ABS_Y, Value: y},
		{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT},
	}
}

func touchUp() []*evdev.InputEvent {
	return []*evdev.InputEvent{
		{Type: evdev.EV_KEY, Code: evdev.BTN_TOUCH, Value: 0},
		{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT},
	}
}

func taps(n int, x, y int32) []*evdev.InputEvent {
	var script []*evdev.InputEvent
	for range n {
		script = append(script, touchDown(x, y)...)
		script = append(script, touchUp()...)
	}
	return script
}

func startScripted(t *testing.T, script []*evdev.InputEvent) (*TouchDevice, *scriptedReader) {
	t.Helper()
	r := newScriptedReader(script)
	td := startTouchDevice(TouchConfig{WindowWidth: 100, WindowHeight: 100}, r,
		evdev.AbsInfo{Maximum: 1000}, evdev.AbsInfo{Maximum: 1000})

	select {
	case <-r.idle:
	case <-time.After(2 * time.Second):
		t.Fatal("reader stalled before consuming its input")
	}
	return td, r
}

func closeWithin(t *testing.T, td *TouchDevice) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- td.Close() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
}

func drain(td *TouchDevice) []PointerEvent {
	var got []PointerEvent
	for e := range td.Events() {
		got = append(got, e)
	}
	return got
}

func TestTouchDeviceKeepsReadingWhenNobodyListens(t *testing.T) {
	td, _ := startScripted(t, taps(100, 500, 500))

	closeWithin(t, td)

	got := drain(td)
	require.Len(t, got, touchQueueSize)
	assert.Equal(t, PointerBegan, got[0].Phase)
	assert.Equal(t, PointerEnded, got[len(got)-1].Phase, "the newest events are kept")
	assert.InDelta(t, 50.0, got[0].X, 1e-9)
}

func TestTouchDeviceFlushDiscardsQueuedEvents(t *testing.T) {
	td, _ := startScripted(t, taps(3, 0, 0))

	assert.Equal(t, 6, td.Flush())
	assert.Equal(t, 0, td.Flush())

	closeWithin(t, td)
	assert.Empty(t, drain(td))
}

func TestTouchDeviceEndsGestureWhenClosedMidTouch(t *testing.T) {
	td, _ := startScripted(t, touchDown(250, 750))
	require.True(t, td.IsTouching())

	closeWithin(t, td)

	got := drain(td)
	require.Len(t, got, 2)
	assert.Equal(t, PointerBegan, got[0].Phase)
	assert.Equal(t, PointerEnded, got[1].Phase)
	assert.InDelta(t, 25.0, got[1].X, 1e-9)
	assert.InDelta(t, 75.0, got[1].Y, 1e-9)
	assert.False(t, td.IsTouching())
}

func TestNormalizeClampsToRange(t *testing.T) {
	info := evdev.AbsInfo{Minimum: 100, Maximum: 1100}

	assert.InDelta(t, 0.0, normalize(100, info), 1e-9)
	assert.InDelta(t, 0.5, normalize(600, info), 1e-9)
	assert.InDelta(t, 1.0, normalize(1100, info), 1e-9)
	assert.InDelta(t, 0.0, normalize(0, info), 1e-9)
	assert.InDelta(t, 1.0, normalize(5000, info), 1e-9)
	assert.InDelta(t, 0.0, normalize(10, evdev.AbsInfo{}), 1e-9, "an empty range maps to the origin")
}

func TestMapTouchScalesToWindow(t *testing.T) {
	cfg := TouchConfig{WindowWidth: 640, WindowHeight: 480}

	x, y := mapTouch(0.25, 0.5, cfg)
	assert.InDelta(t, 160.0, x, 1e-9)
	assert.InDelta(t, 240.0, y, 1e-9)

	cfg.InvertX = true
	x, y = mapTouch(0.25, 0.5, cfg)
	assert.InDelta(t, 480.0, x, 1e-9)
	assert.InDelta(t, 240.0, y, 1e-9)

	cfg.InvertY = true
	_, y = mapTouch(0.25, 0.25, cfg)
	assert.InDelta(t, 360.0, y, 1e-9)
}

func TestScaleSwapsAxes(t *testing.T) {
	td := &TouchDevice{
		cfg:    TouchConfig{WindowWidth: 800, WindowHeight: 600, SwapXY: true},
		xRange: evdev.AbsInfo{Maximum: 1000},
		yRange: evdev.AbsInfo{Maximum: 2000},
	}

	x, y := td.scale(250, 1000)
	assert.InDelta(t, 400.0, x, 1e-9)
	assert.InDelta(t, 150.0, y, 1e-9)
}
