package internal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
)

const touchQueueSize = 64

// TouchConfig describes a raw touchscreen and how it maps onto the window.
type TouchConfig struct {
	DevicePath   string // e.g. /dev/input/event3
	WindowWidth  int32
	WindowHeight int32
	SwapXY       bool // Panels mounted in portrait report swapped axes
	InvertX      bool
	InvertY      bool
}

// eventReader is the part of *evdev.InputDevice the reader goroutine uses.
type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// TouchDevice reads single-contact touches from an evdev device and turns
// them into pointer events. Reading happens on its own goroutine; events are
// delivered on Events() for the UI loop to consume.
type TouchDevice struct {
	cfg    TouchConfig
	dev    eventReader
	events chan PointerEvent

	xRange, yRange evdev.AbsInfo

	running  *atomic.Bool
	touching *atomic.Bool
	wg       sync.WaitGroup
}

// OpenTouchDevice opens the device and starts reading from it.
func OpenTouchDevice(cfg TouchConfig) (*TouchDevice, error) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("open touch device %s: %w", cfg.DevicePath, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("read touch ranges %s: %w", cfg.DevicePath, err)
	}

	xRange, ok := infos[evdev.ABS_MT_POSITION_X]
	if !ok {
		xRange = infos[evdev.ABS_X]
	}
	yRange, ok := infos[evdev.ABS_MT_POSITION_Y]
	if !ok {
		yRange = infos[evdev.ABS_Y]
	}

	name, _ := dev.Name()
	logging.GetInternalLogger().Debug("Opened touch device",
		"path", cfg.DevicePath, "name", name,
		"x_min", xRange.Minimum, "x_max", xRange.Maximum,
		"y_min", yRange.Minimum, "y_max", yRange.Maximum)

	return startTouchDevice(cfg, dev, xRange, yRange), nil
}

func startTouchDevice(cfg TouchConfig, dev eventReader, xRange, yRange evdev.AbsInfo) *TouchDevice {
	td := &TouchDevice{
		cfg:      cfg,
		dev:      dev,
		events:   make(chan PointerEvent, touchQueueSize),
		xRange:   xRange,
		yRange:   yRange,
		running:  atomic.NewBool(true),
		touching: atomic.NewBool(false),
	}

	td.wg.Add(1)
	go td.readLoop()

	return td
}

// Events delivers pointer events in window coordinates.
func (td *TouchDevice) Events() <-chan PointerEvent {
	return td.events
}

// Flush discards queued events and returns how many were dropped. Call it
// before listening so touches made while nobody was reading are not replayed.
func (td *TouchDevice) Flush() int {
	n := 0
	for {
		select {
		case _, ok := <-td.events:
			if !ok {
				return n
			}
			n++
		default:
			return n
		}
	}
}

// Close stops the reader and releases the device.
func (td *TouchDevice) Close() error {
	if !td.running.CompareAndSwap(true, false) {
		return nil
	}
	err := td.dev.Close()
	td.wg.Wait()
	return err
}

func (td *TouchDevice) readLoop() {
	defer td.wg.Done()
	defer close(td.events)

	var (
		rawX, rawY int32
		pending    bool
		down       bool
		wasDown    bool
	)

	for td.running.Load() {
		ev, err := td.dev.ReadOne()
		if err != nil {
			if td.running.Load() && !errors.Is(err, os.ErrClosed) {
				logging.GetInternalLogger().Error("Touch device read failed", "path", td.cfg.DevicePath, "error", err)
			}
			break
		}

		switch ev.Type {
		case evdev.EV_ABS:
			switch ev.Code {
			case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
				rawX = ev.Value
				pending = true
			case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
				rawY = ev.Value
				pending = true
			}

		case evdev.EV_KEY:
			if ev.Code == evdev.BTN_TOUCH {
				down = ev.Value != 0
				pending = true
			}

		case evdev.EV_SYN:
			if ev.Code != evdev.SYN_REPORT || !pending {
				continue
			}
			pending = false

			x, y := td.scale(rawX, rawY)
			switch {
			case down && !wasDown:
				td.emit(PointerEvent{Phase: PointerBegan, X: x, Y: y})
			case down:
				td.emit(PointerEvent{Phase: PointerMoved, X: x, Y: y})
			case wasDown:
				td.emit(PointerEvent{Phase: PointerEnded, X: x, Y: y})
			}
			wasDown = down
			td.touching.Store(down)
		}
	}

	// A device that disappears mid-touch still ends the gesture.
	if td.touching.Load() {
		x, y := td.scale(rawX, rawY)
		td.emit(PointerEvent{Phase: PointerEnded, X: x, Y: y})
		td.touching.Store(false)
	}
}

// emit never blocks. With the queue full a move is dropped, while a begin or
// end evicts the oldest queued event. The reader is the only sender, so a
// freed slot stays free until the next send.
func (td *TouchDevice) emit(e PointerEvent) {
	for {
		select {
		case td.events <- e:
			return
		default:
		}

		if e.Phase == PointerMoved {
			return
		}

		select {
		case <-td.events:
		default:
		}
	}
}

// IsTouching reports whether a finger is currently down.
func (td *TouchDevice) IsTouching() bool {
	return td.touching.Load()
}

func (td *TouchDevice) scale(rawX, rawY int32) (float64, float64) {
	nx := normalize(rawX, td.xRange)
	ny := normalize(rawY, td.yRange)
	if td.cfg.SwapXY {
		nx, ny = ny, nx
	}
	return mapTouch(nx, ny, td.cfg)
}

func normalize(v int32, info evdev.AbsInfo) float64 {
	span := float64(info.Maximum - info.Minimum)
	if span <= 0 {
		return 0
	}
	n := float64(v-info.Minimum) / span
	return min(max(n, 0), 1)
}

// mapTouch converts normalized panel coordinates into window coordinates.
func mapTouch(nx, ny float64, cfg TouchConfig) (float64, float64) {
	if cfg.InvertX {
		nx = 1 - nx
	}
	if cfg.InvertY {
		ny = 1 - ny
	}
	return nx * float64(cfg.WindowWidth), ny * float64(cfg.WindowHeight)
}
