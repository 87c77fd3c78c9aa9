package internal

import (
	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a button press or release translated to a VirtualButton.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// PointerPhase is the stage of a pointer contact.
type PointerPhase int

const (
	PointerBegan PointerPhase = iota
	PointerMoved
	PointerEnded
)

func (p PointerPhase) String() string {
	switch p {
	case PointerBegan:
		return "began"
	case PointerMoved:
		return "moved"
	case PointerEnded:
		return "ended"
	default:
		return ""
	}
}

// PointerEvent is a mouse or touch contact in window coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if gc := sdl.GameControllerOpen(i); gc != nil {
			controllers = append(controllers, gc)
		}
	}
	logging.GetInternalLogger().Debug("Opened game controllers", "count", len(controllers))
}

func closeControllers() {
	for _, gc := range controllers {
		gc.Close()
	}
	controllers = nil
}

var keyboardButtons = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_SPACE:     constants.VirtualButtonStart,
}

var controllerButtons = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
}

// ButtonEvent translates keyboard and controller events. Other events, key
// repeats and unmapped keys return nil.
func ButtonEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := keyboardButtons[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := controllerButtons[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}
	return nil
}

// PointerEventFrom translates left mouse button and finger events into
// window coordinates. Mouse motion without a held button returns nil.
// width and height convert normalized finger positions.
func PointerEventFrom(event sdl.Event, width, height int32) *PointerEvent {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT || e.Which == sdl.TOUCH_MOUSEID {
			return nil
		}
		phase := PointerBegan
		if e.Type == sdl.MOUSEBUTTONUP {
			phase = PointerEnded
		}
		return &PointerEvent{Phase: phase, X: float64(e.X), Y: float64(e.Y)}

	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() == 0 || e.Which == sdl.TOUCH_MOUSEID {
			return nil
		}
		return &PointerEvent{Phase: PointerMoved, X: float64(e.X), Y: float64(e.Y)}

	case *sdl.TouchFingerEvent:
		pe := &PointerEvent{X: float64(e.X) * float64(width), Y: float64(e.Y) * float64(height)}
		switch e.Type {
		case sdl.FINGERDOWN:
			pe.Phase = PointerBegan
		case sdl.FINGERMOTION:
			pe.Phase = PointerMoved
		default:
			pe.Phase = PointerEnded
		}
		return pe
	}
	return nil
}
