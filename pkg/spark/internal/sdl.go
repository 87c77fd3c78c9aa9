package internal

import (
	"fmt"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var (
	window      *Window
	touchDevice *TouchDevice
)

// Init starts the SDL subsystems and opens the shared window. A touch device
// is opened when touch.DevicePath is set; failing to open it only disables
// raw touch input.
func Init(title string, showBackground bool, winOpts WindowOptions, touch TouchConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	// Touchscreens report fingers, not emulated mouse clicks.
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logging.GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	openControllers()

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	w, err := initWindow(title, showBackground, winOpts)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window = w

	if err := initFonts(GetTheme().FontPath); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	if touch.DevicePath != "" {
		touch.WindowWidth, touch.WindowHeight = window.Size()
		td, err := OpenTouchDevice(touch)
		if err != nil {
			logging.GetInternalLogger().Warn("Touch device unavailable", "path", touch.DevicePath, "error", err)
		} else {
			touchDevice = td
		}
	}

	return nil
}

// GetTouchDevice returns the raw touch device opened by Init, or nil.
func GetTouchDevice() *TouchDevice {
	return touchDevice
}

func SDLCleanup() {
	if touchDevice != nil {
		if err := touchDevice.Close(); err != nil {
			logging.GetInternalLogger().Warn("Failed to close touch device", "error", err)
		}
		touchDevice = nil
	}
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	logging.CloseLogger()
}
