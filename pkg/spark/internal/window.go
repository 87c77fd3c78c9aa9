package internal

import (
	"os"
	"strconv"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects the SDL window flags and, optionally, its size.
type WindowOptions struct {
	Width      int32 // Zero uses the display width
	Height     int32 // Zero uses the display height
	Borderless bool  // Remove window decorations
	Resizable  bool  // Allow window resizing
	Fullscreen bool  // Fullscreen at desktop resolution
	Hidden     bool  // Start hidden
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) flags() uint32 {
	var flags uint32 = sdl.WINDOW_ALLOW_HIGHDPI

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// Window wraps the SDL window and renderer shared by every component.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	hasVSync          bool
	lastPresentTime   uint64
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	width, height := winOpts.Width, winOpts.Height

	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logging.GetInternalLogger().Error("Failed to get display mode", "error", err)
			mode = sdl.DisplayMode{W: 1024, H: 768}
		}
		width, height = mode.W, mode.H
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, 1024)
		height = envSize(constants.WindowHeightEnvVar, 768)
	}

	logging.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.flags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            window,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		hasVSync:          vsync,
	}

	win.loadBackground()

	return win, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logging.GetInternalLogger().Warn("Invalid window size; using default", "variable", name, "value", v)
		return fallback
	}
	return int32(n)
}

func (window *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if !window.DisplayBackground || path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		logging.GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size returns the renderer's logical output size. Pointer coordinates are
// reported in the same space.
func (window *Window) Size() (int32, int32) {
	if w, h := window.Renderer.GetLogicalSize(); w > 0 && h > 0 {
		return w, h
	}
	w, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		return window.Window.GetSize()
	}
	return w, h
}

// Clear paints the background image, or the theme background color.
func (window *Window) Clear() {
	if window.Background != nil {
		w, h := window.Size()
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{W: w, H: h})
		return
	}

	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	window.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
