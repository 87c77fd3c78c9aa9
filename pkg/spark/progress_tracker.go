package spark

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/locale"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

// ProgressTrackerSettings configures the ProgressTracker component.
type ProgressTrackerSettings struct {
	Policy      tracker.Policy      // How touches move the current step (default: discrete)
	Orientation tracker.Orientation // Horizontal row or vertical column
	InitialPage int
	Disabled    bool    // Touches and d-pad are ignored; confirm and back still work
	Spacing     float64 // Gap between indicators before scaling (default: 8)

	// ConfirmButton closes the tracker with the current step (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton cancels the tracker (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton hides the back button and disables its functionality
	DisableBackButton bool
	// HidePosition hides the "Step N of M" line under the title
	HidePosition bool

	FooterHelpItems []FooterHelpItem // nil shows the localized confirm and back hints
	OnPageChange    func(page int)   // Called for every page the user commits
}

// DefaultProgressTrackerSettings returns a horizontal discrete tracker.
func DefaultProgressTrackerSettings() ProgressTrackerSettings {
	return ProgressTrackerSettings{
		Policy:        tracker.PolicyDiscrete,
		Orientation:   tracker.OrientationHorizontal,
		Spacing:       constants.DefaultIndicatorSpacing,
		ConfirmButton: constants.VirtualButtonA,
		BackButton:    constants.VirtualButtonB,
	}
}

type progressTrackerController struct {
	title    string
	steps    []Step
	settings ProgressTrackerSettings
	tracker  *tracker.Controller

	directional internal.DirectionalInput
	textures    *internal.TextureCache
	footer      []FooterHelpItem

	layoutWidth  int32
	layoutHeight int32
	hitArea      tracker.Rect
	pointerDown  bool

	visited       []int
	inputDelay    time.Duration
	lastInputTime time.Time
	confirmed     bool // Anything else that closes the tracker cancels it
}

// ProgressTracker displays a row (or column) of step indicators that the user
// moves through by touch, mouse or d-pad. It blocks until the user confirms
// or goes back. Returns ErrCancelled if the user presses the back button.
func ProgressTracker(title string, steps []Step, settings ProgressTrackerSettings) (*ProgressTrackerResult, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("progress_tracker", errNotInitialized)
	}

	c := newProgressTrackerController(title, steps, settings)
	defer c.cleanup()

	for {
		if !c.handleEvents() {
			break
		}
		c.handleTouchDevice()
		c.update()

		c.layout(window)
		if err := c.render(window); err != nil {
			return nil, NewInfrastructureError("render", err)
		}
	}

	return c.result()
}

func newProgressTrackerController(title string, steps []Step, settings ProgressTrackerSettings) *progressTrackerController {
	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonA
	}
	if settings.BackButton == constants.VirtualButtonUnassigned {
		settings.BackButton = constants.VirtualButtonB
	}
	if settings.Spacing <= 0 {
		settings.Spacing = constants.DefaultIndicatorSpacing
	}

	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = s.Label
	}

	c := &progressTrackerController{
		title:    title,
		steps:    steps,
		settings: settings,
		tracker: tracker.NewController(tracker.Settings{
			NumberOfPages: len(steps),
			CurrentPage:   settings.InitialPage,
			Policy:        settings.Policy,
			Orientation:   settings.Orientation,
			Disabled:      settings.Disabled,
			Labels:        labels,
		}),
		directional:   internal.NewDirectionalInput(settings.Orientation == tracker.OrientationVertical),
		textures:      internal.NewTextureCacheWithSize(3*len(steps) + 16),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	c.footer = settings.FooterHelpItems
	if c.footer == nil {
		c.footer = []FooterHelpItem{{ButtonName: settings.ConfirmButton.GetName(), HelpText: locale.Localize(locale.MessageHelpConfirm, nil)}}
		if !settings.DisableBackButton {
			c.footer = append(c.footer, FooterHelpItem{ButtonName: settings.BackButton.GetName(), HelpText: locale.Localize(locale.MessageHelpBack, nil)})
		}
	}

	if td := internal.GetTouchDevice(); td != nil {
		if n := td.Flush(); n > 0 {
			logging.GetInternalLogger().Debug("Discarded stale touch events", "count", n)
		}
	}

	c.tracker.OnPageChange(func(page int) {
		c.visited = append(c.visited, page)
		logging.GetLogger().Info("Progress tracker page changed", "title", c.title, "page", page)
		if settings.OnPageChange != nil {
			settings.OnPageChange(page)
		}
	})

	return c
}

func (c *progressTrackerController) result() (*ProgressTrackerResult, error) {
	if !c.confirmed {
		return nil, ErrCancelled
	}

	page := c.tracker.CurrentPage()
	return &ProgressTrackerResult{
		Action:  ProgressTrackerActionConfirmed,
		Page:    page,
		Step:    c.steps[page],
		Visited: c.visited,
	}, nil
}

func (c *progressTrackerController) handleEvents() bool {
	window := internal.GetWindow()
	width, height := window.Size()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return false
		}

		if pe := internal.PointerEventFrom(event, width, height); pe != nil {
			c.handlePointer(*pe)
			continue
		}

		inputEvent := internal.ButtonEvent(event)
		if inputEvent == nil {
			continue
		}

		if !inputEvent.Pressed {
			c.directional.Release(inputEvent.Button)
			continue
		}

		if time.Since(c.lastInputTime) < c.inputDelay {
			continue
		}
		c.lastInputTime = time.Now()

		if !c.handleButton(inputEvent.Button) {
			return false
		}
	}
	return true
}

// handleButton reacts to a button press and returns false once the tracker
// should close.
func (c *progressTrackerController) handleButton(button constants.VirtualButton) bool {
	switch button {
	case c.settings.ConfirmButton, constants.VirtualButtonStart:
		c.tracker.CancelTouch()
		c.pointerDown = false
		c.confirmed = true
		return false
	case c.settings.BackButton:
		if !c.settings.DisableBackButton {
			c.tracker.CancelTouch()
			c.pointerDown = false
			return false
		}
		return true
	}

	c.stepDirection(c.directional.Press(button))
	return true
}

func (c *progressTrackerController) handleTouchDevice() {
	td := internal.GetTouchDevice()
	if td == nil {
		return
	}
	for {
		select {
		case pe, ok := <-td.Events():
			if !ok {
				return
			}
			c.handlePointer(pe)
		default:
			return
		}
	}
}

func (c *progressTrackerController) handlePointer(pe internal.PointerEvent) {
	p := tracker.Point{X: pe.X, Y: pe.Y}

	switch pe.Phase {
	case internal.PointerBegan:
		if !c.hitArea.Contains(p) {
			return
		}
		c.pointerDown = true
		c.directional.Reset()
		c.tracker.BeginTouch(p)
	case internal.PointerMoved:
		if c.pointerDown {
			c.tracker.MoveTouch(p)
		}
	case internal.PointerEnded:
		if c.pointerDown {
			c.pointerDown = false
			c.tracker.EndTouch(p)
		}
	}
}

func (c *progressTrackerController) update() {
	if c.pointerDown {
		return
	}
	c.stepDirection(c.directional.Update())
}

func (c *progressTrackerController) stepDirection(dir internal.Direction) {
	switch dir {
	case internal.DirectionForward:
		c.tracker.StepForward()
	case internal.DirectionBackward:
		c.tracker.StepBackward()
	}
}

// layout recomputes indicator frames when the window size changes.
func (c *progressTrackerController) layout(window *internal.Window) {
	width, height := window.Size()
	if width == c.layoutWidth && height == c.layoutHeight {
		return
	}
	c.layoutWidth, c.layoutHeight = width, height

	bounds, hit := trackerBounds(width, height, c.tracker.Orientation(), internal.GetScaleFactor())
	c.hitArea = hit
	c.pointerDown = false
	c.tracker.Layout(bounds, c.settings.Spacing*float64(internal.GetScaleFactor()))
}

// trackerBounds returns the indicator strip and the larger area that accepts
// touches, for a window of the given size.
func trackerBounds(width, height int32, orientation tracker.Orientation, scale float32) (bounds, hit tracker.Rect) {
	margins := trackerMargins.Scaled(scale)
	size := float64(indicatorSize) * float64(scale)
	slop := size

	w, h := float64(width), float64(height)

	if orientation == tracker.OrientationVertical {
		top := float64(margins.Top) + float64(titleAreaHeight)*float64(scale)
		bounds = tracker.Rect{
			X:      float64(margins.Left),
			Y:      top,
			Width:  size,
			Height: max(h-top-float64(margins.Bottom), 0),
		}
	} else {
		bounds = tracker.Rect{
			X:      float64(margins.Left),
			Y:      h/2 - size/2,
			Width:  max(w-float64(margins.Left+margins.Right), 0),
			Height: size,
		}
	}

	hit = tracker.Rect{
		X:      bounds.X - slop,
		Y:      bounds.Y - slop,
		Width:  bounds.Width + 2*slop,
		Height: bounds.Height + 2*slop,
	}
	return bounds, hit
}

func (c *progressTrackerController) cleanup() {
	c.tracker.CancelTouch()
	c.textures.Destroy()
}
