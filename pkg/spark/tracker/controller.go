package tracker

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/locale"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
)

// Indicator is the controller-owned state of one step marker.
type Indicator struct {
	Frame       Rect   // Bounds in the tracker's coordinate space
	Highlighted bool   // Set while the step is the drag target
	Label       string // Custom label, empty for the localized default
}

// Delegate receives page changes caused by user interaction.
type Delegate interface {
	PageDidChange(c *Controller, page int)
}

// Settings configures a new Controller.
type Settings struct {
	NumberOfPages int
	CurrentPage   int
	Policy        Policy
	Orientation   Orientation
	Disabled      bool         // A disabled tracker ignores touches like PolicyNone
	Labels        []string     // Optional per-page labels
	Logger        *slog.Logger // Defaults to the internal framework logger
}

// Controller owns the indicators and the committed page of a progress
// tracker. It turns raw touch events into gestures, running one TouchHandler
// per gesture, and republishes the pages the handler commits.
//
// A Controller is not safe for concurrent use; drive it from the UI loop.
type Controller struct {
	indicators  []*Indicator
	current     int
	policy      Policy
	orientation Orientation
	disabled    bool

	handler     TouchHandler
	handlerSub  Subscription
	highlighted int
	gestureID   string

	pages        *PageStream
	valueChanged []func()
	delegate     Delegate
	logger       *slog.Logger
}

// NewController creates a controller. The page count is raised to at least
// one and the current page clamped into range.
func NewController(settings Settings) *Controller {
	logger := settings.Logger
	if logger == nil {
		logger = logging.GetInternalLogger()
	}

	c := &Controller{
		policy:      settings.Policy,
		orientation: settings.Orientation,
		disabled:    settings.Disabled,
		highlighted: NoPage,
		logger:      logger,
	}

	c.resetIndicators(max(settings.NumberOfPages, 1))
	for i, label := range settings.Labels {
		if i < len(c.indicators) {
			c.indicators[i].Label = label
		}
	}

	c.current = clamp(settings.CurrentPage, 0, len(c.indicators)-1)
	c.pages = NewPageStream(c.current)

	return c
}

func (c *Controller) resetIndicators(count int) {
	old := c.indicators
	c.indicators = make([]*Indicator, count)
	for i := range c.indicators {
		c.indicators[i] = &Indicator{}
		if i < len(old) {
			c.indicators[i].Label = old[i].Label
		}
	}
}

// NumberOfPages returns the number of steps.
func (c *Controller) NumberOfPages() int {
	return len(c.indicators)
}

// CurrentPage returns the committed page.
func (c *Controller) CurrentPage() int {
	return c.current
}

// TrackingPage returns the page highlighted as a drag target, or NoPage.
func (c *Controller) TrackingPage() int {
	if c.handler == nil {
		return NoPage
	}
	return c.handler.TrackingPage()
}

// IsTracking reports whether a gesture is in progress.
func (c *Controller) IsTracking() bool {
	return c.handler != nil
}

func (c *Controller) Policy() Policy {
	return c.policy
}

// SetPolicy changes the interaction policy. A gesture in progress keeps the
// policy it started with.
func (c *Controller) SetPolicy(policy Policy) {
	c.policy = policy
}

func (c *Controller) Orientation() Orientation {
	return c.orientation
}

// SetOrientation changes the layout axis and abandons any gesture in
// progress. Frames need to be laid out again afterwards.
func (c *Controller) SetOrientation(orientation Orientation) {
	if orientation == c.orientation {
		return
	}
	c.CancelTouch()
	c.orientation = orientation
}

func (c *Controller) IsEnabled() bool {
	return !c.disabled
}

// SetEnabled toggles user interaction. Disabling abandons any gesture.
func (c *Controller) SetEnabled(enabled bool) {
	if !enabled {
		c.CancelTouch()
	}
	c.disabled = !enabled
}

// SetCurrentPage moves the committed page programmatically. The value is
// clamped, any gesture is abandoned and no change is announced.
func (c *Controller) SetCurrentPage(page int) {
	c.CancelTouch()
	c.current = clamp(page, 0, len(c.indicators)-1)
	c.pages.reset(c.current)
}

// SetNumberOfPages recreates the indicators. Labels of surviving pages are
// kept, frames are reset and the current page is clamped.
func (c *Controller) SetNumberOfPages(count int) {
	c.CancelTouch()
	c.resetIndicators(max(count, 1))
	c.current = clamp(c.current, 0, len(c.indicators)-1)
	c.pages.reset(c.current)
}

// SetFrames assigns one frame per page. A gesture in progress is abandoned.
func (c *Controller) SetFrames(frames []Rect) error {
	if len(frames) != len(c.indicators) {
		return fmt.Errorf("tracker: %d frames for %d pages: %w", len(frames), len(c.indicators), ErrFrameCount)
	}

	c.CancelTouch()
	for i, frame := range frames {
		c.indicators[i].Frame = frame
	}
	return nil
}

// Layout distributes the indicators inside bounds along the orientation.
func (c *Controller) Layout(bounds Rect, spacing float64) {
	_ = c.SetFrames(LayoutFrames(len(c.indicators), c.orientation, bounds, spacing))
}

// Frames returns a copy of the indicator frames in page order.
func (c *Controller) Frames() []Rect {
	frames := make([]Rect, len(c.indicators))
	for i, ind := range c.indicators {
		frames[i] = ind.Frame
	}
	return frames
}

// Indicator returns a copy of the indicator at page.
func (c *Controller) Indicator(page int) (Indicator, bool) {
	if page < 0 || page >= len(c.indicators) {
		return Indicator{}, false
	}
	return *c.indicators[page], true
}

// SetLabel sets a custom label for page. An empty label restores the default.
func (c *Controller) SetLabel(page int, label string) {
	if page >= 0 && page < len(c.indicators) {
		c.indicators[page].Label = label
	}
}

// Label returns the custom label of page, or the localized default.
func (c *Controller) Label(page int) string {
	if page >= 0 && page < len(c.indicators) && c.indicators[page].Label != "" {
		return c.indicators[page].Label
	}
	return locale.StepLabel(page)
}

// IsCompleted reports whether page lies before the current page.
func (c *Controller) IsCompleted(page int) bool {
	return page < c.current
}

// SetDelegate sets the delegate notified of user-driven page changes.
func (c *Controller) SetDelegate(d Delegate) {
	c.delegate = d
}

// Pages returns the public stream of user-driven page changes.
func (c *Controller) Pages() *PageStream {
	return c.pages
}

// OnPageChange subscribes fn to user-driven page changes.
func (c *Controller) OnPageChange(fn func(page int)) Subscription {
	return c.pages.Subscribe(fn)
}

// OnValueChanged registers fn to be called after every user-driven change,
// once the page change has been announced.
func (c *Controller) OnValueChanged(fn func()) {
	c.valueChanged = append(c.valueChanged, fn)
}

// BeginTouch starts a new gesture at p. Any previous gesture is discarded
// first, clearing the highlight it left behind.
func (c *Controller) BeginTouch(p Point) {
	c.discardGesture()

	policy := c.policy
	if c.disabled {
		policy = PolicyNone
	}

	c.handler = NewTouchHandler(policy, c.current, c.Frames(), c.orientation.Axis())
	c.handlerSub = c.handler.Pages().Subscribe(c.commit)
	c.gestureID = uuid.NewString()

	c.logger.Debug("Tracker gesture began",
		"gesture", c.gestureID, "policy", policy.String(), "page", c.current, "x", p.X, "y", p.Y)

	c.apply(c.handler.BeginTracking(p))
}

// MoveTouch forwards a move of the active gesture. Without a gesture it is
// a no-op.
func (c *Controller) MoveTouch(p Point) {
	if c.handler == nil {
		return
	}
	c.apply(c.handler.ContinueTracking(p))
}

// EndTouch finishes the active gesture at p.
func (c *Controller) EndTouch(p Point) {
	if c.handler == nil {
		return
	}
	c.apply(c.handler.EndTracking(p))

	c.logger.Debug("Tracker gesture ended", "gesture", c.gestureID, "page", c.current)
	c.discardGesture()
}

// CancelTouch abandons the active gesture without committing anything.
func (c *Controller) CancelTouch() {
	if c.handler != nil {
		c.logger.Debug("Tracker gesture cancelled", "gesture", c.gestureID, "page", c.current)
	}
	c.discardGesture()
}

// StepForward commits the next page, as a directional control would.
// It reports whether the page changed.
func (c *Controller) StepForward() bool {
	return c.step(1)
}

// StepBackward commits the previous page. It reports whether the page changed.
func (c *Controller) StepBackward() bool {
	return c.step(-1)
}

func (c *Controller) step(delta int) bool {
	if c.disabled || c.policy == PolicyNone || c.handler != nil {
		return false
	}

	target := c.current + delta
	if target < 0 || target >= len(c.indicators) {
		return false
	}

	c.commit(target)
	return true
}

// SetHighlighted implements Highlighter for the controller's indicators.
func (c *Controller) SetHighlighted(page int, highlighted bool) {
	if page < 0 || page >= len(c.indicators) {
		return
	}
	c.indicators[page].Highlighted = highlighted
}

func (c *Controller) apply(change HighlightChange) {
	change.Apply(c)
	c.highlighted = change.To
}

func (c *Controller) clearHighlight() {
	if c.highlighted != NoPage {
		c.SetHighlighted(c.highlighted, false)
		c.highlighted = NoPage
	}
}

func (c *Controller) discardGesture() {
	if c.handler == nil {
		return
	}
	c.handlerSub.Cancel()
	c.clearHighlight()
	c.handler = nil
	c.gestureID = ""
}

func (c *Controller) commit(page int) {
	if page == c.current {
		return
	}

	c.current = page
	c.clearHighlight()

	c.logger.Debug("Tracker page committed", "gesture", c.gestureID, "page", page)

	c.pages.publish(page)
	if c.delegate != nil {
		c.delegate.PageDidChange(c, page)
	}
	for _, fn := range c.valueChanged {
		fn()
	}
}
