// Package tracker implements the interaction logic of the progress tracker:
// given a sequence of touch locations over an ordered row of step
// indicators, it decides which step is targeted, when the current page
// changes and what gets highlighted.
//
// A TouchHandler is built per gesture by the Controller from the live
// Policy. Handlers never touch indicators; every event returns a
// HighlightChange for the owner to apply, and committed pages are announced
// on the handler's PageStream.
package tracker

// TouchHandler is the per-gesture interaction state machine.
//
// A gesture is one BeginTracking, zero or more ContinueTracking and at most
// one EndTracking. A gesture may also be abandoned without EndTracking; the
// handler then simply becomes garbage.
type TouchHandler interface {
	// Policy returns the policy the handler was built for.
	Policy() Policy

	// CurrentPage returns the committed page as seen by this handler.
	CurrentPage() int

	// TrackingPage returns the highlighted drag target, or NoPage.
	TrackingPage() int

	// Pages returns the stream of pages committed by this handler.
	Pages() *PageStream

	BeginTracking(p Point) HighlightChange
	ContinueTracking(p Point) HighlightChange
	EndTracking(p Point) HighlightChange
}

// NewTouchHandler builds the handler for policy. frames is borrowed for the
// duration of one gesture and released by EndTracking.
func NewTouchHandler(policy Policy, currentPage int, frames []Rect, axis Axis) TouchHandler {
	s := &session{
		frames:   frames,
		axis:     axis,
		current:  currentPage,
		tracking: NoPage,
		pages:    NewPageStream(currentPage),
	}

	switch policy {
	case PolicyDiscrete:
		return &discreteHandler{s: s}
	case PolicyContinuous:
		return &continuousHandler{discrete: discreteHandler{s: s}}
	case PolicyIndependent:
		return &independentHandler{s: s}
	default:
		return &noneHandler{s: s}
	}
}

// session is the state shared by every handler variant.
type session struct {
	frames   []Rect
	axis     Axis
	current  int
	tracking int
	pages    *PageStream
}

func (s *session) CurrentPage() int   { return s.current }
func (s *session) TrackingPage() int  { return s.tracking }
func (s *session) Pages() *PageStream { return s.pages }

func (s *session) numberOfPages() int {
	return len(s.frames)
}

func (s *session) closest(p Point) (int, bool) {
	return IndexClosestTo(p, s.frames, s.axis)
}

// setTracking moves the tracking page and returns the matching highlight
// transition.
func (s *session) setTracking(page int) HighlightChange {
	change := HighlightChange{From: s.tracking, To: page}
	s.tracking = page
	return change
}

// unchanged re-affirms the current tracking page.
func (s *session) unchanged() HighlightChange {
	return HighlightChange{From: s.tracking, To: s.tracking}
}

func (s *session) commit(page int) {
	s.current = page
	s.pages.publish(page)
}

// stepToward returns the page one step from `from` in the direction of
// target, clamped to the valid range.
func (s *session) stepToward(from, target int) int {
	next := from + 1
	if target < from {
		next = from - 1
	}
	return clamp(next, 0, s.numberOfPages()-1)
}

// acquire targets the page adjacent to current in the direction of p.
// A touch over the current page, or no indicators at all, leaves the
// session idle.
func (s *session) acquire(p Point) HighlightChange {
	closest, ok := s.closest(p)
	if !ok || closest == s.current {
		return s.setTracking(NoPage)
	}
	return s.setTracking(s.stepToward(s.current, closest))
}

// finish commits the tracking page when the gesture ends away from the
// current page, then clears tracking and releases the frames. The returned
// change clears whatever was highlighted when finish was entered.
func (s *session) finish(p Point, highlighted int) HighlightChange {
	if closest, ok := s.closest(p); ok && closest != s.current && s.tracking != NoPage {
		s.commit(s.tracking)
	}

	s.tracking = NoPage
	s.frames = nil
	return HighlightChange{From: highlighted, To: NoPage}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
