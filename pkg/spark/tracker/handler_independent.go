package tracker

// independentHandler jumps straight to whichever page the gesture starts on.
// The target chosen at begin is held until release.
type independentHandler struct {
	s *session
}

func (h *independentHandler) Policy() Policy     { return PolicyIndependent }
func (h *independentHandler) CurrentPage() int   { return h.s.CurrentPage() }
func (h *independentHandler) TrackingPage() int  { return h.s.TrackingPage() }
func (h *independentHandler) Pages() *PageStream { return h.s.Pages() }

func (h *independentHandler) BeginTracking(p Point) HighlightChange {
	closest, ok := h.s.closest(p)
	if !ok || closest == h.s.current {
		return h.s.setTracking(NoPage)
	}
	return h.s.setTracking(closest)
}

func (h *independentHandler) ContinueTracking(Point) HighlightChange {
	return h.s.unchanged()
}

func (h *independentHandler) EndTracking(p Point) HighlightChange {
	return h.s.finish(p, h.s.tracking)
}
