package tracker

// discreteHandler allows one page transition per gesture. The target is the
// page adjacent to current toward the finger; once acquired it holds until
// release, when it is committed.
type discreteHandler struct {
	s *session
}

func (h *discreteHandler) Policy() Policy     { return PolicyDiscrete }
func (h *discreteHandler) CurrentPage() int   { return h.s.CurrentPage() }
func (h *discreteHandler) TrackingPage() int  { return h.s.TrackingPage() }
func (h *discreteHandler) Pages() *PageStream { return h.s.Pages() }

func (h *discreteHandler) BeginTracking(p Point) HighlightChange {
	return h.s.acquire(p)
}

func (h *discreteHandler) ContinueTracking(p Point) HighlightChange {
	closest, ok := h.s.closest(p)
	if !ok {
		return h.s.unchanged()
	}

	// Back over the origin aborts the transition.
	if closest == h.s.current {
		return h.s.setTracking(NoPage)
	}

	if h.s.tracking == NoPage {
		return h.s.setTracking(h.s.stepToward(h.s.current, closest))
	}

	return h.s.unchanged()
}

// EndTracking commits only a target the user has already been shown. A
// release is not treated as a last move.
func (h *discreteHandler) EndTracking(p Point) HighlightChange {
	return h.s.finish(p, h.s.tracking)
}
