package tracker

// continuousHandler lets a drag traverse several pages. Each page the finger
// moves past is committed immediately, one at a time, in the order crossed.
// Acquisition and the release rule are the discrete ones.
type continuousHandler struct {
	discrete discreteHandler
}

func (h *continuousHandler) Policy() Policy     { return PolicyContinuous }
func (h *continuousHandler) CurrentPage() int   { return h.discrete.CurrentPage() }
func (h *continuousHandler) TrackingPage() int  { return h.discrete.TrackingPage() }
func (h *continuousHandler) Pages() *PageStream { return h.discrete.Pages() }

func (h *continuousHandler) BeginTracking(p Point) HighlightChange {
	return h.discrete.BeginTracking(p)
}

func (h *continuousHandler) ContinueTracking(p Point) HighlightChange {
	s := h.discrete.s

	closest, ok := s.closest(p)
	if !ok {
		return s.unchanged()
	}

	if closest == s.current {
		return s.setTracking(NoPage)
	}

	if s.tracking == NoPage {
		return h.discrete.ContinueTracking(p)
	}

	target := s.tracking
	if closest == target {
		return s.unchanged()
	}

	next := s.stepToward(target, closest)
	s.commit(target)
	return s.setTracking(next)
}

// EndTracking applies the release point as a last move, so pages crossed
// between the final move and the release are still committed in order.
func (h *continuousHandler) EndTracking(p Point) HighlightChange {
	s := h.discrete.s
	highlighted := s.tracking
	h.ContinueTracking(p)
	return s.finish(p, highlighted)
}
