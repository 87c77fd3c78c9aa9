package tracker

// noneHandler ignores every event. Its stream never emits.
type noneHandler struct {
	s *session
}

func (h *noneHandler) Policy() Policy     { return PolicyNone }
func (h *noneHandler) CurrentPage() int   { return h.s.current }
func (h *noneHandler) TrackingPage() int  { return NoPage }
func (h *noneHandler) Pages() *PageStream { return h.s.pages }

func (h *noneHandler) BeginTracking(Point) HighlightChange    { return HighlightChange{NoPage, NoPage} }
func (h *noneHandler) ContinueTracking(Point) HighlightChange { return HighlightChange{NoPage, NoPage} }

func (h *noneHandler) EndTracking(Point) HighlightChange {
	h.s.frames = nil
	return HighlightChange{NoPage, NoPage}
}
