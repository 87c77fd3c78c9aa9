package tracker

// NoPage marks the absence of a page, e.g. an idle tracking index.
const NoPage = -1

// HighlightChange describes how indicator highlighting moves as the tracking
// page changes. From is the page highlighted before the event and To the page
// highlighted after it; either may be NoPage. From == To re-affirms the
// current highlight.
type HighlightChange struct {
	From int
	To   int
}

// Changed reports whether the highlighted page moved.
func (c HighlightChange) Changed() bool {
	return c.From != c.To
}

// Highlighter is implemented by whatever owns the indicators' highlight flags.
type Highlighter interface {
	SetHighlighted(page int, highlighted bool)
}

// Apply performs the change on h in one step: the old indicator is cleared
// and the new one set, so no state with two highlighted indicators is left
// behind.
func (c HighlightChange) Apply(h Highlighter) {
	if c.From != NoPage && c.From != c.To {
		h.SetHighlighted(c.From, false)
	}
	if c.To != NoPage {
		h.SetHighlighted(c.To, true)
	}
}
