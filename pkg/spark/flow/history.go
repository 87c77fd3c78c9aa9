package flow

// Entry is a page the flow moved on from.
type Entry struct {
	Page   int
	Input  any // Input the page was shown with
	Result any // Result it returned when the flow left it
}

// History is the back stack of a flow. A page is recorded at most once:
// pushing a page already on the stack rewinds to it, so 0, 1, 2, 1 followed
// by a back lands on 0.
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

// Push records leaving page. Entries from an earlier visit of page onward
// are discarded first.
func (h *History) Push(page int, input, result any) {
	if i := h.index(page); i >= 0 {
		h.entries = h.entries[:i]
	}
	h.entries = append(h.entries, Entry{Page: page, Input: input, Result: result})
}

// Pop removes and returns the most recent entry, or nil when there is none.
func (h *History) Pop() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return &entry
}

// Trim drops entries for pages the tracker no longer has and reports how
// many were dropped.
func (h *History) Trim(numberOfPages int) int {
	kept := h.entries[:0]
	for _, e := range h.entries {
		if e.Page < numberOfPages {
			kept = append(kept, e)
		}
	}
	dropped := len(h.entries) - len(kept)
	h.entries = kept
	return dropped
}

func (h *History) Contains(page int) bool {
	return h.index(page) >= 0
}

// Pages lists the recorded pages, oldest first.
func (h *History) Pages() []int {
	pages := make([]int, len(h.entries))
	for i, e := range h.entries {
		pages[i] = e.Page
	}
	return pages
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) index(page int) int {
	for i, e := range h.entries {
		if e.Page == page {
			return i
		}
	}
	return -1
}
