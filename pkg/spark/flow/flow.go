package flow

import (
	"errors"
	"fmt"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

// Exit is the page a transition returns to end the flow.
const Exit = -1

// ErrNoTransition is returned by Run when OnTransition was never called.
var ErrNoTransition = errors.New("flow: no transition function set")

// ScreenFunc runs the screen of one page.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc picks the page that follows page and the input to show it
// with. Returning Exit ends the flow.
type TransitionFunc func(page int, input, result any, history *History) (next int, nextInput any)

// Jump is a screen result that moves the flow straight to Page.
type Jump struct {
	Page  int
	Input any
}

// Flow drives a tracker through a sequence of step screens.
type Flow struct {
	tracker    *tracker.Controller
	screens    map[int]ScreenFunc
	transition TransitionFunc
	history    *History
}

// New creates a flow over c.
func New(c *tracker.Controller) *Flow {
	return &Flow{
		tracker: c,
		screens: make(map[int]ScreenFunc),
		history: NewHistory(),
	}
}

// Register sets the screen shown for page.
func (f *Flow) Register(page int, fn ScreenFunc) *Flow {
	f.screens[page] = fn
	return f
}

// OnTransition sets the function that decides navigation.
func (f *Flow) OnTransition(fn TransitionFunc) *Flow {
	f.transition = fn
	return f
}

// History returns the navigation history.
func (f *Flow) History() *History {
	return f.history
}

// Run starts at the tracker's current page and shows screens until the
// transition returns Exit or a screen fails. Jump results bypass the
// transition function. History entries for pages a screen removed from the
// tracker are dropped before the next page is chosen.
func (f *Flow) Run(input any) error {
	if f.transition == nil {
		return ErrNoTransition
	}

	page := f.tracker.CurrentPage()
	for {
		fn, ok := f.screens[page]
		if !ok {
			return fmt.Errorf("flow: page %d not registered", page)
		}

		result, err := fn(input)
		if err != nil {
			return fmt.Errorf("flow: page %d: %w", page, err)
		}

		// The screen may have removed pages from the tracker.
		if n := f.history.Trim(f.tracker.NumberOfPages()); n > 0 {
			logging.GetInternalLogger().Debug("Flow history trimmed", "dropped", n, "pages", f.tracker.NumberOfPages())
		}

		var next int
		var nextInput any
		if jump, ok := result.(Jump); ok {
			f.history.Push(page, input, nil)
			next, nextInput = jump.Page, jump.Input
		} else {
			next, nextInput = f.transition(page, input, result, f.history)
		}

		if next == Exit {
			return nil
		}
		if next < 0 || next >= f.tracker.NumberOfPages() {
			return fmt.Errorf("flow: page %d out of range [0, %d)", next, f.tracker.NumberOfPages())
		}

		logging.GetInternalLogger().Debug("Flow transition", "from", page, "to", next)

		f.tracker.SetCurrentPage(next)
		page, input = next, nextInput
	}
}

// Linear returns a transition that advances one page per screen and exits
// after the last one. Results for which isBack reports true pop the history
// instead; backing out of the first page exits. The screen returned to gets
// its earlier result as input.
func Linear(pages int, isBack func(result any) bool) TransitionFunc {
	return func(page int, input, result any, history *History) (int, any) {
		if isBack != nil && isBack(result) {
			entry := history.Pop()
			if entry == nil {
				return Exit, nil
			}
			return entry.Page, Resume{Input: entry.Input, Result: entry.Result}
		}

		if page+1 >= pages {
			return Exit, nil
		}
		history.Push(page, input, result)
		return page + 1, nil
	}
}

// Resume is the input Linear passes to a page reached by going back.
type Resume struct {
	Input  any // Input the page was first shown with
	Result any // Result the page returned before moving on
}
