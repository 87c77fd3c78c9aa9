// Package flow runs one screen per progress tracker step.
//
// A Flow owns a tracker.Controller. Each step page has a registered screen
// function; after a screen returns, a single transition function decides
// which page comes next. The flow moves the tracker to that page so the
// indicators always show where the user is.
//
// # Basic Usage
//
//	c := tracker.NewController(tracker.Settings{NumberOfPages: 3, Policy: tracker.PolicyDiscrete})
//
//	f := flow.New(c)
//	f.Register(0, cartScreen)
//	f.Register(1, addressScreen)
//	f.Register(2, paymentScreen)
//	f.OnTransition(flow.Linear(c.NumberOfPages(), isBack))
//
//	err := f.Run(nil)
//
// # History
//
// Linear pushes every page it leaves onto the History together with the
// screen's input and result. Going back pops the entry, so the earlier screen
// receives its previous result as Resume and can restore its state. A page is
// on the history at most once, and entries for pages a screen removed from
// the tracker are dropped before the next page is chosen.
//
// # Jumps
//
// A screen may return a Jump to move to any page, for example the page the
// user picked on the tracker itself.
package flow
