package tracker

// PageStream announces committed page indexes to subscribers.
//
// The stream is created with the initial page, which is never delivered:
// subscribers only hear about changes. Every later commit is delivered in
// order, synchronously, on the goroutine that made it. A commit equal to the
// last announced page is dropped, so subscribers never see the same page
// twice in a row.
type PageStream struct {
	last        int
	nextID      int
	subscribers []pageSubscriber
}

type pageSubscriber struct {
	id int
	fn func(page int)
}

// Subscription allows removing a subscriber registered on a PageStream.
type Subscription struct {
	id     int
	stream *PageStream
}

// NewPageStream creates a stream whose initial value is initial.
func NewPageStream(initial int) *PageStream {
	return &PageStream{last: initial}
}

// Subscribe registers fn for every subsequent distinct commit.
func (s *PageStream) Subscribe(fn func(page int)) Subscription {
	s.nextID++
	s.subscribers = append(s.subscribers, pageSubscriber{id: s.nextID, fn: fn})
	return Subscription{id: s.nextID, stream: s}
}

// Last returns the most recently announced page, or the initial page.
func (s *PageStream) Last() int {
	return s.last
}

// Cancel unregisters the subscriber. Cancelling twice is a no-op.
func (s Subscription) Cancel() {
	if s.stream == nil {
		return
	}
	subs := s.stream.subscribers
	for i, sub := range subs {
		if sub.id == s.id {
			s.stream.subscribers = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// publish announces page and reports whether it was delivered.
func (s *PageStream) publish(page int) bool {
	if page == s.last {
		return false
	}
	s.last = page

	// Subscribers may cancel themselves while being notified.
	snapshot := append([]pageSubscriber(nil), s.subscribers...)
	for _, sub := range snapshot {
		sub.fn(page)
	}
	return true
}

// reset moves the stream to page without notifying anyone.
func (s *PageStream) reset(page int) {
	s.last = page
}
