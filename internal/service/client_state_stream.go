package service

import (
	"sync"

	"github.com/MKhiriev/go-cwa-home/models"
)

// SubmissionStateStream fans published states out to subscribers.
//
// Each subscriber holds at most one undelivered state: a newer state
// replaces an unread older one, so a slow reader skips intermediate states
// but never sees them out of order. A new subscriber first receives the
// latest published state.
type SubmissionStateStream struct {
	mu        sync.Mutex
	latest    models.SubmissionCardState
	hasLatest bool
	nextID    int
	subs      map[int]chan models.SubmissionCardState
	closed    bool
}

func NewSubmissionStateStream() *SubmissionStateStream {
	return &SubmissionStateStream{subs: make(map[int]chan models.SubmissionCardState)}
}

// Publish records state as the latest one and offers it to every
// subscriber without blocking. Publishing after Close is a no-op.
func (s *SubmissionStateStream) Publish(state models.SubmissionCardState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.latest = state
	s.hasLatest = true

	for _, ch := range s.subs {
		offer(ch, state)
	}
}

// offer puts state into ch, dropping the unread value it may hold. Only
// Publish sends on ch and it runs under the stream lock, so the second send
// always finds room.
func offer(ch chan models.SubmissionCardState, state models.SubmissionCardState) {
	select {
	case ch <- state:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}
	ch <- state
}

// Subscribe registers a new subscriber. The returned cancel function closes
// the channel and may be called more than once.
func (s *SubmissionStateStream) Subscribe() (<-chan models.SubmissionCardState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan models.SubmissionCardState, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	if s.hasLatest {
		ch <- s.latest
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

// Latest returns the last published state and whether there is one.
func (s *SubmissionStateStream) Latest() (models.SubmissionCardState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest, s.hasLatest
}

// Close closes every subscriber channel. Later subscriptions get a closed
// channel.
func (s *SubmissionStateStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
