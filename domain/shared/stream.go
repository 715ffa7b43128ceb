package shared

import (
	"context"
	"sync"
)

// Stream is a push-based observable collection. Every successful mutation of
// the backing store publishes a fresh snapshot to all current subscribers;
// there is no polling. Subscribers always receive copies, never a live
// reference into the publisher's state.
type Stream[T any] struct {
	mu      sync.RWMutex
	subs    map[int]chan []T
	nextID  int
	last    []T
	hasLast bool
}

func NewStream[T any]() *Stream[T] {
	return &Stream[T]{subs: make(map[int]chan []T)}
}

// Subscribe registers a new subscriber and returns its snapshot channel along
// with a cancel function. If a snapshot has already been published, it is
// delivered immediately so late subscribers do not start blank. The channel
// holds at most one pending snapshot; an unread one is replaced by the next,
// so a slow subscriber always wakes up to the latest state.
func (s *Stream[T]) Subscribe(ctx context.Context) (<-chan []T, func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan []T, 1)
	s.subs[id] = ch
	if s.hasLast {
		ch <- cloneSnapshot(s.last)
	}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}

	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}

	return ch, cancel
}

// Publish fans a snapshot out to every subscriber. The given slice is copied
// once per subscriber so no two observers share backing storage.
func (s *Stream[T]) Publish(snapshot []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = cloneSnapshot(snapshot)
	s.hasLast = true

	for _, ch := range s.subs {
		select {
		case ch <- cloneSnapshot(snapshot):
		default:
			// Replace the stale pending snapshot with the current one.
			select {
			case <-ch:
			default:
			}
			ch <- cloneSnapshot(snapshot)
		}
	}
}

// Latest returns the most recently published snapshot, or false if nothing
// has been published yet.
func (s *Stream[T]) Latest() ([]T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasLast {
		return nil, false
	}
	return cloneSnapshot(s.last), true
}

// SubscriberCount reports how many subscribers are currently registered.
func (s *Stream[T]) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func cloneSnapshot[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
