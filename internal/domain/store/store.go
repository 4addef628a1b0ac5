// Package store holds the single state tree and applies actions to it one at
// a time.
package store

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

const queueSize = 256

// Reducer computes the next state. It must not mutate its input.
type Reducer[S any] func(state S, a action.Action) S

// Observer sees every action after it was reduced.
type Observer interface {
	Observe(a action.Action)
}

type ObserverFunc func(a action.Action)

func (f ObserverFunc) Observe(a action.Action) { f(a) }

type Store[S any] struct {
	log    *slog.Logger
	reduce Reducer[S]

	state atomic.Pointer[S]
	queue chan action.Action
	done  chan struct{}

	mu          sync.RWMutex
	stopped     bool
	observers   []Observer
	subscribers map[chan S]struct{}
}

func New[S any](log *slog.Logger, reduce Reducer[S], initial S) *Store[S] {
	s := &Store[S]{
		log:         log.With("component", "store"),
		reduce:      reduce,
		queue:       make(chan action.Action, queueSize),
		done:        make(chan struct{}),
		subscribers: make(map[chan S]struct{}),
	}
	s.state.Store(&initial)

	return s
}

// Use registers an observer. Observers run on the store goroutine in
// registration order and must not block.
func (s *Store[S]) Use(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Dispatch queues an action. Actions dispatched after Run returned are
// dropped.
func (s *Store[S]) Dispatch(a action.Action) {
	select {
	case <-s.done:
		s.log.Warn("action dropped after shutdown", "type", a.Type().String())
		return
	default:
	}

	select {
	case s.queue <- a:
	case <-s.done:
		s.log.Warn("action dropped after shutdown", "type", a.Type().String())
	}
}

// Run applies queued actions in dispatch order until ctx is done.
func (s *Store[S]) Run(ctx context.Context) error {
	defer s.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case a := <-s.queue:
			s.apply(a)
		}
	}
}

// State returns the current snapshot.
func (s *Store[S]) State() S {
	return *s.state.Load()
}

// Subscribe returns a channel receiving snapshots. A slow subscriber only
// gets the latest one. The channel is closed when cancel is called or the
// store stops.
func (s *Store[S]) Subscribe() (<-chan S, func()) {
	ch := make(chan S, 1)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subscribers[ch]; ok {
				delete(s.subscribers, ch)
				close(ch)
			}
		})
	}

	return ch, cancel
}

func (s *Store[S]) apply(a action.Action) {
	next := s.reduce(s.State(), a)
	s.state.Store(&next)

	s.mu.RLock()
	observers := s.observers
	for ch := range s.subscribers {
		publish(ch, next)
	}
	s.mu.RUnlock()

	for _, o := range observers {
		o.Observe(a)
	}
}

func publish[S any](ch chan S, v S) {
	for {
		select {
		case ch <- v:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}

func (s *Store[S]) stop() {
	close(s.done)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}
