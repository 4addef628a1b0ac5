package effect

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/pending"
)

var (
	ErrDuplicateBinding = errors.New("binding already registered")
	ErrInvalidBinding   = errors.New("invalid binding")
)

// Policy decides how concurrent REQUESTED actions of one kind are handled.
type Policy int

const (
	// Every runs each request independently to completion.
	Every Policy = iota
	// Latest cancels the in-flight call when a newer request arrives.
	Latest
	// Throttle issues at most one call per window.
	Throttle
)

func (p Policy) String() string {
	switch p {
	case Every:
		return "every"
	case Latest:
		return "latest"
	case Throttle:
		return "throttle"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Handler performs the call for one REQUESTED action and returns its
// terminal action.
type Handler func(ctx context.Context, a action.Action) action.Action

// Binding attaches a handler to one operation.
type Binding struct {
	Name     action.Name
	Policy   Policy
	Window   time.Duration
	Mutating bool
	Handle   Handler
}

// Dispatcher receives terminal and pending actions.
type Dispatcher interface {
	Dispatch(a action.Action)
}

const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

type Metrics interface {
	CallStarted(op action.Name)
	CallFinished(op action.Name, outcome string, took time.Duration)
	ResultDiscarded(op action.Name)
	RequestCoalesced(op action.Name)
}

type nopMetrics struct{}

func (nopMetrics) CallStarted(action.Name) {}
func (nopMetrics) CallFinished(action.Name, string, time.Duration) {}
func (nopMetrics) ResultDiscarded(action.Name) {}
func (nopMetrics) RequestCoalesced(action.Name) {}

type Option func(*Runner)

func WithMetrics(m Metrics) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

type throttle struct {
	limiter *rate.Limiter
	timer   *time.Timer
	next    action.Action
}

// Runner observes reduced actions and runs the bound handlers.
type Runner struct {
	dispatch Dispatcher
	log      *slog.Logger
	metrics  Metrics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	bindings  map[action.Name]Binding
	tokens    map[action.Name]uint64
	cancels   map[action.Name]context.CancelFunc
	throttles map[action.Name]*throttle
}

func NewRunner(d Dispatcher, log *slog.Logger, opts ...Option) *Runner {
	ctx, cancel := context.WithCancel(context.Background())

	r := &Runner{
		dispatch:  d,
		log:       log.With("component", "effect_runner"),
		metrics:   nopMetrics{},
		ctx:       ctx,
		cancel:    cancel,
		bindings:  make(map[action.Name]Binding),
		tokens:    make(map[action.Name]uint64),
		cancels:   make(map[action.Name]context.CancelFunc),
		throttles: make(map[action.Name]*throttle),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Runner) Bind(bindings ...Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bindings {
		if b.Name == "" || b.Handle == nil {
			return fmt.Errorf("%w: %q", ErrInvalidBinding, b.Name)
		}
		if b.Policy == Throttle && b.Window <= 0 {
			return fmt.Errorf("%w: %s throttled without window", ErrInvalidBinding, b.Name)
		}
		if _, ok := r.bindings[b.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateBinding, b.Name)
		}
		r.bindings[b.Name] = b
	}

	return nil
}

// Observe is called for every action after it was reduced.
func (r *Runner) Observe(a action.Action) {
	t := a.Type()
	if t.Phase != action.PhaseRequested {
		return
	}

	r.mu.Lock()
	b, ok := r.bindings[t.Name]
	if !ok || r.closed {
		r.mu.Unlock()
		return
	}

	switch b.Policy {
	case Latest:
		if cancel, ok := r.cancels[b.Name]; ok {
			cancel()
		}
		ctx, cancel := context.WithCancel(r.ctx)
		r.cancels[b.Name] = cancel
		token := r.nextToken(b.Name)
		r.wg.Add(1)
		r.mu.Unlock()

		go r.run(ctx, b, a, token, true)

	case Throttle:
		th := r.throttleFor(b)
		if th.timer != nil {
			th.next = a
			r.mu.Unlock()
			r.metrics.RequestCoalesced(b.Name)
			return
		}

		if delay := th.limiter.Reserve().Delay(); delay > 0 {
			th.next = a
			th.timer = time.AfterFunc(delay, func() { r.fire(b, th) })
			r.mu.Unlock()
			r.metrics.RequestCoalesced(b.Name)
			return
		}

		token := r.nextToken(b.Name)
		r.wg.Add(1)
		r.mu.Unlock()

		go r.run(r.ctx, b, a, token, true)

	default:
		r.wg.Add(1)
		r.mu.Unlock()

		go r.run(r.ctx, b, a, 0, false)
	}
}

// Close cancels in-flight calls and waits for their handlers to return.
// Results of canceled calls are still dispatched to the store.
func (r *Runner) Close() {
	r.mu.Lock()
	r.closed = true
	for _, th := range r.throttles {
		if th.timer != nil {
			th.timer.Stop()
			th.timer = nil
			th.next = nil
		}
	}
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
}

func (r *Runner) fire(b Binding, th *throttle) {
	r.mu.Lock()
	a := th.next
	th.next = nil
	th.timer = nil
	if a == nil || r.closed {
		r.mu.Unlock()
		return
	}

	// the reservation taken in Observe already holds this window
	token := r.nextToken(b.Name)
	r.wg.Add(1)
	r.mu.Unlock()

	r.run(r.ctx, b, a, token, true)
}

func (r *Runner) throttleFor(b Binding) *throttle {
	th, ok := r.throttles[b.Name]
	if !ok {
		th = &throttle{limiter: rate.NewLimiter(rate.Every(b.Window), 1)}
		r.throttles[b.Name] = th
	}
	return th
}

func (r *Runner) nextToken(name action.Name) uint64 {
	r.tokens[name]++
	return r.tokens[name]
}

// settle reports whether token is still the most recent of its kind and
// releases the cancel func of a finished latest call.
func (r *Runner) settle(name action.Name, token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tokens[name] != token {
		return false
	}

	if cancel, ok := r.cancels[name]; ok {
		cancel()
		delete(r.cancels, name)
	}

	return true
}

func (r *Runner) run(ctx context.Context, b Binding, a action.Action, token uint64, tracked bool) {
	defer r.wg.Done()

	if b.Mutating {
		r.dispatch.Dispatch(pending.Set{})
		defer r.dispatch.Dispatch(pending.Unset{})
	}

	start := time.Now()
	r.metrics.CallStarted(b.Name)

	result := r.invoke(ctx, b, a)

	outcome := OutcomeSucceeded
	if result.Type().Phase == action.PhaseFailed {
		outcome = OutcomeFailed
	}
	r.metrics.CallFinished(b.Name, outcome, time.Since(start))

	if tracked && !r.settle(b.Name, token) {
		r.metrics.ResultDiscarded(b.Name)
		r.log.Debug("stale result discarded",
			"op", b.Name,
			"result", result.Type().String(),
		)
		return
	}

	r.dispatch.Dispatch(result)
}

func (r *Runner) invoke(ctx context.Context, b Binding, a action.Action) (result action.Action) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error("effect handler panicked",
				"op", b.Name,
				"panic", p,
			)
			result = action.Failed{
				Op:      b.Name,
				Failure: action.Failure{Message: fmt.Sprintf("handler panic: %v", p)},
			}
		}
	}()

	result = b.Handle(ctx, a)
	if result == nil {
		return action.Failed{
			Op:      b.Name,
			Failure: action.Failure{Message: "handler returned no action"},
		}
	}

	return result
}
