package effect

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/pending"
)

var fetch = action.NewTriple("FETCH_THINGS")

type fetchRequested struct{ N int }

func (fetchRequested) Type() action.Type { return fetch.Requested }

type fetchSucceeded struct{ N int }

func (fetchSucceeded) Type() action.Type { return fetch.Succeeded }

type recorder struct {
	mu      sync.Mutex
	actions []action.Action
}

func (r *recorder) Dispatch(a action.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, a)
}

func (r *recorder) all() []action.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]action.Action(nil), r.actions...)
}

func (r *recorder) types() []string {
	var out []string
	for _, a := range r.all() {
		out = append(out, a.Type().String())
	}
	return out
}

func newRunner(t *testing.T, bindings ...Binding) (*Runner, *recorder) {
	t.Helper()

	rec := &recorder{}
	r := NewRunner(rec, slog.Default())
	require.NoError(t, r.Bind(bindings...))
	t.Cleanup(r.Close)

	return r, rec
}

func TestRunner_Every_Mutating(t *testing.T) {
	r, rec := newRunner(t, Binding{
		Name:     fetch.Name,
		Policy:   Every,
		Mutating: true,
		Handle: func(ctx context.Context, a action.Action) action.Action {
			return fetchSucceeded{N: a.(fetchRequested).N}
		},
	})

	r.Observe(fetchRequested{N: 1})

	require.Eventually(t, func() bool { return len(rec.all()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"SET_APP_PENDING", "FETCH_THINGS_SUCCEEDED", "UNSET_APP_PENDING"}, rec.types())
	assert.Equal(t, fetchSucceeded{N: 1}, rec.all()[1])
}

func TestRunner_IgnoresNonRequested(t *testing.T) {
	var calls atomic.Int32
	r, rec := newRunner(t, Binding{
		Name:   fetch.Name,
		Policy: Every,
		Handle: func(ctx context.Context, a action.Action) action.Action {
			calls.Add(1)
			return fetchSucceeded{}
		},
	})

	r.Observe(fetchSucceeded{N: 1})
	r.Observe(pending.Set{})
	r.Close()

	assert.Zero(t, calls.Load())
	assert.Empty(t, rec.all())
}

func TestRunner_Latest_DiscardsStale(t *testing.T) {
	firstCanceled := make(chan struct{})
	release := make(chan struct{})

	r, rec := newRunner(t, Binding{
		Name:   fetch.Name,
		Policy: Latest,
		Handle: func(ctx context.Context, a action.Action) action.Action {
			n := a.(fetchRequested).N
			if n == 1 {
				<-ctx.Done()
				close(firstCanceled)
				<-release
				// a slow reply that ignores cancellation still must not land
				return fetchSucceeded{N: 1}
			}
			return fetchSucceeded{N: n}
		},
	})

	r.Observe(fetchRequested{N: 1})
	r.Observe(fetchRequested{N: 2})

	select {
	case <-firstCanceled:
	case <-time.After(time.Second):
		t.Fatal("first call was not canceled")
	}

	require.Eventually(t, func() bool { return len(rec.all()) == 1 }, time.Second, 5*time.Millisecond)
	close(release)
	r.Close()

	assert.Equal(t, []action.Action{fetchSucceeded{N: 2}}, rec.all())
}

func TestRunner_Throttle_LeadingAndTrailing(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []int
	)

	r, rec := newRunner(t, Binding{
		Name:   fetch.Name,
		Policy: Throttle,
		Window: 100 * time.Millisecond,
		Handle: func(ctx context.Context, a action.Action) action.Action {
			n := a.(fetchRequested).N
			mu.Lock()
			seen = append(seen, n)
			mu.Unlock()
			return fetchSucceeded{N: n}
		},
	})

	for n := 1; n <= 5; n++ {
		r.Observe(fetchRequested{N: n})
	}

	require.Eventually(t, func() bool { return len(rec.all()) == 2 }, time.Second, 5*time.Millisecond)

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 5}, seen)
	assert.Equal(t, []action.Action{fetchSucceeded{N: 1}, fetchSucceeded{N: 5}}, rec.all())
}

func TestRunner_Throttle_DiscardsSlowLeadingResult(t *testing.T) {
	release := make(chan struct{})

	r, rec := newRunner(t, Binding{
		Name:   fetch.Name,
		Policy: Throttle,
		Window: 20 * time.Millisecond,
		Handle: func(ctx context.Context, a action.Action) action.Action {
			n := a.(fetchRequested).N
			if n == 1 {
				<-release
			}
			return fetchSucceeded{N: n}
		},
	})

	r.Observe(fetchRequested{N: 1})
	r.Observe(fetchRequested{N: 2})

	require.Eventually(t, func() bool { return len(rec.all()) == 1 }, time.Second, 5*time.Millisecond)
	close(release)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []action.Action{fetchSucceeded{N: 2}}, rec.all())
}

func TestRunner_PanicBecomesFailed(t *testing.T) {
	r, rec := newRunner(t, Binding{
		Name:     fetch.Name,
		Policy:   Every,
		Mutating: true,
		Handle: func(ctx context.Context, a action.Action) action.Action {
			panic("boom")
		},
	})

	r.Observe(fetchRequested{})

	require.Eventually(t, func() bool { return len(rec.all()) == 3 }, time.Second, 5*time.Millisecond)

	failed, ok := rec.all()[1].(action.Failed)
	require.True(t, ok)
	assert.Equal(t, fetch.Name, failed.Op)
	assert.Contains(t, failed.Message, "boom")
	assert.Equal(t, "UNSET_APP_PENDING", rec.types()[2])
}

func TestRunner_Bind(t *testing.T) {
	r := NewRunner(&recorder{}, slog.Default())
	defer r.Close()

	noop := func(ctx context.Context, a action.Action) action.Action { return fetchSucceeded{} }

	require.NoError(t, r.Bind(Binding{Name: fetch.Name, Handle: noop}))

	err := r.Bind(Binding{Name: fetch.Name, Handle: noop})
	assert.True(t, errors.Is(err, ErrDuplicateBinding))

	err = r.Bind(Binding{Name: "OTHER", Policy: Throttle, Handle: noop})
	assert.True(t, errors.Is(err, ErrInvalidBinding))

	err = r.Bind(Binding{Name: "NO_HANDLER"})
	assert.True(t, errors.Is(err, ErrInvalidBinding))
}

func TestFailureOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected action.Failure
	}{
		{
			name:     "api error",
			err:      &Error{Status: 400, Message: "Name required"},
			expected: action.Failure{Status: 400, Message: "Name required"},
		},
		{
			name:     "wrapped api error",
			err:      errors.Join(errors.New("call"), &Error{Status: 409, Message: "exists"}),
			expected: action.Failure{Status: 409, Message: "exists"},
		},
		{
			name:     "canceled",
			err:      context.Canceled,
			expected: action.Failure{Message: "canceled"},
		},
		{
			name:     "transport",
			err:      errors.New("connection refused"),
			expected: action.Failure{Message: "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FailureOf(tt.err))
		})
	}
}
