package ws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/push"
	"github.com/OfficialArms/virtool/internal/domain/sample"
	"github.com/OfficialArms/virtool/internal/state"
)

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

func TestRouter_Route(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(state.PushDecoders(), rec, slog.Default(), nil)

	require.NoError(t, r.Route([]byte(`{"interface":"samples","operation":"insert","data":{"id":"abc","name":"s1"}}`)))
	require.NoError(t, r.Route([]byte(`{"interface":"samples","operation":"delete","data":["abc","xyz"]}`)))

	got := rec.all()
	require.Len(t, got, 3)
	assert.Equal(t, sample.WSInsert{Data: sample.Sample{ID: "abc", Name: "s1"}}, got[0])
	assert.Equal(t, sample.WSRemove{ID: "abc"}, got[1])
	assert.Equal(t, sample.WSRemove{ID: "xyz"}, got[2])
}

func TestRouter_Errors(t *testing.T) {
	r := NewRouter(state.PushDecoders(), &recorder{}, slog.Default(), nil)

	err := r.Route([]byte(`{"interface":"analyses","operation":"insert","data":{}}`))
	assert.True(t, errors.Is(err, ErrUnknownInterface))

	err = r.Route([]byte(`not json`))
	assert.True(t, errors.Is(err, push.ErrBadData))

	err = r.Route([]byte(`{"interface":"samples","operation":"explode","data":{}}`))
	assert.True(t, errors.Is(err, push.ErrUnknownOperation))
}

func TestListener_DeliversAndReconnects(t *testing.T) {
	var (
		upgrader    websocket.Upgrader
		connections atomic.Int32
		auth        atomic.Value
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, key, _ := r.BasicAuth()
		auth.Store(key)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		n := connections.Add(1)
		msg := `{"interface":"samples","operation":"delete","data":["first"]}`
		if n > 1 {
			msg = `{"interface":"samples","operation":"delete","data":["second"]}`
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(msg))

		if n == 1 {
			// drop the first connection to force a reconnect
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	rec := &recorder{}
	router := NewRouter(state.PushDecoders(), rec, slog.Default(), nil)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	l := NewListener(url, BasicAuth("bob", "key"), router, 10*time.Millisecond, slog.Default(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rec.all()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []action.Action{sample.WSRemove{ID: "first"}, sample.WSRemove{ID: "second"}}, rec.all())
	assert.Equal(t, "key", auth.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
}
