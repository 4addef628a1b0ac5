package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/report"
	"github.com/OfficialArms/virtool/internal/domain/sample"
	"github.com/OfficialArms/virtool/internal/state"
)

type fakeStore struct {
	mu         sync.Mutex
	root       state.Root
	dispatched []action.Action
}

func (f *fakeStore) State() state.Root {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.root
}

func (f *fakeStore) Dispatch(a action.Action) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dispatched = append(f.dispatched, a)
}

func newServer(t *testing.T) (*httptest.Server, *fakeStore) {
	t.Helper()

	store := &fakeStore{root: state.Initial()}
	reports := report.NewService(report.NewMemoryRepository(10), slog.Default(), nil)
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "virtool_test_total", Help: "test"}))

	mux := New(Deps{
		Store:    store,
		Registry: state.NewRegistry(),
		Reports:  reports,
		Gatherer: reg,
	}, slog.Default())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestAPI_Routes(t *testing.T) {
	srv, store := newServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/state/samples")
	require.NoError(t, err)
	var samples map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&samples))
	resp.Body.Close()
	assert.Contains(t, samples, "documents")

	resp, err = http.Get(srv.URL + "/api/v1/state/nothing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/v1/actions", "application/json",
		strings.NewReader(`{"type":"REMOVE_SAMPLE_REQUESTED","payload":{"sample_id":"abc"}}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Len(t, store.dispatched, 1)
	assert.Equal(t, sample.RemoveRequested{SampleID: "abc"}, store.dispatched[0])

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodDelete, srv.URL+"/api/v1/errors/CREATE_SAMPLE_ERROR", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/reports?limit=5")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
