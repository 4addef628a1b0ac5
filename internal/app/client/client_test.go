package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/app/client/config"
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect/effecttest"
	"github.com/OfficialArms/virtool/internal/domain/sample"
	"github.com/OfficialArms/virtool/internal/state"
)

func startApp(t *testing.T, api *effecttest.MockCaller) *App {
	t.Helper()

	cfg := &config.Config{
		Env:            config.EnvLocal,
		ServerAddress:  "localhost:9950",
		ConfigDir:      t.TempDir(),
		ReconnectDelay: 1,
	}

	app, err := New(context.Background(), cfg, slog.Default(), WithCaller(api), WithoutPush(), WithoutServer())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
		app.Close()
	})

	return app
}

func eventually(t *testing.T, app *App, cond func(state.Root) bool) {
	t.Helper()
	require.Eventually(t, func() bool { return cond(app.Store().State()) }, 2*time.Second, 5*time.Millisecond)
}

func TestApp_CreateSampleSucceeded(t *testing.T) {
	api := new(effecttest.MockCaller)
	api.On("Call", mock.Anything, effecttest.Endpoint(http.MethodPost, "/api/samples"), mock.Anything).
		Return(effecttest.JSON(sample.Sample{ID: "abc", Name: "s1"}), nil)

	app := startApp(t, api)

	app.Dispatch(sample.CreateRequested{CreateRequest: sample.CreateRequest{Name: "s1"}})

	eventually(t, app, func(r state.Root) bool {
		return len(r.Samples.Documents) == 1 && !r.App.Pending
	})

	root := app.Store().State()
	assert.Equal(t, "abc", root.Samples.Documents[0].ID)
	assert.Equal(t, "s1", root.Samples.Documents[0].Name)
	assert.Nil(t, root.Errors["CREATE_SAMPLE_ERROR"])
}

func TestApp_CreateSampleFailed(t *testing.T) {
	api := new(effecttest.MockCaller)
	api.On("Call", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, effecttest.Fail(http.StatusBadRequest, "Name required"))

	app := startApp(t, api)

	app.Dispatch(sample.CreateRequested{})

	eventually(t, app, func(r state.Root) bool {
		return r.Errors["CREATE_SAMPLE_ERROR"] != nil
	})
	assert.Equal(t, &action.Failure{Status: 400, Message: "Name required"}, app.Store().State().Errors["CREATE_SAMPLE_ERROR"])

	reports, err := app.Reports().Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, reports, "user-facing failures are not reported")
}

func TestApp_UnexpectedFailureReported(t *testing.T) {
	api := new(effecttest.MockCaller)
	api.On("Call", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, effecttest.Fail(http.StatusBadGateway, "bad gateway"))

	app := startApp(t, api)

	app.Dispatch(sample.GetRequested{SampleID: "abc"})

	require.Eventually(t, func() bool {
		reports, err := app.Reports().Recent(context.Background(), 10)
		return err == nil && len(reports) == 1
	}, 2*time.Second, 5*time.Millisecond)

	reports, _ := app.Reports().Recent(context.Background(), 10)
	assert.Equal(t, "GET_SAMPLE_FAILED", reports[0].Type)
	assert.Equal(t, 502, reports[0].Status)
	assert.Empty(t, app.Store().State().Errors)
}

func TestApp_PushRemoveIsIdempotent(t *testing.T) {
	app := startApp(t, new(effecttest.MockCaller))

	app.Dispatch(sample.WSInsert{Data: sample.Sample{ID: "xyz", Name: "x"}})
	eventually(t, app, func(r state.Root) bool { return len(r.Samples.Documents) == 1 })

	app.Dispatch(sample.WSRemove{ID: "xyz"})
	app.Dispatch(sample.WSRemove{ID: "xyz"})
	app.Dispatch(sample.WSInsert{Data: sample.Sample{ID: "other"}})

	eventually(t, app, func(r state.Root) bool {
		return len(r.Samples.Documents) == 1 && r.Samples.Documents[0].ID == "other"
	})
}
