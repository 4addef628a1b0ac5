package state

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/pending"
	"github.com/OfficialArms/virtool/internal/state"
)

type fixed state.Root

func (f fixed) State() state.Root { return state.Root(f) }

func TestHandler_slice(t *testing.T) {
	root := state.Initial()
	root.App = pending.State{Pending: true, InFlight: 1}
	h := NewHandler(fixed(root), slog.Default(), huma.Middlewares{})

	out, err := h.slice(context.Background(), &sliceInput{Slice: "app"})
	require.NoError(t, err)
	assert.Equal(t, &pending.State{Pending: true, InFlight: 1}, out.Body)

	_, err = h.slice(context.Background(), &sliceInput{Slice: "analyses"})
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 404, se.GetStatus())
}

func TestHandler_get(t *testing.T) {
	h := NewHandler(fixed(state.Initial()), slog.Default(), huma.Middlewares{})

	out, err := h.get(context.Background(), &getInput{})
	require.NoError(t, err)
	assert.Equal(t, state.Initial(), out.Body)

	names, err := h.names(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, names.Body, "samples")
}
