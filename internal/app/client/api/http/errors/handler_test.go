package errors

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/apierror"
	"github.com/OfficialArms/virtool/internal/state"
)

type fakeStore struct {
	root       state.Root
	dispatched []action.Action
}

func (f *fakeStore) State() state.Root        { return f.root }
func (f *fakeStore) Dispatch(a action.Action) { f.dispatched = append(f.dispatched, a) }

func TestHandler(t *testing.T) {
	s := &fakeStore{root: state.Initial()}
	s.root.Errors = apierror.State{
		"CREATE_SAMPLE_ERROR": {Status: 400, Message: "Name required"},
		"EDIT_USER_ERROR":     nil,
	}
	h := NewHandler(s, s, slog.Default(), huma.Middlewares{})

	out, err := h.list(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, &failure{Status: 400, Message: "Name required"}, out.Body["CREATE_SAMPLE_ERROR"])
	assert.Contains(t, out.Body, "EDIT_USER_ERROR")
	assert.Nil(t, out.Body["EDIT_USER_ERROR"])

	_, err = h.clear(context.Background(), &clearInput{Key: "CREATE_SAMPLE_ERROR"})
	require.NoError(t, err)
	assert.Equal(t, []action.Action{apierror.ClearError{Key: "CREATE_SAMPLE_ERROR"}}, s.dispatched)
}
