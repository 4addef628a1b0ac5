package settings

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect"
	"github.com/OfficialArms/virtool/internal/domain/effect/effecttest"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

func TestReduce_Readahead(t *testing.T) {
	s := Reduce(State{}, ReadaheadRequested{RefID: "r1", Term: "tob"})
	assert.True(t, s.ReadaheadPending)

	s = Reduce(s, ReadaheadSucceeded{Data: []OTUName{{ID: "o1", Name: "Tobacco mosaic virus"}}})
	assert.False(t, s.ReadaheadPending)
	assert.Len(t, s.Readahead, 1)

	s = Reduce(s, ReadaheadRequested{RefID: "r1", Term: "x"})
	s = Reduce(s, action.Failed{Op: GetControlReadahead.Name})
	assert.False(t, s.ReadaheadPending)
}

func TestPush_UpdateMerges(t *testing.T) {
	s := Reduce(State{}, GetSucceeded{Data: Settings{SampleGroup: "none", MinimumPasswordLength: 8}})

	actions, err := Push(push.Update, json.RawMessage(`{"minimum_password_length":12}`))
	require.NoError(t, err)
	require.Len(t, actions, 1)

	s = Reduce(s, actions[0])
	assert.Equal(t, 12, s.Data.MinimumPasswordLength)
	assert.Equal(t, "none", s.Data.SampleGroup)
}

func TestPush_UpdateBeforeLoadIgnored(t *testing.T) {
	s := Reduce(State{}, WSUpdate{Data: Update{}})
	assert.Nil(t, s.Data)
}

func TestReadahead(t *testing.T) {
	api := new(effecttest.MockCaller)
	api.On("Call", mock.Anything, mock.MatchedBy(func(ep effect.Endpoint) bool {
		return ep.Path == "/api/refs/r1/otus" && ep.Query.Get("find") == "tob" && ep.Query.Get("names") == "true"
	}), nil).Return(effecttest.JSON([]OTUName{{ID: "o1", Name: "Tobacco mosaic virus"}}), nil)

	var readahead effect.Binding
	for _, b := range Bindings(api) {
		if b.Name == GetControlReadahead.Name {
			readahead = b
		}
	}
	assert.Equal(t, effect.Throttle, readahead.Policy)
	assert.Equal(t, ReadaheadWindow, readahead.Window)

	out := readahead.Handle(context.Background(), ReadaheadRequested{RefID: "r1", Term: "tob"})
	assert.Equal(t, ReadaheadSucceeded{Data: []OTUName{{ID: "o1", Name: "Tobacco mosaic virus"}}}, out)

	api.AssertExpectations(t)
}
