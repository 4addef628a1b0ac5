package subtraction

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OfficialArms/virtool/internal/domain/collection"
	"github.com/OfficialArms/virtool/internal/domain/effect"
	"github.com/OfficialArms/virtool/internal/domain/effect/effecttest"
)

func TestReduce_FindKeepsHostCounts(t *testing.T) {
	s := Reduce(State{}, FindSucceeded{Data: FindResult{
		Page:           collection.Page[Subtraction]{Documents: []Subtraction{{ID: "arabidopsis"}}, TotalCount: 3},
		HostCount:      2,
		ReadyHostCount: 1,
	}})

	assert.Equal(t, 3, s.TotalCount)
	assert.Equal(t, 2, s.HostCount)
	assert.Equal(t, 1, s.ReadyHostCount)
}

func TestReduce_RemoveDropsID(t *testing.T) {
	s := Reduce(State{}, ListIDsSucceeded{Data: []string{"a", "b"}})
	s = Reduce(s, GetSucceeded{Data: Subtraction{ID: "a"}})
	before := s.IDs

	s = Reduce(s, RemoveSucceeded{SubtractionID: "a"})

	assert.Equal(t, []string{"b"}, s.IDs)
	assert.Equal(t, []string{"a", "b"}, before, "input must not change")
	assert.Nil(t, s.Detail)
}

func TestReduce_InsertAddsID(t *testing.T) {
	s := Reduce(State{}, ListIDsSucceeded{Data: []string{"a"}})
	before := s.IDs

	s = Reduce(s, CreateSucceeded{Data: Subtraction{ID: "b"}})
	s = Reduce(s, WSInsert{Data: Subtraction{ID: "b"}})
	s = Reduce(s, WSInsert{Data: Subtraction{ID: "c"}})

	assert.Equal(t, []string{"a", "b", "c"}, s.IDs)
	assert.Len(t, s.Documents, 2)
	assert.Equal(t, []string{"a"}, before, "input must not change")
}

func TestBindings(t *testing.T) {
	api := new(effecttest.MockCaller)
	bindings := Bindings(api)
	require.Len(t, bindings, 5)

	byName := map[string]effect.Binding{}
	for _, b := range bindings {
		byName[string(b.Name)] = b
	}

	assert.Equal(t, effect.Throttle, byName["FIND_SUBTRACTIONS"].Policy)
	assert.Equal(t, FindWindow, byName["FIND_SUBTRACTIONS"].Window)
	assert.Equal(t, effect.Latest, byName["LIST_SUBTRACTION_IDS"].Policy)
	assert.True(t, byName["CREATE_SUBTRACTION"].Mutating)

	api.On("Call", mock.Anything, mock.MatchedBy(func(ep effect.Endpoint) bool {
		return ep.Method == http.MethodGet && ep.Query.Get("ids") == "true"
	}), nil).Return(effecttest.JSON([]string{"a"}), nil)

	out := byName["LIST_SUBTRACTION_IDS"].Handle(context.Background(), ListIDsRequested{})
	assert.Equal(t, ListIDsSucceeded{Data: []string{"a"}}, out)
}
