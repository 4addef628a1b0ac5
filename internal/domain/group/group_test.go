package group

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect/effecttest"
)

func TestReduce_ListSorted(t *testing.T) {
	in := []Group{{ID: "technicians"}, {ID: "administrators"}}
	s := Reduce(State{}, ListSucceeded{Data: in})

	assert.Equal(t, "administrators", s.Documents[0].ID)
	assert.Equal(t, "technicians", in[0].ID, "input must not change")
}

func TestReduce_PushMergesPermissions(t *testing.T) {
	s := Reduce(State{}, WSInsert{Data: Group{ID: "technicians", Permissions: map[string]bool{"create_sample": true}}})
	before := s.Documents[0].Permissions

	s = Reduce(s, WSUpdate{Data: Update{ID: "technicians", Permissions: map[string]bool{"modify_hmm": true}}})

	assert.Equal(t, map[string]bool{"create_sample": true, "modify_hmm": true}, s.Documents[0].Permissions)
	assert.Equal(t, map[string]bool{"create_sample": true}, before)
}

func TestReduce_PendingRemove(t *testing.T) {
	s := Reduce(State{}, WSInsert{Data: Group{ID: "technicians"}})
	s = Reduce(s, RemoveRequested{GroupID: "technicians"})
	assert.Equal(t, "technicians", s.PendingRemove)

	failed := Reduce(s, action.Failed{Op: RemoveGroup.Name})
	assert.Empty(t, failed.PendingRemove)
	assert.Len(t, failed.Documents, 1)

	s = Reduce(s, RemoveSucceeded{GroupID: "technicians"})
	assert.Empty(t, s.PendingRemove)
	assert.Empty(t, s.Documents)
}

func TestSetPermission(t *testing.T) {
	api := new(effecttest.MockCaller)
	api.On("Call", mock.Anything, effecttest.Endpoint(http.MethodPatch, "/api/groups/technicians"),
		Update{Permissions: map[string]bool{"modify_hmm": true}}).
		Return(effecttest.JSON(Group{ID: "technicians", Permissions: map[string]bool{"modify_hmm": true}}), nil)

	var found bool
	for _, b := range Bindings(api) {
		if b.Name != SetGroupPermission.Name {
			continue
		}
		found = true
		out := b.Handle(context.Background(), SetPermissionRequested{GroupID: "technicians", Permission: "modify_hmm", Value: true})
		succeeded, ok := out.(SetPermissionSucceeded)
		require.True(t, ok)
		assert.True(t, succeeded.Data.Permissions["modify_hmm"])
	}

	assert.True(t, found)
	api.AssertExpectations(t)
}
