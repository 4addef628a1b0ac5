package sample

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
	"github.com/OfficialArms/virtool/internal/domain/job"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

func ptr[T any](v T) *T { return &v }

func TestReduce_Push(t *testing.T) {
	var s State

	s = Reduce(s, WSInsert{Data: Sample{ID: "a", Name: "Foo"}})
	s = Reduce(s, WSInsert{Data: Sample{ID: "a", Name: "Dup"}})
	require.Len(t, s.Documents, 1)
	assert.Equal(t, "Foo", s.Documents[0].Name)

	s = Reduce(s, WSUpdate{Data: Update{ID: "a", Ready: ptr(true)}})
	assert.True(t, s.Documents[0].Ready)
	assert.Equal(t, "Foo", s.Documents[0].Name, "fields outside the update are kept")

	unknown := Reduce(s, WSUpdate{Data: Update{ID: "zzz", Name: ptr("x")}})
	assert.Equal(t, s, unknown)

	s = Reduce(s, WSRemove{ID: "a"})
	assert.Empty(t, s.Documents)
}

func TestReduce_FindReplacesPage(t *testing.T) {
	s := Reduce(State{}, FindRequested{Term: "foo"})
	s = Reduce(s, FindSucceeded{Data: collection.Page[Sample]{
		Documents:  []Sample{{ID: "x"}},
		Page:       1,
		FoundCount: 1,
		TotalCount: 12,
	}})

	assert.Equal(t, "foo", s.Term)
	assert.Equal(t, 12, s.TotalCount)
	assert.Equal(t, []Sample{{ID: "x"}}, s.Documents)
}

func TestReduce_Detail(t *testing.T) {
	s := Reduce(State{}, GetSucceeded{Data: Sample{ID: "a", Name: "Foo"}})
	require.NotNil(t, s.Detail)

	s = Reduce(s, WSUpdate{Data: Update{ID: "a", Notes: ptr("hi")}})
	assert.Equal(t, "hi", s.Detail.Notes)

	s = Reduce(s, GetRequested{SampleID: "b"})
	assert.Nil(t, s.Detail)
}

func TestReduce_PendingRemove(t *testing.T) {
	s := State{List: collection.List[Sample]{Documents: []Sample{{ID: "a"}}, TotalCount: 1}}

	s = Reduce(s, RemoveRequested{SampleID: "a"})
	assert.Equal(t, "a", s.PendingRemove)

	failed := Reduce(s, action.Failed{Op: RemoveSample.Name, Failure: action.Failure{Status: 403}})
	assert.Empty(t, failed.PendingRemove)
	assert.Len(t, failed.Documents, 1)

	s = Reduce(s, RemoveSucceeded{SampleID: "a"})
	assert.Empty(t, s.PendingRemove)
	assert.Empty(t, s.Documents)
}

func TestReduce_IgnoresOtherActions(t *testing.T) {
	s := State{Detail: &Sample{ID: "a"}}
	assert.Equal(t, s, Reduce(s, action.Failed{Op: "FIND_JOBS"}))
	assert.Equal(t, s, Reduce(s, UpdateRequested{SampleID: "a"}))
	assert.Equal(t, s, Reduce(s, job.WSRemove{ID: "a"}), "actions of other domains are not sample actions")
}

func TestPush(t *testing.T) {
	actions, err := Push(push.Update, json.RawMessage(`{"id":"a","ready":true}`))
	require.NoError(t, err)
	require.Len(t, actions, 1)

	update, ok := actions[0].(WSUpdate)
	require.True(t, ok)
	assert.Equal(t, "a", update.Data.ID)
	assert.True(t, *update.Data.Ready)
	assert.Nil(t, update.Data.Name)
}

func TestReduce_CreateSucceededThenPushInsert(t *testing.T) {
	s := Reduce(State{}, CreateSucceeded{Data: Sample{ID: "abc", Name: "s1"}})
	s = Reduce(s, WSInsert{Data: Sample{ID: "abc", Name: "s1"}})

	require.Len(t, s.Documents, 1)
	assert.Equal(t, "abc", s.Documents[0].ID)
}
