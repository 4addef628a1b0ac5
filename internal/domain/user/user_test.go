package user

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

func TestReduce_EditReplacesListAndDetail(t *testing.T) {
	s := Reduce(State{}, WSInsert{Data: User{ID: "bob", Handle: "bob"}})

	s = Reduce(s, EditSucceeded{Data: User{ID: "bob", Handle: "bob", Administrator: true}})

	require.NotNil(t, s.Detail)
	assert.True(t, s.Detail.Administrator)
	assert.True(t, s.Documents[0].Administrator)
}

func TestReduce_PushUpdateKeepsOtherFields(t *testing.T) {
	groups := []string{"technicians"}
	s := Reduce(State{}, WSInsert{Data: User{ID: "bob", Handle: "bob", Administrator: true}})

	s = Reduce(s, WSUpdate{Data: Update{ID: "bob", Groups: &groups}})

	assert.Equal(t, []string{"technicians"}, s.Documents[0].Groups)
	assert.True(t, s.Documents[0].Administrator)
}

func TestEdit_DoesNotSendID(t *testing.T) {
	admin := true

	api := new(effecttest.MockCaller)
	api.On("Call", mock.Anything, effecttest.Endpoint(http.MethodPatch, "/api/users/bob"), Update{Administrator: &admin}).
		Return(nil, effecttest.Fail(http.StatusForbidden, "Not permitted"))

	for _, b := range Bindings(api) {
		if b.Name != EditUser.Name {
			continue
		}
		out := b.Handle(context.Background(), EditRequested{UserID: "bob", Update: Update{ID: "bob", Administrator: &admin}})
		assert.Equal(t, action.Failed{Op: EditUser.Name, Failure: action.Failure{Status: 403, Message: "Not permitted"}}, out)
	}

	api.AssertExpectations(t)
}
