// Package effecttest provides a mock Caller for effect handler tests.
package effecttest

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/OfficialArms/virtool/internal/domain/effect"
)

type MockCaller struct {
	mock.Mock
}

func (m *MockCaller) Call(ctx context.Context, ep effect.Endpoint, body any) (*effect.Response, error) {
	args := m.Called(ctx, ep, body)
	resp, _ := args.Get(0).(*effect.Response)
	return resp, args.Error(1)
}

// JSON builds a 200 response with v encoded as the body.
func JSON(v any) *effect.Response {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &effect.Response{Status: 200, Body: body}
}

// Fail builds the error returned for a non-2xx reply.
func Fail(status int, message string) error {
	return &effect.Error{Status: status, Message: message}
}

// Endpoint matches a call by method and path, ignoring the query.
func Endpoint(method, path string) any {
	return mock.MatchedBy(func(ep effect.Endpoint) bool {
		return ep.Method == method && ep.Path == path
	})
}
