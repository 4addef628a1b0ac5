package effect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

// Endpoint addresses one Virtool API route.
type Endpoint struct {
	Method string
	Path   string
	Query  url.Values
}

func Get(format string, args ...any) Endpoint {
	return Endpoint{Method: http.MethodGet, Path: fmt.Sprintf(format, args...)}
}

func Post(format string, args ...any) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: fmt.Sprintf(format, args...)}
}

func Patch(format string, args ...any) Endpoint {
	return Endpoint{Method: http.MethodPatch, Path: fmt.Sprintf(format, args...)}
}

func Put(format string, args ...any) Endpoint {
	return Endpoint{Method: http.MethodPut, Path: fmt.Sprintf(format, args...)}
}

func Delete(format string, args ...any) Endpoint {
	return Endpoint{Method: http.MethodDelete, Path: fmt.Sprintf(format, args...)}
}

// With returns a copy of e with the query parameter set. Empty values are skipped.
func (e Endpoint) With(key, value string) Endpoint {
	if value == "" {
		return e
	}

	q := url.Values{}
	for k, v := range e.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set(key, value)
	e.Query = q

	return e
}

func (e Endpoint) String() string {
	if len(e.Query) == 0 {
		return e.Method + " " + e.Path
	}
	return e.Method + " " + e.Path + "?" + e.Query.Encode()
}

// Response is a successful API reply.
type Response struct {
	Status int
	Body   json.RawMessage
}

// Caller performs API calls. Non-2xx replies come back as *Error.
type Caller interface {
	Call(ctx context.Context, ep Endpoint, body any) (*Response, error)
}

// Error is a non-2xx reply of the Virtool API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Do performs the call and decodes the reply body into T.
func Do[T any](ctx context.Context, c Caller, ep Endpoint, body any) (T, error) {
	var out T

	resp, err := c.Call(ctx, ep, body)
	if err != nil {
		return out, err
	}

	if len(resp.Body) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", ep, err)
	}

	return out, nil
}

// Exec performs the call and discards the reply body.
func Exec(ctx context.Context, c Caller, ep Endpoint, body any) error {
	_, err := c.Call(ctx, ep, body)
	return err
}

// FailureOf converts any error into the payload of a FAILED action.
// Errors that never reached the API carry status 0.
func FailureOf(err error) action.Failure {
	var apiErr *Error
	switch {
	case err == nil:
		return action.Failure{}
	case errors.As(err, &apiErr):
		return action.Failure{Status: apiErr.Status, Message: apiErr.Message}
	case errors.Is(err, context.Canceled):
		return action.Failure{Message: "canceled"}
	case errors.Is(err, context.DeadlineExceeded):
		return action.Failure{Status: http.StatusGatewayTimeout, Message: "timed out"}
	default:
		return action.Failure{Message: err.Error()}
	}
}

// Fail builds the FAILED action of op from err.
func Fail(op action.Name, err error) action.Failed {
	return action.Failed{Op: op, Failure: FailureOf(err)}
}
