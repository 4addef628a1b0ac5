package effect

import (
	"context"
	"fmt"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

// Handle adapts a typed handler. A returned error becomes the FAILED
// action of op.
func Handle[R action.Action](op action.Name, fn func(ctx context.Context, req R) (action.Action, error)) Handler {
	return func(ctx context.Context, a action.Action) action.Action {
		req, ok := a.(R)
		if !ok {
			return action.Failed{
				Op:      op,
				Failure: action.Failure{Message: fmt.Sprintf("unexpected action %T", a)},
			}
		}

		out, err := fn(ctx, req)
		if err != nil {
			return Fail(op, err)
		}

		return out
	}
}
