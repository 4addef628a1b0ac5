package account

import (
	"encoding/json"
	"fmt"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

const Interface = "account"

func Push(op push.Operation, data json.RawMessage) ([]action.Action, error) {
	switch op {
	case push.Update:
		var u Update
		if err := json.Unmarshal(data, &u); err != nil {
			return nil, fmt.Errorf("%w: %v", push.ErrBadData, err)
		}
		return []action.Action{WSUpdate{Data: u}}, nil
	case push.Insert, push.Delete, push.Remove:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", push.ErrUnknownOperation, op)
	}
}
