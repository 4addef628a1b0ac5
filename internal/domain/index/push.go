package index

import (
	"encoding/json"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

const Interface = "indexes"

// Indexes are never removed through push.
var constructors = push.Constructors[Index, Update]{
	Insert: func(i Index) action.Action { return WSInsert{Data: i} },
	Update: func(u Update) action.Action { return WSUpdate{Data: u} },
}

func Push(op push.Operation, data json.RawMessage) ([]action.Action, error) {
	return push.Decode(constructors, op, data)
}
