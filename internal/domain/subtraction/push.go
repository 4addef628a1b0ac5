package subtraction

import (
	"encoding/json"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

const Interface = "subtraction"

var constructors = push.Constructors[Subtraction, Update]{
	Insert: func(s Subtraction) action.Action { return WSInsert{Data: s} },
	Update: func(u Update) action.Action { return WSUpdate{Data: u} },
	Remove: func(id string) action.Action { return WSRemove{ID: id} },
}

func Push(op push.Operation, data json.RawMessage) ([]action.Action, error) {
	return push.Decode(constructors, op, data)
}
