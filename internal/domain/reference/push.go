package reference

import (
	"encoding/json"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

const Interface = "references"

var constructors = push.Constructors[Reference, Update]{
	Insert: func(r Reference) action.Action { return WSInsert{Data: r} },
	Update: func(u Update) action.Action { return WSUpdate{Data: u} },
	Remove: func(id string) action.Action { return WSRemove{ID: id} },
}

func Push(op push.Operation, data json.RawMessage) ([]action.Action, error) {
	return push.Decode(constructors, op, data)
}
