package job

import (
	"encoding/json"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

const Interface = "jobs"

var constructors = push.Constructors[Job, Update]{
	Insert: func(j Job) action.Action { return WSInsert{Data: j} },
	Update: func(u Update) action.Action { return WSUpdate{Data: u} },
	Remove: func(id string) action.Action { return WSRemove{ID: id} },
}

func Push(op push.Operation, data json.RawMessage) ([]action.Action, error) {
	return push.Decode(constructors, op, data)
}
