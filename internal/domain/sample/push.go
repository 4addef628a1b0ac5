package sample

import (
	"encoding/json"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/push"
)

// Interface is the push interface name of samples.
const Interface = "samples"

var constructors = push.Constructors[Sample, Update]{
	Insert: func(s Sample) action.Action { return WSInsert{Data: s} },
	Update: func(u Update) action.Action { return WSUpdate{Data: u} },
	Remove: func(id string) action.Action { return WSRemove{ID: id} },
}

func Push(op push.Operation, data json.RawMessage) ([]action.Action, error) {
	return push.Decode(constructors, op, data)
}
