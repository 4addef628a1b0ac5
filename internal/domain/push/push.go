package push

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

var (
	ErrUnknownOperation = errors.New("unknown push operation")
	ErrBadData          = errors.New("malformed push data")
)

// Operation is the kind of out-of-band change a push event announces.
type Operation string

const (
	Insert Operation = "insert"
	Update Operation = "update"
	Delete Operation = "delete"
	Remove Operation = "remove"
)

// Message is one event delivered on the push connection.
type Message struct {
	Interface string          `json:"interface"`
	Operation Operation       `json:"operation"`
	Data      json.RawMessage `json:"data"`
}

// Decoder turns a message of one interface into actions.
type Decoder func(op Operation, data json.RawMessage) ([]action.Action, error)

// Constructors builds the actions of one domain. Inserts carry full records,
// updates carry partial patches.
type Constructors[T, P collection.Identifiable] struct {
	Insert func(T) action.Action
	Update func(P) action.Action
	Remove func(id string) action.Action
}

// Decode implements the common insert/update/remove mapping. A nil
// constructor means the domain ignores that operation.
func Decode[T, P collection.Identifiable](c Constructors[T, P], op Operation, data json.RawMessage) ([]action.Action, error) {
	switch op {
	case Insert:
		if c.Insert == nil {
			return nil, nil
		}
		rec, err := decodeRecord[T](data)
		if err != nil {
			return nil, err
		}
		return []action.Action{c.Insert(rec)}, nil

	case Update:
		if c.Update == nil {
			return nil, nil
		}
		patch, err := decodeRecord[P](data)
		if err != nil {
			return nil, err
		}
		return []action.Action{c.Update(patch)}, nil

	case Delete, Remove:
		if c.Remove == nil {
			return nil, nil
		}

		ids, err := RemovedIDs(data)
		if err != nil {
			return nil, err
		}

		actions := make([]action.Action, 0, len(ids))
		for _, id := range ids {
			actions = append(actions, c.Remove(id))
		}
		return actions, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

func decodeRecord[T collection.Identifiable](data json.RawMessage) (T, error) {
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrBadData, err)
	}
	if rec.GetID() == "" {
		return rec, fmt.Errorf("%w: record without id", ErrBadData)
	}
	return rec, nil
}

// RemovedIDs accepts a single id, a list of ids or a record with an id.
func RemovedIDs(data json.RawMessage) ([]string, error) {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		return []string{id}, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		return ids, nil
	}

	var rec struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &rec); err == nil && rec.ID != "" {
		return []string{rec.ID}, nil
	}

	return nil, fmt.Errorf("%w: cannot read removed ids from %s", ErrBadData, string(data))
}
