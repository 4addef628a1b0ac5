package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownType    = errors.New("unknown action type")
	ErrInvalidPayload = errors.New("invalid action payload")
)

// DecodeFunc builds a well-formed action from a JSON payload.
type DecodeFunc func(payload json.RawMessage) (Action, error)

// Registry maps rendered action types to decoders. Views may only dispatch
// what is registered here.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]DecodeFunc
}

func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]DecodeFunc),
	}
}

// Register adds a decoder for t. A second registration of the same type
// replaces the first.
func (r *Registry) Register(t Type, fn DecodeFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[t.String()] = fn
}

// Decode builds the action registered under typ.
func (r *Registry) Decode(typ string, payload json.RawMessage) (Action, error) {
	r.mu.RLock()
	fn, ok := r.decoders[typ]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}

	return fn(payload)
}

// Types lists every registered type in lexical order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.decoders))
	for t := range r.decoders {
		types = append(types, t)
	}
	sort.Strings(types)

	return types
}

// Decoder returns a DecodeFunc unmarshalling the payload into T.
// An empty payload yields the zero value of T.
func Decoder[T Action]() DecodeFunc {
	return func(payload json.RawMessage) (Action, error) {
		var a T
		if len(payload) == 0 || string(payload) == "null" {
			return a, nil
		}
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return a, nil
	}
}
