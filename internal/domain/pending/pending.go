// Package pending tracks whether a mutating call is in flight, so views can
// refuse duplicate submissions.
package pending

import "github.com/OfficialArms/virtool/internal/domain/action"

const (
	SetAppPending   action.Name = "SET_APP_PENDING"
	UnsetAppPending action.Name = "UNSET_APP_PENDING"
)

type Set struct{}

func (Set) Type() action.Type { return action.LocalType(SetAppPending) }

type Unset struct{}

func (Unset) Type() action.Type { return action.LocalType(UnsetAppPending) }

// State counts in-flight mutating calls. Pending stays true until the last
// of overlapping calls terminates.
type State struct {
	Pending  bool `json:"pending"`
	InFlight int  `json:"in_flight"`
}

func Reduce(state State, a action.Action) State {
	switch a.(type) {
	case Set:
		state.InFlight++
	case Unset:
		if state.InFlight > 0 {
			state.InFlight--
		}
	default:
		return state
	}
	state.Pending = state.InFlight > 0
	return state
}
