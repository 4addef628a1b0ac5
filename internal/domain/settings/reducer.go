package settings

import (
	"slices"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

func Reduce(state State, a action.Action) State {
	switch a := a.(type) {
	case Action:
		return reduce(state, a)
	case action.Failed:
		if a.Op != GetControlReadahead.Name {
			return state
		}
		state.ReadaheadPending = false
	}

	return state
}

func reduce(state State, a Action) State {
	switch a := a.(type) {
	case GetSucceeded:
		data := a.Data
		state.Data = &data

	case UpdateSucceeded:
		data := a.Data
		state.Data = &data

	case WSUpdate:
		if state.Data == nil {
			return state
		}
		data := a.Data.Apply(*state.Data)
		state.Data = &data

	case ReadaheadRequested:
		state.ReadaheadPending = true

	case ReadaheadSucceeded:
		state.Readahead = slices.Clone(a.Data)
		state.ReadaheadPending = false
	}

	return state
}
