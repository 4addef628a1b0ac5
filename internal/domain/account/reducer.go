package account

import "github.com/OfficialArms/virtool/internal/domain/action"

func Reduce(state State, a action.Action) State {
	if a, ok := a.(Action); ok {
		return reduce(state, a)
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
		if state.Data == nil || (a.Data.ID != "" && a.Data.ID != state.Data.ID) {
			return state
		}
		data := a.Data.Apply(*state.Data)
		state.Data = &data

	case ChangePasswordSucceeded:
		if state.Data == nil {
			return state
		}
		data := *state.Data
		data.LastPasswordChange = a.ChangedAt
		state.Data = &data

	default:
		return state
	}

	return state
}
