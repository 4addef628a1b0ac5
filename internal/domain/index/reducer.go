package index

import "github.com/OfficialArms/virtool/internal/domain/action"

func Reduce(state State, a action.Action) State {
	if a, ok := a.(Action); ok {
		return reduce(state, a)
	}
	return state
}

func reduce(state State, a Action) State {
	switch a := a.(type) {
	case WSInsert:
		state.List = state.List.Insert(a.Data)

	case WSUpdate:
		state.List = state.List.Update(a.Data.ID, a.Data.Apply)
		if state.Detail != nil && state.Detail.ID == a.Data.ID {
			detail := a.Data.Apply(*state.Detail)
			state.Detail = &detail
		}

	case FindSucceeded:
		state.List = state.List.ReplacePage(a.Data)

	case GetRequested:
		state.Detail = nil

	case GetSucceeded:
		detail := a.Data
		state.Detail = &detail

	case GetUnbuiltRequested:
		state.Unbuilt = nil

	case GetUnbuiltSucceeded:
		unbuilt := a.Data
		state.Unbuilt = &unbuilt

	case CreateSucceeded:
		// the build consumed every pending change
		state.Unbuilt = nil

	default:
		return state
	}

	return state
}
