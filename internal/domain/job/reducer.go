package job

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

	case WSRemove:
		state = removed(state, a.ID)

	case FindRequested:
		state.Term = a.Term

	case FindSucceeded:
		state.List = state.List.ReplacePage(a.Data)

	case GetRequested:
		state.Detail = nil

	case GetSucceeded:
		detail := a.Data
		state.Detail = &detail

	case CancelSucceeded:
		state.List = state.List.Update(a.Data.ID, func(Job) Job { return a.Data })
		if state.Detail != nil && state.Detail.ID == a.Data.ID {
			detail := a.Data
			state.Detail = &detail
		}

	case RemoveSucceeded:
		state = removed(state, a.JobID)

	default:
		return state
	}

	return state
}

func removed(state State, id string) State {
	state.List = state.List.Remove(id)
	if state.Detail != nil && state.Detail.ID == id {
		state.Detail = nil
	}
	return state
}
