package user

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

	case CreateSucceeded:
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
		state = replaced(state, a.Data)

	case EditSucceeded:
		state = replaced(state, a.Data)

	case RemoveSucceeded:
		state = removed(state, a.UserID)

	default:
		return state
	}

	return state
}

func replaced(state State, u User) State {
	state.Detail = &u
	state.List = state.List.Update(u.ID, func(User) User { return u })
	return state
}

func removed(state State, id string) State {
	state.List = state.List.Remove(id)
	if state.Detail != nil && state.Detail.ID == id {
		state.Detail = nil
	}
	return state
}
