package subtraction

import (
	"slices"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

func Reduce(state State, a action.Action) State {
	if a, ok := a.(Action); ok {
		return reduce(state, a)
	}
	return state
}

func reduce(state State, a Action) State {
	switch a := a.(type) {
	case WSInsert:
		state = inserted(state, a.Data)

	case CreateSucceeded:
		state = inserted(state, a.Data)

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
		state.List = state.List.ReplacePage(a.Data.Page)
		state.HostCount = a.Data.HostCount
		state.ReadyHostCount = a.Data.ReadyHostCount

	case ListIDsSucceeded:
		state.IDs = slices.Clone(a.Data)

	case GetRequested:
		state.Detail = nil

	case GetSucceeded:
		detail := a.Data
		state.Detail = &detail

	case RemoveSucceeded:
		state = removed(state, a.SubtractionID)
	}

	return state
}

func inserted(state State, s Subtraction) State {
	state.List = state.List.Insert(s)
	if !slices.Contains(state.IDs, s.ID) {
		state.IDs = append(slices.Clone(state.IDs), s.ID)
	}
	return state
}

func removed(state State, id string) State {
	state.List = state.List.Remove(id)
	if i := slices.Index(state.IDs, id); i >= 0 {
		state.IDs = slices.Delete(slices.Clone(state.IDs), i, i+1)
	}
	if state.Detail != nil && state.Detail.ID == id {
		state.Detail = nil
	}
	return state
}
