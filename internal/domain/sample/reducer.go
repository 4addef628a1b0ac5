package sample

import (
	"github.com/OfficialArms/virtool/internal/domain/action"
)

func Reduce(state State, a action.Action) State {
	switch a := a.(type) {
	case Action:
		return reduce(state, a)
	case action.Failed:
		if a.Op != RemoveSample.Name {
			return state
		}
		state.PendingRemove = ""
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
		detail := a.Data
		state.Detail = &detail

	case UpdateSucceeded:
		state.List = state.List.Update(a.Data.ID, func(Sample) Sample { return a.Data })
		if state.Detail != nil && state.Detail.ID == a.Data.ID {
			detail := a.Data
			state.Detail = &detail
		}

	case RemoveRequested:
		state.PendingRemove = a.SampleID

	case RemoveSucceeded:
		state = removed(state, a.SampleID)
		state.PendingRemove = ""
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
