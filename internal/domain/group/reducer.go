package group

import (
	"slices"
	"strings"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

func Reduce(state State, a action.Action) State {
	switch a := a.(type) {
	case Action:
		return reduce(state, a)
	case action.Failed:
		if a.Op != RemoveGroup.Name {
			return state
		}
		state.PendingRemove = ""
	}

	return state
}

func reduce(state State, a Action) State {
	switch a := a.(type) {
	case WSInsert:
		state.Documents = collection.InsertSorted(state.Documents, a.Data, byID)

	case CreateSucceeded:
		state.Documents = collection.InsertSorted(state.Documents, a.Data, byID)

	case WSUpdate:
		state.Documents = collection.Update(state.Documents, a.Data.ID, a.Data.Apply)

	case SetPermissionSucceeded:
		state.Documents = collection.Replace(state.Documents, a.Data)

	case ListSucceeded:
		docs := slices.Clone(a.Data)
		slices.SortStableFunc(docs, func(a, b Group) int { return strings.Compare(a.ID, b.ID) })
		state.Documents = docs

	case WSRemove:
		state.Documents = collection.Remove(state.Documents, a.ID)

	case RemoveRequested:
		state.PendingRemove = a.GroupID

	case RemoveSucceeded:
		state.Documents = collection.Remove(state.Documents, a.GroupID)
		if state.PendingRemove == a.GroupID {
			state.PendingRemove = ""
		}
	}

	return state
}
