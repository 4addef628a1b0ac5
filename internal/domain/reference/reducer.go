package reference

import (
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

func Reduce(state State, a action.Action) State {
	switch a := a.(type) {
	case Action:
		return reduce(state, a)
	case action.Failed:
		return failed(state, a.Op)
	}

	return state
}

func reduce(state State, a Action) State {
	switch a := a.(type) {
	case WSInsert:
		state.List = state.List.InsertSorted(a.Data, byName)
		state.InstallOfficial = hasOfficialRemote(state.Documents)

	case WSUpdate:
		state.List = state.List.Update(a.Data.ID, a.Data.Apply)
		state.InstallOfficial = hasOfficialRemote(state.Documents)
		state = patchDetail(state, a.Data.ID, func(d Detail) Detail {
			d.Reference = a.Data.Apply(d.Reference)
			return d
		})

	case WSRemove:
		state.List = state.List.Remove(a.ID)
		state.InstallOfficial = hasOfficialRemote(state.Documents)
		if state.Detail != nil && state.Detail.ID == a.ID {
			state.Detail = nil
		}

	case FindRequested:
		state.Term = a.Term

	case FindSucceeded:
		state.List = state.List.ReplacePage(a.Data)
		state.InstallOfficial = hasOfficialRemote(state.Documents)

	case GetRequested:
		state.Detail = nil

	case GetSucceeded:
		detail := a.Data
		state.Detail = &detail

	case EditSucceeded:
		detail := a.Data
		state.Detail = &detail
		state.List = state.List.Update(detail.ID, func(Reference) Reference { return detail.Reference })

	case CheckUpdatesRequested:
		state = patchDetail(state, a.RefID, func(d Detail) Detail {
			d.CheckPending = true
			return d
		})

	case CheckUpdatesSucceeded:
		state = patchAnyDetail(state, func(d Detail) Detail {
			release := a.Data
			d.CheckPending = false
			d.Release = &release
			return d
		})

	case UpdateRemoteSucceeded:
		state = patchAnyDetail(state, func(d Detail) Detail {
			release := a.Data
			d.Release = &release
			return d
		})

	case AddMemberSucceeded:
		state = patchDetail(state, a.RefID, func(d Detail) Detail {
			return withMembers(d, a.Kind, collection.Insert(members(d, a.Kind), a.Data))
		})

	case EditMemberSucceeded:
		state = patchDetail(state, a.RefID, func(d Detail) Detail {
			return withMembers(d, a.Kind, collection.Replace(members(d, a.Kind), a.Data))
		})

	case RemoveMemberRequested:
		state = patchDetail(state, a.RefID, func(d Detail) Detail {
			if a.Kind == Groups {
				d.PendingGroupRemove = a.MemberID
			} else {
				d.PendingUserRemove = a.MemberID
			}
			return d
		})

	case RemoveMemberSucceeded:
		state = patchDetail(state, a.RefID, func(d Detail) Detail {
			if a.Kind == Groups {
				d.Groups = collection.Remove(d.Groups, a.MemberID)
				if d.PendingGroupRemove == a.MemberID {
					d.PendingGroupRemove = ""
				}
			} else {
				d.Users = collection.Remove(d.Users, a.MemberID)
				if d.PendingUserRemove == a.MemberID {
					d.PendingUserRemove = ""
				}
			}
			return d
		})
	}

	return state
}

func failed(state State, op action.Name) State {
	switch op {
	case CheckRemoteUpdates.Name:
		return patchAnyDetail(state, func(d Detail) Detail {
			d.CheckPending = false
			return d
		})
	case RemoveReferenceUser.Name:
		return patchAnyDetail(state, func(d Detail) Detail {
			d.PendingUserRemove = ""
			return d
		})
	case RemoveReferenceGroup.Name:
		return patchAnyDetail(state, func(d Detail) Detail {
			d.PendingGroupRemove = ""
			return d
		})
	}
	return state
}

// patchDetail applies fn when the detail slot holds reference id.
func patchDetail(state State, id string, fn func(Detail) Detail) State {
	if state.Detail == nil || state.Detail.ID != id {
		return state
	}
	return patchAnyDetail(state, fn)
}

func patchAnyDetail(state State, fn func(Detail) Detail) State {
	if state.Detail == nil {
		return state
	}
	detail := fn(*state.Detail)
	state.Detail = &detail
	return state
}

func members(d Detail, kind MemberKind) []Member {
	if kind == Groups {
		return d.Groups
	}
	return d.Users
}

func withMembers(d Detail, kind MemberKind, m []Member) Detail {
	if kind == Groups {
		d.Groups = m
	} else {
		d.Users = m
	}
	return d
}
