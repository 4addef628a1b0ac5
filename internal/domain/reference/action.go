package reference

import (
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
)

const (
	WSInsertReference action.Name = "WS_INSERT_REFERENCE"
	WSUpdateReference action.Name = "WS_UPDATE_REFERENCE"
	WSRemoveReference action.Name = "WS_REMOVE_REFERENCE"
)

var (
	FindReferences        = action.NewTriple("FIND_REFERENCES")
	GetReference          = action.NewTriple("GET_REFERENCE")
	EditReference         = action.NewTriple("EDIT_REFERENCE")
	CheckRemoteUpdates    = action.NewTriple("CHECK_REMOTE_UPDATES")
	UpdateRemoteReference = action.NewTriple("UPDATE_REMOTE_REFERENCE")
	AddReferenceUser      = action.NewTriple("ADD_REFERENCE_USER")
	EditReferenceUser     = action.NewTriple("EDIT_REFERENCE_USER")
	RemoveReferenceUser   = action.NewTriple("REMOVE_REFERENCE_USER")
	AddReferenceGroup     = action.NewTriple("ADD_REFERENCE_GROUP")
	EditReferenceGroup    = action.NewTriple("EDIT_REFERENCE_GROUP")
	RemoveReferenceGroup  = action.NewTriple("REMOVE_REFERENCE_GROUP")
)

type Action interface {
	action.Action
	reference()
}

type FindRequested struct {
	Term string `json:"term"`
	Page int    `json:"page"`
}

type FindSucceeded struct {
	Data collection.Page[Reference] `json:"data"`
}

type GetRequested struct {
	RefID string `json:"ref_id"`
}

type GetSucceeded struct {
	Data Detail `json:"data"`
}

type EditRequested struct {
	RefID  string `json:"ref_id"`
	Update Update `json:"update"`
}

type EditSucceeded struct {
	Data Detail `json:"data"`
}

type CheckUpdatesRequested struct {
	RefID string `json:"ref_id"`
}

type CheckUpdatesSucceeded struct {
	Data Release `json:"data"`
}

type UpdateRemoteRequested struct {
	RefID string `json:"ref_id"`
}

type UpdateRemoteSucceeded struct {
	Data Release `json:"data"`
}

// MemberKind selects the users or the groups of a reference.
type MemberKind string

const (
	Users  MemberKind = "users"
	Groups MemberKind = "groups"
)

type AddMemberRequested struct {
	Kind     MemberKind `json:"-"`
	RefID    string     `json:"ref_id"`
	MemberID string     `json:"member_id"`
	Rights   Rights     `json:"rights"`
}

type AddMemberSucceeded struct {
	Kind  MemberKind `json:"-"`
	RefID string     `json:"ref_id"`
	Data  Member     `json:"data"`
}

type EditMemberRequested struct {
	Kind     MemberKind `json:"-"`
	RefID    string     `json:"ref_id"`
	MemberID string     `json:"member_id"`
	Rights   Rights     `json:"rights"`
}

type EditMemberSucceeded struct {
	Kind  MemberKind `json:"-"`
	RefID string     `json:"ref_id"`
	Data  Member     `json:"data"`
}

type RemoveMemberRequested struct {
	Kind     MemberKind `json:"-"`
	RefID    string     `json:"ref_id"`
	MemberID string     `json:"member_id"`
}

type RemoveMemberSucceeded struct {
	Kind     MemberKind `json:"-"`
	RefID    string     `json:"ref_id"`
	MemberID string     `json:"member_id"`
}

type WSInsert struct {
	Data Reference `json:"data"`
}

type WSUpdate struct {
	Data Update `json:"data"`
}

type WSRemove struct {
	ID string `json:"id"`
}

func memberTriple(kind MemberKind, users, groups action.Triple) action.Triple {
	if kind == Groups {
		return groups
	}
	return users
}

func (FindRequested) Type() action.Type         { return FindReferences.Requested }
func (FindSucceeded) Type() action.Type         { return FindReferences.Succeeded }
func (GetRequested) Type() action.Type          { return GetReference.Requested }
func (GetSucceeded) Type() action.Type          { return GetReference.Succeeded }
func (EditRequested) Type() action.Type         { return EditReference.Requested }
func (EditSucceeded) Type() action.Type         { return EditReference.Succeeded }
func (CheckUpdatesRequested) Type() action.Type { return CheckRemoteUpdates.Requested }
func (CheckUpdatesSucceeded) Type() action.Type { return CheckRemoteUpdates.Succeeded }
func (UpdateRemoteRequested) Type() action.Type { return UpdateRemoteReference.Requested }
func (UpdateRemoteSucceeded) Type() action.Type { return UpdateRemoteReference.Succeeded }
func (WSInsert) Type() action.Type              { return action.LocalType(WSInsertReference) }
func (WSUpdate) Type() action.Type              { return action.LocalType(WSUpdateReference) }
func (WSRemove) Type() action.Type              { return action.LocalType(WSRemoveReference) }

func (a AddMemberRequested) Type() action.Type {
	return memberTriple(a.Kind, AddReferenceUser, AddReferenceGroup).Requested
}

func (a AddMemberSucceeded) Type() action.Type {
	return memberTriple(a.Kind, AddReferenceUser, AddReferenceGroup).Succeeded
}

func (a EditMemberRequested) Type() action.Type {
	return memberTriple(a.Kind, EditReferenceUser, EditReferenceGroup).Requested
}

func (a EditMemberSucceeded) Type() action.Type {
	return memberTriple(a.Kind, EditReferenceUser, EditReferenceGroup).Succeeded
}

func (a RemoveMemberRequested) Type() action.Type {
	return memberTriple(a.Kind, RemoveReferenceUser, RemoveReferenceGroup).Requested
}

func (a RemoveMemberSucceeded) Type() action.Type {
	return memberTriple(a.Kind, RemoveReferenceUser, RemoveReferenceGroup).Succeeded
}

func (FindRequested) reference()         {}
func (FindSucceeded) reference()         {}
func (GetRequested) reference()          {}
func (GetSucceeded) reference()          {}
func (EditRequested) reference()         {}
func (EditSucceeded) reference()         {}
func (CheckUpdatesRequested) reference() {}
func (CheckUpdatesSucceeded) reference() {}
func (UpdateRemoteRequested) reference() {}
func (UpdateRemoteSucceeded) reference() {}
func (AddMemberRequested) reference()    {}
func (AddMemberSucceeded) reference()    {}
func (EditMemberRequested) reference()   {}
func (EditMemberSucceeded) reference()   {}
func (RemoveMemberRequested) reference() {}
func (RemoveMemberSucceeded) reference() {}
func (WSInsert) reference()              {}
func (WSUpdate) reference()              {}
func (WSRemove) reference()              {}
