package reference

import (
	"encoding/json"
	"fmt"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

func Register(r *action.Registry) {
	r.Register(FindReferences.Requested, action.Decoder[FindRequested]())
	r.Register(GetReference.Requested, action.Decoder[GetRequested]())
	r.Register(EditReference.Requested, action.Decoder[EditRequested]())
	r.Register(CheckRemoteUpdates.Requested, action.Decoder[CheckUpdatesRequested]())
	r.Register(UpdateRemoteReference.Requested, action.Decoder[UpdateRemoteRequested]())

	for _, kind := range []MemberKind{Users, Groups} {
		r.Register(memberTriple(kind, AddReferenceUser, AddReferenceGroup).Requested, memberDecoder(func(a *AddMemberRequested) { a.Kind = kind }))
		r.Register(memberTriple(kind, EditReferenceUser, EditReferenceGroup).Requested, memberDecoder(func(a *EditMemberRequested) { a.Kind = kind }))
		r.Register(memberTriple(kind, RemoveReferenceUser, RemoveReferenceGroup).Requested, memberDecoder(func(a *RemoveMemberRequested) { a.Kind = kind }))
	}
}

// memberDecoder decodes a member action and stamps its kind, which is
// carried by the action type rather than the payload.
func memberDecoder[T action.Action](stamp func(*T)) action.DecodeFunc {
	return func(payload json.RawMessage) (action.Action, error) {
		var a T
		if len(payload) > 0 && string(payload) != "null" {
			if err := json.Unmarshal(payload, &a); err != nil {
				return nil, fmt.Errorf("%w: %v", action.ErrInvalidPayload, err)
			}
		}
		stamp(&a)
		return a, nil
	}
}
