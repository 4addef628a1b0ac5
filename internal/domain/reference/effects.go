package reference

import (
	"context"
	"strconv"
	"time"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

const FindWindow = 300 * time.Millisecond

type handlers struct {
	api effect.Caller
}

func Bindings(api effect.Caller) []effect.Binding {
	h := handlers{api: api}

	bindings := []effect.Binding{
		{Name: FindReferences.Name, Policy: effect.Throttle, Window: FindWindow, Handle: effect.Handle(FindReferences.Name, h.find)},
		{Name: GetReference.Name, Policy: effect.Latest, Handle: effect.Handle(GetReference.Name, h.get)},
		{Name: EditReference.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(EditReference.Name, h.edit)},
		{Name: CheckRemoteUpdates.Name, Policy: effect.Every, Handle: effect.Handle(CheckRemoteUpdates.Name, h.checkUpdates)},
		{Name: UpdateRemoteReference.Name, Policy: effect.Every, Handle: effect.Handle(UpdateRemoteReference.Name, h.updateRemote)},
	}

	for _, kind := range []MemberKind{Users, Groups} {
		add := memberTriple(kind, AddReferenceUser, AddReferenceGroup).Name
		edit := memberTriple(kind, EditReferenceUser, EditReferenceGroup).Name
		remove := memberTriple(kind, RemoveReferenceUser, RemoveReferenceGroup).Name

		bindings = append(bindings,
			effect.Binding{Name: add, Policy: effect.Every, Handle: effect.Handle(add, h.addMember)},
			effect.Binding{Name: edit, Policy: effect.Every, Handle: effect.Handle(edit, h.editMember)},
			effect.Binding{Name: remove, Policy: effect.Every, Handle: effect.Handle(remove, h.removeMember)},
		)
	}

	return bindings
}

func (h handlers) find(ctx context.Context, req FindRequested) (action.Action, error) {
	ep := effect.Get("/api/refs").With("find", req.Term)
	if req.Page > 0 {
		ep = ep.With("page", strconv.Itoa(req.Page))
	}

	page, err := effect.Do[collection.Page[Reference]](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return FindSucceeded{Data: page}, nil
}

func (h handlers) get(ctx context.Context, req GetRequested) (action.Action, error) {
	d, err := effect.Do[Detail](ctx, h.api, effect.Get("/api/refs/%s", req.RefID), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: d}, nil
}

func (h handlers) edit(ctx context.Context, req EditRequested) (action.Action, error) {
	d, err := effect.Do[Detail](ctx, h.api, effect.Patch("/api/refs/%s", req.RefID), req.Update)
	if err != nil {
		return nil, err
	}
	return EditSucceeded{Data: d}, nil
}

func (h handlers) checkUpdates(ctx context.Context, req CheckUpdatesRequested) (action.Action, error) {
	r, err := effect.Do[Release](ctx, h.api, effect.Get("/api/refs/%s/release", req.RefID), nil)
	if err != nil {
		return nil, err
	}
	return CheckUpdatesSucceeded{Data: r}, nil
}

func (h handlers) updateRemote(ctx context.Context, req UpdateRemoteRequested) (action.Action, error) {
	r, err := effect.Do[Release](ctx, h.api, effect.Post("/api/refs/%s/updates", req.RefID), nil)
	if err != nil {
		return nil, err
	}
	return UpdateRemoteSucceeded{Data: r}, nil
}

type addMemberBody struct {
	ID string `json:"id"`
	Rights
}

func (h handlers) addMember(ctx context.Context, req AddMemberRequested) (action.Action, error) {
	body := addMemberBody{ID: req.MemberID, Rights: req.Rights}

	m, err := effect.Do[Member](ctx, h.api, effect.Post("/api/refs/%s/%s", req.RefID, req.Kind), body)
	if err != nil {
		return nil, err
	}
	return AddMemberSucceeded{Kind: req.Kind, RefID: req.RefID, Data: m}, nil
}

func (h handlers) editMember(ctx context.Context, req EditMemberRequested) (action.Action, error) {
	ep := effect.Patch("/api/refs/%s/%s/%s", req.RefID, req.Kind, req.MemberID)

	m, err := effect.Do[Member](ctx, h.api, ep, req.Rights)
	if err != nil {
		return nil, err
	}
	return EditMemberSucceeded{Kind: req.Kind, RefID: req.RefID, Data: m}, nil
}

func (h handlers) removeMember(ctx context.Context, req RemoveMemberRequested) (action.Action, error) {
	ep := effect.Delete("/api/refs/%s/%s/%s", req.RefID, req.Kind, req.MemberID)

	if err := effect.Exec(ctx, h.api, ep, nil); err != nil {
		return nil, err
	}
	return RemoveMemberSucceeded{Kind: req.Kind, RefID: req.RefID, MemberID: req.MemberID}, nil
}
