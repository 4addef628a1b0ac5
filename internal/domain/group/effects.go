package group

import (
	"context"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

type handlers struct {
	api effect.Caller
}

func Bindings(api effect.Caller) []effect.Binding {
	h := handlers{api: api}

	return []effect.Binding{
		{Name: ListGroups.Name, Policy: effect.Latest, Handle: effect.Handle(ListGroups.Name, h.list)},
		{Name: CreateGroup.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(CreateGroup.Name, h.create)},
		{Name: SetGroupPermission.Name, Policy: effect.Every, Handle: effect.Handle(SetGroupPermission.Name, h.setPermission)},
		{Name: RemoveGroup.Name, Policy: effect.Every, Handle: effect.Handle(RemoveGroup.Name, h.remove)},
	}
}

func (h handlers) list(ctx context.Context, _ ListRequested) (action.Action, error) {
	groups, err := effect.Do[[]Group](ctx, h.api, effect.Get("/api/groups"), nil)
	if err != nil {
		return nil, err
	}
	return ListSucceeded{Data: groups}, nil
}

func (h handlers) create(ctx context.Context, req CreateRequested) (action.Action, error) {
	body := map[string]string{"group_id": req.GroupID}

	g, err := effect.Do[Group](ctx, h.api, effect.Post("/api/groups"), body)
	if err != nil {
		return nil, err
	}
	return CreateSucceeded{Data: g}, nil
}

func (h handlers) setPermission(ctx context.Context, req SetPermissionRequested) (action.Action, error) {
	body := Update{Permissions: map[string]bool{req.Permission: req.Value}}

	g, err := effect.Do[Group](ctx, h.api, effect.Patch("/api/groups/%s", req.GroupID), body)
	if err != nil {
		return nil, err
	}
	return SetPermissionSucceeded{Data: g}, nil
}

func (h handlers) remove(ctx context.Context, req RemoveRequested) (action.Action, error) {
	if err := effect.Exec(ctx, h.api, effect.Delete("/api/groups/%s", req.GroupID), nil); err != nil {
		return nil, err
	}
	return RemoveSucceeded{GroupID: req.GroupID}, nil
}
