package user

import (
	"context"
	"strconv"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/collection"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

type handlers struct {
	api effect.Caller
}

func Bindings(api effect.Caller) []effect.Binding {
	h := handlers{api: api}

	return []effect.Binding{
		{Name: FindUsers.Name, Policy: effect.Latest, Handle: effect.Handle(FindUsers.Name, h.find)},
		{Name: GetUser.Name, Policy: effect.Latest, Handle: effect.Handle(GetUser.Name, h.get)},
		{Name: CreateUser.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(CreateUser.Name, h.create)},
		{Name: EditUser.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(EditUser.Name, h.edit)},
		{Name: RemoveUser.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(RemoveUser.Name, h.remove)},
	}
}

func (h handlers) find(ctx context.Context, req FindRequested) (action.Action, error) {
	ep := effect.Get("/api/users").With("find", req.Term)
	if req.Page > 0 {
		ep = ep.With("page", strconv.Itoa(req.Page))
	}

	page, err := effect.Do[collection.Page[User]](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return FindSucceeded{Data: page}, nil
}

func (h handlers) get(ctx context.Context, req GetRequested) (action.Action, error) {
	u, err := effect.Do[User](ctx, h.api, effect.Get("/api/users/%s", req.UserID), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: u}, nil
}

func (h handlers) create(ctx context.Context, req CreateRequested) (action.Action, error) {
	u, err := effect.Do[User](ctx, h.api, effect.Post("/api/users"), req.CreateRequest)
	if err != nil {
		return nil, err
	}
	return CreateSucceeded{Data: u}, nil
}

func (h handlers) edit(ctx context.Context, req EditRequested) (action.Action, error) {
	body := req.Update
	body.ID = ""

	u, err := effect.Do[User](ctx, h.api, effect.Patch("/api/users/%s", req.UserID), body)
	if err != nil {
		return nil, err
	}
	return EditSucceeded{Data: u}, nil
}

func (h handlers) remove(ctx context.Context, req RemoveRequested) (action.Action, error) {
	if err := effect.Exec(ctx, h.api, effect.Delete("/api/users/%s", req.UserID), nil); err != nil {
		return nil, err
	}
	return RemoveSucceeded{UserID: req.UserID}, nil
}
