package index

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
		{Name: FindIndexes.Name, Policy: effect.Latest, Handle: effect.Handle(FindIndexes.Name, h.find)},
		{Name: GetIndex.Name, Policy: effect.Latest, Handle: effect.Handle(GetIndex.Name, h.get)},
		{Name: GetUnbuilt.Name, Policy: effect.Latest, Handle: effect.Handle(GetUnbuilt.Name, h.unbuilt)},
		{Name: CreateIndex.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(CreateIndex.Name, h.create)},
	}
}

func (h handlers) find(ctx context.Context, req FindRequested) (action.Action, error) {
	ep := effect.Get("/api/indexes")
	if req.RefID != "" {
		ep = effect.Get("/api/refs/%s/indexes", req.RefID)
	}
	if req.Page > 0 {
		ep = ep.With("page", strconv.Itoa(req.Page))
	}

	page, err := effect.Do[collection.Page[Index]](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return FindSucceeded{Data: page}, nil
}

func (h handlers) get(ctx context.Context, req GetRequested) (action.Action, error) {
	i, err := effect.Do[Index](ctx, h.api, effect.Get("/api/indexes/%s", req.IndexID), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: i}, nil
}

func (h handlers) unbuilt(ctx context.Context, req GetUnbuiltRequested) (action.Action, error) {
	ep := effect.Get("/api/refs/%s/history", req.RefID).With("unbuilt", "true")

	u, err := effect.Do[Unbuilt](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return GetUnbuiltSucceeded{Data: u}, nil
}

func (h handlers) create(ctx context.Context, req CreateRequested) (action.Action, error) {
	i, err := effect.Do[Index](ctx, h.api, effect.Post("/api/refs/%s/indexes", req.RefID), nil)
	if err != nil {
		return nil, err
	}
	return CreateSucceeded{Data: i}, nil
}
