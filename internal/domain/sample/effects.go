package sample

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

	return []effect.Binding{
		{Name: FindSamples.Name, Policy: effect.Throttle, Window: FindWindow, Handle: effect.Handle(FindSamples.Name, h.find)},
		{Name: GetSample.Name, Policy: effect.Latest, Handle: effect.Handle(GetSample.Name, h.get)},
		{Name: CreateSample.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(CreateSample.Name, h.create)},
		{Name: UpdateSample.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(UpdateSample.Name, h.update)},
		{Name: RemoveSample.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(RemoveSample.Name, h.remove)},
	}
}

func (h handlers) find(ctx context.Context, req FindRequested) (action.Action, error) {
	ep := effect.Get("/api/samples").With("find", req.Term)
	if req.Page > 0 {
		ep = ep.With("page", strconv.Itoa(req.Page))
	}

	page, err := effect.Do[collection.Page[Sample]](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return FindSucceeded{Data: page}, nil
}

func (h handlers) get(ctx context.Context, req GetRequested) (action.Action, error) {
	s, err := effect.Do[Sample](ctx, h.api, effect.Get("/api/samples/%s", req.SampleID), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: s}, nil
}

func (h handlers) create(ctx context.Context, req CreateRequested) (action.Action, error) {
	s, err := effect.Do[Sample](ctx, h.api, effect.Post("/api/samples"), req.CreateRequest)
	if err != nil {
		return nil, err
	}
	return CreateSucceeded{Data: s}, nil
}

func (h handlers) update(ctx context.Context, req UpdateRequested) (action.Action, error) {
	s, err := effect.Do[Sample](ctx, h.api, effect.Patch("/api/samples/%s", req.SampleID), req.Update)
	if err != nil {
		return nil, err
	}
	return UpdateSucceeded{Data: s}, nil
}

func (h handlers) remove(ctx context.Context, req RemoveRequested) (action.Action, error) {
	if err := effect.Exec(ctx, h.api, effect.Delete("/api/samples/%s", req.SampleID), nil); err != nil {
		return nil, err
	}
	return RemoveSucceeded{SampleID: req.SampleID}, nil
}
