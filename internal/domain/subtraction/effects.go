package subtraction

import (
	"context"
	"strconv"
	"time"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

const FindWindow = 500 * time.Millisecond

type handlers struct {
	api effect.Caller
}

func Bindings(api effect.Caller) []effect.Binding {
	h := handlers{api: api}

	return []effect.Binding{
		{Name: FindSubtractions.Name, Policy: effect.Throttle, Window: FindWindow, Handle: effect.Handle(FindSubtractions.Name, h.find)},
		{Name: ListSubtractionIDs.Name, Policy: effect.Latest, Handle: effect.Handle(ListSubtractionIDs.Name, h.listIDs)},
		{Name: GetSubtraction.Name, Policy: effect.Latest, Handle: effect.Handle(GetSubtraction.Name, h.get)},
		{Name: CreateSubtraction.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(CreateSubtraction.Name, h.create)},
		{Name: RemoveSubtraction.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(RemoveSubtraction.Name, h.remove)},
	}
}

func (h handlers) find(ctx context.Context, req FindRequested) (action.Action, error) {
	ep := effect.Get("/api/subtraction").With("find", req.Term)
	if req.Page > 0 {
		ep = ep.With("page", strconv.Itoa(req.Page))
	}

	res, err := effect.Do[FindResult](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return FindSucceeded{Data: res}, nil
}

func (h handlers) listIDs(ctx context.Context, _ ListIDsRequested) (action.Action, error) {
	ids, err := effect.Do[[]string](ctx, h.api, effect.Get("/api/subtraction").With("ids", "true"), nil)
	if err != nil {
		return nil, err
	}
	return ListIDsSucceeded{Data: ids}, nil
}

func (h handlers) get(ctx context.Context, req GetRequested) (action.Action, error) {
	s, err := effect.Do[Subtraction](ctx, h.api, effect.Get("/api/subtraction/%s", req.SubtractionID), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: s}, nil
}

func (h handlers) create(ctx context.Context, req CreateRequested) (action.Action, error) {
	s, err := effect.Do[Subtraction](ctx, h.api, effect.Post("/api/subtraction"), req.CreateRequest)
	if err != nil {
		return nil, err
	}
	return CreateSucceeded{Data: s}, nil
}

func (h handlers) remove(ctx context.Context, req RemoveRequested) (action.Action, error) {
	if err := effect.Exec(ctx, h.api, effect.Delete("/api/subtraction/%s", req.SubtractionID), nil); err != nil {
		return nil, err
	}
	return RemoveSucceeded{SubtractionID: req.SubtractionID}, nil
}
