package settings

import (
	"context"
	"time"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

const ReadaheadWindow = 120 * time.Millisecond

type handlers struct {
	api effect.Caller
}

func Bindings(api effect.Caller) []effect.Binding {
	h := handlers{api: api}

	return []effect.Binding{
		{Name: GetSettings.Name, Policy: effect.Latest, Handle: effect.Handle(GetSettings.Name, h.get)},
		{Name: UpdateSettings.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(UpdateSettings.Name, h.update)},
		{Name: GetControlReadahead.Name, Policy: effect.Throttle, Window: ReadaheadWindow, Handle: effect.Handle(GetControlReadahead.Name, h.readahead)},
	}
}

func (h handlers) get(ctx context.Context, _ GetRequested) (action.Action, error) {
	s, err := effect.Do[Settings](ctx, h.api, effect.Get("/api/settings"), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: s}, nil
}

func (h handlers) update(ctx context.Context, req UpdateRequested) (action.Action, error) {
	s, err := effect.Do[Settings](ctx, h.api, effect.Patch("/api/settings"), req.Update)
	if err != nil {
		return nil, err
	}
	return UpdateSucceeded{Data: s}, nil
}

func (h handlers) readahead(ctx context.Context, req ReadaheadRequested) (action.Action, error) {
	ep := effect.Get("/api/refs/%s/otus", req.RefID).With("find", req.Term).With("names", "true")

	names, err := effect.Do[[]OTUName](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return ReadaheadSucceeded{Data: names}, nil
}
