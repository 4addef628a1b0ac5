package job

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
		{Name: FindJobs.Name, Policy: effect.Throttle, Window: FindWindow, Handle: effect.Handle(FindJobs.Name, h.find)},
		{Name: GetJob.Name, Policy: effect.Latest, Handle: effect.Handle(GetJob.Name, h.get)},
		{Name: CancelJob.Name, Policy: effect.Every, Handle: effect.Handle(CancelJob.Name, h.cancel)},
		{Name: RemoveJob.Name, Policy: effect.Every, Mutating: true, Handle: effect.Handle(RemoveJob.Name, h.remove)},
	}
}

func (h handlers) find(ctx context.Context, req FindRequested) (action.Action, error) {
	ep := effect.Get("/api/jobs").With("find", req.Term)
	if req.Page > 0 {
		ep = ep.With("page", strconv.Itoa(req.Page))
	}

	page, err := effect.Do[collection.Page[Job]](ctx, h.api, ep, nil)
	if err != nil {
		return nil, err
	}
	return FindSucceeded{Data: page}, nil
}

func (h handlers) get(ctx context.Context, req GetRequested) (action.Action, error) {
	j, err := effect.Do[Job](ctx, h.api, effect.Get("/api/jobs/%s", req.JobID), nil)
	if err != nil {
		return nil, err
	}
	return GetSucceeded{Data: j}, nil
}

func (h handlers) cancel(ctx context.Context, req CancelRequested) (action.Action, error) {
	j, err := effect.Do[Job](ctx, h.api, effect.Put("/api/jobs/%s/cancel", req.JobID), nil)
	if err != nil {
		return nil, err
	}
	return CancelSucceeded{Data: j}, nil
}

func (h handlers) remove(ctx context.Context, req RemoveRequested) (action.Action, error) {
	if err := effect.Exec(ctx, h.api, effect.Delete("/api/jobs/%s", req.JobID), nil); err != nil {
		return nil, err
	}
	return RemoveSucceeded{JobID: req.JobID}, nil
}
