package state

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/state"
)

// Source exposes the current state snapshot.
type Source interface {
	State() state.Root
}

type Handler struct {
	source     Source
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(source Source, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		source:     source,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.sliceOp(), h.slice)
	huma.Register(api, h.namesOp(), h.names)
}

func (h *Handler) get(_ context.Context, _ *getInput) (*getOutput, error) {
	return &getOutput{Body: h.source.State()}, nil
}

func (h *Handler) slice(_ context.Context, input *sliceInput) (*sliceOutput, error) {
	v, err := state.Slice(h.source.State(), input.Slice)
	if err != nil {
		if errors.Is(err, state.ErrUnknownSlice) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, err
	}

	return &sliceOutput{Body: v}, nil
}

func (h *Handler) names(_ context.Context, _ *struct{}) (*namesOutput, error) {
	return &namesOutput{Body: state.SliceNames()}, nil
}
