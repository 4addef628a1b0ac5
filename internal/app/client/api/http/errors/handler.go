// Package errors serves the user-facing error slice of the state tree.
package errors

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/apierror"
	"github.com/OfficialArms/virtool/internal/domain/effect"
	"github.com/OfficialArms/virtool/internal/state"
)

type Source interface {
	State() state.Root
}

type Handler struct {
	source     Source
	dispatcher effect.Dispatcher
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(source Source, dispatcher effect.Dispatcher, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		source:     source,
		dispatcher: dispatcher,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.clearOp(), h.clear)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*listOutput, error) {
	errs := h.source.State().Errors

	out := make(map[string]*failure, len(errs))
	for key, f := range errs {
		if f == nil {
			out[key] = nil
			continue
		}
		out[key] = &failure{Status: f.Status, Message: f.Message}
	}

	return &listOutput{Body: out}, nil
}

func (h *Handler) clear(_ context.Context, input *clearInput) (*struct{}, error) {
	h.dispatcher.Dispatch(apierror.ClearError{Key: input.Key})
	return nil, nil
}
