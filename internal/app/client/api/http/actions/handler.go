package actions

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/effect"
)

type Handler struct {
	registry   *action.Registry
	dispatcher effect.Dispatcher
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(registry *action.Registry, dispatcher effect.Dispatcher, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		registry:   registry,
		dispatcher: dispatcher,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.dispatchOp(), h.dispatch)
	huma.Register(api, h.typesOp(), h.types)
}

func (h *Handler) dispatch(_ context.Context, input *dispatchInput) (*dispatchOutput, error) {
	var payload json.RawMessage
	if input.Body.Payload != nil {
		raw, err := json.Marshal(input.Body.Payload)
		if err != nil {
			return nil, huma.Error400BadRequest("payload is not valid JSON", err)
		}
		payload = raw
	}

	a, err := h.registry.Decode(input.Body.Type, payload)
	switch {
	case errors.Is(err, action.ErrUnknownType):
		return nil, huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, action.ErrInvalidPayload):
		return nil, huma.Error400BadRequest(err.Error())
	case err != nil:
		return nil, err
	}

	h.log.Debug("dispatching action", "type", input.Body.Type)
	h.dispatcher.Dispatch(a)

	return &dispatchOutput{
		Body: dispatchResponse{
			Status: "Accepted",
			Type:   a.Type().String(),
		},
	}, nil
}

func (h *Handler) types(_ context.Context, _ *struct{}) (*typesOutput, error) {
	return &typesOutput{Body: h.registry.Types()}, nil
}
