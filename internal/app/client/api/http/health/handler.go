package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// PendingReader reports the global pending flag.
type PendingReader interface {
	Pending() bool
}

type Handler struct {
	pending    PendingReader
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(pending PendingReader, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		pending:    pending,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:  "OK",
			Pending: h.pending.Pending(),
		},
	}, nil
}
