package reports

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/report"
)

type Servicer interface {
	Recent(ctx context.Context, limit int) ([]report.Report, error)
}

type Handler struct {
	service    Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	reports, err := h.service.Recent(ctx, input.Limit)
	if err != nil {
		if errors.Is(err, report.ErrInvalidLimit) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("failed to load reports", "error", err)
		return nil, huma.Error500InternalServerError("failed to load reports")
	}

	if reports == nil {
		reports = []report.Report{}
	}

	return &listOutput{Body: reports}, nil
}
