package errors

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "errors-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/errors",
		Summary:     "User-facing errors by key",
		Tags:        []string{"errors"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID:   "errors-clear",
		Method:        http.MethodDelete,
		Path:          "/api/v1/errors/{key}",
		Summary:       "Clear one error key",
		Tags:          []string{"errors"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
