package state

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "state-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/state",
		Summary:     "Full state tree",
		Tags:        []string{"state"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) sliceOp() huma.Operation {
	return huma.Operation{
		OperationID: "state-slice",
		Method:      http.MethodGet,
		Path:        "/api/v1/state/{slice}",
		Summary:     "One top-level slice of the state tree",
		Tags:        []string{"state"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) namesOp() huma.Operation {
	return huma.Operation{
		OperationID: "state-slices",
		Method:      http.MethodGet,
		Path:        "/api/v1/slices",
		Summary:     "Names of the top-level state slices",
		Tags:        []string{"state"},
		Middlewares: h.middleware,
	}
}
