package actions

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) dispatchOp() huma.Operation {
	return huma.Operation{
		OperationID:   "actions-dispatch",
		Method:        http.MethodPost,
		Path:          "/api/v1/actions",
		Summary:       "Dispatch an action",
		Description:   "Decodes a registered action and queues it on the store. REQUESTED actions start their API call.",
		Tags:          []string{"actions"},
		DefaultStatus: http.StatusAccepted,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) typesOp() huma.Operation {
	return huma.Operation{
		OperationID: "actions-types",
		Method:      http.MethodGet,
		Path:        "/api/v1/actions",
		Summary:     "Action types accepted by the dispatch endpoint",
		Tags:        []string{"actions"},
		Middlewares: h.middleware,
	}
}
