package reports

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "reports-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/reports",
		Summary:     "Recent unexpected API failures",
		Description: "Failures that were not shown to the user, newest first",
		Tags:        []string{"reports"},
		Middlewares: h.middleware,
	}
}
