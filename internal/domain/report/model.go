package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

// Report is one failure that was not shown to the user.
type Report struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Status     int       `json:"status"`
	Message    string    `json:"message"`
	ReportedAt time.Time `json:"reported_at"`
}

func FromFailed(f action.Failed) Report {
	return Report{
		ID:         uuid.New(),
		Type:       f.Type().String(),
		Status:     f.Status,
		Message:    f.Message,
		ReportedAt: time.Now().UTC(),
	}
}
