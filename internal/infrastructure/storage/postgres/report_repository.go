package postgres

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/report"
)

type ReportRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewReportRepository(db *Storage, log *slog.Logger) *ReportRepository {
	return &ReportRepository{
		db:  db,
		log: log,
	}
}

func (r *ReportRepository) Save(ctx context.Context, rep report.Report) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO error_reports (id, type, status, message, reported_at)
         VALUES ($1, $2, $3, $4, $5)
         ON CONFLICT (id) DO NOTHING`,
		rep.ID, rep.Type, rep.Status, rep.Message, rep.ReportedAt)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *ReportRepository) Recent(ctx context.Context, limit int) ([]report.Report, error) {
	if limit <= 0 {
		limit = report.DefaultRecentLimit
	}

	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, type, status, message, reported_at FROM error_reports
         ORDER BY reported_at DESC
         LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []report.Report
	for rows.Next() {
		var rep report.Report
		if err := rows.Scan(&rep.ID, &rep.Type, &rep.Status, &rep.Message, &rep.ReportedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}

	r.log.Debug("loaded reports", "count", len(out))
	return out, nil
}
