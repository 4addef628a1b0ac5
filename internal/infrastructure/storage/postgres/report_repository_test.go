package postgres

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/app/client/config"
	"github.com/OfficialArms/virtool/internal/domain/report"
)

// Runs against a real database when TEST_DATABASE_URI is set.
func TestReportRepository(t *testing.T) {
	uri := os.Getenv("TEST_DATABASE_URI")
	if uri == "" {
		t.Skip("TEST_DATABASE_URI not set")
	}

	_, file, _, _ := runtime.Caller(0)
	migrations := filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")

	ctx := context.Background()
	db, err := New(ctx, &config.Config{DatabaseURI: uri, MigrationsPath: migrations})
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Pool().Exec(ctx, "TRUNCATE error_reports")
	require.NoError(t, err)

	repo := NewReportRepository(db, slog.Default())

	older := report.Report{
		ID: uuid.New(), Type: "FIND_JOBS_FAILED", Status: 502,
		Message: "bad gateway", ReportedAt: time.Now().Add(-time.Minute).UTC(),
	}
	newer := report.Report{
		ID: uuid.New(), Type: "GET_SAMPLE_FAILED", Status: 404,
		Message: "Not found", ReportedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))
	require.NoError(t, repo.Save(ctx, newer), "duplicate ids are ignored")

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)

	got, err = repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
