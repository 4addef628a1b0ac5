package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/domain/action"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, r Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) Recent(ctx context.Context, limit int) ([]Report, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]Report), args.Error(1)
}

func TestFromFailed(t *testing.T) {
	r := FromFailed(action.Failed{Op: "FIND_JOBS", Failure: action.Failure{Status: 502, Message: "bad gateway"}})

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", r.ID.String())
	assert.Equal(t, "FIND_JOBS_FAILED", r.Type)
	assert.Equal(t, 502, r.Status)
	assert.Equal(t, "bad gateway", r.Message)
	assert.False(t, r.ReportedAt.IsZero())
}

func TestService_RunSaves(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default(), nil)

	saved := make(chan Report, 1)
	repo.On("Save", mock.Anything, mock.AnythingOfType("report.Report")).
		Run(func(args mock.Arguments) { saved <- args.Get(1).(Report) }).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	svc.Report(Report{Type: "FIND_JOBS_FAILED", Status: 500})

	select {
	case r := <-saved:
		assert.Equal(t, "FIND_JOBS_FAILED", r.Type)
	case <-time.After(time.Second):
		t.Fatal("report was not saved")
	}

	repo.AssertExpectations(t)
}

func TestService_SaveErrorIsSwallowed(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default(), nil)

	repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("database error"))

	svc.Report(Report{Type: "GET_JOB_FAILED"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, svc.Run(ctx))

	repo.AssertNumberOfCalls(t, "Save", 1)
}

type countingMetrics struct{ dropped int }

func (c *countingMetrics) ReportDropped() { c.dropped++ }

func TestService_ReportNeverBlocks(t *testing.T) {
	m := &countingMetrics{}
	svc := NewService(NewMemoryRepository(10), slog.Default(), m)

	for i := 0; i < queueSize+5; i++ {
		svc.Report(Report{Type: "X_FAILED"})
	}

	assert.Equal(t, 5, m.dropped)
}

func TestService_Recent(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default(), nil)

	repo.On("Recent", mock.Anything, 2).Return([]Report{{Type: "A_FAILED"}}, nil)

	reports, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	_, err = svc.Recent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	repo.AssertExpectations(t)
}

func TestMemoryRepository_Ring(t *testing.T) {
	repo := NewMemoryRepository(3)
	ctx := context.Background()

	for _, typ := range []string{"A", "B", "C", "D"} {
		require.NoError(t, repo.Save(ctx, Report{Type: typ}))
	}

	reports, err := repo.Recent(ctx, 10)
	require.NoError(t, err)

	var types []string
	for _, r := range reports {
		types = append(types, r.Type)
	}
	assert.Equal(t, []string{"D", "C", "B"}, types)

	reports, err = repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "D", reports[0].Type)
}
