package sweep

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func sampleRun(tenantID string, startedAt time.Time) *domain.SweepRun {
	window := domain.NewWindow(types.MustParseDate("2024-06-01"), domain.DefaultWindowDays)
	run := domain.NewSweepRun(tenantID, domain.PolicyPruneAndBackfill, window, startedAt)
	run.Created = 12
	run.Skipped = 1
	run.Failed = 1
	run.FinishedAt = startedAt.Add(3 * time.Second)
	return run
}

func TestBuildInsert(t *testing.T) {
	run := sampleRun("t1", time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC))

	query, args, err := buildInsert(run)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO sweep_runs (id,tenant_id,policy,window_start,window_end")
	assert.Contains(t, query, "$12")
	require.Len(t, args, 12)
	assert.Equal(t, "2024-06-01", args[3])
	assert.Equal(t, "2024-06-14", args[4])
	assert.Equal(t, sql.NullString{}, args[9])
}

func TestBuildListByTenant_ClampsLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  string
	}{
		{0, "LIMIT 50"},
		{10, "LIMIT 10"},
		{10000, "LIMIT 500"},
	}

	for _, tt := range tests {
		query, args, err := buildListByTenant("t1", tt.limit)
		require.NoError(t, err)
		assert.Contains(t, query, "WHERE tenant_id = $1")
		assert.Contains(t, query, "ORDER BY started_at DESC")
		assert.Contains(t, query, tt.want)
		assert.Equal(t, []interface{}{"t1"}, args)
	}
}

// openTestDB подключается к DATABASE_URL с примененной миграцией 001_sweep_runs.sql
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Ping())
	return db
}

func TestRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	tenantID := "test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM sweep_runs WHERE tenant_id = $1", tenantID)
	})

	older := sampleRun(tenantID, time.Now().Add(-2*time.Hour).UTC().Truncate(time.Second))
	newer := sampleRun(tenantID, time.Now().UTC().Truncate(time.Second))
	msg := "fetch failed"
	newer.Error = &msg

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	runs, err := repo.ListByTenant(ctx, tenantID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, newer.ID, runs[0].ID)
	require.NotNil(t, runs[0].Error)
	assert.Equal(t, msg, *runs[0].Error)
	assert.Equal(t, "2024-06-01", runs[1].WindowStart.String())
	assert.Equal(t, "2024-06-14", runs[1].WindowEnd.String())
	assert.Equal(t, 12, runs[1].Created)
	assert.Nil(t, runs[1].Error)

	deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	runs, err = repo.ListByTenant(ctx, tenantID, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
