package sweep

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	tableName = "sweep_runs"

	// DefaultListLimit количество записей журнала по умолчанию
	DefaultListLimit = 50
	// MaxListLimit верхняя граница limit
	MaxListLimit = 500
)

var columns = []string{
	"id",
	"tenant_id",
	"policy",
	"window_start",
	"window_end",
	"created_count",
	"skipped_count",
	"deleted_count",
	"failed_count",
	"error",
	"started_at",
	"finished_at",
}

// Repository журнал прогонов обновления окна
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись о прогоне
func (r *Repository) Create(ctx context.Context, run *domain.SweepRun) error {
	query, args, err := buildInsert(run)
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByTenant возвращает последние прогоны тенанта, новые первыми
func (r *Repository) ListByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.SweepRun, error) {
	query, args, err := buildListByTenant(tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	runs := make([]*domain.SweepRun, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - rows iteration: %v", ErrScanRow, err)
	}

	return runs, nil
}

// DeleteOlderThan удаляет прогоны, начатые раньше before. Возвращает число удаленных строк.
func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"started_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - rows affected: %v", ErrExecQuery, err)
	}
	return n, nil
}

func buildInsert(run *domain.SweepRun) (string, []interface{}, error) {
	var runErr sql.NullString
	if run.Error != nil {
		runErr = sql.NullString{String: *run.Error, Valid: true}
	}

	return psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			run.ID,
			run.TenantID,
			string(run.Policy),
			run.WindowStart.String(),
			run.WindowEnd.String(),
			run.Created,
			run.Skipped,
			run.Deleted,
			run.Failed,
			runErr,
			run.StartedAt,
			run.FinishedAt,
		).
		ToSql()
}

func buildListByTenant(tenantID string, limit int) (string, []interface{}, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		ToSql()
}

func scanRun(rows *sql.Rows) (*domain.SweepRun, error) {
	var (
		run                    domain.SweepRun
		policy                 string
		windowStart, windowEnd time.Time
		runErr                 sql.NullString
	)

	err := rows.Scan(
		&run.ID,
		&run.TenantID,
		&policy,
		&windowStart,
		&windowEnd,
		&run.Created,
		&run.Skipped,
		&run.Deleted,
		&run.Failed,
		&runErr,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	run.Policy = domain.Policy(policy)
	run.WindowStart = types.DateOf(windowStart)
	run.WindowEnd = types.DateOf(windowEnd)
	if runErr.Valid {
		run.Error = &runErr.String
	}

	return &run, nil
}
