package list_sweeps

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type SweepJournal interface {
	ListByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.SweepRun, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
