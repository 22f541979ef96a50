package maintainer

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BackendClient интерфейс клиента бэкенда расписания
type BackendClient interface {
	ListWorkingHours(ctx context.Context, tenantID string, filter backend.ListFilter) ([]*domain.WorkingHoursEntry, error)
	GetWorkingHoursByDate(ctx context.Context, tenantID string, date types.Date) (*domain.WorkingHoursEntry, error)
	CreateWorkingHours(ctx context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error)
	CreateBulkWorkingHours(ctx context.Context, tenantID string, entries []*domain.WorkingHoursEntry) ([]*domain.WorkingHoursEntry, error)
	DeleteWorkingHours(ctx context.Context, tenantID, id string) error
}

// AffectedNotifier принимает запросы detect-affected без блокировки
type AffectedNotifier interface {
	Dispatch(tenantID string, dates []types.Date) bool
}

// SweepJournal журнал прогонов обновления окна
type SweepJournal interface {
	Create(ctx context.Context, run *domain.SweepRun) error
}

// SweepRecorder метрики обслуживания окна
type SweepRecorder interface {
	RecordSweepAction(policy, action, outcome string)
	SetWindowEntries(tenantID string, count int)
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
