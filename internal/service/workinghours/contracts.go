package workinghours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
)

// BackendClient интерфейс клиента бэкенда расписания
type BackendClient interface {
	ListWorkingHours(ctx context.Context, tenantID string, filter backend.ListFilter) ([]*domain.WorkingHoursEntry, error)
	GetWorkingHours(ctx context.Context, tenantID, id string) (*domain.WorkingHoursEntry, error)
}

// WindowFetcher источник текущего окна
type WindowFetcher interface {
	Window() domain.Window
	FetchWindow(ctx context.Context, tenantID string) (domain.Window, []*domain.WorkingHoursEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
