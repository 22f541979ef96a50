package create_entry

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BackendClient интерфейс клиента бэкенда расписания
type BackendClient interface {
	CreateWorkingHours(ctx context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error)
}

// Maintainer интерфейс сервиса обслуживания окна
type Maintainer interface {
	Today() types.Date
	CopyForward(ctx context.Context, tenantID string, source *domain.WorkingHoursEntry) maintainer.CopyForwardResult
}

// WindowView интерфейс кэша окна
type WindowView interface {
	Reload(ctx context.Context, tenantID string) (*models.WindowView, error)
	Apply(tenantID string, m domain.Mutation)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
