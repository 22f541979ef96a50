package refresh_window

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
)

// Maintainer интерфейс сервиса обслуживания окна
type Maintainer interface {
	Refresh(ctx context.Context, tenantID string) (*maintainer.RefreshResult, error)
}

// WindowView интерфейс кэша окна
type WindowView interface {
	Replace(tenantID string, window domain.Window, entries []*domain.WorkingHoursEntry) *models.WindowView
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
