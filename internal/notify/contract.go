package notify

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	DetectAffectedBookings(ctx context.Context, tenantID string, dates []types.Date) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
