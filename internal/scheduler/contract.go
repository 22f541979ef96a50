package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/usecase/refresh_window"
)

// Refresher use case обновления окна тенанта
type Refresher interface {
	Execute(ctx context.Context, req *refresh_window.Request) (*refresh_window.Response, error)
}

// JournalPruner очистка журнала прогонов
type JournalPruner interface {
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
