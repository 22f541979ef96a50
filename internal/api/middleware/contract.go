package middleware

import (
	"context"
	"time"
)

// TenantValidator проверка существования тенанта
type TenantValidator interface {
	ValidateTenant(ctx context.Context, tenantID string) (bool, error)
}

// HTTPObserver метрики HTTP запросов
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
