package backend

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает длительность и статус каждого вызова бэкенда
type Observer interface {
	ObserveBackendCall(operation, status string, duration time.Duration)
}
