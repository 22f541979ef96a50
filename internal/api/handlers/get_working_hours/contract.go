package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type WorkingHoursService interface {
	GetEntry(ctx context.Context, tenantID, id string) (*domain.WorkingHoursEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
