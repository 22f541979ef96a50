package list_working_hours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	GetWindow(ctx context.Context, tenantID string) (*models.WindowView, error)
	Search(ctx context.Context, req models.SearchRequest) ([]*domain.WorkingHoursEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
