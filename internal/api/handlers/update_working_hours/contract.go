package update_working_hours

import (
	"context"

	updateEntry "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_entry"
)

type UpdateEntryUseCase interface {
	Execute(ctx context.Context, req *updateEntry.Request) (*updateEntry.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
