package create_working_hours

import (
	"context"

	createEntry "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_entry"
)

type CreateEntryUseCase interface {
	Execute(ctx context.Context, req *createEntry.Request) (*createEntry.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
