package refresh_window

import (
	"context"

	refreshWindow "github.com/m04kA/SMC-ScheduleService/internal/usecase/refresh_window"
)

type RefreshWindowUseCase interface {
	Execute(ctx context.Context, req *refreshWindow.Request) (*refreshWindow.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
