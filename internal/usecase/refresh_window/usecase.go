package refresh_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
)

// UseCase use case для обновления окна расписания
type UseCase struct {
	maintainer Maintainer
	view       WindowView
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(windowMaintainer Maintainer, view WindowView, logger Logger) *UseCase {
	return &UseCase{
		maintainer: windowMaintainer,
		view:       view,
		logger:     logger,
	}
}

// Execute обслуживает окно тенанта по активной политике и заменяет кэш загруженным окном
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantId is required", ErrInvalidInput)
	}

	// 2. Обслуживание и загрузка окна
	result, err := uc.maintainer.Refresh(ctx, req.TenantID)
	if err != nil {
		if errors.Is(err, maintainer.ErrFetchWindow) {
			uc.logger.Warn("RefreshWindow: tenant=%s window not loaded: %v", req.TenantID, err)
			return nil, fmt.Errorf("%w: %v", ErrFetchWindow, err)
		}
		uc.logger.Error("RefreshWindow: tenant=%s failed: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Заменяем кэш целиком
	view := uc.view.Replace(req.TenantID, result.Window, result.Entries)

	return &Response{
		Policy:      result.Run.Policy,
		WindowStart: view.Window.Start,
		WindowEnd:   view.Window.End(),
		Entries:     view.Entries,
		Full:        view.IsFull(),
		Created:     result.Run.Created,
		Skipped:     result.Run.Skipped,
		Deleted:     result.Run.Deleted,
		Failed:      result.Run.Failed,
	}, nil
}
