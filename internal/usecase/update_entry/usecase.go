package update_entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// UseCase use case для сохранения отредактированного дня
type UseCase struct {
	backend    BackendClient
	maintainer Maintainer
	view       WindowView
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(backendClient BackendClient, windowMaintainer Maintainer, view WindowView, logger Logger) *UseCase {
	return &UseCase{
		backend:    backendClient,
		maintainer: windowMaintainer,
		view:       view,
		logger:     logger,
	}
}

// Execute сохраняет день, обновляет кэш, копирует день на неделю вперед
// и ставит в очередь проверку затронутых бронирований.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и нормализация
	entry, err := buildEntry(req)
	if err != nil {
		uc.logger.Warn("UpdateEntry: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateEntry: tenant=%s id=%s date=%s closed=%t", entry.TenantID, entry.ID, entry.Date, entry.IsClosed)

	// 2. Сохраняем
	updated, err := uc.backend.UpdateWorkingHours(ctx, entry)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrNotFound):
			uc.logger.Warn("UpdateEntry: id=%s not found for tenant=%s", entry.ID, entry.TenantID)
			return nil, ErrEntryNotFound
		case backend.IsDuplicate(err):
			uc.logger.Warn("UpdateEntry: date=%s already taken for tenant=%s", entry.Date, entry.TenantID)
			return nil, ErrDuplicateDate
		}
		uc.logger.Error("UpdateEntry: failed to update id=%s for tenant=%s: %v", entry.ID, entry.TenantID, err)
		return nil, fmt.Errorf("%w: failed to update entry: %v", ErrInternal, err)
	}

	// 3. Патчим кэш локально
	uc.view.Apply(entry.TenantID, domain.Mutation{Kind: domain.MutationUpdated, Entry: updated})

	// 4. Копируем на неделю вперед; если копия создана - перечитываем окно
	copyResult := uc.maintainer.CopyForward(ctx, entry.TenantID, updated)
	if copyResult.Status == maintainer.CopyCreated {
		if _, err := uc.view.Reload(ctx, entry.TenantID); err != nil {
			uc.logger.Warn("UpdateEntry: failed to reload window for tenant=%s: %v", entry.TenantID, err)
		}
	}

	// 5. Проверка затронутых бронирований, асинхронно
	queued := uc.maintainer.DetectAffected(entry.TenantID, []types.Date{updated.Date})
	if !queued {
		uc.logger.Warn("UpdateEntry: detect-affected for date=%s tenant=%s was not queued", updated.Date, entry.TenantID)
	}

	uc.logger.Info("UpdateEntry: updated id=%s for tenant=%s, copy_forward=%s", updated.ID, entry.TenantID, copyResult.Status)

	return &Response{
		Entry:        updated,
		CopyForward:  copyResult,
		DetectQueued: queued,
	}, nil
}
