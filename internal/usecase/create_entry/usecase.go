package create_entry

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
)

// UseCase use case для ручного добавления дня в расписание
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

// Execute добавляет день в расписание.
// Если окно уже заполнено, запрос отклоняется без обращения к бэкенду на запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и нормализация
	entry, err := buildEntry(req)
	if err != nil {
		uc.logger.Warn("CreateEntry: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateEntry: tenant=%s date=%s closed=%t", entry.TenantID, entry.Date, entry.IsClosed)

	// 2. Прошедшие даты не добавляем
	if err := validateDate(entry.Date, uc.maintainer.Today()); err != nil {
		uc.logger.Warn("CreateEntry: %v", err)
		return nil, err
	}

	// 3. Проверяем заполненность окна по свежим данным: записи могли добавить в обход сервиса
	view, err := uc.view.Reload(ctx, entry.TenantID)
	if err != nil {
		uc.logger.Error("CreateEntry: failed to load window for tenant=%s: %v", entry.TenantID, err)
		return nil, fmt.Errorf("%w: failed to load window: %v", ErrInternal, err)
	}
	if view.IsFull() {
		uc.logger.Warn("CreateEntry: window %s..%s of tenant=%s is full", view.Window.Start, view.Window.End(), entry.TenantID)
		return nil, ErrWindowFull
	}

	// 4. Создаем запись
	created, err := uc.backend.CreateWorkingHours(ctx, entry)
	if err != nil {
		if backend.IsDuplicate(err) {
			uc.logger.Warn("CreateEntry: date=%s already exists for tenant=%s", entry.Date, entry.TenantID)
			return nil, ErrDuplicateDate
		}
		uc.logger.Error("CreateEntry: failed to create date=%s for tenant=%s: %v", entry.Date, entry.TenantID, err)
		return nil, fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
	}
	uc.view.Apply(entry.TenantID, domain.Mutation{Kind: domain.MutationCreated, Entry: created})

	// 5. Копируем на неделю вперед
	copyResult := uc.maintainer.CopyForward(ctx, entry.TenantID, created)

	// 6. Перечитываем окно, ошибка не критична: кэш уже содержит созданную запись
	if _, err := uc.view.Reload(ctx, entry.TenantID); err != nil {
		uc.logger.Warn("CreateEntry: failed to reload window for tenant=%s: %v", entry.TenantID, err)
	}

	uc.logger.Info("CreateEntry: created id=%s date=%s for tenant=%s, copy_forward=%s",
		created.ID, created.Date, entry.TenantID, copyResult.Status)

	return &Response{
		Entry:       created,
		CopyForward: copyResult,
	}, nil
}
