package maintainer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Service поддерживает скользящее окно расписания тенанта заполненным
type Service struct {
	settings Settings
	backend  BackendClient
	notifier AffectedNotifier
	journal  SweepJournal
	recorder SweepRecorder
	clock    TimeProvider
	logger   Logger
}

// NewService создает новый экземпляр сервиса.
// notifier, journal и recorder могут быть nil.
func NewService(
	settings Settings,
	backendClient BackendClient,
	notifier AffectedNotifier,
	journal SweepJournal,
	recorder SweepRecorder,
	clock TimeProvider,
	logger Logger,
) *Service {
	if settings.Policy == "" {
		settings.Policy = domain.DefaultPolicy
	}
	if settings.WindowDays < domain.MinWindowDays {
		settings.WindowDays = domain.DefaultWindowDays
	}
	if settings.HistoryLookbackDays <= 0 {
		settings.HistoryLookbackDays = domain.DefaultHistoryLookbackDays
	}
	if settings.Template.Start == nil && settings.Template.End == nil && !settings.Template.IsClosed {
		settings.Template = domain.DefaultSchedule()
	}
	if settings.Location == nil {
		settings.Location = time.Local
	}

	return &Service{
		settings: settings,
		backend:  backendClient,
		notifier: notifier,
		journal:  journal,
		recorder: recorder,
		clock:    clock,
		logger:   logger,
	}
}

// Policy возвращает активную политику
func (s *Service) Policy() domain.Policy {
	return s.settings.Policy
}

// Today возвращает сегодняшнюю дату в календаре салона
func (s *Service) Today() types.Date {
	return types.DateOf(s.clock.Now().In(s.settings.Location))
}

// Window возвращает текущее окно [сегодня, сегодня+N-1]
func (s *Service) Window() domain.Window {
	return domain.NewWindow(s.Today(), s.settings.WindowDays)
}

// Refresh обновляет окно тенанта согласно политике и загружает его.
// Ошибки отдельных дат логируются и не прерывают обход.
// Ошибка загрузки окна возвращается как ErrFetchWindow.
func (s *Service) Refresh(ctx context.Context, tenantID string) (*RefreshResult, error) {
	window := s.Window()
	run := domain.NewSweepRun(tenantID, s.settings.Policy, window, s.clock.Now())

	s.logger.Info("Refresh: tenant=%s policy=%s window=%s..%s", tenantID, s.settings.Policy, window.Start, window.End())

	if s.settings.Policy == domain.PolicyPruneAndBackfill {
		// 1. Удаляем прошедшие записи
		s.prune(ctx, tenantID, window.Start, run)
		// 2. Дозаполняем окно шаблоном
		s.backfill(ctx, tenantID, window, run)
	}

	// 3. Загружаем окно
	entries, err := s.fetchWindow(ctx, tenantID, window)
	if err != nil {
		s.record(actionFetch, outcomeFailed)
		msg := err.Error()
		run.Error = &msg
		s.finish(ctx, run)
		s.logger.Error("Refresh: failed to fetch window for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: tenant=%s: %v", ErrFetchWindow, tenantID, err)
	}
	s.record(actionFetch, outcomeOK)

	if s.recorder != nil {
		s.recorder.SetWindowEntries(tenantID, len(entries))
	}
	s.finish(ctx, run)

	s.logger.Info("Refresh: tenant=%s done, entries=%d created=%d skipped=%d deleted=%d failed=%d",
		tenantID, len(entries), run.Created, run.Skipped, run.Deleted, run.Failed)

	return &RefreshResult{
		Window:  window,
		Entries: entries,
		Run:     run,
	}, nil
}

// FetchWindow загружает записи текущего окна без обслуживания
func (s *Service) FetchWindow(ctx context.Context, tenantID string) (domain.Window, []*domain.WorkingHoursEntry, error) {
	window := s.Window()
	entries, err := s.fetchWindow(ctx, tenantID, window)
	if err != nil {
		return window, nil, fmt.Errorf("%w: tenant=%s: %v", ErrFetchWindow, tenantID, err)
	}
	return window, entries, nil
}

func (s *Service) fetchWindow(ctx context.Context, tenantID string, window domain.Window) ([]*domain.WorkingHoursEntry, error) {
	start, end := window.Start, window.End()
	entries, err := s.backend.ListWorkingHours(ctx, tenantID, backend.ListFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}
	return window.Filter(entries), nil
}

// prune удаляет записи за [сегодня-lookback, вчера] последовательно
func (s *Service) prune(ctx context.Context, tenantID string, today types.Date, run *domain.SweepRun) {
	from := today.AddDays(-s.settings.HistoryLookbackDays)
	yesterday := today.AddDays(-1)

	past, err := s.backend.ListWorkingHours(ctx, tenantID, backend.ListFilter{
		StartDate: &from,
		EndDate:   &yesterday,
	})
	if err != nil {
		s.record(actionPrune, outcomeFailed)
		s.logger.Warn("Refresh: failed to list past entries for tenant=%s, prune skipped: %v", tenantID, err)
		return
	}

	for _, e := range past {
		if !e.Date.Before(today) {
			continue
		}
		if err := s.backend.DeleteWorkingHours(ctx, tenantID, e.ID); err != nil {
			run.Failed++
			s.record(actionPrune, outcomeFailed)
			s.logger.Error("Refresh: failed to delete entry id=%s date=%s for tenant=%s: %v", e.ID, e.Date, tenantID, err)
			continue
		}
		run.Deleted++
		s.record(actionPrune, outcomeOK)
	}
}

// backfill создает недостающие дни окна из шаблона
func (s *Service) backfill(ctx context.Context, tenantID string, window domain.Window, run *domain.SweepRun) {
	existing, err := s.fetchWindow(ctx, tenantID, window)
	if err != nil {
		s.record(actionBackfill, outcomeFailed)
		s.logger.Warn("Refresh: failed to list window for tenant=%s, backfill skipped: %v", tenantID, err)
		return
	}

	missing := window.Missing(existing)
	if len(missing) == 0 {
		return
	}

	candidates := make([]*domain.WorkingHoursEntry, 0, len(missing))
	for _, d := range missing {
		candidates = append(candidates, s.settings.Template.ForDate(tenantID, d))
	}

	if s.settings.BulkBackfill {
		created, err := s.backend.CreateBulkWorkingHours(ctx, tenantID, candidates)
		if err == nil {
			run.Created += len(created)
			s.record(actionBulk, outcomeOK)
			return
		}
		s.record(actionBulk, outcomeFailed)
		s.logger.Warn("Refresh: bulk backfill failed for tenant=%s, falling back to one by one: %v", tenantID, err)
	}

	for _, e := range candidates {
		if _, err := s.backend.CreateWorkingHours(ctx, e); err != nil {
			if backend.IsDuplicate(err) {
				run.Skipped++
				s.record(actionBackfill, outcomeDuplicate)
				s.logger.Info("Refresh: entry for date=%s already exists for tenant=%s", e.Date, tenantID)
				continue
			}
			run.Failed++
			s.record(actionBackfill, outcomeFailed)
			s.logger.Error("Refresh: failed to create entry date=%s for tenant=%s: %v", e.Date, tenantID, err)
			continue
		}
		run.Created++
		s.record(actionBackfill, outcomeOK)
	}
}

// CopyForward копирует расписание дня на тот же день следующей недели,
// если целевая дата внутри окна и свободна. Ровно один шаг, ошибки не пробрасываются.
func (s *Service) CopyForward(ctx context.Context, tenantID string, source *domain.WorkingHoursEntry) CopyForwardResult {
	if s.settings.Policy != domain.PolicyCopyForward {
		return CopyForwardResult{Status: CopyDisabled}
	}

	target, ok := s.Window().CopyForwardTarget(source.Date)
	if !ok {
		s.logger.Debug("CopyForward: target of date=%s is outside the window, tenant=%s", source.Date, tenantID)
		return CopyForwardResult{Status: CopyOutOfWindow, Target: source.Date.AddDays(domain.CopyForwardOffsetDays)}
	}

	existing, err := s.backend.GetWorkingHoursByDate(ctx, tenantID, target)
	switch {
	case err == nil:
		s.logger.Debug("CopyForward: date=%s already has an entry, tenant=%s", target, tenantID)
		return CopyForwardResult{Status: CopyExists, Target: target, Entry: existing}
	case !errors.Is(err, backend.ErrNotFound):
		s.record(actionCopyForward, outcomeFailed)
		s.logger.Error("CopyForward: failed to check date=%s for tenant=%s: %v", target, tenantID, err)
		return CopyForwardResult{Status: CopyFailed, Target: target}
	}

	created, err := s.backend.CreateWorkingHours(ctx, source.Schedule().ForDate(tenantID, target))
	if err != nil {
		if backend.IsDuplicate(err) {
			s.record(actionCopyForward, outcomeDuplicate)
			s.logger.Info("CopyForward: date=%s was filled concurrently, tenant=%s", target, tenantID)
			return CopyForwardResult{Status: CopyExists, Target: target}
		}
		s.record(actionCopyForward, outcomeFailed)
		s.logger.Error("CopyForward: failed to create date=%s for tenant=%s: %v", target, tenantID, err)
		return CopyForwardResult{Status: CopyFailed, Target: target}
	}

	s.record(actionCopyForward, outcomeOK)
	s.logger.Info("CopyForward: copied date=%s to date=%s for tenant=%s", source.Date, target, tenantID)
	return CopyForwardResult{Status: CopyCreated, Target: target, Entry: created}
}

// DetectAffected ставит в очередь проверку бронирований на измененные даты и сразу возвращается
func (s *Service) DetectAffected(tenantID string, dates []types.Date) bool {
	if s.notifier == nil || len(dates) == 0 {
		return false
	}
	return s.notifier.Dispatch(tenantID, dates)
}

func (s *Service) finish(ctx context.Context, run *domain.SweepRun) {
	run.FinishedAt = s.clock.Now()
	if s.journal == nil {
		return
	}
	if err := s.journal.Create(ctx, run); err != nil {
		s.logger.Warn("Refresh: failed to journal sweep run=%s for tenant=%s: %v", run.ID, run.TenantID, err)
	}
}

func (s *Service) record(action, outcome string) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordSweepAction(string(s.settings.Policy), action, outcome)
}
