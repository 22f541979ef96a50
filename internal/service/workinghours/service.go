package workinghours

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
)

// Service кэш окна расписания по тенантам.
// Список меняется только через domain.Reduce.
type Service struct {
	backend BackendClient
	windows WindowFetcher
	logger  Logger

	mu    sync.RWMutex
	views map[string]*models.WindowView
}

// NewService создает новый экземпляр сервиса
func NewService(backendClient BackendClient, windows WindowFetcher, logger Logger) *Service {
	return &Service{
		backend: backendClient,
		windows: windows,
		logger:  logger,
		views:   make(map[string]*models.WindowView),
	}
}

// GetWindow возвращает окно тенанта из кэша.
// Если окно сменилось (наступил новый день) или кэша нет - загружает заново.
func (s *Service) GetWindow(ctx context.Context, tenantID string) (*models.WindowView, error) {
	current := s.windows.Window()

	s.mu.RLock()
	cached, ok := s.views[tenantID]
	s.mu.RUnlock()

	if ok && cached.Window == current {
		return copyView(cached), nil
	}
	if ok {
		s.logger.Info("GetWindow: window of tenant=%s moved from %s to %s, reloading", tenantID, cached.Window.Start, current.Start)
	}

	return s.Reload(ctx, tenantID)
}

// Reload загружает окно тенанта и заменяет кэш целиком
func (s *Service) Reload(ctx context.Context, tenantID string) (*models.WindowView, error) {
	window, entries, err := s.windows.FetchWindow(ctx, tenantID)
	if err != nil {
		s.logger.Error("Reload: failed to fetch window for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Reload - fetch error: %v", ErrInternal, err)
	}

	return s.Replace(tenantID, window, entries), nil
}

// Replace заменяет кэш тенанта загруженным окном
func (s *Service) Replace(tenantID string, window domain.Window, entries []*domain.WorkingHoursEntry) *models.WindowView {
	view := &models.WindowView{
		Window:  window,
		Entries: domain.Reduce(nil, domain.Mutation{Kind: domain.MutationReplaced, Entries: entries}),
	}

	s.mu.Lock()
	s.views[tenantID] = view
	s.mu.Unlock()

	return copyView(view)
}

// Apply применяет изменение к кэшу тенанта. Без кэша - ничего не делает.
// Записи вне окна кэша отбрасываются.
func (s *Service) Apply(tenantID string, m domain.Mutation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[tenantID]
	if !ok {
		return
	}
	s.views[tenantID] = &models.WindowView{
		Window:  view.Window,
		Entries: view.Window.Filter(domain.Reduce(view.Entries, m)),
	}
}

// Invalidate сбрасывает кэш тенанта
func (s *Service) Invalidate(tenantID string) {
	s.mu.Lock()
	delete(s.views, tenantID)
	s.mu.Unlock()
}

// GetEntry получает запись по ID напрямую из бэкенда
func (s *Service) GetEntry(ctx context.Context, tenantID, id string) (*domain.WorkingHoursEntry, error) {
	entry, err := s.backend.GetWorkingHours(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		s.logger.Error("GetEntry: backend error for id=%s tenant=%s: %v", id, tenantID, err)
		return nil, fmt.Errorf("%w: GetEntry - backend error: %v", ErrInternal, err)
	}
	if entry.TenantID != "" && entry.TenantID != tenantID {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// Search ищет записи по фильтрам, минуя кэш
func (s *Service) Search(ctx context.Context, req models.SearchRequest) ([]*domain.WorkingHoursEntry, error) {
	entries, err := s.backend.ListWorkingHours(ctx, req.TenantID, backend.ListFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Day:       req.Day,
	})
	if err != nil {
		s.logger.Error("Search: backend error for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Search - backend error: %v", ErrInternal, err)
	}

	domain.SortByDate(entries)
	return entries, nil
}

func copyView(v *models.WindowView) *models.WindowView {
	return &models.WindowView{
		Window:  v.Window,
		Entries: domain.Reduce(v.Entries, domain.Mutation{Kind: domain.MutationReplaced, Entries: v.Entries}),
	}
}
