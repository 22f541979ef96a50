// Package backendtest in-memory реализация бэкенда расписания для тестов
package backendtest

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/backend"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Backend хранит записи одного или нескольких тенантов в памяти.
// Ошибки можно подставить по дате или ID.
type Backend struct {
	mu     sync.Mutex
	nextID int

	entries map[string]*domain.WorkingHoursEntry // by ID

	// ListErr возвращается всеми List-вызовами
	ListErr error
	// ListErrAfter ListErr начинает возвращаться после указанного числа успешных List
	ListErrAfter int
	// BulkErr возвращается CreateBulkWorkingHours
	BulkErr error
	// CreateErr ошибки создания по дате
	CreateErr map[types.Date]error
	// DeleteErr ошибки удаления по ID
	DeleteErr map[string]error
	// GetByDateErr ошибки GetWorkingHoursByDate по дате (кроме 404)
	GetByDateErr map[types.Date]error
	// UpdateErr возвращается UpdateWorkingHours
	UpdateErr error
	// Tenants валидные тенанты, nil - любой тенант валиден
	Tenants map[string]bool

	Calls    []string
	Detected [][]types.Date
}

// New создает пустой бэкенд
func New() *Backend {
	return &Backend{
		entries:      make(map[string]*domain.WorkingHoursEntry),
		CreateErr:    make(map[types.Date]error),
		DeleteErr:    make(map[string]error),
		GetByDateErr: make(map[types.Date]error),
	}
}

// Seed добавляет записи как есть, ID присваивается при отсутствии
func (b *Backend) Seed(entries ...*domain.WorkingHoursEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range entries {
		c := e.Clone()
		if c.ID == "" {
			c.ID = b.newID()
		}
		b.entries[c.ID] = c
	}
}

// All возвращает все записи тенанта по возрастанию даты
func (b *Backend) All(tenantID string) []*domain.WorkingHoursEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter(tenantID, backend.ListFilter{})
}

// ByDate возвращает запись тенанта на дату или nil
func (b *Backend) ByDate(tenantID string, date types.Date) *domain.WorkingHoursEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e := b.byDate(tenantID, date); e != nil {
		return e.Clone()
	}
	return nil
}

// CallCount количество вызовов операции
func (b *Backend) CallCount(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.Calls {
		if c == op {
			n++
		}
	}
	return n
}

// WriteCount количество вызовов, меняющих данные
func (b *Backend) WriteCount() int {
	return b.CallCount("create") + b.CallCount("bulk") + b.CallCount("update") + b.CallCount("delete")
}

func (b *Backend) ListWorkingHours(_ context.Context, tenantID string, filter backend.ListFilter) ([]*domain.WorkingHoursEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "list")

	if b.ListErr != nil {
		if b.ListErrAfter <= 0 {
			return nil, b.ListErr
		}
		b.ListErrAfter--
	}
	return b.filter(tenantID, filter), nil
}

func (b *Backend) GetWorkingHours(_ context.Context, tenantID, id string) (*domain.WorkingHoursEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "get")

	e, ok := b.entries[id]
	if !ok || e.TenantID != tenantID {
		return nil, notFound("get_working_hours")
	}
	return e.Clone(), nil
}

func (b *Backend) GetWorkingHoursByDate(_ context.Context, tenantID string, date types.Date) (*domain.WorkingHoursEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "get_by_date")

	if err, ok := b.GetByDateErr[date]; ok {
		return nil, err
	}
	if e := b.byDate(tenantID, date); e != nil {
		return e.Clone(), nil
	}
	return nil, notFound("get_working_hours_by_date")
}

func (b *Backend) CreateWorkingHours(_ context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "create")

	if err, ok := b.CreateErr[entry.Date]; ok {
		return nil, err
	}
	return b.create(entry)
}

func (b *Backend) CreateBulkWorkingHours(_ context.Context, tenantID string, entries []*domain.WorkingHoursEntry) ([]*domain.WorkingHoursEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "bulk")

	if b.BulkErr != nil {
		return nil, b.BulkErr
	}
	created := make([]*domain.WorkingHoursEntry, 0, len(entries))
	for _, e := range entries {
		c, err := b.create(e)
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	return created, nil
}

func (b *Backend) UpdateWorkingHours(_ context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "update")

	if b.UpdateErr != nil {
		return nil, b.UpdateErr
	}
	if _, ok := b.entries[entry.ID]; !ok {
		return nil, notFound("update_working_hours")
	}
	c := entry.Clone()
	b.entries[c.ID] = c
	return c.Clone(), nil
}

func (b *Backend) DeleteWorkingHours(_ context.Context, tenantID, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "delete")

	if err, ok := b.DeleteErr[id]; ok {
		return err
	}
	e, ok := b.entries[id]
	if !ok || e.TenantID != tenantID {
		return notFound("delete_working_hours")
	}
	delete(b.entries, id)
	return nil
}

func (b *Backend) DetectAffectedBookings(_ context.Context, _ string, dates []types.Date) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "detect")
	b.Detected = append(b.Detected, dates)
	return len(dates), nil
}

func (b *Backend) ValidateTenant(_ context.Context, tenantID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, "validate_tenant")
	if b.Tenants == nil {
		return tenantID != "", nil
	}
	return b.Tenants[tenantID], nil
}

func (b *Backend) create(entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error) {
	if b.byDate(entry.TenantID, entry.Date) != nil {
		return nil, &backend.APIError{
			Operation:  "create_working_hours",
			StatusCode: http.StatusBadRequest,
			Message:    "Working hours already exist for this date",
		}
	}
	c := entry.Clone()
	c.ID = b.newID()
	b.entries[c.ID] = c
	return c.Clone(), nil
}

func (b *Backend) filter(tenantID string, f backend.ListFilter) []*domain.WorkingHoursEntry {
	out := make([]*domain.WorkingHoursEntry, 0)
	for _, e := range b.entries {
		if e.TenantID != tenantID {
			continue
		}
		if f.StartDate != nil && e.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && e.Date.After(*f.EndDate) {
			continue
		}
		if f.Day != nil && e.Day != *f.Day {
			continue
		}
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (b *Backend) byDate(tenantID string, date types.Date) *domain.WorkingHoursEntry {
	for _, e := range b.entries {
		if e.TenantID == tenantID && e.Date == date {
			return e
		}
	}
	return nil
}

func (b *Backend) newID() string {
	b.nextID++
	return fmt.Sprintf("wh-%d", b.nextID)
}

func notFound(op string) error {
	return &backend.APIError{Operation: op, StatusCode: http.StatusNotFound, Message: "Working hours not found"}
}

// ServerError ответ 500 для подстановки в карты ошибок
func ServerError(op string) error {
	return &backend.APIError{Operation: op, StatusCode: http.StatusInternalServerError, Message: backend.DefaultErrorMessage}
}

// Clock управляемое время
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

// NewClock создает часы, показывающие t
func NewClock(t time.Time) *Clock {
	return &Clock{t: t}
}

// Now возвращает текущее значение часов
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Set переводит часы
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}
