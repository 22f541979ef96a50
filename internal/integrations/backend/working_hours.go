package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const workingHoursPath = "/api/workinghours"

func tenantQuery(tenantID string) url.Values {
	q := url.Values{}
	q.Set("tenantId", tenantID)
	return q
}

// ListWorkingHours получает записи расписания тенанта с необязательными фильтрами
func (c *Client) ListWorkingHours(ctx context.Context, tenantID string, filter ListFilter) ([]*domain.WorkingHoursEntry, error) {
	q := tenantQuery(tenantID)
	if filter.StartDate != nil {
		q.Set("startDate", filter.StartDate.String())
	}
	if filter.EndDate != nil {
		q.Set("endDate", filter.EndDate.String())
	}
	if filter.Day != nil {
		q.Set("day", string(*filter.Day))
	}

	env, err := c.do(ctx, call{
		operation: "list_working_hours",
		method:    http.MethodGet,
		path:      workingHoursPath,
		query:     q,
	})
	if err != nil {
		return nil, err
	}

	// пустой список бэкенд может вернуть как null
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return []*domain.WorkingHoursEntry{}, nil
	}

	var items []*WorkingHours
	if err := decodeData("list_working_hours", env, &items); err != nil {
		return nil, err
	}

	return toDomainList(items)
}

// GetWorkingHours получает запись по ID
func (c *Client) GetWorkingHours(ctx context.Context, tenantID, id string) (*domain.WorkingHoursEntry, error) {
	env, err := c.do(ctx, call{
		operation: "get_working_hours",
		method:    http.MethodGet,
		path:      fmt.Sprintf("%s/%s", workingHoursPath, url.PathEscape(id)),
		query:     tenantQuery(tenantID),
	})
	if err != nil {
		return nil, err
	}

	var item WorkingHours
	if err := decodeData("get_working_hours", env, &item); err != nil {
		return nil, err
	}
	return item.ToDomain()
}

// GetWorkingHoursByDate получает запись на дату. Если записи нет - ErrNotFound.
func (c *Client) GetWorkingHoursByDate(ctx context.Context, tenantID string, date types.Date) (*domain.WorkingHoursEntry, error) {
	env, err := c.do(ctx, call{
		operation: "get_working_hours_by_date",
		method:    http.MethodGet,
		path:      fmt.Sprintf("%s/date/%s", workingHoursPath, date.String()),
		query:     tenantQuery(tenantID),
	})
	if err != nil {
		return nil, err
	}

	// Пустой день бэкенд может вернуть как 200 без data
	if !env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%w: get_working_hours_by_date: no entry for %s", ErrNotFound, date)
	}

	var item WorkingHours
	if err := decodeData("get_working_hours_by_date", env, &item); err != nil {
		return nil, err
	}
	return item.ToDomain()
}

// CreateWorkingHours создает запись. Дубликат даты - ошибка, для которой IsDuplicate == true.
func (c *Client) CreateWorkingHours(ctx context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error) {
	payload := FromDomain(entry)
	payload.ID = ""

	env, err := c.do(ctx, call{
		operation: "create_working_hours",
		method:    http.MethodPost,
		path:      workingHoursPath,
		body:      payload,
	})
	if err != nil {
		return nil, err
	}

	var item WorkingHours
	if err := decodeData("create_working_hours", env, &item); err != nil {
		return nil, err
	}
	return item.ToDomain()
}

// CreateBulkWorkingHours создает несколько записей одним запросом
func (c *Client) CreateBulkWorkingHours(ctx context.Context, tenantID string, entries []*domain.WorkingHoursEntry) ([]*domain.WorkingHoursEntry, error) {
	items := make([]*WorkingHours, 0, len(entries))
	for _, e := range entries {
		item := FromDomain(e)
		item.ID = ""
		items = append(items, item)
	}

	env, err := c.do(ctx, call{
		operation: "create_bulk_working_hours",
		method:    http.MethodPost,
		path:      workingHoursPath + "/bulk",
		body:      &bulkRequest{TenantID: tenantID, Entries: items},
	})
	if err != nil {
		return nil, err
	}

	var created []*WorkingHours
	if err := decodeData("create_bulk_working_hours", env, &created); err != nil {
		return nil, err
	}
	return toDomainList(created)
}

// UpdateWorkingHours обновляет запись целиком
func (c *Client) UpdateWorkingHours(ctx context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error) {
	env, err := c.do(ctx, call{
		operation: "update_working_hours",
		method:    http.MethodPut,
		path:      fmt.Sprintf("%s/%s", workingHoursPath, url.PathEscape(entry.ID)),
		body:      FromDomain(entry),
	})
	if err != nil {
		return nil, err
	}

	var item WorkingHours
	if err := decodeData("update_working_hours", env, &item); err != nil {
		return nil, err
	}
	return item.ToDomain()
}

// DeleteWorkingHours удаляет запись
func (c *Client) DeleteWorkingHours(ctx context.Context, tenantID, id string) error {
	_, err := c.do(ctx, call{
		operation: "delete_working_hours",
		method:    http.MethodDelete,
		path:      fmt.Sprintf("%s/%s", workingHoursPath, url.PathEscape(id)),
		body:      &tenantRequest{TenantID: tenantID},
	})
	return err
}

// DetectAffectedBookings просит бэкенд найти и уведомить бронирования, затронутые изменением дат.
// Возвращает количество затронутых бронирований.
func (c *Client) DetectAffectedBookings(ctx context.Context, tenantID string, dates []types.Date) (int, error) {
	affected := make([]string, 0, len(dates))
	for _, d := range dates {
		affected = append(affected, d.String())
	}

	env, err := c.do(ctx, call{
		operation: "detect_affected_bookings",
		method:    http.MethodPost,
		path:      workingHoursPath + "/detect-affected",
		body:      &detectAffectedRequest{TenantID: tenantID, AffectedDates: affected},
	})
	if err != nil {
		return 0, err
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return 0, nil
	}

	var result DetectAffectedResult
	if err := decodeData("detect_affected_bookings", env, &result); err != nil {
		return 0, err
	}
	return result.AffectedCount, nil
}
