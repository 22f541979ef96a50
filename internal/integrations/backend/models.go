package backend

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// envelope общий формат ответа бэкенда
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// WorkingHours запись расписания в формате бэкенда
type WorkingHours struct {
	ID         string  `json:"_id,omitempty"`
	TenantID   string  `json:"tenantId"`
	Date       string  `json:"date"`
	Day        string  `json:"day"`
	IsClosed   bool    `json:"isClosed"`
	Start      *string `json:"start"`
	End        *string `json:"end"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	Workforce  int     `json:"workforce"`
}

// bulkRequest тело POST /api/workinghours/bulk
type bulkRequest struct {
	TenantID string          `json:"tenantId"`
	Entries  []*WorkingHours `json:"entries"`
}

// tenantRequest тело DELETE /api/workinghours/:id
type tenantRequest struct {
	TenantID string `json:"tenantId"`
}

// detectAffectedRequest тело POST /api/workinghours/detect-affected
type detectAffectedRequest struct {
	TenantID      string   `json:"tenantId"`
	AffectedDates []string `json:"affectedDates"`
}

// DetectAffectedResult ответ detect-affected
type DetectAffectedResult struct {
	AffectedCount int `json:"affected_count"`
}

// ListFilter необязательные фильтры списка записей
type ListFilter struct {
	StartDate *types.Date
	EndDate   *types.Date
	Day       *domain.DayName
}

// FromDomain конвертирует доменную запись в формат бэкенда
func FromDomain(e *domain.WorkingHoursEntry) *WorkingHours {
	return &WorkingHours{
		ID:         e.ID,
		TenantID:   e.TenantID,
		Date:       e.Date.String(),
		Day:        string(e.Day),
		IsClosed:   e.IsClosed,
		Start:      timeToString(e.Start),
		End:        timeToString(e.End),
		BreakStart: timeToString(e.BreakStart),
		BreakEnd:   timeToString(e.BreakEnd),
		Workforce:  e.Workforce,
	}
}

// ToDomain конвертирует ответ бэкенда в доменную запись.
// День недели всегда пересчитывается из даты.
func (w *WorkingHours) ToDomain() (*domain.WorkingHoursEntry, error) {
	date, err := types.ParseDate(w.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: entry %s: %v", ErrInvalidResponse, w.ID, err)
	}

	e := &domain.WorkingHoursEntry{
		ID:         w.ID,
		TenantID:   w.TenantID,
		Date:       date,
		IsClosed:   w.IsClosed,
		Start:      stringToTime(w.Start),
		End:        stringToTime(w.End),
		BreakStart: stringToTime(w.BreakStart),
		BreakEnd:   stringToTime(w.BreakEnd),
		Workforce:  w.Workforce,
	}
	e.Normalize()
	return e, nil
}

func toDomainList(items []*WorkingHours) ([]*domain.WorkingHoursEntry, error) {
	entries := make([]*domain.WorkingHoursEntry, 0, len(items))
	for _, item := range items {
		e, err := item.ToDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func timeToString(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func stringToTime(s *string) *types.TimeString {
	if s == nil {
		return nil
	}
	t := types.TimeString(*s)
	return &t
}
