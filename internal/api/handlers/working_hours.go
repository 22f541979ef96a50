package handlers

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// WorkingHoursResponse запись расписания в ответах API
type WorkingHoursResponse struct {
	ID         string  `json:"id"`
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

// FromDomainEntry конвертирует доменную запись в модель ответа
func FromDomainEntry(e *domain.WorkingHoursEntry) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ID:         e.ID,
		TenantID:   e.TenantID,
		Date:       e.Date.String(),
		Day:        string(e.Day),
		IsClosed:   e.IsClosed,
		Start:      timeString(e.Start),
		End:        timeString(e.End),
		BreakStart: timeString(e.BreakStart),
		BreakEnd:   timeString(e.BreakEnd),
		Workforce:  e.Workforce,
	}
}

// FromDomainEntries конвертирует список записей
func FromDomainEntries(entries []*domain.WorkingHoursEntry) []*WorkingHoursResponse {
	out := make([]*WorkingHoursResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromDomainEntry(e))
	}
	return out
}

// CopyForwardResponse итог копирования дня на неделю вперед
type CopyForwardResponse struct {
	Status string                `json:"status"`
	Target string                `json:"target,omitempty"`
	Entry  *WorkingHoursResponse `json:"entry,omitempty"`
}

// FromCopyForwardResult конвертирует результат копирования
func FromCopyForwardResult(res maintainer.CopyForwardResult) *CopyForwardResponse {
	out := &CopyForwardResponse{Status: string(res.Status)}
	if !res.Target.IsZero() {
		out.Target = res.Target.String()
	}
	if res.Entry != nil {
		out.Entry = FromDomainEntry(res.Entry)
	}
	return out
}

// EntryPayload тело запроса на создание и изменение записи
type EntryPayload struct {
	Date       string  `json:"date"` // "2024-06-01"
	IsClosed   bool    `json:"isClosed"`
	Start      *string `json:"start"`
	End        *string `json:"end"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
	Workforce  int     `json:"workforce"`
}

// ParsedEntry разобранное тело запроса
type ParsedEntry struct {
	Date       types.Date
	IsClosed   bool
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	Workforce  int
}

// Parse разбирает дату и времена. Пустые времена считаются отсутствующими.
// Для закрытого дня времена игнорируются.
func (p *EntryPayload) Parse() (*ParsedEntry, error) {
	date, err := types.ParseDate(strings.TrimSpace(p.Date))
	if err != nil {
		return nil, err
	}

	parsed := &ParsedEntry{
		Date:      date,
		IsClosed:  p.IsClosed,
		Workforce: p.Workforce,
	}

	// Времена закрытого дня отбрасываются без проверки
	if p.IsClosed {
		return parsed, nil
	}

	fields := []struct {
		name string
		in   *string
		out  **types.TimeString
	}{
		{"start", p.Start, &parsed.Start},
		{"end", p.End, &parsed.End},
		{"break_start", p.BreakStart, &parsed.BreakStart},
		{"break_end", p.BreakEnd, &parsed.BreakEnd},
	}
	for _, f := range fields {
		if f.in == nil || strings.TrimSpace(*f.in) == "" {
			continue
		}
		t, err := types.NewTimeStringFromString(strings.TrimSpace(*f.in))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.out = &t
	}

	return parsed, nil
}

func timeString(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
