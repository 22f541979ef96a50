package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// WindowView загруженное окно тенанта
type WindowView struct {
	Window  domain.Window
	Entries []*domain.WorkingHoursEntry
}

// IsFull все дни окна уже заполнены
func (v *WindowView) IsFull() bool {
	return v.Window.IsFull(v.Entries)
}

// SearchRequest фильтры поиска записей
type SearchRequest struct {
	TenantID  string
	StartDate *types.Date
	EndDate   *types.Date
	Day       *domain.DayName
}
