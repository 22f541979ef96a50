package list_working_hours

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
)

// WindowResponse текущее окно тенанта
type WindowResponse struct {
	WindowStart string                           `json:"windowStart"`
	WindowEnd   string                           `json:"windowEnd"`
	Full        bool                             `json:"full"`
	Entries     []*handlers.WorkingHoursResponse `json:"entries"`
}

// SearchResponse результат поиска по фильтрам
type SearchResponse struct {
	Entries []*handlers.WorkingHoursResponse `json:"entries"`
}

func fromWindowView(view *models.WindowView) *WindowResponse {
	return &WindowResponse{
		WindowStart: view.Window.Start.String(),
		WindowEnd:   view.Window.End().String(),
		Full:        view.IsFull(),
		Entries:     handlers.FromDomainEntries(view.Entries),
	}
}
