package refresh_window

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на обновление окна
type Request struct {
	TenantID string
}

// Response модель ответа с обновленным окном
type Response struct {
	Policy      domain.Policy
	WindowStart types.Date
	WindowEnd   types.Date
	Entries     []*domain.WorkingHoursEntry
	Full        bool // все дни окна заполнены

	// Итоги обслуживания
	Created int
	Skipped int
	Deleted int
	Failed  int
}
