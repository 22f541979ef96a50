package refresh_window

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	refreshWindow "github.com/m04kA/SMC-ScheduleService/internal/usecase/refresh_window"
)

// RefreshWindowResponse окно после обслуживания
type RefreshWindowResponse struct {
	Policy      string                           `json:"policy"`
	WindowStart string                           `json:"windowStart"`
	WindowEnd   string                           `json:"windowEnd"`
	Full        bool                             `json:"full"`
	Entries     []*handlers.WorkingHoursResponse `json:"entries"`
	Created     int                              `json:"created"`
	Skipped     int                              `json:"skipped"`
	Deleted     int                              `json:"deleted"`
	Failed      int                              `json:"failed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *refreshWindow.Response) *RefreshWindowResponse {
	return &RefreshWindowResponse{
		Policy:      resp.Policy.String(),
		WindowStart: resp.WindowStart.String(),
		WindowEnd:   resp.WindowEnd.String(),
		Full:        resp.Full,
		Entries:     handlers.FromDomainEntries(resp.Entries),
		Created:     resp.Created,
		Skipped:     resp.Skipped,
		Deleted:     resp.Deleted,
		Failed:      resp.Failed,
	}
}
