package list_sweeps

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SweepRunResponse запись журнала обслуживания окна
type SweepRunResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenantId"`
	Policy      string    `json:"policy"`
	WindowStart string    `json:"windowStart"`
	WindowEnd   string    `json:"windowEnd"`
	Created     int       `json:"created"`
	Skipped     int       `json:"skipped"`
	Deleted     int       `json:"deleted"`
	Failed      int       `json:"failed"`
	Error       *string   `json:"error,omitempty"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
}

// ListSweepsResponse ответ со списком прогонов
type ListSweepsResponse struct {
	Runs []*SweepRunResponse `json:"runs"`
}

func fromDomain(runs []*domain.SweepRun) *ListSweepsResponse {
	out := make([]*SweepRunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, &SweepRunResponse{
			ID:          run.ID.String(),
			TenantID:    run.TenantID,
			Policy:      run.Policy.String(),
			WindowStart: run.WindowStart.String(),
			WindowEnd:   run.WindowEnd.String(),
			Created:     run.Created,
			Skipped:     run.Skipped,
			Deleted:     run.Deleted,
			Failed:      run.Failed,
			Error:       run.Error,
			StartedAt:   run.StartedAt,
			FinishedAt:  run.FinishedAt,
		})
	}
	return &ListSweepsResponse{Runs: out}
}
