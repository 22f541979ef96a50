package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// SweepRun journal record of one window refresh
type SweepRun struct {
	ID          uuid.UUID
	TenantID    string
	Policy      Policy
	WindowStart types.Date
	WindowEnd   types.Date
	Created     int
	Skipped     int // duplicates, treated as benign
	Deleted     int
	Failed      int
	Error       *string // set when the refresh itself failed
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewSweepRun starts a journal record for window
func NewSweepRun(tenantID string, policy Policy, window Window, startedAt time.Time) *SweepRun {
	return &SweepRun{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Policy:      policy,
		WindowStart: window.Start,
		WindowEnd:   window.End(),
		StartedAt:   startedAt,
	}
}

// Succeeded reports that the refresh completed (per-date failures do not count)
func (r *SweepRun) Succeeded() bool {
	return r.Error == nil
}
