package maintainer

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Settings параметры обслуживания окна
type Settings struct {
	Policy              domain.Policy
	WindowDays          int
	HistoryLookbackDays int
	Template            domain.Schedule
	// BulkBackfill создавать недостающие дни одним запросом /bulk
	BulkBackfill bool
	// Location календарь салона: "сегодня" считается в этой локации
	Location *time.Location
}

// RefreshResult результат обновления окна
type RefreshResult struct {
	Window  domain.Window
	Entries []*domain.WorkingHoursEntry
	Run     *domain.SweepRun
}

// CopyStatus итог копирования дня на неделю вперед
type CopyStatus string

const (
	CopyCreated     CopyStatus = "created"
	CopyExists      CopyStatus = "exists"
	CopyOutOfWindow CopyStatus = "out_of_window"
	CopyDisabled    CopyStatus = "disabled"
	CopyFailed      CopyStatus = "failed"
)

// CopyForwardResult результат CopyForward
type CopyForwardResult struct {
	Status CopyStatus
	Target types.Date
	// Entry созданная или уже существующая запись на целевую дату
	Entry *domain.WorkingHoursEntry
}

// Sweep actions для метрик
const (
	actionPrune       = "prune"
	actionBackfill    = "backfill"
	actionBulk        = "bulk_backfill"
	actionCopyForward = "copy_forward"
	actionFetch       = "fetch"

	outcomeOK        = "ok"
	outcomeFailed    = "failed"
	outcomeDuplicate = "duplicate"
)
