package update_entry

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на сохранение отредактированного дня
type Request struct {
	TenantID   string
	ID         string
	Date       types.Date
	IsClosed   bool
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	Workforce  int
}

// Response модель ответа с обновленной записью
type Response struct {
	Entry       *domain.WorkingHoursEntry
	CopyForward maintainer.CopyForwardResult
	// DetectQueued проверка затронутых бронирований поставлена в очередь
	DetectQueued bool
}
