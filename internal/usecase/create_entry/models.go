package create_entry

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/maintainer"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на ручное добавление дня
type Request struct {
	TenantID   string
	Date       types.Date
	IsClosed   bool
	Start      *types.TimeString
	End        *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	Workforce  int
}

// Response модель ответа с созданной записью
type Response struct {
	Entry       *domain.WorkingHoursEntry
	CopyForward maintainer.CopyForwardResult
}
