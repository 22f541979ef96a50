package update_working_hours

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	updateEntry "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_entry"
)

// UpdateWorkingHoursRequest тело запроса на сохранение дня
type UpdateWorkingHoursRequest struct {
	handlers.EntryPayload
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateWorkingHoursRequest) ToUseCaseRequest(tenantID, id string) (*updateEntry.Request, error) {
	parsed, err := r.Parse()
	if err != nil {
		return nil, err
	}

	return &updateEntry.Request{
		TenantID:   tenantID,
		ID:         id,
		Date:       parsed.Date,
		IsClosed:   parsed.IsClosed,
		Start:      parsed.Start,
		End:        parsed.End,
		BreakStart: parsed.BreakStart,
		BreakEnd:   parsed.BreakEnd,
		Workforce:  parsed.Workforce,
	}, nil
}

// UpdateWorkingHoursResponse ответ с обновленной записью
type UpdateWorkingHoursResponse struct {
	Entry        *handlers.WorkingHoursResponse `json:"entry"`
	CopyForward  *handlers.CopyForwardResponse  `json:"copyForward"`
	DetectQueued bool                           `json:"detectAffectedQueued"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *updateEntry.Response) *UpdateWorkingHoursResponse {
	return &UpdateWorkingHoursResponse{
		Entry:        handlers.FromDomainEntry(resp.Entry),
		CopyForward:  handlers.FromCopyForwardResult(resp.CopyForward),
		DetectQueued: resp.DetectQueued,
	}
}
