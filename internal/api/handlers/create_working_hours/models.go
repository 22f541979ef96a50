package create_working_hours

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	createEntry "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_entry"
)

// CreateWorkingHoursRequest тело запроса на добавление дня
type CreateWorkingHoursRequest struct {
	handlers.EntryPayload
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateWorkingHoursRequest) ToUseCaseRequest(tenantID string) (*createEntry.Request, error) {
	parsed, err := r.Parse()
	if err != nil {
		return nil, err
	}

	return &createEntry.Request{
		TenantID:   tenantID,
		Date:       parsed.Date,
		IsClosed:   parsed.IsClosed,
		Start:      parsed.Start,
		End:        parsed.End,
		BreakStart: parsed.BreakStart,
		BreakEnd:   parsed.BreakEnd,
		Workforce:  parsed.Workforce,
	}, nil
}

// CreateWorkingHoursResponse ответ с созданной записью
type CreateWorkingHoursResponse struct {
	Entry       *handlers.WorkingHoursResponse `json:"entry"`
	CopyForward *handlers.CopyForwardResponse  `json:"copyForward"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createEntry.Response) *CreateWorkingHoursResponse {
	return &CreateWorkingHoursResponse{
		Entry:       handlers.FromDomainEntry(resp.Entry),
		CopyForward: handlers.FromCopyForwardResult(resp.CopyForward),
	}
}
