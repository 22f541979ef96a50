package update_entry

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// buildEntry валидирует запрос и собирает нормализованную запись.
// Закрытый день теряет все времена, день недели пересчитывается из даты.
func buildEntry(req *Request) (*domain.WorkingHoursEntry, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantId is required", ErrInvalidInput)
	}
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	entry := &domain.WorkingHoursEntry{
		ID:         req.ID,
		TenantID:   req.TenantID,
		Date:       req.Date,
		IsClosed:   req.IsClosed,
		Start:      req.Start,
		End:        req.End,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		Workforce:  req.Workforce,
	}
	entry.Normalize()

	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return entry, nil
}
