package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	updateEntry "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_entry"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgInvalidEntry       = "некорректные данные рабочего дня"
	msgEntryNotFound      = "запись расписания не найдена"
	msgDuplicateDate      = "на эту дату расписание уже существует"
)

type Handler struct {
	useCase UpdateEntryUseCase
	logger  Logger
}

func NewHandler(useCase UpdateEntryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tenants/{tenantId}/working-hours/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantID, id := vars["tenantId"], vars["id"]

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /working-hours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID, id)
	if err != nil {
		h.logger.Warn("PUT /working-hours/{id} - Failed to parse request: id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateEntry.ErrInvalidInput):
			h.logger.Warn("PUT /working-hours/{id} - Invalid entry: id=%s, tenant=%s, error=%v", id, tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidEntry)

		case errors.Is(err, updateEntry.ErrEntryNotFound):
			h.logger.Warn("PUT /working-hours/{id} - Entry not found: id=%s, tenant=%s", id, tenantID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, updateEntry.ErrDuplicateDate):
			h.logger.Warn("PUT /working-hours/{id} - Duplicate date: id=%s, tenant=%s, date=%s", id, tenantID, useCaseReq.Date)
			handlers.RespondConflict(w, msgDuplicateDate)

		default:
			h.logger.Error("PUT /working-hours/{id} - Failed to update entry: id=%s, tenant=%s, error=%v", id, tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /working-hours/{id} - Entry updated: id=%s, tenant=%s, date=%s, copy_forward=%s",
		result.Entry.ID, tenantID, result.Entry.Date, result.CopyForward.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
