package create_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	createEntry "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_entry"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата (YYYY-MM-DD) или время (HH:MM)"
	msgInvalidEntry       = "некорректные данные рабочего дня"
	msgDateInPast         = "нельзя добавить день в прошлом"
	msgWindowFull         = "расписание на ближайшие дни уже заполнено"
	msgDuplicateDate      = "на эту дату расписание уже существует"
)

type Handler struct {
	useCase CreateEntryUseCase
	logger  Logger
}

func NewHandler(useCase CreateEntryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenantId"]

	var req CreateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /working-hours - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createEntry.ErrInvalidInput):
			h.logger.Warn("POST /working-hours - Invalid entry: tenant=%s, date=%s, error=%v", tenantID, useCaseReq.Date, err)
			handlers.RespondBadRequest(w, msgInvalidEntry)

		case errors.Is(err, createEntry.ErrDateInPast):
			h.logger.Warn("POST /working-hours - Date in past: tenant=%s, date=%s", tenantID, useCaseReq.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createEntry.ErrWindowFull):
			h.logger.Warn("POST /working-hours - Window full: tenant=%s", tenantID)
			handlers.RespondConflict(w, msgWindowFull)

		case errors.Is(err, createEntry.ErrDuplicateDate):
			h.logger.Warn("POST /working-hours - Duplicate date: tenant=%s, date=%s", tenantID, useCaseReq.Date)
			handlers.RespondConflict(w, msgDuplicateDate)

		default:
			h.logger.Error("POST /working-hours - Failed to create entry: tenant=%s, date=%s, error=%v", tenantID, useCaseReq.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /working-hours - Entry created: id=%s, tenant=%s, date=%s, copy_forward=%s",
		result.Entry.ID, tenantID, result.Entry.Date, result.CopyForward.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
