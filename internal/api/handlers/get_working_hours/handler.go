package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours"
)

const (
	msgEntryNotFound = "запись расписания не найдена"
	msgMissingID     = "не указан ID записи"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/working-hours/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantID, id := vars["tenantId"], vars["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	entry, err := h.service.GetEntry(r.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, workinghours.ErrEntryNotFound) {
			h.logger.Warn("GET /working-hours/{id} - Entry not found: id=%s, tenant=%s", id, tenantID)
			handlers.RespondNotFound(w, msgEntryNotFound)
			return
		}
		h.logger.Error("GET /working-hours/{id} - Failed to get entry: id=%s, tenant=%s, error=%v", id, tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainEntry(entry))
}
