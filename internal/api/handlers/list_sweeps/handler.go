package list_sweeps

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidLimit    = "limit должен быть положительным числом"
	msgJournalDisabled = "журнал обслуживания отключен"
)

type Handler struct {
	journal SweepJournal
	logger  Logger
}

// NewHandler journal может быть nil, если база данных не настроена
func NewHandler(journal SweepJournal, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantId}/sweeps?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.journal == nil {
		handlers.RespondServiceUnavailable(w, msgJournalDisabled)
		return
	}

	tenantID := mux.Vars(r)["tenantId"]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.logger.Warn("GET /sweeps - Invalid limit=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = n
	}

	runs, err := h.journal.ListByTenant(r.Context(), tenantID, limit)
	if err != nil {
		h.logger.Error("GET /sweeps - Failed to list runs: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(runs))
}
