package refresh_window

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	refreshWindow "github.com/m04kA/SMC-ScheduleService/internal/usecase/refresh_window"
)

const (
	msgInvalidTenant     = "некорректный ID тенанта"
	msgWindowUnavailable = "не удалось загрузить расписание, повторите позже"
)

type Handler struct {
	useCase RefreshWindowUseCase
	logger  Logger
}

func NewHandler(useCase RefreshWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tenants/{tenantId}/working-hours/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenantId"]

	result, err := h.useCase.Execute(r.Context(), &refreshWindow.Request{TenantID: tenantID})
	if err != nil {
		switch {
		case errors.Is(err, refreshWindow.ErrInvalidInput):
			h.logger.Warn("POST /working-hours/refresh - Invalid tenant: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTenant)

		case errors.Is(err, refreshWindow.ErrFetchWindow):
			h.logger.Warn("POST /working-hours/refresh - Window fetch failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondServiceUnavailable(w, msgWindowUnavailable)

		default:
			h.logger.Error("POST /working-hours/refresh - Failed to refresh window: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /working-hours/refresh - Window refreshed: tenant=%s, policy=%s, created=%d, deleted=%d, failed=%d",
		tenantID, result.Policy, result.Created, result.Deleted, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
