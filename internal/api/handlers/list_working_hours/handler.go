package list_working_hours

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const (
	msgInvalidStartDate  = "некорректный формат startDate, ожидается YYYY-MM-DD"
	msgInvalidEndDate    = "некорректный формат endDate, ожидается YYYY-MM-DD"
	msgInvalidRange      = "startDate не может быть позже endDate"
	msgInvalidDay        = "некорректный день недели"
	msgWindowUnavailable = "не удалось загрузить расписание"
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

// Handle GET /api/v1/tenants/{tenantId}/working-hours
// Без фильтров отдает текущее окно, с фильтрами startDate, endDate, day ищет в бэкенде.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := mux.Vars(r)["tenantId"]
	query := r.URL.Query()

	if query.Get("startDate") == "" && query.Get("endDate") == "" && query.Get("day") == "" {
		h.handleWindow(w, r, tenantID)
		return
	}

	searchReq := models.SearchRequest{TenantID: tenantID}

	if raw := strings.TrimSpace(query.Get("startDate")); raw != "" {
		d, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /working-hours - Invalid startDate=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		searchReq.StartDate = &d
	}
	if raw := strings.TrimSpace(query.Get("endDate")); raw != "" {
		d, err := types.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /working-hours - Invalid endDate=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return
		}
		searchReq.EndDate = &d
	}
	if searchReq.StartDate != nil && searchReq.EndDate != nil && searchReq.StartDate.After(*searchReq.EndDate) {
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}
	if raw := strings.TrimSpace(query.Get("day")); raw != "" {
		day, err := domain.ParseDayName(raw)
		if err != nil {
			h.logger.Warn("GET /working-hours - Invalid day=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDay)
			return
		}
		searchReq.Day = &day
	}

	entries, err := h.service.Search(r.Context(), searchReq)
	if err != nil {
		h.logger.Error("GET /working-hours - Search failed: tenant=%s, error=%v", tenantID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgWindowUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SearchResponse{Entries: handlers.FromDomainEntries(entries)})
}

func (h *Handler) handleWindow(w http.ResponseWriter, r *http.Request, tenantID string) {
	view, err := h.service.GetWindow(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /working-hours - Failed to load window: tenant=%s, error=%v", tenantID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgWindowUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromWindowView(view))
}
