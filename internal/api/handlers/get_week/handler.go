package get_week

import (
	"net/http"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/week?date=YYYY-MM-DD
// Без параметра date возвращается текущая неделя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	anchor := time.Now()

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /schedule/week - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		anchor = parsed
	}

	week, err := h.service.GetWeek(r.Context(), anchor)
	if err != nil {
		h.logger.Error("GET /schedule/week - Failed to get week: anchor=%s, error=%v",
			anchor.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/week - Week retrieved: week_start=%s", week.WeekStart)
	handlers.RespondJSON(w, http.StatusOK, week)
}
