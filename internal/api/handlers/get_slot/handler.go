package get_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/domain"
	"github.com/m04kA/PT-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHour = "некорректный час"
	msgSlotFree    = "слот свободен"
)

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

// Handle GET /api/v1/schedule/slot?date=YYYY-MM-DD&hour=H
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /schedule/slot - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	hour, err := strconv.Atoi(query.Get("hour"))
	if err != nil {
		h.logger.Warn("GET /schedule/slot - Invalid hour %q: %v", query.Get("hour"), err)
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	booking, err := h.service.BookingAt(r.Context(), date, hour)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBookingNotFound):
			h.logger.Info("GET /schedule/slot - Slot free: date=%s, hour=%d",
				date.Format(domain.DateFormat), hour)
			handlers.RespondNotFound(w, msgSlotFree)

		default:
			h.logger.Error("GET /schedule/slot - Failed to get slot: date=%s, hour=%d, error=%v",
				date.Format(domain.DateFormat), hour, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/slot - Booking retrieved: booking_id=%d, date=%s, hour=%d",
		booking.ID, booking.Date, booking.Hour)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
