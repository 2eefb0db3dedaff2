package list_payments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/domain"
	"github.com/m04kA/PT-ScheduleService/internal/service/payments"
)

const msgInvalidMonth = "некорректный формат месяца, ожидается YYYY-MM"

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments?month=YYYY-MM
// Без параметра month возвращается текущий месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format(domain.MonthFormat)
	}

	result, err := h.service.ListForMonth(r.Context(), month)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("GET /payments - Invalid month %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /payments - Failed to list payments: month=%s, error=%v", month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments - Payments retrieved: month=%s, count=%d", month, len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
