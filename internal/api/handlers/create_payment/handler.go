package create_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/service/payments"
	"github.com/m04kA/PT-ScheduleService/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные платежа"
)

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

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Record(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid input: client=%s, amount=%.2f, pay_day=%d, month=%s",
				req.ClientName, req.Amount, req.PayDay, req.Month)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /payments - Failed to record payment: client=%s, error=%v",
				req.ClientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment recorded: payment_id=%d, client=%s, amount=%.2f, month=%s",
		result.ID, result.ClientName, result.Amount, result.Month)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
