package delete_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/service/payments"
)

const (
	msgInvalidPaymentID = "некорректный ID платежа"
	msgNotFound         = "платёж не найден"
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

// Handle DELETE /api/v1/payments/{paymentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	paymentIDStr := vars["paymentId"]

	paymentID, err := strconv.ParseInt(paymentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /payments/{id} - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	err = h.service.Delete(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("DELETE /payments/{id} - Payment not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /payments/{id} - Failed to delete payment: payment_id=%d, error=%v",
				paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /payments/{id} - Payment deleted: payment_id=%d", paymentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
