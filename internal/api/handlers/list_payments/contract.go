package list_payments

import (
	"context"

	"github.com/m04kA/PT-ScheduleService/internal/service/payments/models"
)

type PaymentService interface {
	ListForMonth(ctx context.Context, monthStr string) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
