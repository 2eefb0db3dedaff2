package get_client_bookings

import (
	"context"

	"github.com/m04kA/PT-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	ClientBookings(ctx context.Context, clientName string) ([]models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
