package get_slot

import (
	"context"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	BookingAt(ctx context.Context, date time.Time, hour int) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
