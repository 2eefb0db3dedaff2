package schedule

import (
	"context"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBySlot(ctx context.Context, date time.Time, hour int) (*domain.Booking, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	ListByClient(ctx context.Context, clientName string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
