package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBySlot(ctx context.Context, date time.Time, hour int) (*domain.Booking, error)
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	ListByMember(ctx context.Context, clientName string) ([]*domain.Package, error)
	ConsumeSession(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
