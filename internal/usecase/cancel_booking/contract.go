package cancel_booking

import (
	"context"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	ListByPackage(ctx context.Context, packageID int64) ([]*domain.Booking, error)
	UpdateSessionNumber(ctx context.Context, id int64, sessionNumber int) error
}

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	ReleaseSession(ctx context.Context, id int64) error
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
