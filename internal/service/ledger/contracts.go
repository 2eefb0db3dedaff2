package ledger

import (
	"context"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

// PackageRepository интерфейс репозитория пакетов
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	GetByID(ctx context.Context, id int64) (*domain.Package, error)
	ListByMember(ctx context.Context, clientName string) ([]*domain.Package, error)
	ListAll(ctx context.Context) ([]*domain.Package, error)
	Delete(ctx context.Context, id int64) error
	DeleteByMember(ctx context.Context, clientName string) error
}

// BookingRepository интерфейс репозитория бронирований
// Леджер читает бронирования только для истории сессий пакета;
// все мутации бронирований проходят через usecases движка
type BookingRepository interface {
	ListByPackage(ctx context.Context, packageID int64) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
