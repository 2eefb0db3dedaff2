package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/packages"
)

// UseCase use case отмены бронирования
// Удаляет запись, возвращает сессию пакету и перенумеровывает
// оставшиеся сессии пакета в плотную последовательность 1..N
type UseCase struct {
	bookingRepo BookingRepository
	packageRepo PackageRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("CancelBooking: booking id=%d", bookingID)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Находим бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Удаляем запись
		if err := uc.bookingRepo.Delete(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		// 3. Возвращаем сессию пакету (пол — ноль)
		// Пакет мог быть уже удалён как завершённый: это не ошибка отмены
		if err := uc.packageRepo.ReleaseSession(txCtx, booking.PackageID); err != nil {
			if errors.Is(err, packageRepo.ErrPackageNotFound) {
				uc.logger.Warn("CancelBooking: package id=%d no longer exists, skipping release",
					booking.PackageID)
				return nil
			}
			uc.logger.Error("CancelBooking: failed to release session for package id=%d: %v",
				booking.PackageID, err)
			return fmt.Errorf("%w: failed to release session: %v", ErrInternal, err)
		}

		// 4. Перенумеровываем оставшиеся сессии пакета
		// После удаления из середины пакета номера остались бы с дырой
		// или задвоились бы при следующем создании
		if err := uc.renumberSessions(txCtx, booking.PackageID); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelBooking: cancelled booking id=%d", bookingID)
	return nil
}

// renumberSessions приводит номера сессий пакета к плотной
// последовательности 1..N в порядке (дата, час)
func (uc *UseCase) renumberSessions(ctx context.Context, packageID int64) error {
	remaining, err := uc.bookingRepo.ListByPackage(ctx, packageID)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to list bookings for package id=%d: %v", packageID, err)
		return fmt.Errorf("%w: failed to list package bookings: %v", ErrInternal, err)
	}

	for i, b := range remaining {
		expected := i + 1
		if b.SessionNumber == expected {
			continue
		}
		if err := uc.bookingRepo.UpdateSessionNumber(ctx, b.ID, expected); err != nil {
			uc.logger.Error("CancelBooking: failed to renumber booking id=%d to %d: %v", b.ID, expected, err)
			return fmt.Errorf("%w: failed to renumber session: %v", ErrInternal, err)
		}
	}

	if len(remaining) > 0 {
		uc.logger.Info("CancelBooking: renumbered %d sessions of package id=%d", len(remaining), packageID)
	}

	return nil
}
