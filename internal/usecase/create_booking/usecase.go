package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/packages"
)

// UseCase use case создания бронирования
// Единственная операция системы, где критична атомарность пары
// "записать бронирование + списать сессию пакета"
type UseCase struct {
	bookingRepo BookingRepository
	packageRepo PackageRepository
	txManager   TransactionManager
	grid        domain.ScheduleGrid
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	txManager TransactionManager,
	grid domain.ScheduleGrid,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		txManager:   txManager,
		grid:        grid,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Вся работа с БД идёт в сериализуемой транзакции: выбор активного
// пакета по заблокированным строкам, проверка занятости слота,
// вставка бронирования и списание сессии фиксируются вместе или
// откатываются вместе — окно "бронь есть, сессия не списана" исключено
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, date=%s, hour=%d",
		req.ClientName, req.Date.Format(domain.DateFormat), req.Hour)

	// 1. Валидация входных данных
	name, err := validateRequest(req, uc.grid)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var usedAfter, pkgSize int

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Пакеты клиента с блокировкой строк (FOR UPDATE)
		pkgs, err := uc.packageRepo.ListByMember(txCtx, name)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list packages for client=%s: %v", name, err)
			return fmt.Errorf("%w: failed to list packages: %v", ErrInternal, err)
		}

		// 2.2. Активный пакет: FIFO по дате покупки с учётом общих пакетов группы
		active := domain.ActivePackage(pkgs, name)
		if active == nil {
			uc.logger.Warn("CreateBooking: client=%s has no active package", name)
			return ErrNoActivePackage
		}

		// 2.3. Эксклюзивность слота: занятость не зависит от клиента
		_, err = uc.bookingRepo.GetBySlot(txCtx, req.Date, req.Hour)
		if err == nil {
			uc.logger.Warn("CreateBooking: slot %s %02d:00 is occupied",
				req.Date.Format(domain.DateFormat), req.Hour)
			return ErrSlotOccupied
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		// 2.4. Номер сессии фиксируется на момент создания
		sessionNumber := active.Used + 1

		booking := &domain.Booking{
			ClientName:    name,
			Date:          req.Date,
			Hour:          req.Hour,
			PackageID:     active.ID,
			SessionNumber: sessionNumber,
		}

		// 2.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotOccupied
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 2.6. Списываем сессию пакета
		// Ошибка здесь откатывает и вставку бронирования
		if err := uc.packageRepo.ConsumeSession(txCtx, active.ID); err != nil {
			if errors.Is(err, packageRepo.ErrNoCapacity) {
				uc.logger.Warn("CreateBooking: package id=%d has no capacity", active.ID)
				return ErrCapacityExceeded
			}
			uc.logger.Error("CreateBooking: failed to consume session from package id=%d: %v", active.ID, err)
			return fmt.Errorf("%w: failed to consume session: %v", ErrInternal, err)
		}

		result = created
		usedAfter = sessionNumber
		pkgSize = active.Size
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, package id=%d, session %d/%d",
		result.ID, result.PackageID, usedAfter, pkgSize)

	return &Response{
		ID:            result.ID,
		ClientName:    result.ClientName,
		Date:          result.Date,
		Hour:          result.Hour,
		PackageID:     result.PackageID,
		SessionNumber: result.SessionNumber,
		PackageUsed:   usedAfter,
		PackageSize:   pkgSize,
		CreatedAt:     result.CreatedAt,
	}, nil
}
