package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/packages"
	createBooking "github.com/m04kA/PT-ScheduleService/internal/usecase/create_booking"
)

// Методы фейков, нужные только usecase создания бронирования

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	var maxID int64
	for id, existing := range r.bookings {
		if existing.IsAt(b.Date, b.Hour) {
			return nil, bookingRepo.ErrSlotTaken
		}
		if id > maxID {
			maxID = id
		}
	}
	created := *b
	created.ID = maxID + 1
	created.CreatedAt = time.Now()
	r.bookings[created.ID] = &created
	return &created, nil
}

func (r *fakeBookingRepo) GetBySlot(_ context.Context, date time.Time, hour int) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.IsAt(date, hour) {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakePackageRepo) ListByMember(_ context.Context, clientName string) ([]*domain.Package, error) {
	var result []*domain.Package
	for _, p := range r.packages {
		if p.BelongsTo(clientName) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePackageRepo) ConsumeSession(_ context.Context, id int64) error {
	p, ok := r.packages[id]
	if !ok {
		return packageRepo.ErrPackageNotFound
	}
	if !p.HasCapacity() {
		return packageRepo.ErrNoCapacity
	}
	p.Used++
	return nil
}

// Сквозной сценарий жизни пакета: покупка, пять сессий, отказ на шестой,
// отмена одной, добор, повторное исчерпание
func TestScenario_PackageLifecycle(t *testing.T) {
	ctx := context.Background()

	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	packages := &fakePackageRepo{packages: map[int64]*domain.Package{
		1: {ID: 1, ClientNames: []string{"Иван"}, Size: 5, Used: 0, PurchasedAt: day(1)},
	}}
	grid := domain.ScheduleGrid{DayStartHour: 9, DayEndHour: 23, SecondaryOffsetHours: -4}

	create := createBooking.NewUseCase(bookings, packages, passTxManager{}, grid, nopLogger{})
	cancel := NewUseCase(bookings, packages, passTxManager{}, nopLogger{})

	// Пять сессий закрывают пакет; номера идут подряд
	var bookingIDs []int64
	for i := 0; i < 5; i++ {
		resp, err := create.Execute(ctx, &createBooking.Request{
			Date:       day(13 + i),
			Hour:       10,
			ClientName: "Иван",
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, resp.SessionNumber)
		bookingIDs = append(bookingIDs, resp.ID)
	}
	assert.Equal(t, 5, packages.packages[1].Used)

	// Шестая сессия не проходит: активного пакета больше нет
	_, err := create.Execute(ctx, &createBooking.Request{
		Date:       day(20),
		Hour:       10,
		ClientName: "Иван",
	})
	assert.ErrorIs(t, err, createBooking.ErrNoActivePackage)

	// Отмена третьей сессии возвращает одну сессию и уплотняет номера
	require.NoError(t, cancel.Execute(ctx, bookingIDs[2]))
	assert.Equal(t, 4, packages.packages[1].Used)

	remaining, err := bookings.ListByPackage(ctx, 1)
	require.NoError(t, err)
	require.Len(t, remaining, 4)
	for i, b := range remaining {
		assert.Equal(t, i+1, b.SessionNumber)
	}

	// Счётчик снова равен числу бронирований пакета
	assert.Equal(t, packages.packages[1].Used, len(remaining))

	// Освободившаяся сессия выбирается заново тем же пакетом
	resp, err := create.Execute(ctx, &createBooking.Request{
		Date:       day(21),
		Hour:       11,
		ClientName: "Иван",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.PackageID)
	assert.Equal(t, 5, resp.SessionNumber)
	assert.Equal(t, 5, packages.packages[1].Used)

	// Пакет снова закрыт
	_, err = create.Execute(ctx, &createBooking.Request{
		Date:       day(22),
		Hour:       10,
		ClientName: "Иван",
	})
	assert.ErrorIs(t, err, createBooking.ErrNoActivePackage)
}
