package cancel_booking

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/packages"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) ListByPackage(_ context.Context, packageID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.PackageID == packageID {
			result = append(result, b)
		}
	}
	// Порядок хронологический, как в репозитории: (дата, час)
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Hour < result[j].Hour
	})
	return result, nil
}

func (r *fakeBookingRepo) UpdateSessionNumber(_ context.Context, id int64, sessionNumber int) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.SessionNumber = sessionNumber
	return nil
}

type fakePackageRepo struct {
	packages map[int64]*domain.Package
}

func (r *fakePackageRepo) ReleaseSession(_ context.Context, id int64) error {
	p, ok := r.packages[id]
	if !ok {
		return packageRepo.ErrPackageNotFound
	}
	if p.Used > 0 {
		p.Used--
	}
	return nil
}

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, pkgID int64, d, hour, session int) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		ClientName:    "Иван",
		Date:          day(d),
		Hour:          hour,
		PackageID:     pkgID,
		SessionNumber: session,
	}
}

func TestExecute_CancelReleasesSession(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, 10, 15, 10, 1),
	}}
	packages := &fakePackageRepo{packages: map[int64]*domain.Package{
		10: {ID: 10, ClientNames: []string{"Иван"}, Size: 5, Used: 1, PurchasedAt: day(1)},
	}}
	uc := NewUseCase(bookings, packages, passTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Empty(t, bookings.bookings)
	assert.Equal(t, 0, packages.packages[10].Used)
}

func TestExecute_RenumbersRemainingSessions(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, 10, 13, 10, 1),
		2: booking(2, 10, 14, 11, 2),
		3: booking(3, 10, 16, 9, 3),
	}}
	packages := &fakePackageRepo{packages: map[int64]*domain.Package{
		10: {ID: 10, ClientNames: []string{"Иван"}, Size: 5, Used: 3, PurchasedAt: day(1)},
	}}
	uc := NewUseCase(bookings, packages, passTxManager{}, nopLogger{})

	// Отмена средней сессии сдвигает последующие: 1,3 -> 1,2
	err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, bookings.bookings[1].SessionNumber)
	assert.Equal(t, 2, bookings.bookings[3].SessionNumber)
	assert.Equal(t, 2, packages.packages[10].Used)
}

func TestExecute_ReleaseFlooredAtZero(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, 10, 15, 10, 1),
	}}
	packages := &fakePackageRepo{packages: map[int64]*domain.Package{
		10: {ID: 10, ClientNames: []string{"Иван"}, Size: 5, Used: 0, PurchasedAt: day(1)},
	}}
	uc := NewUseCase(bookings, packages, passTxManager{}, nopLogger{})

	// Счётчик уже на нуле: отмена не уводит его в минус
	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, packages.packages[10].Used)
}

func TestExecute_MissingPackageIsNoop(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, 99, 15, 10, 1),
	}}
	packages := &fakePackageRepo{packages: map[int64]*domain.Package{}}
	uc := NewUseCase(bookings, packages, passTxManager{}, nopLogger{})

	// Пакет удалён как завершённый: бронь отменяется без ошибки
	err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, bookings.bookings)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	packages := &fakePackageRepo{packages: map[int64]*domain.Package{}}
	uc := NewUseCase(bookings, packages, passTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
