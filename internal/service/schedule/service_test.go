package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) GetBySlot(_ context.Context, date time.Time, hour int) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.IsAt(date, hour) {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if !b.Date.Before(start) && !b.Date.After(end) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) ListByClient(_ context.Context, clientName string) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.ClientName == clientName {
			result = append(result, b)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testGrid() domain.ScheduleGrid {
	return domain.ScheduleGrid{DayStartHour: 9, DayEndHour: 23, SecondaryOffsetHours: -4}
}

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func TestGetWeek(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, ClientName: "Иван", Date: day(13), Hour: 10, PackageID: 1, SessionNumber: 1},
		{ID: 2, ClientName: "Мария", Date: day(15), Hour: 18, PackageID: 2, SessionNumber: 3},
		// Запись вне недели в ответ не попадает
		{ID: 3, ClientName: "Пётр", Date: day(20), Hour: 10, PackageID: 3, SessionNumber: 1},
	}}
	svc := NewService(repo, testGrid(), nopLogger{})

	// Среда 15 октября — неделя с понедельника 13-го
	resp, err := svc.GetWeek(context.Background(), day(15))
	require.NoError(t, err)

	assert.Equal(t, "2025-10-13", resp.WeekStart)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Monday", resp.Days[0].Weekday)
	assert.Equal(t, "Sunday", resp.Days[6].Weekday)

	require.Len(t, resp.Days[0].Bookings, 1)
	assert.Equal(t, "Иван", resp.Days[0].Bookings[0].ClientName)
	require.Len(t, resp.Days[2].Bookings, 1)
	assert.Equal(t, "Мария", resp.Days[2].Bookings[0].ClientName)

	// Пустые дни — пустые срезы, не nil
	for _, d := range resp.Days {
		assert.NotNil(t, d.Bookings)
	}
}

func TestGetWeek_HourLabels(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, testGrid(), nopLogger{})

	resp, err := svc.GetWeek(context.Background(), day(15))
	require.NoError(t, err)

	require.Len(t, resp.Hours, 15)
	assert.Equal(t, 9, resp.Hours[0].Hour)
	assert.Equal(t, "09:00", resp.Hours[0].Base)
	assert.Equal(t, "05:00", resp.Hours[0].Secondary)
	assert.Equal(t, "23:00", resp.Hours[14].Base)
	assert.Equal(t, "19:00", resp.Hours[14].Secondary)
}

func TestGetWeek_OutOfRangeHourStillShown(t *testing.T) {
	// Импортированная история с часом вне сетки отображается
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, ClientName: "Иван", Date: day(13), Hour: 7, PackageID: 1, SessionNumber: 1},
	}}
	svc := NewService(repo, testGrid(), nopLogger{})

	resp, err := svc.GetWeek(context.Background(), day(13))
	require.NoError(t, err)
	require.Len(t, resp.Days[0].Bookings, 1)
	assert.Equal(t, 7, resp.Days[0].Bookings[0].Hour)
}

func TestGetWeek_ZeroAnchor(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, testGrid(), nopLogger{})

	_, err := svc.GetWeek(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookingAt(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, ClientName: "Иван", Date: day(13), Hour: 10, PackageID: 1, SessionNumber: 1},
	}}
	svc := NewService(repo, testGrid(), nopLogger{})

	resp, err := svc.BookingAt(context.Background(), day(13), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-13", resp.Date)

	_, err = svc.BookingAt(context.Background(), day(13), 11)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestClientBookings(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, ClientName: "Иван", Date: day(13), Hour: 10, PackageID: 1, SessionNumber: 1},
		{ID: 2, ClientName: "Мария", Date: day(14), Hour: 11, PackageID: 2, SessionNumber: 1},
	}}
	svc := NewService(repo, testGrid(), nopLogger{})

	bookings, err := svc.ClientBookings(context.Background(), "Иван")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)

	// Неизвестное имя — пустой список, не ошибка
	bookings, err = svc.ClientBookings(context.Background(), "Неизвестный")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
