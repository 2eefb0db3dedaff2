package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	bookingRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/booking"
	"github.com/m04kA/PT-ScheduleService/internal/service/schedule/models"
)

// Service календарный индекс: производная недельная сетка бронирований
// Собственного состояния не хранит — всё выводится из репозитория
type Service struct {
	bookingRepo BookingRepository
	grid        domain.ScheduleGrid
	logger      Logger
}

// NewService создает новый экземпляр календарного сервиса
func NewService(bookingRepo BookingRepository, grid domain.ScheduleGrid, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		grid:        grid,
		logger:      logger,
	}
}

// Grid возвращает сетку бронируемых часов
func (s *Service) Grid() domain.ScheduleGrid {
	return s.grid
}

// GetWeek строит недельную сетку для произвольной даты-якоря
// Неделя — 7 последовательных дней начиная с понедельника ISO-недели якоря
func (s *Service) GetWeek(ctx context.Context, anchor time.Time) (*models.WeekResponse, error) {
	if anchor.IsZero() {
		return nil, fmt.Errorf("%w: anchor date is required", ErrInvalidInput)
	}

	days := domain.WeekDays(anchor)
	start, end := days[0], days[len(days)-1]

	bookings, err := s.bookingRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		s.logger.Error("GetWeek: failed to list bookings for %s..%s: %v",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	byDay := make(map[string][]models.BookingResponse)
	for _, b := range bookings {
		key := b.Date.Format(domain.DateFormat)
		byDay[key] = append(byDay[key], *models.FromDomainBooking(b))
	}

	resp := &models.WeekResponse{
		WeekStart: start.Format(domain.DateFormat),
		Hours:     s.hourLabels(),
		Days:      make([]models.DayResponse, 0, len(days)),
	}

	for _, day := range days {
		key := day.Format(domain.DateFormat)
		dayBookings := byDay[key]
		if dayBookings == nil {
			dayBookings = []models.BookingResponse{}
		}
		resp.Days = append(resp.Days, models.DayResponse{
			Date:     key,
			Weekday:  day.Weekday().String(),
			Bookings: dayBookings,
		})
	}

	s.logger.Info("GetWeek: week of %s, %d bookings", resp.WeekStart, len(bookings))
	return resp, nil
}

// BookingAt возвращает бронирование, занимающее слот (date, hour)
// Благодаря инварианту эксклюзивности слота результат — ноль или одна запись
func (s *Service) BookingAt(ctx context.Context, date time.Time, hour int) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetBySlot(ctx, date, hour)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("BookingAt: repository error for %s %02d:00: %v",
			date.Format(domain.DateFormat), hour, err)
		return nil, fmt.Errorf("%w: BookingAt - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ClientBookings возвращает историю записей клиента в хронологическом порядке
func (s *Service) ClientBookings(ctx context.Context, clientName string) ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.ListByClient(ctx, clientName)
	if err != nil {
		s.logger.Error("ClientBookings: failed to list bookings for client=%s: %v", clientName, err)
		return nil, fmt.Errorf("%w: ClientBookings - repository error: %v", ErrInternal, err)
	}

	result := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *models.FromDomainBooking(b))
	}
	return result, nil
}

// hourLabels собирает ось часов сетки с метками обоих поясов
func (s *Service) hourLabels() []models.HourLabel {
	hours := s.grid.Hours()
	labels := make([]models.HourLabel, 0, len(hours))
	for _, h := range hours {
		labels = append(labels, models.HourLabel{
			Hour:      h,
			Base:      domain.FormatHour(h),
			Secondary: domain.FormatHour(s.grid.SecondaryHour(h)),
		})
	}
	return labels
}
