package models

import (
	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

// HourLabel один час сетки с метками обоих отображаемых поясов
// Второй пояс — чистое отображение, ключ слота всегда базовый час
type HourLabel struct {
	Hour      int    `json:"hour"`
	Base      string `json:"base"`      // "09:00"
	Secondary string `json:"secondary"` // "05:00" при сдвиге -4
}

// BookingResponse бронирование в ячейке календаря
type BookingResponse struct {
	ID            int64  `json:"id"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"` // "2025-10-15"
	Hour          int    `json:"hour"`
	PackageID     int64  `json:"packageId"`
	SessionNumber int    `json:"sessionNumber"`
}

// DayResponse один день недельной сетки
type DayResponse struct {
	Date     string            `json:"date"` // "2025-10-15"
	Weekday  string            `json:"weekday"`
	Bookings []BookingResponse `json:"bookings"`
}

// WeekResponse недельная сетка: 7 дней начиная с понедельника
// Bookings содержит и записи с часом вне сетки — импортированная
// история отображается, хотя такие слоты не предлагаются к брони
type WeekResponse struct {
	WeekStart string        `json:"weekStart"` // "2025-10-13"
	Hours     []HourLabel   `json:"hours"`
	Days      []DayResponse `json:"days"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:            b.ID,
		ClientName:    b.ClientName,
		Date:          b.Date.Format(domain.DateFormat),
		Hour:          b.Hour,
		PackageID:     b.PackageID,
		SessionNumber: b.SessionNumber,
	}
}
