package domain

import "time"

// Booking represents a single scheduled training session occupying one
// (date, hour) slot and drawing one unit from a package
type Booking struct {
	ID            int64
	ClientName    string
	Date          time.Time // календарная дата, без времени
	Hour          int       // час начала в базовом часовом поясе (0..23)
	PackageID     int64
	SessionNumber int // порядковый номер сессии внутри пакета (1..size)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAt returns true if the booking occupies the given slot
func (b *Booking) IsAt(date time.Time, hour int) bool {
	return b.Hour == hour && SameDay(b.Date, date)
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
