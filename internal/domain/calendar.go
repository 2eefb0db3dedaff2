package domain

import (
	"fmt"
	"time"
)

// ScheduleGrid сетка бронируемых часов недельного календаря
// Диапазон часов и сдвиг второго часового пояса задаются конфигурацией
type ScheduleGrid struct {
	DayStartHour         int // первый бронируемый час (базовая зона)
	DayEndHour           int // последний бронируемый час включительно
	SecondaryOffsetHours int // сдвиг второй отображаемой зоны в часах
}

// Hours returns the contiguous bookable hour range of the grid
func (g ScheduleGrid) Hours() []int {
	hours := make([]int, 0, g.DayEndHour-g.DayStartHour+1)
	for h := g.DayStartHour; h <= g.DayEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// ContainsHour returns true if the hour is bookable
// Бронирования с часом вне диапазона не предлагаются к созданию,
// но уже существующие отображаются
func (g ScheduleGrid) ContainsHour(hour int) bool {
	return hour >= g.DayStartHour && hour <= g.DayEndHour
}

// SecondaryHour переводит базовый час в час второй отображаемой зоны
// Чисто отображение: хранимое значение часа и ключ слота не меняются
func (g ScheduleGrid) SecondaryHour(hour int) int {
	return ((hour+g.SecondaryOffsetHours)%24 + 24) % 24
}

// FormatHour форматирует час как "HH:00"
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// WeekStart возвращает понедельник ISO-недели, в которую попадает дата
func WeekStart(anchor time.Time) time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	// time.Weekday: воскресенье = 0, понедельник = 1
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekDays возвращает 7 последовательных дней недели, начиная с понедельника
func WeekDays(anchor time.Time) []time.Time {
	start := WeekStart(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthStart возвращает первый день месяца, в который попадает дата
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
