package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleGrid_Hours(t *testing.T) {
	grid := ScheduleGrid{DayStartHour: 9, DayEndHour: 23}

	hours := grid.Hours()
	assert.Len(t, hours, 15)
	assert.Equal(t, 9, hours[0])
	assert.Equal(t, 23, hours[len(hours)-1])

	assert.True(t, grid.ContainsHour(9))
	assert.True(t, grid.ContainsHour(23))
	assert.False(t, grid.ContainsHour(8))
	assert.False(t, grid.ContainsHour(24))
}

func TestScheduleGrid_SecondaryHour(t *testing.T) {
	grid := ScheduleGrid{DayStartHour: 9, DayEndHour: 23, SecondaryOffsetHours: -4}

	assert.Equal(t, 5, grid.SecondaryHour(9))
	assert.Equal(t, 19, grid.SecondaryHour(23))
	// Переход через полночь
	assert.Equal(t, 22, grid.SecondaryHour(2))

	positive := ScheduleGrid{SecondaryOffsetHours: 3}
	assert.Equal(t, 1, positive.SecondaryHour(22))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "09:00", FormatHour(9))
	assert.Equal(t, "23:00", FormatHour(23))
}

func TestWeekStart(t *testing.T) {
	// 2025-10-15 — среда, неделя начинается 2025-10-13
	wednesday := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), WeekStart(wednesday))

	// Понедельник — начало своей же недели
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(monday))

	// Воскресенье относится к неделе предыдущего понедельника
	sunday := time.Date(2025, 10, 19, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(sunday))
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	assert.Len(t, days, 7)
	assert.Equal(t, time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), days[6])
}

func TestMonthStart(t *testing.T) {
	date := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), MonthStart(date))
}
