package domain

// Default schedule configuration values
const (
	DefaultDayStartHour         = 9
	DefaultDayEndHour           = 23
	DefaultSecondaryOffsetHours = -4
)

// DefaultPackageSizes размеры пакетов по умолчанию, если не заданы конфигурацией
var DefaultPackageSizes = []int{1, 5, 10, 20}

// Business validation constants
const (
	MaxClientNameLength = 100
	MinPayDay           = 1
	MaxPayDay           = 31
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
