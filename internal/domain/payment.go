package domain

import "time"

// Payment represents a recorded client payment shown against a month
// Purely informational: no invariant beyond a positive amount and a valid day
type Payment struct {
	ID         int64
	ClientName string
	Amount     float64
	PayDay     int       // день месяца, 1..31
	Month      time.Time // первый день месяца, к которому относится платёж

	CreatedAt time.Time
}
