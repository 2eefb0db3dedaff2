package create_booking

import (
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	createBooking "github.com/m04kA/PT-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName string `json:"clientName"`
	Date       string `json:"date"` // "2025-10-15"
	Hour       int    `json:"hour"` // час в базовом поясе
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"`
	Hour          int    `json:"hour"`
	PackageID     int64  `json:"packageId"`
	SessionNumber int    `json:"sessionNumber"`
	PackageUsed   int    `json:"packageUsed"`
	PackageSize   int    `json:"packageSize"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:       date,
		Hour:       r.Hour,
		ClientName: r.ClientName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ClientName:    resp.ClientName,
		Date:          resp.Date.Format(domain.DateFormat),
		Hour:          resp.Hour,
		PackageID:     resp.PackageID,
		SessionNumber: resp.SessionNumber,
		PackageUsed:   resp.PackageUsed,
		PackageSize:   resp.PackageSize,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
