package models

import "github.com/m04kA/PT-ScheduleService/internal/domain"

// RecordPaymentRequest запрос на запись платежа
type RecordPaymentRequest struct {
	ClientName string  `json:"clientName"`
	Amount     float64 `json:"amount"`
	PayDay     int     `json:"payDay"`
	Month      string  `json:"month"` // "2025-10"
}

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Amount     float64 `json:"amount"`
	PayDay     int     `json:"payDay"`
	Month      string  `json:"month"` // "2025-10"
}

// PaymentListResponse платежи за просматриваемый месяц
type PaymentListResponse struct {
	Month    string            `json:"month"`
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:         p.ID,
		ClientName: p.ClientName,
		Amount:     p.Amount,
		PayDay:     p.PayDay,
		Month:      p.Month.Format(domain.MonthFormat),
	}
}
