package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	paymentRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/payment"
	"github.com/m04kA/PT-ScheduleService/internal/service/payments/models"
)

// Service сервис учёта платежей
// Платежи информационные: никаких инвариантов кроме валидности полей
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Record записывает платёж клиента за указанный месяц
func (s *Service) Record(ctx context.Context, req *models.RecordPaymentRequest) (*models.PaymentResponse, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.PayDay < domain.MinPayDay || req.PayDay > domain.MaxPayDay {
		return nil, fmt.Errorf("%w: pay day must be within %d..%d", ErrInvalidInput, domain.MinPayDay, domain.MaxPayDay)
	}

	month, err := time.Parse(domain.MonthFormat, req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid month format, expected YYYY-MM", ErrInvalidInput)
	}

	payment := &domain.Payment{
		ClientName: name,
		Amount:     req.Amount,
		PayDay:     req.PayDay,
		Month:      month,
	}

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		s.logger.Error("Record: failed to create payment for client=%s: %v", name, err)
		return nil, fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Record: payment id=%d client=%s amount=%.2f day=%d month=%s",
		created.ID, name, created.Amount, created.PayDay, req.Month)
	return models.FromDomainPayment(created), nil
}

// ListForMonth возвращает платежи, отображаемые против указанного месяца
func (s *Service) ListForMonth(ctx context.Context, monthStr string) (*models.PaymentListResponse, error) {
	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid month format, expected YYYY-MM", ErrInvalidInput)
	}

	payments, err := s.paymentRepo.ListByMonth(ctx, month)
	if err != nil {
		s.logger.Error("ListForMonth: failed to list payments for month=%s: %v", monthStr, err)
		return nil, fmt.Errorf("%w: ListForMonth - repository error: %v", ErrInternal, err)
	}

	resp := &models.PaymentListResponse{
		Month:    monthStr,
		Payments: make([]models.PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, *models.FromDomainPayment(p))
	}

	return resp, nil
}

// Delete удаляет запись о платеже
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("Delete: payment id=%d not found", id)
			return ErrPaymentNotFound
		}
		s.logger.Error("Delete: repository error for payment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted payment id=%d", id)
	return nil
}
