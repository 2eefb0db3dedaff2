package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	paymentRepo "github.com/m04kA/PT-ScheduleService/internal/infra/storage/payment"
	"github.com/m04kA/PT-ScheduleService/internal/service/payments/models"
)

type fakePaymentRepo struct {
	payments []*domain.Payment
	nextID   int64
}

func (r *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	r.nextID++
	created := *p
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.payments = append(r.payments, &created)
	return &created, nil
}

func (r *fakePaymentRepo) ListByMonth(_ context.Context, month time.Time) ([]*domain.Payment, error) {
	var result []*domain.Payment
	for _, p := range r.payments {
		if p.Month.Equal(domain.MonthStart(month)) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id int64) error {
	for i, p := range r.payments {
		if p.ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return paymentRepo.ErrPaymentNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRecord(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		ClientName: "  Иван ",
		Amount:     4500,
		PayDay:     15,
		Month:      "2025-10",
	})

	require.NoError(t, err)
	assert.Equal(t, "Иван", resp.ClientName)
	assert.Equal(t, 4500.0, resp.Amount)
	assert.Equal(t, 15, resp.PayDay)
	assert.Equal(t, "2025-10", resp.Month)
}

func TestRecord_Validation(t *testing.T) {
	svc := NewService(&fakePaymentRepo{}, nopLogger{})

	tests := []struct {
		name string
		req  models.RecordPaymentRequest
	}{
		{"empty name", models.RecordPaymentRequest{ClientName: " ", Amount: 100, PayDay: 1, Month: "2025-10"}},
		{"zero amount", models.RecordPaymentRequest{ClientName: "Иван", Amount: 0, PayDay: 1, Month: "2025-10"}},
		{"negative amount", models.RecordPaymentRequest{ClientName: "Иван", Amount: -5, PayDay: 1, Month: "2025-10"}},
		{"pay day too low", models.RecordPaymentRequest{ClientName: "Иван", Amount: 100, PayDay: 0, Month: "2025-10"}},
		{"pay day too high", models.RecordPaymentRequest{ClientName: "Иван", Amount: 100, PayDay: 32, Month: "2025-10"}},
		{"bad month", models.RecordPaymentRequest{ClientName: "Иван", Amount: 100, PayDay: 1, Month: "октябрь"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListForMonth(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		ClientName: "Иван", Amount: 4500, PayDay: 5, Month: "2025-10",
	})
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), &models.RecordPaymentRequest{
		ClientName: "Мария", Amount: 9000, PayDay: 12, Month: "2025-11",
	})
	require.NoError(t, err)

	resp, err := svc.ListForMonth(context.Background(), "2025-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-10", resp.Month)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "Иван", resp.Payments[0].ClientName)

	// Месяц без платежей — пустой список
	resp, err = svc.ListForMonth(context.Background(), "2025-12")
	require.NoError(t, err)
	assert.Empty(t, resp.Payments)

	_, err = svc.ListForMonth(context.Background(), "2025/10")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakePaymentRepo{}
	svc := NewService(repo, nopLogger{})

	created, err := svc.Record(context.Background(), &models.RecordPaymentRequest{
		ClientName: "Иван", Amount: 4500, PayDay: 5, Month: "2025-10",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.payments)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
