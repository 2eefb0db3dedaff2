package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	"github.com/m04kA/PT-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/PT-ScheduleService/pkg/psqlbuilder"
)

var paymentColumns = []string{
	"id",
	"client_name",
	"amount",
	"pay_day",
	"month",
	"created_at",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись о платеже
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"client_name",
			"amount",
			"pay_day",
			"month",
		).
		Values(
			payment.ClientName,
			payment.Amount,
			payment.PayDay,
			payment.Month,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&payment.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// ListByMonth получает платежи, относящиеся к указанному месяцу,
// отсортированные по дню платежа
func (r *Repository) ListByMonth(ctx context.Context, month time.Time) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"month": domain.MonthStart(month)}).
		OrderBy("pay_day ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPayments(rows)
}

// Delete удаляет запись о платеже
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// scanPayments сканирует результаты запроса в слайс платежей
func (r *Repository) scanPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	payments := make([]*domain.Payment, 0)

	for rows.Next() {
		var payment domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&payment.ID,
			&payment.ClientName,
			&payment.Amount,
			&payment.PayDay,
			&payment.Month,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPayments - scan row: %v", ErrScanRow, err)
		}

		payment.CreatedAt = createdAt.Time

		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPayments - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
