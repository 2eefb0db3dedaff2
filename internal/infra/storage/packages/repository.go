package packages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
	"github.com/m04kA/PT-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/PT-ScheduleService/pkg/psqlbuilder"
)

var packageColumns = []string{
	"id",
	"client_names",
	"size",
	"used",
	"purchased_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пакетами тренировок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пакет
// Состав владельцев хранится отсортированным text[] — сравнение групп
// в SQL не зависит от порядка ввода имен
func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	names := append([]string(nil), pkg.ClientNames...)
	sort.Strings(names)
	pkg.ClientNames = names

	query, args, err := psqlbuilder.Insert("packages").
		Columns(
			"client_names",
			"size",
			"used",
			"purchased_at",
		).
		Values(
			pq.Array(pkg.ClientNames),
			pkg.Size,
			pkg.Used,
			pkg.PurchasedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pkg.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return pkg, nil
}

// GetByID получает пакет по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanPackage(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// ListByMember получает пакеты, в составе владельцев которых есть клиент,
// в порядке покупки (старые раньше)
// Внутри транзакции блокирует строки (FOR UPDATE) — выбор активного
// пакета при создании бронирования не должен гоняться с другой записью
func (r *Repository) ListByMember(ctx context.Context, clientName string) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(packageColumns...).
		From("packages").
		Where(squirrel.Expr("? = ANY(client_names)", clientName)).
		OrderBy("purchased_at ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMember - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMember - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPackages(rows)
}

// ListAll получает все пакеты в порядке покупки
// Используется для построения справочника клиентов
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(packageColumns...).
		From("packages").
		OrderBy("purchased_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPackages(rows)
}

// ConsumeSession увеличивает счётчик израсходованных сессий на 1
// Условие used < size в самом запросе не даёт счётчику выйти за размер
// пакета даже при гонке: ноль затронутых строк означает либо
// отсутствующий пакет, либо исчерпанную ёмкость
func (r *Repository) ConsumeSession(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("packages").
		Set("used", squirrel.Expr("used + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("used < size")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ConsumeSession - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ConsumeSession - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ConsumeSession - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			if errors.Is(err, ErrPackageNotFound) {
				return ErrPackageNotFound
			}
			return err
		}
		return ErrNoCapacity
	}

	return nil
}

// ReleaseSession уменьшает счётчик израсходованных сессий на 1 с полом в 0
// Ноль затронутых строк при существующем пакете — штатная ситуация
// (счётчик уже на нуле)
func (r *Repository) ReleaseSession(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("packages").
		Set("used", squirrel.Expr("used - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("used > 0")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseSession - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseSession - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReleaseSession - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// Delete удаляет пакет
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
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
		return ErrPackageNotFound
	}

	return nil
}

// DeleteByMember удаляет все пакеты, в составе владельцев которых есть клиент
// Используется при удалении клиента из справочника
func (r *Repository) DeleteByMember(ctx context.Context, clientName string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
		Where(squirrel.Expr("? = ANY(client_names)", clientName)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByMember - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByMember - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanPackage сканирует одну строку результата в пакет
func (r *Repository) scanPackage(row *sql.Row, method string) (*domain.Package, error) {
	var pkg domain.Package
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&pkg.ID,
		pq.Array(&pkg.ClientNames),
		&pkg.Size,
		&pkg.Used,
		&pkg.PurchasedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan package: %v", ErrScanRow, method, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return &pkg, nil
}

// scanPackages сканирует результаты запроса в слайс пакетов
func (r *Repository) scanPackages(rows *sql.Rows) ([]*domain.Package, error) {
	result := make([]*domain.Package, 0)

	for rows.Next() {
		var pkg domain.Package
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&pkg.ID,
			pq.Array(&pkg.ClientNames),
			&pkg.Size,
			&pkg.Used,
			&pkg.PurchasedAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanPackages - scan row: %v", ErrScanRow, err)
		}

		pkg.CreatedAt = createdAt.Time
		pkg.UpdatedAt = updatedAt.Time

		result = append(result, &pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPackages - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
