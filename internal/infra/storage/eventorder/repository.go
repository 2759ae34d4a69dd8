package eventorder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий заказов билетных мероприятий
// Сохранение идемпотентно по order_ref, как и у бронирований площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет заказ; повторный вызов с тем же order_ref возвращает
// created=false без ошибки и без создания дубликата
func (r *Repository) Save(ctx context.Context, order *domain.EventOrder) (created bool, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("event_orders").
		Columns(
			"order_ref",
			"event_id",
			"tickets",
			"amount_minor",
			"customer_name",
			"phone",
		).
		Values(
			order.OrderRef,
			order.EventID,
			order.Tickets,
			order.AmountMinor,
			order.CustomerName,
			order.Phone,
		).
		Suffix("ON CONFLICT (order_ref) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Save - rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

// GetByOrderRef получает заказ по reference number
func (r *Repository) GetByOrderRef(ctx context.Context, orderRef string) (*domain.EventOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"order_ref",
		"event_id",
		"tickets",
		"amount_minor",
		"customer_name",
		"phone",
		"created_at",
	).
		From("event_orders").
		Where(squirrel.Eq{"order_ref": orderRef}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderRef - build select query: %v", ErrBuildQuery, err)
	}

	var order domain.EventOrder
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&order.OrderRef,
		&order.EventID,
		&order.Tickets,
		&order.AmountMinor,
		&order.CustomerName,
		&order.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderRef - scan order: %v", ErrScanRow, err)
	}

	order.CreatedAt = createdAt.Time

	return &order, nil
}
