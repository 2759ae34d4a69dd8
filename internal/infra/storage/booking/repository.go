package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий записей бронирований
// Запись идентифицируется уникальным reference number; повторный сабмит
// с тем же номером не создает дубликат (идемпотентность на уровне БД)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись бронирования
// Идемпотентна по ref_number: при конфликте вставка молча пропускается и
// возвращается created=false без ошибки - дубликат не создается
func (r *Repository) Create(ctx context.Context, record *domain.BookingRecord) (created bool, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_records").
		Columns(
			"ref_number",
			"venue",
			"booking_date",
			"start_time",
			"end_time",
			"people",
			"price",
			"contact_name",
			"phone",
		).
		Values(
			record.RefNumber,
			record.Venue,
			record.BookingDate,
			record.Range.Start,
			record.Range.End,
			record.People,
			record.Price,
			record.ContactName,
			record.Phone,
		).
		Suffix("ON CONFLICT (ref_number) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Create - rows affected: %v", ErrExecQuery, err)
	}

	return affected > 0, nil
}

// GetByRefNumber получает запись бронирования по reference number
func (r *Repository) GetByRefNumber(ctx context.Context, refNumber string) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"ref_number",
		"venue",
		"booking_date",
		"start_time",
		"end_time",
		"people",
		"price",
		"contact_name",
		"phone",
		"created_at",
	).
		From("booking_records").
		Where(squirrel.Eq{"ref_number": refNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRefNumber - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.BookingRecord
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.RefNumber,
		&record.Venue,
		&record.BookingDate,
		&record.Range.Start,
		&record.Range.End,
		&record.People,
		&record.Price,
		&record.ContactName,
		&record.Phone,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRefNumber - scan record: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time

	return &record, nil
}
