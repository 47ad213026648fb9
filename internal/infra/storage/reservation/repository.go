package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DPT-ReservationService/pkg/psqlbuilder"
)

// Имена частичных уникальных индексов из миграции 001
const (
	constraintSlot    = "uq_reservations_slot"
	constraintUserDay = "uq_reservations_user_day"
)

// pgUniqueViolation код ошибки postgres "unique_violation"
const pgUniqueViolation = "23505"

// reservationColumns полный список колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"user_id",
	"department_id",
	"reservation_date",
	"reservation_time",
	"duration",
	"amount",
	"payment_method",
	"payment_date",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Вставка защищена частичными уникальными индексами по активным статусам:
// нарушение uq_reservations_user_day маппится в ErrUserDoubleBooking,
// нарушение uq_reservations_slot - в ErrSlotTaken. Это вторая линия защиты:
// в нормальном потоке конфликт обнаруживает проверка внутри сериализуемой
// транзакции до вставки
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"department_id",
			"reservation_date",
			"reservation_time",
			"duration",
			"amount",
			"payment_method",
			"payment_date",
			"status",
			"notes",
		).
		Values(
			reservation.UserID,
			reservation.DepartmentID,
			reservation.ReservationDate,
			reservation.ReservationTime,
			reservation.Duration,
			reservation.Amount,
			reservation.PaymentMethod,
			reservation.PaymentDate,
			reservation.Status,
			reservation.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if conflictErr := mapUniqueViolation(err); conflictErr != nil {
			return nil, conflictErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу, сортирует от новых к старым
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, reservation_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetByDepartmentAndDate получает бронирования департамента на календарную дату
// При filter.ActiveOnly возвращаются только слото-занимающие статусы (pending/confirmed)
//
// Внутри транзакции добавляется FOR UPDATE: проверка конфликтов и вставка
// в usecase создания бронирования должны видеть согласованное состояние
func (r *Repository) GetByDepartmentAndDate(ctx context.Context, filter domain.DepartmentDayFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"department_id": filter.DepartmentID}).
		Where(squirrel.Eq{"reservation_date": dateOnly(filter.Date)}).
		OrderBy("reservation_time ASC")

	if filter.ActiveOnly {
		activeStatusStrings := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings})
	}

	// Блокируем строки при чтении внутри транзакции
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDepartmentAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDepartmentAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования
// Используется и для административных переходов, и для отмены пользователем
// (отмена - это смена статуса, физического удаления в нормальном потоке нет)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// mapUniqueViolation маппит нарушение уникального индекса в доменную ошибку конфликта
// Возвращает nil, если ошибка не является нарушением уникальности
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintUserDay:
		return ErrUserDoubleBooking
	case constraintSlot:
		return ErrSlotTaken
	default:
		return nil
	}
}

// scanReservation сканирует одну строку результата
func scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.DepartmentID,
		&reservation.ReservationDate,
		&reservation.ReservationTime,
		&reservation.Duration,
		&reservation.Amount,
		&reservation.PaymentMethod,
		&reservation.PaymentDate,
		&reservation.Status,
		&reservation.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.DepartmentID,
			&reservation.ReservationDate,
			&reservation.ReservationTime,
			&reservation.Duration,
			&reservation.Amount,
			&reservation.PaymentMethod,
			&reservation.PaymentDate,
			&reservation.Status,
			&reservation.Notes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// dateOnly обнуляет время, чтобы сравнение шло только по календарной дате
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
