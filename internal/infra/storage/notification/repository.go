package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/DPT-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// notificationColumns полный список колонок таблицы notifications
var notificationColumns = []string{
	"id",
	"user_id",
	"title",
	"message",
	"type",
	"icon",
	"read",
	"department_id",
	"action_type",
	"action_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с уведомлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое уведомление
func (r *Repository) Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns(
			"user_id",
			"title",
			"message",
			"type",
			"icon",
			"department_id",
			"action_type",
			"action_id",
		).
		Values(
			notification.UserID,
			notification.Title,
			notification.Message,
			notification.Type,
			notification.Icon,
			notification.DepartmentID,
			notification.ActionType,
			notification.ActionID,
		).
		Suffix("RETURNING id, read, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&notification.ID,
		&notification.Read,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	notification.CreatedAt = createdAt.Time
	notification.UpdatedAt = updatedAt.Time

	return notification, nil
}

// GetByID получает уведомление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var notification domain.Notification
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&notification.ID,
		&notification.UserID,
		&notification.Title,
		&notification.Message,
		&notification.Type,
		&notification.Icon,
		&notification.Read,
		&notification.DepartmentID,
		&notification.ActionType,
		&notification.ActionID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan notification: %v", ErrScanRow, err)
	}

	notification.CreatedAt = createdAt.Time
	notification.UpdatedAt = updatedAt.Time

	return &notification, nil
}

// GetByUserID получает уведомления пользователя, новые первыми
// Опционально фильтрует по признаку прочитанности
func (r *Repository) GetByUserID(ctx context.Context, userID int64, read *bool) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if read != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"read": *read})
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

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var notification domain.Notification
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Title,
			&notification.Message,
			&notification.Type,
			&notification.Icon,
			&notification.Read,
			&notification.DepartmentID,
			&notification.ActionType,
			&notification.ActionID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		notification.CreatedAt = createdAt.Time
		notification.UpdatedAt = updatedAt.Time

		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// CountUnread возвращает количество непрочитанных уведомлений пользователя
func (r *Repository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkRead помечает уведомление прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (r *Repository) MarkAllRead(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет уведомление
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("notifications").
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
		return ErrNotificationNotFound
	}

	return nil
}
