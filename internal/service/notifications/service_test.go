package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	"github.com/m04kA/DPT-ReservationService/internal/infra/queue"
	notificationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/notification"
	"github.com/m04kA/DPT-ReservationService/internal/service/notifications/models"
)

// --- моки ---

type mockRepo struct {
	notification  *domain.Notification
	notifications []*domain.Notification
	unreadCount   int64
	createErr     error
	getErr        error
	markedReadID  int64
	markedAllFor  int64
	deletedID     int64
	created       *domain.Notification
}

func (m *mockRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *n
	created.ID = 5
	m.created = &created
	return &created, nil
}

func (m *mockRepo) GetByID(_ context.Context, _ int64) (*domain.Notification, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.notification, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, _ int64, _ *bool) ([]*domain.Notification, error) {
	return m.notifications, nil
}

func (m *mockRepo) CountUnread(_ context.Context, _ int64) (int64, error) {
	return m.unreadCount, nil
}

func (m *mockRepo) MarkRead(_ context.Context, id int64) error {
	m.markedReadID = id
	return nil
}

func (m *mockRepo) MarkAllRead(_ context.Context, userID int64) error {
	m.markedAllFor = userID
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	m.deletedID = id
	return nil
}

type mockPublisher struct {
	published []queue.ReservationEvent
	err       error
}

func (m *mockPublisher) PublishReservationEvent(_ context.Context, event queue.ReservationEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, event)
	return nil
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

func testReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              42,
		UserID:          1,
		DepartmentID:    10,
		ReservationDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ReservationTime: "10:00",
		Amount:          120.0,
		Status:          status,
	}
}

// --- DispatchReservationCreated ---

func TestDispatchReservationCreated_ConfirmedReservation(t *testing.T) {
	repo := &mockRepo{}
	publisher := &mockPublisher{}
	svc := NewService(repo, publisher, &noopLogger{})

	svc.DispatchReservationCreated(context.Background(), testReservation(domain.StatusConfirmed), "Apartamento Centro")

	require.NotNil(t, repo.created)
	assert.Equal(t, "Reserva Confirmada", repo.created.Title)
	assert.Equal(t, "Tu reserva en Apartamento Centro ha sido confirmada", repo.created.Message)
	assert.Equal(t, domain.NotificationSuccess, repo.created.Type)
	assert.Equal(t, int64(1), repo.created.UserID)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, int64(42), publisher.published[0].ReservationID)
	assert.Equal(t, "confirmed", publisher.published[0].Status)
}

func TestDispatchReservationCreated_PendingReservation(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockPublisher{}, &noopLogger{})

	svc.DispatchReservationCreated(context.Background(), testReservation(domain.StatusPending), "Apartamento Centro")

	require.NotNil(t, repo.created)
	assert.Equal(t, "Reserva Pendiente", repo.created.Title)
	assert.Equal(t, domain.NotificationInfo, repo.created.Type)
}

func TestDispatchReservationCreated_PersistFailureSwallowed(t *testing.T) {
	repo := &mockRepo{createErr: errors.New("db down")}
	publisher := &mockPublisher{}
	svc := NewService(repo, publisher, &noopLogger{})

	// Не должно паниковать и не должно помешать публикации события
	svc.DispatchReservationCreated(context.Background(), testReservation(domain.StatusPending), "Apartamento Centro")

	assert.Len(t, publisher.published, 1)
}

func TestDispatchReservationCreated_PublishFailureSwallowed(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockPublisher{err: errors.New("broker down")}, &noopLogger{})

	svc.DispatchReservationCreated(context.Background(), testReservation(domain.StatusPending), "Apartamento Centro")

	assert.NotNil(t, repo.created)
}

func TestDispatchReservationCreated_NilPublisher(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, nil, &noopLogger{})

	svc.DispatchReservationCreated(context.Background(), testReservation(domain.StatusConfirmed), "Apartamento Centro")

	assert.NotNil(t, repo.created)
}

// --- доступ к уведомлениям ---

func TestMarkRead_Owner(t *testing.T) {
	repo := &mockRepo{notification: &domain.Notification{ID: 5, UserID: 1}}
	svc := NewService(repo, nil, &noopLogger{})

	err := svc.MarkRead(context.Background(), 5, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.markedReadID)
}

func TestMarkRead_ForeignNotificationDenied(t *testing.T) {
	repo := &mockRepo{notification: &domain.Notification{ID: 5, UserID: 1}}
	svc := NewService(repo, nil, &noopLogger{})

	err := svc.MarkRead(context.Background(), 5, 2)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: notificationRepo.ErrNotificationNotFound}
	svc := NewService(repo, nil, &noopLogger{})

	err := svc.MarkRead(context.Background(), 5, 1)

	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestDelete_ForeignNotificationDenied(t *testing.T) {
	repo := &mockRepo{notification: &domain.Notification{ID: 5, UserID: 1}}
	svc := NewService(repo, nil, &noopLogger{})

	err := svc.Delete(context.Background(), 5, 2)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserNotifications_IncludesUnreadCount(t *testing.T) {
	repo := &mockRepo{
		notifications: []*domain.Notification{
			{ID: 1, UserID: 1, Title: "Reserva Confirmada"},
			{ID: 2, UserID: 1, Title: "Reserva Pendiente"},
		},
		unreadCount: 1,
	}
	svc := NewService(repo, nil, &noopLogger{})

	resp, err := svc.GetUserNotifications(context.Background(), &models.GetUserNotificationsRequest{UserID: 1})

	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(1), resp.UnreadCount)
}
