package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/DPT-ReservationService/internal/service/reservations/models"
)

// --- моки ---

type mockRepo struct {
	reservation   *domain.Reservation
	reservations  []*domain.Reservation
	getErr        error
	updateErr     error
	updatedID     int64
	updatedStatus domain.ReservationStatus
}

func (m *mockRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.reservation, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, _ int64, _ *domain.ReservationStatus) ([]*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.reservations, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

type mockAuthClient struct {
	isAdmin bool
	err     error
}

func (m *mockAuthClient) IsAdministrator(_ context.Context, _ int64) (bool, error) {
	return m.isAdmin, m.err
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

func testReservation(userID int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              7,
		UserID:          userID,
		DepartmentID:    10,
		ReservationDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ReservationTime: "10:00",
		Duration:        "1h",
		Amount:          120.0,
		Status:          status,
	}
}

func newTestService(repo *mockRepo, auth *mockAuthClient) *Service {
	return NewService(repo, auth, &noopLogger{})
}

// --- GetByID ---

func TestGetByID_Owner(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusConfirmed)}
	svc := newTestService(repo, &mockAuthClient{})

	resp, err := svc.GetByID(context.Background(), 7, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_AdminSeesForeignReservation(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{isAdmin: true})

	resp, err := svc.GetByID(context.Background(), 7, 99)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
}

func TestGetByID_ForeignReservationDenied(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{isAdmin: false})

	_, err := svc.GetByID(context.Background(), 7, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockRepo{getErr: reservationRepo.ErrReservationNotFound}
	svc := newTestService(repo, &mockAuthClient{})

	_, err := svc.GetByID(context.Background(), 7, 1)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

// --- GetUserReservations ---

func TestGetUserReservations_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(&mockRepo{}, &mockAuthClient{})

	status := "unknown"
	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 1,
		Status: &status,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserReservations_ReturnsList(t *testing.T) {
	repo := &mockRepo{reservations: []*domain.Reservation{
		testReservation(1, domain.StatusConfirmed),
		testReservation(1, domain.StatusCancelled),
	}}
	svc := newTestService(repo, &mockAuthClient{})

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 1})

	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
}

// --- Cancel ---

func TestCancel_OwnerCancelsPending(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{})

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
}

func TestCancel_NonOwnerDenied(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{isAdmin: true})

	// Даже администратор не отменяет чужое бронирование через Cancel
	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 99})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusCancelled)}
	svc := newTestService(repo, &mockAuthClient{})

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 1})

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusCompleted)}
	svc := newTestService(repo, &mockAuthClient{})

	err := svc.Cancel(context.Background(), 7, &models.CancelReservationRequest{UserID: 1})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

// --- UpdateStatus ---

func TestUpdateStatus_AdminConfirmsPending(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{isAdmin: true})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: 99,
		Status: "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_NonAdminDenied(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{isAdmin: false})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: 1,
		Status: "confirmed",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_AuthServiceFailureIsInternal(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{err: errors.New("auth service down")})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: 99,
		Status: "confirmed",
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus_TransitionNotAllowed(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.ReservationStatus
		target string
	}{
		{"completed to confirmed", domain.StatusCompleted, "confirmed"},
		{"pending to completed", domain.StatusPending, "completed"},
		{"pending to rejected", domain.StatusPending, "rejected"},
		{"cancelled to pending", domain.StatusCancelled, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{reservation: testReservation(1, tt.from)}
			svc := newTestService(repo, &mockAuthClient{isAdmin: true})

			err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
				UserID: 99,
				Status: tt.target,
			})

			assert.ErrorIs(t, err, ErrTransitionNotAllowed)
		})
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusPending)}
	svc := newTestService(repo, &mockAuthClient{isAdmin: true})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: 99,
		Status: "archived",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_ConfirmedToCompleted(t *testing.T) {
	repo := &mockRepo{reservation: testReservation(1, domain.StatusConfirmed)}
	svc := newTestService(repo, &mockAuthClient{isAdmin: true})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: 99,
		Status: "completed",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}
