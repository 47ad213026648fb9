package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/DPT-ReservationService/internal/infra/storage/reservation"
	departmentClient "github.com/m04kA/DPT-ReservationService/internal/integrations/departmentservice"
	"github.com/m04kA/DPT-ReservationService/pkg/ptr"
	"github.com/m04kA/DPT-ReservationService/pkg/types"
)

// --- моки ---

type mockReservationRepo struct {
	existing  []*domain.Reservation
	getErr    error
	createErr error
	created   *domain.Reservation
}

func (m *mockReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *r
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *mockReservationRepo) GetByDepartmentAndDate(_ context.Context, _ domain.DepartmentDayFilter) ([]*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.existing, nil
}

type mockDepartmentClient struct {
	department *departmentClient.Department
	err        error
}

func (m *mockDepartmentClient) GetDepartmentWithGracefulDegradation(_ context.Context, _ int64) (*departmentClient.Department, error) {
	return m.department, m.err
}

type mockNotifier struct {
	called         bool
	reservation    *domain.Reservation
	departmentName string
}

func (m *mockNotifier) DispatchReservationCreated(_ context.Context, r *domain.Reservation, name string) {
	m.called = true
	m.reservation = r
	m.departmentName = name
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (l *noopLogger) Info(string, ...interface{})  {}
func (l *noopLogger) Warn(string, ...interface{})  {}
func (l *noopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *mockReservationRepo, client *mockDepartmentClient, notifier *mockNotifier) *UseCase {
	uc := NewUseCase(repo, client, notifier, &mockTxManager{}, &noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:       1,
		DepartmentID: 10,
		Date:         testNow.AddDate(0, 0, 1),
		Time:         "10:00",
	}
}

func testDepartment() *departmentClient.Department {
	return &departmentClient.Department{
		ID:            10,
		Name:          "Apartamento Centro",
		PricePerNight: ptr.Ptr(120.0),
	}
}

// --- тесты ---

func TestExecute_CreatesPendingWithoutPayment(t *testing.T) {
	repo := &mockReservationRepo{}
	notifier := &mockNotifier{}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Nil(t, resp.PaymentDate)
	assert.Equal(t, 120.0, resp.Amount)
	assert.Equal(t, domain.DefaultDuration, resp.Duration)
	assert.True(t, notifier.called)
	assert.Equal(t, "Apartamento Centro", notifier.departmentName)
}

func TestExecute_CreatesConfirmedWithPayment(t *testing.T) {
	repo := &mockReservationRepo{}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	req := validRequest()
	req.PaymentMethod = ptr.Ptr("card")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, resp.PaymentDate)
	assert.Equal(t, testNow, *resp.PaymentDate)
}

func TestExecute_UsesDefaultPriceWhenDepartmentHasNone(t *testing.T) {
	department := testDepartment()
	department.PricePerNight = nil
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: department}, &mockNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPricePerNight, resp.Amount)
}

func TestExecute_DegradedDepartmentServiceUsesDefaults(t *testing.T) {
	client := &mockDepartmentClient{err: departmentClient.ErrServiceDegraded}
	notifier := &mockNotifier{}
	uc := newTestUseCase(&mockReservationRepo{}, client, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPricePerNight, resp.Amount)
	assert.True(t, notifier.called)
}

func TestExecute_DepartmentNotFound(t *testing.T) {
	client := &mockDepartmentClient{err: departmentClient.ErrDepartmentNotFound}
	uc := newTestUseCase(&mockReservationRepo{}, client, &mockNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestExecute_RejectsSameDayDate(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	req := validRequest()
	req.Date = testNow

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -3)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsNonCatalogSlot(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	req := validRequest()
	req.Time = "09:30"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotTakenByAnotherUser(t *testing.T) {
	repo := &mockReservationRepo{
		existing: []*domain.Reservation{
			{UserID: 2, ReservationTime: "10:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_UserDoubleBookingBeforeSlotTaken(t *testing.T) {
	// У пользователя уже есть бронь на другой слот этого дня, а запрошенный
	// слот занят другим пользователем: двойная бронь важнее занятости слота
	repo := &mockReservationRepo{
		existing: []*domain.Reservation{
			{UserID: 2, ReservationTime: "10:00", Status: domain.StatusConfirmed},
			{UserID: 1, ReservationTime: "11:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUserDoubleBooking)
}

func TestExecute_InactiveReservationsDoNotConflict(t *testing.T) {
	repo := &mockReservationRepo{
		existing: []*domain.Reservation{
			{UserID: 2, ReservationTime: "10:00", Status: domain.StatusCancelled},
			{UserID: 1, ReservationTime: "10:00", Status: domain.StatusCompleted},
		},
	}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_MapsRepoUniqueViolations(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		wantErr   error
	}{
		{"double booking constraint", reservationRepo.ErrUserDoubleBooking, ErrUserDoubleBooking},
		{"slot constraint", reservationRepo.ErrSlotTaken, ErrSlotTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReservationRepo{createErr: tt.createErr}
			uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CustomDurationKept(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	req := validRequest()
	req.Duration = "2h"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "2h", resp.Duration)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: testDepartment()}, &mockNotifier{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user id", func(r *Request) { r.UserID = 0 }},
		{"negative department id", func(r *Request) { r.DepartmentID = -1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.Time = types.TimeString("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.Error(t, err)
		})
	}
}
