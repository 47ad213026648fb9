package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DPT-ReservationService/internal/domain"
	departmentClient "github.com/m04kA/DPT-ReservationService/internal/integrations/departmentservice"
	"github.com/m04kA/DPT-ReservationService/pkg/types"
)

// --- моки ---

type mockReservationRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (m *mockReservationRepo) GetByDepartmentAndDate(_ context.Context, _ domain.DepartmentDayFilter) ([]*domain.Reservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reservations, nil
}

type mockDepartmentClient struct {
	department *departmentClient.Department
	err        error
}

func (m *mockDepartmentClient) GetDepartmentWithGracefulDegradation(_ context.Context, _ int64) (*departmentClient.Department, error) {
	return m.department, m.err
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

func newTestUseCase(repo *mockReservationRepo, client *mockDepartmentClient) *UseCase {
	uc := NewUseCase(repo, client, &noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		DepartmentID: 10,
		Date:         testNow.AddDate(0, 0, 1),
	}
}

func testDepartment() *departmentClient.Department {
	return &departmentClient.Department{ID: 10, Name: "Apartamento Centro"}
}

// --- тесты ---

func TestExecute_FullCatalogWhenNoReservations(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: testDepartment()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, resp.AvailableSlots, len(domain.SlotCatalog))
	assert.Empty(t, resp.BookedSlots)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	repo := &mockReservationRepo{
		reservations: []*domain.Reservation{
			{UserID: 2, ReservationTime: "10:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, resp.AvailableSlots, len(domain.SlotCatalog)-1)
	assert.Equal(t, []types.TimeString{"10:00"}, resp.BookedSlots)
	assert.NotContains(t, resp.AvailableSlots, types.TimeString("10:00"))
}

func TestExecute_InactiveReservationsDoNotBlockSlots(t *testing.T) {
	repo := &mockReservationRepo{
		reservations: []*domain.Reservation{
			{UserID: 2, ReservationTime: "10:00", Status: domain.StatusCancelled},
			{UserID: 3, ReservationTime: "11:00", Status: domain.StatusRejected},
		},
	}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, resp.AvailableSlots, len(domain.SlotCatalog))
}

func TestExecute_SlotsOrderedByCatalog(t *testing.T) {
	repo := &mockReservationRepo{
		reservations: []*domain.Reservation{
			{UserID: 2, ReservationTime: "15:00", Status: domain.StatusPending},
			{UserID: 3, ReservationTime: "09:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, &mockDepartmentClient{department: testDepartment()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "15:00"}, resp.BookedSlots)
	assert.Equal(t, types.TimeString("10:00"), resp.AvailableSlots[0])
}

func TestExecute_DepartmentNotFound(t *testing.T) {
	client := &mockDepartmentClient{err: departmentClient.ErrDepartmentNotFound}
	uc := newTestUseCase(&mockReservationRepo{}, client)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestExecute_DegradedDepartmentServiceStillReturnsSlots(t *testing.T) {
	client := &mockDepartmentClient{err: departmentClient.ErrServiceDegraded}
	uc := newTestUseCase(&mockReservationRepo{}, client)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, resp.AvailableSlots, len(domain.SlotCatalog))
}

func TestExecute_RejectsSameDayAndPastDates(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockDepartmentClient{department: testDepartment()})

	for _, date := range []time.Time{testNow, testNow.AddDate(0, 0, -1)} {
		req := validRequest()
		req.Date = date

		_, err := uc.Execute(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidDate)
	}
}
