package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/Barbershop-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/Barbershop-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/Barbershop-BookingService/pkg/ptr"
	"github.com/m04kA/Barbershop-BookingService/pkg/types"
)

// Моки зависимостей use case

type stubAppointmentRepo struct {
	existing  []*domain.Appointment
	created   *domain.Appointment
	createErr error
	getErr    error
}

func (s *stubAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = appointment
	out := *appointment
	out.ID = 101
	out.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &out, nil
}

func (s *stubAppointmentRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.existing, nil
}

type stubScheduleRepo struct {
	day *domain.ScheduleDay
	err error
}

func (s *stubScheduleRepo) GetByWeekday(_ context.Context, _ time.Weekday) (*domain.ScheduleDay, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.day, nil
}

type stubCatalog struct {
	service *catalogservice.Service
	err     error
}

func (s *stubCatalog) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.service, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Тестовый сценарий: салон работает в понедельник 08:00-18:00,
// стрижка длится 45 минут, "сегодня" - воскресенье 2025-06-01

var (
	testToday  = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) // воскресенье
	testMonday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
)

func testMondaySchedule() *domain.ScheduleDay {
	return &domain.ScheduleDay{
		ID:       1,
		Weekday:  time.Monday,
		OpensAt:  "08:00",
		ClosesAt: "18:00",
		Active:   true,
	}
}

func testHaircut() *catalogservice.Service {
	return &catalogservice.Service{
		ID:              5,
		Name:            "Мужская стрижка",
		DurationMinutes: 45,
		Price:           1500,
	}
}

func newTestUseCase(
	appointmentRepo *stubAppointmentRepo,
	schedule *stubScheduleRepo,
	catalog *stubCatalog,
) *UseCase {
	uc := NewUseCase(appointmentRepo, schedule, catalog, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testToday}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:  42,
		ServiceID: 5,
		Date:      testMonday,
		StartTime: "10:00",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &stubAppointmentRepo{}
	uc := newTestUseCase(repo, &stubScheduleRepo{day: testMondaySchedule()}, &stubCatalog{service: testHaircut()})

	req := validRequest()
	req.Notes = ptr.Ptr("покороче на висках")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, int64(42), resp.ClientID)
	assert.Equal(t, int64(5), resp.ServiceID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:45"), resp.EndTime)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Мужская стрижка", resp.ServiceName)
	assert.Equal(t, float64(1500), resp.ServicePrice)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "покороче на висках", *resp.Notes)

	// Данные услуги денормализуются в запись на момент создания
	require.NotNil(t, repo.created)
	assert.Equal(t, "Мужская стрижка", repo.created.ServiceName)
	assert.Equal(t, 45, repo.created.DurationMinutes)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{day: testMondaySchedule()}, &stubCatalog{service: testHaircut()})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero client id", mutate: func(req *Request) { req.ClientID = 0 }},
		{name: "negative service id", mutate: func(req *Request) { req.ServiceID = -1 }},
		{name: "zero date", mutate: func(req *Request) { req.Date = time.Time{} }},
		{name: "empty start time", mutate: func(req *Request) { req.StartTime = "" }},
		{name: "malformed start time", mutate: func(req *Request) { req.StartTime = "25:99" }},
		{name: "notes too long", mutate: func(req *Request) {
			long := make([]byte, domain.MaxNotesLength+1)
			for i := range long {
				long[i] = 'a'
			}
			req.Notes = ptr.Ptr(string(long))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{day: testMondaySchedule()}, &stubCatalog{service: testHaircut()})

	req := validRequest()
	req.Date = testToday.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrPastDate)
}

func TestUseCase_Execute_TodayIsNotPast(t *testing.T) {
	// Запись на сегодня допустима, даже если рабочий день уже начался
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{day: &domain.ScheduleDay{
		Weekday: time.Sunday, OpensAt: "08:00", ClosesAt: "18:00", Active: true,
	}}, &stubCatalog{service: testHaircut()})

	req := validRequest()
	req.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{day: testMondaySchedule()},
		&stubCatalog{err: catalogservice.ErrServiceNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_SalonClosed(t *testing.T) {
	t.Run("no schedule for weekday", func(t *testing.T) {
		uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{err: scheduleRepo.ErrScheduleDayNotFound},
			&stubCatalog{service: testHaircut()})

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSalonClosed)
	})

	t.Run("inactive weekday", func(t *testing.T) {
		day := testMondaySchedule()
		day.Active = false
		uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{day: day}, &stubCatalog{service: testHaircut()})

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSalonClosed)
	})
}

func TestUseCase_Execute_OutsideHours(t *testing.T) {
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{day: testMondaySchedule()}, &stubCatalog{service: testHaircut()})

	tests := []struct {
		name      string
		startTime types.TimeString
	}{
		{name: "before opening", startTime: "07:30"},
		{name: "service runs past closing", startTime: "17:30"},
		{name: "starts at closing", startTime: "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = tt.startTime

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrOutsideHours)

			// Отказ несет границы рабочего дня
			var outsideErr *OutsideHoursError
			require.ErrorAs(t, err, &outsideErr)
			assert.Equal(t, types.TimeString("08:00"), outsideErr.Opens)
			assert.Equal(t, types.TimeString("18:00"), outsideErr.Closes)
		})
	}

	t.Run("ending exactly at closing is allowed", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "17:15" // 17:15 + 45 минут = 18:00

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("starting exactly at opening is allowed", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "08:00"

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	})
}

func TestUseCase_Execute_TimeConflict(t *testing.T) {
	// Существующая запись 16:00-16:45
	existing := []*domain.Appointment{
		{ID: 7, ClientID: 9, StartTime: "16:00", DurationMinutes: 45, ServiceName: "Бритье"},
	}

	tests := []struct {
		name      string
		startTime types.TimeString
		conflict  bool
	}{
		{name: "same start time", startTime: "16:00", conflict: true},
		{name: "overlaps the tail", startTime: "16:30", conflict: true},
		{name: "overlaps the head", startTime: "15:30", conflict: true},
		{name: "ends exactly at existing start", startTime: "15:15", conflict: false},
		{name: "starts exactly at existing end", startTime: "16:45", conflict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&stubAppointmentRepo{existing: existing},
				&stubScheduleRepo{day: testMondaySchedule()}, &stubCatalog{service: testHaircut()})

			req := validRequest()
			req.StartTime = tt.startTime

			_, err := uc.Execute(context.Background(), req)
			if !tt.conflict {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrTimeConflict)

			// Отказ несет занятый интервал
			var conflictErr *ConflictError
			require.ErrorAs(t, err, &conflictErr)
			assert.Equal(t, "16:00-16:45", conflictErr.Busy.String())
		})
	}
}

func TestUseCase_Execute_ValidationOrder(t *testing.T) {
	// Прошедшая дата отсекает проверку услуги: каталог не должен вызываться
	catalogCalled := false
	catalog := &stubCatalog{service: testHaircut()}
	uc := newTestUseCase(&stubAppointmentRepo{}, &stubScheduleRepo{day: testMondaySchedule()}, catalog)
	uc.catalog = catalogSpy{inner: catalog, called: &catalogCalled}

	req := validRequest()
	req.Date = testToday.AddDate(0, 0, -5)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrPastDate)
	assert.False(t, catalogCalled)
}

type catalogSpy struct {
	inner  CatalogClient
	called *bool
}

func (s catalogSpy) GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
	*s.called = true
	return s.inner.GetService(ctx, serviceID)
}
