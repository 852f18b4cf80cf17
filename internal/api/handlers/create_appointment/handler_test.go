package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barbershop-BookingService/internal/api/middleware"
	"github.com/m04kA/Barbershop-BookingService/internal/domain"
	createAppointment "github.com/m04kA/Barbershop-BookingService/internal/usecase/create_appointment"
)

type stubUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"serviceId": 5, "date": "2025-06-02", "startTime": "10:00"}`

func doRequest(t *testing.T, uc *stubUseCase, body string, clientID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if clientID != "" {
		req.Header.Set(middleware.HeaderClientID, clientID)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	uc := &stubUseCase{resp: &createAppointment.Response{
		ID:              101,
		ClientID:        42,
		ServiceID:       5,
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "10:45",
		DurationMinutes: 45,
		ServiceName:     "Мужская стрижка",
		ServicePrice:    1500,
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody, "42")

	require.Equal(t, http.StatusCreated, rec.Code)

	// ClientID берется из заголовка, а не из тела
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.ClientID)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Equal(t, "10:45", resp.EndTime)
}

func TestHandler_Handle_MissingAuthHeader(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, validBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown field", body: `{"serviceId": 5, "oops": true}`},
		{name: "bad date format", body: `{"serviceId": 5, "date": "02.06.2025", "startTime": "10:00"}`},
		{name: "bad time format", body: `{"serviceId": 5, "date": "2025-06-02", "startTime": "10-00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{}, tt.body, "42")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid input", err: createAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "past date", err: createAppointment.ErrPastDate, wantStatus: http.StatusBadRequest},
		{name: "service not found", err: createAppointment.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "salon closed", err: createAppointment.ErrSalonClosed, wantStatus: http.StatusBadRequest},
		{
			name:       "outside working hours",
			err:        &createAppointment.OutsideHoursError{Opens: "08:00", Closes: "18:00"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "time conflict",
			err:        &createAppointment.ConflictError{Busy: domain.Interval{Start: 960, End: 1005}},
			wantStatus: http.StatusConflict,
		},
		{name: "internal error", err: createAppointment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, validBody, "42")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_ErrorPayloadCarriesDetails(t *testing.T) {
	t.Run("outside hours message names working hours", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{err: &createAppointment.OutsideHoursError{
			Opens: "08:00", Closes: "18:00",
		}}, validBody, "42")

		assert.Contains(t, rec.Body.String(), "08:00")
		assert.Contains(t, rec.Body.String(), "18:00")
	})

	t.Run("conflict message names the busy interval", func(t *testing.T) {
		rec := doRequest(t, &stubUseCase{err: &createAppointment.ConflictError{
			Busy: domain.Interval{Start: 960, End: 1005}, // 16:00-16:45
		}}, validBody, "42")

		assert.Contains(t, rec.Body.String(), "16:00-16:45")
	})
}
