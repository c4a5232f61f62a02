package get_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeteam/Ease-BookingService/internal/api/middleware"
	"github.com/easeteam/Ease-BookingService/internal/domain"
	scheduleUC "github.com/easeteam/Ease-BookingService/internal/usecase/get_schedule"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeUsecase struct {
	gotReq *scheduleUC.Request
}

func (f *fakeUsecase) Execute(ctx context.Context, req *scheduleUC.Request) (*scheduleUC.Response, error) {
	f.gotReq = req
	return &scheduleUC.Response{
		Dates:    []string{req.StartDate.Format(domain.DateFormat)},
		Schedule: domain.Schedule{},
	}, nil
}

func doRequest(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	return rec
}

func newTestHandler(uc *fakeUsecase) *Handler {
	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	return NewHandler(uc, fixedClock{now: now}, 7, noopLogger{})
}

func TestHandle_DefaultsToToday(t *testing.T) {
	uc := &fakeUsecase{}
	rec := doRequest(t, newTestHandler(uc), "/api/v1/schedule")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), uc.gotReq.StartDate)
	assert.Equal(t, 7, uc.gotReq.Days)
}

func TestHandle_ExplicitDate(t *testing.T) {
	uc := &fakeUsecase{}
	rec := doRequest(t, newTestHandler(uc), "/api/v1/schedule?date=2025-07-01")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2025-07-01", uc.gotReq.StartDate.Format("2006-01-02"))
}

func TestHandle_DateValidation(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "malformed", date: "01.07.2025"},
		{name: "garbage", date: "tomorrow"},
		{name: "too far ahead", date: "2025-12-31"},
		{name: "too far behind", date: "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{}
			rec := doRequest(t, newTestHandler(uc), "/api/v1/schedule?date="+tt.date)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq, "usecase must not be called")
		})
	}
}

func TestHandle_BoundaryDatesAccepted(t *testing.T) {
	// Ровно ±90 дней от 2025-06-16 еще допустимы
	for _, date := range []string{"2025-09-14", "2025-03-18"} {
		uc := &fakeUsecase{}
		rec := doRequest(t, newTestHandler(uc), "/api/v1/schedule?date="+date)

		assert.Equal(t, http.StatusOK, rec.Code, "date %s", date)
		assert.NotNil(t, uc.gotReq)
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	uc := &fakeUsecase{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil)
	rec := httptest.NewRecorder()

	newTestHandler(uc).Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}
