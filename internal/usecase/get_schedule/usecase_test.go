package get_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeteam/Ease-BookingService/internal/domain"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	gotStart     time.Time
	gotEnd       time.Time
}

func (f *fakeReservationRepo) ListInRange(ctx context.Context, windowStart, windowEnd time.Time) ([]*domain.Reservation, error) {
	f.gotStart = windowStart
	f.gotEnd = windowEnd
	return f.reservations, nil
}

type fakeCartStorage struct {
	items []domain.CartItem
}

func (f *fakeCartStorage) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return f.items, nil
}

func TestExecute_Window(t *testing.T) {
	grid := mustGrid(t)
	repo := &fakeReservationRepo{}
	carts := &fakeCartStorage{items: []domain.CartItem{
		{ID: "a", Date: "2025-06-16", Time: "10:00", MenuName: "Стрижка", Price: 5000, DurationMinutes: 90},
	}}

	uc := NewUseCase(repo, carts, grid, noopLogger{})
	start := time.Date(2025, 6, 16, 14, 45, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, StartDate: start, Days: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-06-16", "2025-06-17", "2025-06-18"}, resp.Dates)
	assert.Len(t, resp.Slots, 20)
	assert.Len(t, resp.Schedule, 3)
	assert.Equal(t, 5000, resp.Total)

	// Границы выборки нормализованы к началу суток
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), repo.gotStart)
	assert.Equal(t, time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC), repo.gotEnd)
}

func TestExecute_DefaultDays(t *testing.T) {
	grid := mustGrid(t)
	uc := NewUseCase(&fakeReservationRepo{}, &fakeCartStorage{}, grid, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		StartDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Dates, domain.DefaultScheduleDays)
}

func TestExecute_Validation(t *testing.T) {
	grid := mustGrid(t)
	uc := NewUseCase(&fakeReservationRepo{}, &fakeCartStorage{}, grid, noopLogger{})
	validStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  Request
	}{
		{name: "non-positive user", req: Request{UserID: 0, StartDate: validStart}},
		{name: "zero start date", req: Request{UserID: 1}},
		{name: "negative days", req: Request{UserID: 1, StartDate: validStart, Days: -1}},
		{name: "too many days", req: Request{UserID: 1, StartDate: validStart, Days: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
