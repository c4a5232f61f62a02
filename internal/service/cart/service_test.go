package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	cartStorage "github.com/easeteam/Ease-BookingService/internal/infra/cart"
	"github.com/easeteam/Ease-BookingService/internal/service/cart/models"
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

type memStorage struct {
	items map[int64][]domain.CartItem
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[int64][]domain.CartItem)}
}

func (m *memStorage) Add(ctx context.Context, userID int64, item domain.CartItem) error {
	m.items[userID] = append(m.items[userID], item)
	return nil
}

func (m *memStorage) Remove(ctx context.Context, userID int64, itemID string) error {
	filtered := make([]domain.CartItem, 0)
	found := false
	for _, item := range m.items[userID] {
		if item.ID == itemID {
			found = true
			continue
		}
		filtered = append(filtered, item)
	}
	if !found {
		return cartStorage.ErrItemNotFound
	}
	m.items[userID] = filtered
	return nil
}

func (m *memStorage) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return m.items[userID], nil
}

func newTestService(t *testing.T) (*Service, *memStorage) {
	t.Helper()

	grid, err := domain.NewTimeGrid(9, 19, 30)
	require.NoError(t, err)

	menu, err := domain.NewMenu([]domain.MenuItem{
		{Key: "cut", Name: "Стрижка", Price: 5000, DurationMinutes: 90},
		{Key: "color", Name: "Окрашивание", Price: 8000, DurationMinutes: 150},
	}, grid)
	require.NoError(t, err)

	storage := newMemStorage()
	svc := NewService(storage, menu, grid, noopLogger{})
	// Фиксируем часы: "сейчас" утро 16 июня
	svc.timeProvider = fixedClock{now: time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)}

	return svc, storage
}

func TestAdd_Valid(t *testing.T) {
	svc, storage := newTestService(t)

	item, err := svc.Add(context.Background(), &models.AddItemRequest{
		UserID:  1,
		Date:    "2025-06-16",
		Time:    "10:00",
		MenuKey: "cut",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Стрижка", item.MenuName)
	assert.Equal(t, 5000, item.Price)
	assert.Equal(t, 90, item.DurationMinutes)
	assert.Len(t, storage.items[1], 1)
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.AddItemRequest
		wantErr error
	}{
		{
			name:    "unknown menu key",
			req:     models.AddItemRequest{UserID: 1, Date: "2025-06-16", Time: "10:00", MenuKey: "massage"},
			wantErr: ErrUnknownMenu,
		},
		{
			name:    "off-grid time",
			req:     models.AddItemRequest{UserID: 1, Date: "2025-06-16", Time: "10:15", MenuKey: "cut"},
			wantErr: ErrOffGrid,
		},
		{
			name:    "before opening",
			req:     models.AddItemRequest{UserID: 1, Date: "2025-06-16", Time: "08:00", MenuKey: "cut"},
			wantErr: ErrOffGrid,
		},
		{
			name:    "past slot",
			req:     models.AddItemRequest{UserID: 1, Date: "2025-06-15", Time: "10:00", MenuKey: "cut"},
			wantErr: ErrPastSlot,
		},
		{
			name:    "does not fit before closing",
			req:     models.AddItemRequest{UserID: 1, Date: "2025-06-16", Time: "17:00", MenuKey: "color"},
			wantErr: ErrPastClosing,
		},
		{
			name:    "invalid date",
			req:     models.AddItemRequest{UserID: 1, Date: "16.06.2025", Time: "10:00", MenuKey: "cut"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid time",
			req:     models.AddItemRequest{UserID: 1, Date: "2025-06-16", Time: "ten", MenuKey: "cut"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive user",
			req:     models.AddItemRequest{UserID: 0, Date: "2025-06-16", Time: "10:00", MenuKey: "cut"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			_, err := svc.Add(context.Background(), &tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdd_LastFittingSlot(t *testing.T) {
	svc, _ := newTestService(t)

	// 150 минут с 16:30 заканчиваются ровно в закрытие
	_, err := svc.Add(context.Background(), &models.AddItemRequest{
		UserID:  1,
		Date:    "2025-06-16",
		Time:    "16:30",
		MenuKey: "color",
	})

	assert.NoError(t, err)
}

func TestRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, &models.AddItemRequest{
		UserID: 1, Date: "2025-06-16", Time: "10:00", MenuKey: "cut",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, 1, item.ID))

	resp, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestRemove_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Remove(context.Background(), 1, "missing")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestList_Total(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, &models.AddItemRequest{UserID: 1, Date: "2025-06-16", Time: "10:00", MenuKey: "cut"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &models.AddItemRequest{UserID: 1, Date: "2025-06-17", Time: "12:00", MenuKey: "color"})
	require.NoError(t, err)

	resp, err := svc.List(ctx, 1)
	require.NoError(t, err)

	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 13000, resp.Total)
}
