package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	"github.com/easeteam/Ease-BookingService/pkg/types"
)

func newTestStorage(t *testing.T) (*Storage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStorage(client, time.Hour), mr
}

func item(id, slot string) domain.CartItem {
	return domain.CartItem{
		ID:              id,
		Date:            "2025-06-16",
		Time:            types.TimeString(slot),
		MenuKey:         "cut",
		MenuName:        "Стрижка",
		Price:           5000,
		DurationMinutes: 90,
	}
}

func TestStorage_ListEmpty(t *testing.T) {
	storage, _ := newTestStorage(t)

	items, err := storage.List(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorage_AddPreservesOrder(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, 1, item("a", "10:00")))
	require.NoError(t, storage.Add(ctx, 1, item("b", "12:00")))
	require.NoError(t, storage.Add(ctx, 1, item("c", "14:00")))

	items, err := storage.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
	assert.Equal(t, "c", items[2].ID)
}

func TestStorage_CartsAreIsolatedByUser(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, 1, item("a", "10:00")))
	require.NoError(t, storage.Add(ctx, 2, item("b", "12:00")))

	first, err := storage.List(ctx, 1)
	require.NoError(t, err)
	second, err := storage.List(ctx, 2)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", second[0].ID)
}

func TestStorage_Remove(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, 1, item("a", "10:00")))
	require.NoError(t, storage.Add(ctx, 1, item("b", "12:00")))

	require.NoError(t, storage.Remove(ctx, 1, "a"))

	items, err := storage.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestStorage_RemoveMissingItem(t *testing.T) {
	storage, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, 1, item("a", "10:00")))

	err := storage.Remove(ctx, 1, "nonexistent")

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestStorage_RemoveLastItemDeletesKey(t *testing.T) {
	storage, mr := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, 1, item("a", "10:00")))
	require.NoError(t, storage.Remove(ctx, 1, "a"))

	assert.False(t, mr.Exists("cart:1"))
}

func TestStorage_Clear(t *testing.T) {
	storage, mr := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Add(ctx, 1, item("a", "10:00")))
	require.NoError(t, storage.Clear(ctx, 1))

	assert.False(t, mr.Exists("cart:1"))

	items, err := storage.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorage_CorruptValueIsEmptyCart(t *testing.T) {
	storage, mr := newTestStorage(t)

	mr.Set("cart:1", "not-json")

	items, err := storage.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorage_TTLIsSet(t *testing.T) {
	storage, mr := newTestStorage(t)

	require.NoError(t, storage.Add(context.Background(), 1, item("a", "10:00")))

	ttl := mr.TTL("cart:1")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}
