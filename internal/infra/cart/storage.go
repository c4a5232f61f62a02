package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/easeteam/Ease-BookingService/internal/domain"
)

// DefaultTTL время жизни корзины с момента последнего изменения
// Корзина сессионная: не подтвержденный вовремя выбор просто исчезает
const DefaultTTL = 24 * time.Hour

// Storage хранилище корзин в redis
// Ключ cart:{userID} хранит JSON-список позиций в порядке добавления.
// Корзина приватна для пользователя, поэтому блокировки не нужны:
// конкурирующих записей в один ключ в рамках одной сессии не бывает
type Storage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStorage создает хранилище корзин
// Если ttl <= 0, используется DefaultTTL
func NewStorage(client *redis.Client, ttl time.Duration) *Storage {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Storage{client: client, ttl: ttl}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

// List возвращает позиции корзины в порядке добавления
// Отсутствующий ключ означает пустую корзину
func (s *Storage) List(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrStorage, err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Поврежденное значение трактуем как пустую корзину: лучше потерять
		// черновик выбора, чем заблокировать пользователю весь сценарий
		return []domain.CartItem{}, nil
	}

	return items, nil
}

// Add добавляет позицию в конец корзины и продлевает TTL
func (s *Storage) Add(ctx context.Context, userID int64, item domain.CartItem) error {
	items, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	items = append(items, item)
	return s.save(ctx, userID, items)
}

// Remove удаляет позицию по синтетическому id
func (s *Storage) Remove(ctx context.Context, userID int64, itemID string) error {
	items, err := s.List(ctx, userID)
	if err != nil {
		return err
	}

	filtered := make([]domain.CartItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			continue
		}
		filtered = append(filtered, item)
	}

	if !found {
		return ErrItemNotFound
	}

	if len(filtered) == 0 {
		return s.Clear(ctx, userID)
	}
	return s.save(ctx, userID, filtered)
}

// Clear удаляет корзину целиком
// Вызывается после каждой попытки коммита независимо от исхода по позициям
func (s *Storage) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: Clear: %v", ErrStorage, err)
	}
	return nil
}

func (s *Storage) save(ctx context.Context, userID int64, items []domain.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, cartKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: save: %v", ErrStorage, err)
	}
	return nil
}
