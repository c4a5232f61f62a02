package cart

import (
	"context"
	"time"

	"github.com/easeteam/Ease-BookingService/internal/domain"
)

// CartStorage интерфейс хранилища корзин
type CartStorage interface {
	Add(ctx context.Context, userID int64, item domain.CartItem) error
	Remove(ctx context.Context, userID int64, itemID string) error
	List(ctx context.Context, userID int64) ([]domain.CartItem, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
