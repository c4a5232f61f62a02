package get_schedule

import (
	"context"
	"time"

	"github.com/easeteam/Ease-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListInRange(ctx context.Context, windowStart, windowEnd time.Time) ([]*domain.Reservation, error)
}

// CartStorage интерфейс хранилища корзин
type CartStorage interface {
	List(ctx context.Context, userID int64) ([]domain.CartItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
