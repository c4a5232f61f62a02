package get_cart

import (
	"context"

	"github.com/easeteam/Ease-BookingService/internal/service/cart/models"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	List(ctx context.Context, userID int64) (*models.CartResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
