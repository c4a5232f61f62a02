package add_cart_item

import (
	"context"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	"github.com/easeteam/Ease-BookingService/internal/service/cart/models"
)

// CartService интерфейс сервиса корзины
type CartService interface {
	Add(ctx context.Context, req *models.AddItemRequest) (*domain.CartItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
