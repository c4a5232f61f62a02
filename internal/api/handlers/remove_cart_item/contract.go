package remove_cart_item

import "context"

// CartService интерфейс сервиса корзины
type CartService interface {
	Remove(ctx context.Context, userID int64, itemID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
