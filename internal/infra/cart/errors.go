package cart

import "errors"

var (
	// ErrItemNotFound возвращается при удалении отсутствующей позиции
	ErrItemNotFound = errors.New("cart.storage: item not found")

	// ErrStorage возвращается при ошибке обращения к redis
	ErrStorage = errors.New("cart.storage: storage error")

	// ErrEncode возвращается при ошибке сериализации корзины
	ErrEncode = errors.New("cart.storage: failed to encode cart")
)
