package cart

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cart.service: invalid input data")

	// ErrUnknownMenu возвращается при неизвестном ключе услуги
	ErrUnknownMenu = errors.New("cart.service: unknown menu item")

	// ErrOffGrid возвращается, когда время не является началом слота сетки
	ErrOffGrid = errors.New("cart.service: time is not a valid grid slot")

	// ErrPastSlot возвращается при попытке добавить слот в прошлом
	ErrPastSlot = errors.New("cart.service: slot is in the past")

	// ErrPastClosing возвращается, когда услуга не помещается до закрытия
	ErrPastClosing = errors.New("cart.service: service does not fit before closing time")

	// ErrItemNotFound возвращается при удалении отсутствующей позиции
	ErrItemNotFound = errors.New("cart.service: cart item not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart.service: internal error")
)
