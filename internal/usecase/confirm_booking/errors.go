package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrEmptyCart возвращается при попытке подтвердить пустую корзину
	ErrEmptyCart = errors.New("confirm_booking: cart is empty")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("confirm_booking: user not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	// В том числе при недоступности хранилища: транзакция откатывается целиком,
	// частично примененного состояния не остается
	ErrInternal = errors.New("confirm_booking: internal error")
)
