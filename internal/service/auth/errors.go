package auth

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth.service: invalid input data")

	// ErrUsernameTaken возвращается при регистрации занятого имени
	ErrUsernameTaken = errors.New("auth.service: username already taken")

	// ErrInvalidCredentials возвращается при неверном имени или пароле
	ErrInvalidCredentials = errors.New("auth.service: invalid credentials")

	// ErrInvalidToken возвращается при некорректном или истекшем токене
	ErrInvalidToken = errors.New("auth.service: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)
