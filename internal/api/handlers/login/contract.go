package login

import "context"

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
