package register

import (
	"context"

	"github.com/easeteam/Ease-BookingService/internal/domain"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
