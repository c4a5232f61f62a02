package admin_list_reservations

import (
	"context"

	"github.com/easeteam/Ease-BookingService/internal/domain"
)

// ReservationsService интерфейс админского сервиса бронирований
type ReservationsService interface {
	ListAll(ctx context.Context) ([]*domain.ReservationWithUser, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
