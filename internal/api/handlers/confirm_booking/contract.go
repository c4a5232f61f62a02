package confirm_booking

import (
	"context"

	confirmUC "github.com/easeteam/Ease-BookingService/internal/usecase/confirm_booking"
)

// ConfirmUsecase интерфейс usecase подтверждения корзины
type ConfirmUsecase interface {
	Execute(ctx context.Context, req *confirmUC.Request) (*confirmUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
