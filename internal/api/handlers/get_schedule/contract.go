package get_schedule

import (
	"context"
	"time"

	scheduleUC "github.com/easeteam/Ease-BookingService/internal/usecase/get_schedule"
)

// ScheduleUsecase интерфейс usecase сборки расписания
type ScheduleUsecase interface {
	Execute(ctx context.Context, req *scheduleUC.Request) (*scheduleUC.Response, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
