package get_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
	"github.com/easeteam/Ease-BookingService/internal/api/middleware"
	"github.com/easeteam/Ease-BookingService/internal/domain"
	scheduleUC "github.com/easeteam/Ease-BookingService/internal/usecase/get_schedule"
)

const (
	msgInvalidDate    = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgDateOutOfRange = "дата вне допустимого окна просмотра"
	msgUnauthorized   = "требуется авторизация"
)

// maxDateOffsetDays допустимое отклонение запрошенной даты от текущего дня
const maxDateOffsetDays = 90

type Handler struct {
	usecase      ScheduleUsecase
	timeProvider TimeProvider
	days         int // размер окна расписания из конфигурации
	logger       Logger
}

func NewHandler(usecase ScheduleUsecase, timeProvider TimeProvider, days int, logger Logger) *Handler {
	return &Handler{
		usecase:      usecase,
		timeProvider: timeProvider,
		days:         days,
		logger:       logger,
	}
}

// Handle GET /api/v1/schedule?date=YYYY-MM-DD
// Без параметра date окно начинается с текущего дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	now := h.timeProvider.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		if parsed.Before(startDate.AddDate(0, 0, -maxDateOffsetDays)) ||
			parsed.After(startDate.AddDate(0, 0, maxDateOffsetDays)) {
			h.logger.Warn("GET /schedule - Date %q is out of the browsing window", raw)
			handlers.RespondBadRequest(w, msgDateOutOfRange)
			return
		}
		startDate = parsed
	}

	resp, err := h.usecase.Execute(r.Context(), &scheduleUC.Request{
		UserID:    userID,
		StartDate: startDate,
		Days:      h.days,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleUC.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule - Failed to compose schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUsecase(resp))
}
