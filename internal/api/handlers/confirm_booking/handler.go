package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
	"github.com/easeteam/Ease-BookingService/internal/api/middleware"
	confirmUC "github.com/easeteam/Ease-BookingService/internal/usecase/confirm_booking"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgEmptyCart    = "корзина пуста"
	msgUserNotFound = "пользователь не найден"
)

// BookedItemResponse HTTP model сохраненной позиции
type BookedItemResponse struct {
	ReservationID int64  `json:"reservation_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	MenuName      string `json:"menu_name"`
	Price         int    `json:"price"`
}

// ConflictItemResponse HTTP model отклоненной позиции
type ConflictItemResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	MenuName string `json:"menu_name"`
}

// ConfirmResponse HTTP response model
// Частичный успех - нормальный исход: занятые слоты отклоняются,
// остальные позиции сохраняются
type ConfirmResponse struct {
	Booked    []BookedItemResponse   `json:"booked"`
	Conflicts []ConflictItemResponse `json:"conflicts"`
	Total     int                    `json:"total"`
}

type Handler struct {
	usecase ConfirmUsecase
	logger  Logger
}

func NewHandler(usecase ConfirmUsecase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &confirmUC.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, confirmUC.ErrEmptyCart):
			h.logger.Warn("POST /bookings/confirm - Empty cart for user=%d", userID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, confirmUC.ErrUserNotFound):
			h.logger.Warn("POST /bookings/confirm - User %d not found", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm cart for user=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	out := ConfirmResponse{
		Booked:    make([]BookedItemResponse, 0, len(resp.Booked)),
		Conflicts: make([]ConflictItemResponse, 0, len(resp.Conflicts)),
		Total:     resp.Total,
	}
	for _, item := range resp.Booked {
		out.Booked = append(out.Booked, BookedItemResponse{
			ReservationID: item.ReservationID,
			Date:          item.Date,
			Time:          item.Time.String(),
			MenuName:      item.MenuName,
			Price:         item.Price,
		})
	}
	for _, item := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, ConflictItemResponse{
			Date:     item.Date,
			Time:     item.Time.String(),
			MenuName: item.MenuName,
		})
	}

	h.logger.Info("POST /bookings/confirm - user=%d: booked=%d, conflicts=%d",
		userID, len(out.Booked), len(out.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, out)
}
