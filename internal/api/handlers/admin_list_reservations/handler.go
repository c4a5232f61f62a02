package admin_list_reservations

import (
	"net/http"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
	"github.com/easeteam/Ease-BookingService/internal/domain"
)

// ReservationResponse HTTP model бронирования для администратора
type ReservationResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	MenuName string `json:"menu_name"`
	Date     string `json:"date"`
	StartAt  string `json:"start_at"`
	EndAt    string `json:"end_at"`
	Price    int    `json:"price"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ListResponse{Reservations: make([]ReservationResponse, 0, len(reservations))}
	for _, res := range reservations {
		resp.Reservations = append(resp.Reservations, ReservationResponse{
			ID:       res.ID,
			UserID:   res.UserID,
			Username: res.Username,
			Email:    res.Email,
			MenuName: res.MenuName,
			Date:     res.StartAt.Format(domain.DateFormat),
			StartAt:  res.StartAt.Format(domain.TimeFormat),
			EndAt:    res.EndAt.Format(domain.TimeFormat),
			Price:    res.Price,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
