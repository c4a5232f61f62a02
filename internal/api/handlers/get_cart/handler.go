package get_cart

import (
	"net/http"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
	"github.com/easeteam/Ease-BookingService/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

// CartItemResponse HTTP model позиции корзины
type CartItemResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	MenuKey         string `json:"menu_key"`
	MenuName        string `json:"menu_name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

// CartResponse HTTP response model
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int                `json:"total"`
}

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	cart, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /cart - Failed to list cart for user=%d: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := CartResponse{
		Items: make([]CartItemResponse, 0, len(cart.Items)),
		Total: cart.Total,
	}
	for _, item := range cart.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:              item.ID,
			Date:            item.Date,
			Time:            item.Time.String(),
			MenuKey:         item.MenuKey,
			MenuName:        item.MenuName,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
