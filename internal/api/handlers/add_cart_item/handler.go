package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
	"github.com/easeteam/Ease-BookingService/internal/api/middleware"
	cartService "github.com/easeteam/Ease-BookingService/internal/service/cart"
	"github.com/easeteam/Ease-BookingService/internal/service/cart/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgUnknownMenu        = "неизвестная услуга"
	msgOffGrid            = "время не соответствует сетке слотов"
	msgPastSlot           = "нельзя выбрать слот в прошлом"
	msgPastClosing        = "услуга не помещается до закрытия салона"
	msgInvalidInput       = "некорректные параметры позиции"
)

// AddItemRequest HTTP request model
type AddItemRequest struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM
	MenuKey string `json:"menu_key"`
}

// AddItemResponse HTTP response model
type AddItemResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	MenuKey         string `json:"menu_key"`
	MenuName        string `json:"menu_name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
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

// Handle POST /api/v1/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Add(r.Context(), &models.AddItemRequest{
		UserID:  userID,
		Date:    req.Date,
		Time:    req.Time,
		MenuKey: req.MenuKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrUnknownMenu):
			h.logger.Warn("POST /cart/items - Unknown menu key %q, user=%d", req.MenuKey, userID)
			handlers.RespondBadRequest(w, msgUnknownMenu)

		case errors.Is(err, cartService.ErrOffGrid):
			handlers.RespondBadRequest(w, msgOffGrid)

		case errors.Is(err, cartService.ErrPastSlot):
			handlers.RespondConflict(w, msgPastSlot)

		case errors.Is(err, cartService.ErrPastClosing):
			handlers.RespondConflict(w, msgPastClosing)

		case errors.Is(err, cartService.ErrInvalidInput):
			h.logger.Warn("POST /cart/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cart/items - Failed to add item: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cart/items - Item added: user=%d, id=%s", userID, item.ID)
	handlers.RespondJSON(w, http.StatusCreated, AddItemResponse{
		ID:              item.ID,
		Date:            item.Date,
		Time:            item.Time.String(),
		MenuKey:         item.MenuKey,
		MenuName:        item.MenuName,
		Price:           item.Price,
		DurationMinutes: item.DurationMinutes,
	})
}
