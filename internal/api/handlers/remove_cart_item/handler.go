package remove_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
	"github.com/easeteam/Ease-BookingService/internal/api/middleware"
	cartService "github.com/easeteam/Ease-BookingService/internal/service/cart"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgItemNotFound = "позиция корзины не найдена"
	msgInvalidInput = "некорректный идентификатор позиции"
)

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

// Handle DELETE /api/v1/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	itemID := mux.Vars(r)["itemId"]

	if err := h.service.Remove(r.Context(), userID, itemID); err != nil {
		switch {
		case errors.Is(err, cartService.ErrItemNotFound):
			h.logger.Warn("DELETE /cart/items - Item id=%s not found for user=%d", itemID, userID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, cartService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /cart/items - Failed to remove item id=%s: %v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cart/items - Item removed: user=%d, id=%s", userID, itemID)
	w.WriteHeader(http.StatusNoContent)
}
