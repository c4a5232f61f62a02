package get_menu

import (
	"net/http"

	"github.com/easeteam/Ease-BookingService/internal/api/handlers"
)

// MenuItemResponse HTTP model одной услуги
type MenuItemResponse struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

// MenuResponse HTTP response model
type MenuResponse struct {
	Items []MenuItemResponse `json:"items"`
}

type Handler struct {
	menu   MenuProvider
	logger Logger
}

func NewHandler(menu MenuProvider, logger Logger) *Handler {
	return &Handler{
		menu:   menu,
		logger: logger,
	}
}

// Handle GET /api/v1/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items := h.menu.List()

	resp := MenuResponse{Items: make([]MenuItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, MenuItemResponse{
			Key:             item.Key,
			Name:            item.Name,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
