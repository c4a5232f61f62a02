package get_schedule

import (
	"github.com/easeteam/Ease-BookingService/internal/domain"
	scheduleUC "github.com/easeteam/Ease-BookingService/internal/usecase/get_schedule"
)

// CellResponse HTTP model ячейки расписания
type CellResponse struct {
	Status   string `json:"status"`
	MenuName string `json:"menu_name,omitempty"`
	Span     int    `json:"span,omitempty"`
}

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

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Dates    []string                           `json:"dates"`
	Slots    []string                           `json:"slots"`
	Schedule map[string]map[string]CellResponse `json:"schedule"`
	Cart     []CartItemResponse                 `json:"cart"`
	Total    int                                `json:"total"`
}

// fromUsecase конвертирует ответ usecase в HTTP model
func fromUsecase(resp *scheduleUC.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Dates:    resp.Dates,
		Slots:    make([]string, 0, len(resp.Slots)),
		Schedule: make(map[string]map[string]CellResponse, len(resp.Schedule)),
		Cart:     make([]CartItemResponse, 0, len(resp.Cart)),
		Total:    resp.Total,
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, slot.String())
	}

	for date, day := range resp.Schedule {
		cells := make(map[string]CellResponse, len(day))
		for slot, cell := range day {
			cells[slot.String()] = CellResponse{
				Status:   string(cell.Status),
				MenuName: cell.MenuName,
				Span:     cell.Span,
			}
		}
		out.Schedule[date] = cells
	}

	for _, item := range resp.Cart {
		out.Cart = append(out.Cart, fromCartItem(item))
	}

	return out
}

func fromCartItem(item domain.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:              item.ID,
		Date:            item.Date,
		Time:            item.Time.String(),
		MenuKey:         item.MenuKey,
		MenuName:        item.MenuName,
		Price:           item.Price,
		DurationMinutes: item.DurationMinutes,
	}
}
