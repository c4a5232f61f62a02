package models

import "github.com/easeteam/Ease-BookingService/internal/domain"

// AddItemRequest запрос на добавление позиции в корзину
type AddItemRequest struct {
	UserID  int64
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	MenuKey string
}

// CartResponse корзина пользователя с суммой
type CartResponse struct {
	Items []domain.CartItem
	Total int
}

// FromItems собирает ответ из позиций корзины
func FromItems(items []domain.CartItem) *CartResponse {
	return &CartResponse{
		Items: items,
		Total: domain.CartTotal(items),
	}
}
