package confirm_booking

import "github.com/easeteam/Ease-BookingService/pkg/types"

// Request модель запроса подтверждения корзины
type Request struct {
	UserID int64
}

// BookedItem успешно сохраненная позиция
type BookedItem struct {
	ReservationID int64
	Date          string // YYYY-MM-DD
	Time          types.TimeString
	MenuName      string
	Price         int
}

// ConflictItem позиция, отклоненная из-за пересечения с существующим бронированием
type ConflictItem struct {
	Date     string // YYYY-MM-DD
	Time     types.TimeString
	MenuName string
}

// Response итог коммита корзины
// Частичный успех ожидаем: конфликтные позиции отклоняются по одной,
// остальные сохраняются
type Response struct {
	Booked    []BookedItem
	Conflicts []ConflictItem
	Total     int // суммарная цена только сохраненных позиций
}
