package domain

import "github.com/easeteam/Ease-BookingService/pkg/types"

// CellStatus статус ячейки календарной сетки
type CellStatus string

const (
	// CellAvailable слот свободен и доступен для выбора
	CellAvailable CellStatus = "available"

	// CellBookedDB слот занят подтвержденным бронированием (голова блока)
	CellBookedDB CellStatus = "booked_db"

	// CellBookedCart слот занят позицией корзины текущего пользователя (голова блока)
	CellBookedCart CellStatus = "booked_cart"

	// CellBookedSpan продолжение многослотового блока; отдельно не бронируется
	CellBookedSpan CellStatus = "booked_span"
)

// ScheduleCell производная ячейка расписания
// Не хранится: пересчитывается на каждый показ из бронирований и корзины
type ScheduleCell struct {
	Status   CellStatus
	MenuName string // название услуги, занявшей ячейку (для головы блока)
	Span     int    // количество слотов блока; для головы равно duration/granularity
}

// DaySchedule ячейки одного дня по слотам сетки
type DaySchedule map[types.TimeString]ScheduleCell

// Schedule расписание окна дат: дата (YYYY-MM-DD) -> слот -> ячейка
type Schedule map[string]DaySchedule
