package domain

import (
	"time"

	"github.com/easeteam/Ease-BookingService/pkg/types"
)

// CartItem выбранная, но еще не подтвержденная позиция корзины
// Живет только в сессии пользователя, между сессиями не сохраняется
type CartItem struct {
	ID              string           `json:"id"` // синтетический id для удаления
	Date            string           `json:"date"` // YYYY-MM-DD
	Time            types.TimeString `json:"time"` // HH:MM, начало слота
	MenuKey         string           `json:"menuKey"`
	MenuName        string           `json:"menuName"`
	Price           int              `json:"price"`
	DurationMinutes int              `json:"durationMinutes"`
}

// StartAt возвращает полный момент начала (дата + время слота)
func (i *CartItem) StartAt() (time.Time, error) {
	date, err := time.Parse(DateFormat, i.Date)
	if err != nil {
		return time.Time{}, err
	}
	return i.Time.OnDate(date)
}

// Interval возвращает полуинтервал [start, end) позиции корзины
func (i *CartItem) Interval() (start, end time.Time, err error) {
	start, err = i.StartAt()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(time.Duration(i.DurationMinutes) * time.Minute), nil
}

// CartTotal возвращает суммарную цену позиций корзины
func CartTotal(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price
	}
	return total
}
