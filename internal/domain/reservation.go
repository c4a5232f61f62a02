package domain

import "time"

// Reservation подтвержденное бронирование
// Создается только коммитом корзины, удаляется только администратором,
// никогда не изменяется на месте
type Reservation struct {
	ID       int64
	UserID   int64
	MenuName string
	StartAt  time.Time
	EndAt    time.Time // StartAt + длительность услуги
	Price    int

	CreatedAt time.Time
}

// Overlaps проверяет пересечение с полуинтервалом [start, end)
// Бронирования встык (одно заканчивается ровно когда начинается другое)
// пересечением не считаются
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartAt.Before(end) && r.EndAt.After(start)
}

// DurationMinutes возвращает длительность бронирования в минутах
func (r *Reservation) DurationMinutes() int {
	return int(r.EndAt.Sub(r.StartAt).Minutes())
}

// ReservationWithUser бронирование с данными клиента для админского списка
type ReservationWithUser struct {
	Reservation
	Username string
	Email    string
}
