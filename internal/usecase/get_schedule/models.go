package get_schedule

import (
	"time"

	"github.com/easeteam/Ease-BookingService/internal/domain"
	"github.com/easeteam/Ease-BookingService/pkg/types"
)

// Request модель запроса расписания
type Request struct {
	UserID    int64     // ID пользователя (для наложения его корзины)
	StartDate time.Time // первый день окна
	Days      int       // количество дней окна; 0 означает значение по умолчанию
}

// Response модель ответа с собранным расписанием
type Response struct {
	Dates    []string           // даты окна в порядке отображения, YYYY-MM-DD
	Slots    []types.TimeString // слоты сетки в хронологическом порядке
	Schedule domain.Schedule    // дата -> слот -> ячейка
	Cart     []domain.CartItem  // корзина пользователя в порядке добавления
	Total    int                // суммарная цена позиций корзины
}
