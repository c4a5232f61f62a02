package get_menu

import "github.com/easeteam/Ease-BookingService/internal/domain"

// MenuProvider интерфейс каталога услуг
type MenuProvider interface {
	List() []domain.MenuItem
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
