package domain

// Параметры расписания по умолчанию
const (
	DefaultOpenHour           = 9
	DefaultCloseHour          = 19
	DefaultGranularityMinutes = 30
	DefaultScheduleDays       = 7
)

// Ограничения бизнес-валидации
const (
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 120
	MaxMenuNameLength     = 100
	MaxUsernameLength     = 50
)

// Форматы дат и времени
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // YYYY-MM-DD HH:MM, формат хранения start_at/end_at
)
