package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrLoadConfig возвращается при ошибке чтения файла конфигурации
	ErrLoadConfig = errors.New("config: failed to load config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config полная конфигурация сервиса
// Несекретные значения читаются из TOML, секреты - из окружения (.env)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Mail     MailConfig     `toml:"mail"`
	Menu     []MenuItem     `toml:"menu"`

	// Секреты, заполняются из переменных окружения
	JWTSecret    string `toml:"-"`
	AdminToken   string `toml:"-"`
	MailSender   string `toml:"-"`
	MailPassword string `toml:"-"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки подключения к Redis (хранилище корзин)
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CartTTL  int    `toml:"cart_ttl"` // часы жизни корзины
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig настройки рабочей сетки салона
type ScheduleConfig struct {
	OpenHour           int `toml:"open_hour"`
	CloseHour          int `toml:"close_hour"`
	GranularityMinutes int `toml:"granularity_minutes"`
	Days               int `toml:"days"` // размер окна расписания
}

// MailConfig несекретные настройки SMTP уведомлений
// Отправитель и пароль приходят из окружения
type MailConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// MenuItem услуга салона из конфигурации
type MenuItem struct {
	Key             string `toml:"key"`
	Name            string `toml:"name"`
	Price           int    `toml:"price"`
	DurationMinutes int    `toml:"duration_minutes"`
}

// Load читает конфигурацию из TOML файла и секреты из окружения
// Файл .env опционален: в production переменные задаются окружением
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	cfg.MailSender = os.Getenv("MAIL_SENDER")
	cfg.MailPassword = os.Getenv("MAIL_PASSWORD")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required", ErrInvalidConfig)
	}
	if c.Schedule.OpenHour < 0 || c.Schedule.CloseHour > 24 ||
		c.Schedule.OpenHour >= c.Schedule.CloseHour {
		return fmt.Errorf("%w: schedule hours must satisfy 0 <= open < close <= 24", ErrInvalidConfig)
	}
	if c.Schedule.GranularityMinutes <= 0 {
		return fmt.Errorf("%w: schedule.granularity_minutes must be positive", ErrInvalidConfig)
	}
	if len(c.Menu) == 0 {
		return fmt.Errorf("%w: at least one menu item is required", ErrInvalidConfig)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET environment variable is required", ErrInvalidConfig)
	}
	return nil
}
