package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addCartItemHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/add_cart_item"
	adminCancelHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/admin_cancel_reservation"
	adminListHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/admin_list_reservations"
	confirmBookingHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/confirm_booking"
	getCartHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/get_cart"
	getMenuHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/get_menu"
	getScheduleHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/get_schedule"
	loginHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/login"
	registerHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/register"
	removeCartItemHandler "github.com/easeteam/Ease-BookingService/internal/api/handlers/remove_cart_item"
	"github.com/easeteam/Ease-BookingService/internal/api/middleware"
	"github.com/easeteam/Ease-BookingService/internal/config"
	"github.com/easeteam/Ease-BookingService/internal/domain"
	cartStorage "github.com/easeteam/Ease-BookingService/internal/infra/cart"
	reservationRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/reservation"
	userRepo "github.com/easeteam/Ease-BookingService/internal/infra/storage/user"
	"github.com/easeteam/Ease-BookingService/internal/integrations/mailer"
	authService "github.com/easeteam/Ease-BookingService/internal/service/auth"
	cartService "github.com/easeteam/Ease-BookingService/internal/service/cart"
	reservationsService "github.com/easeteam/Ease-BookingService/internal/service/reservations"
	confirmBookingUC "github.com/easeteam/Ease-BookingService/internal/usecase/confirm_booking"
	getScheduleUC "github.com/easeteam/Ease-BookingService/internal/usecase/get_schedule"
	"github.com/easeteam/Ease-BookingService/pkg/dbmetrics"
	"github.com/easeteam/Ease-BookingService/pkg/logger"
	"github.com/easeteam/Ease-BookingService/pkg/metrics"
	"github.com/easeteam/Ease-BookingService/pkg/simpletxmanager"
	"github.com/easeteam/Ease-BookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Ease-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем рабочую сетку и меню салона
	grid, err := domain.NewTimeGrid(cfg.Schedule.OpenHour, cfg.Schedule.CloseHour, cfg.Schedule.GranularityMinutes)
	if err != nil {
		log.Fatal("Failed to build time grid: %v", err)
	}

	menuItems := make([]domain.MenuItem, 0, len(cfg.Menu))
	for _, item := range cfg.Menu {
		menuItems = append(menuItems, domain.MenuItem{
			Key:             item.Key,
			Name:            item.Name,
			Price:           item.Price,
			DurationMinutes: item.DurationMinutes,
		})
	}
	menu, err := domain.NewMenu(menuItems, grid)
	if err != nil {
		log.Fatal("Failed to build menu: %v", err)
	}
	log.Info("Grid: %02d:00-%02d:00 step %dm (%d slots), menu: %d items",
		cfg.Schedule.OpenHour, cfg.Schedule.CloseHour, cfg.Schedule.GranularityMinutes,
		grid.Len(), len(menuItems))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (хранилище корзин)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	cartTTL := cartStorage.DefaultTTL
	if cfg.Redis.CartTTL > 0 {
		cartTTL = time.Duration(cfg.Redis.CartTTL) * time.Hour
	}
	carts := cartStorage.NewStorage(redisClient, cartTTL)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		userRepository        *userRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// SMTP уведомления: при пустых учетных данных письма не отправляются
	mailClient := mailer.NewClient(cfg.Mail.Host, cfg.Mail.Port, cfg.MailSender, cfg.MailPassword, log)
	if cfg.MailSender == "" {
		log.Warn("MAIL_SENDER is empty, booking notifications disabled")
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, cfg.JWTSecret, log)
	cartSvc := cartService.NewService(carts, menu, grid, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(reservationRepository, carts, grid, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		reservationRepository,
		userRepository,
		carts,
		txMgr,
		mailClient,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getMenu := getMenuHandler.NewHandler(menu, log)
	getSchedule := getScheduleHandler.NewHandler(
		getScheduleUseCase, &cartService.RealTimeProvider{}, cfg.Schedule.Days, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	adminList := adminListHandler.NewHandler(reservationsSvc, log)
	adminCancel := adminCancelHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/menu", getMenu.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// Расписание с наложенной корзиной пользователя
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// --- Корзина ---
	protected.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cart/items/{itemId}", removeCartItem.Handle).Methods(http.MethodDelete)

	// Подтверждение корзины
	protected.HandleFunc("/bookings/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Admin(cfg.AdminToken))

	admin.HandleFunc("/reservations", adminList.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", adminCancel.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
