package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	createBookingHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/create_booking"
	getBackupHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/get_backup"
	getDataHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/get_data"
	getHotelHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/get_hotel"
	getRoomsHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/get_rooms"
	getToursHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/get_tours"
	manageBookingsHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/manage_bookings"
	manageCategoriesHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/manage_categories"
	manageHotelHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/manage_hotel"
	manageRoomsHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/manage_rooms"
	manageToursHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/manage_tours"
	uploadImageHandler "github.com/m04kA/SMC-HotelContentService/internal/api/handlers/upload_image"
	"github.com/m04kA/SMC-HotelContentService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelContentService/internal/config"
	"github.com/m04kA/SMC-HotelContentService/internal/domain"
	documentStore "github.com/m04kA/SMC-HotelContentService/internal/infra/storage/document"
	"github.com/m04kA/SMC-HotelContentService/internal/infra/uploads"
	bookingsService "github.com/m04kA/SMC-HotelContentService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-HotelContentService/internal/service/catalog"
	hotelService "github.com/m04kA/SMC-HotelContentService/internal/service/hotel"
	"github.com/m04kA/SMC-HotelContentService/pkg/logger"
	"github.com/m04kA/SMC-HotelContentService/pkg/metrics"
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

	log.Info("Starting SMC-HotelContentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище документа.
	// При первом запуске файл данных создается с начальным документом.
	store := documentStore.NewStore(cfg.Storage.DataFile)
	if err := store.Init(context.Background(), domain.DefaultDocument()); err != nil {
		log.Fatal("Failed to init data file: %v", err)
	}
	log.Info("Document store ready (file=%s)", cfg.Storage.DataFile)

	// Хранилище загруженных изображений
	saver := uploads.NewSaver(cfg.Storage.UploadsDir, cfg.Storage.MaxUploadSizeBytes(), log)
	log.Info("Uploads dir: %s (limit %d MB)", cfg.Storage.UploadsDir, cfg.Storage.MaxUploadSizeMB)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(store, log)
	bookingsSvc := bookingsService.NewService(store, log)
	hotelSvc := hotelService.NewService(store, log)

	// Инициализируем handlers
	getData := getDataHandler.NewHandler(hotelSvc, log)
	getHotel := getHotelHandler.NewHandler(hotelSvc, log)
	getRooms := getRoomsHandler.NewHandler(catalogSvc, log)
	getTours := getToursHandler.NewHandler(catalogSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingsSvc, log)
	uploadImage := uploadImageHandler.NewHandler(saver, log)
	manageBookings := manageBookingsHandler.NewHandler(bookingsSvc, log)
	manageRooms := manageRoomsHandler.NewHandler(catalogSvc, log)
	manageTours := manageToursHandler.NewHandler(catalogSvc, log)
	manageCategories := manageCategoriesHandler.NewHandler(catalogSvc, log)
	manageHotel := manageHotelHandler.NewHandler(hotelSvc, log)
	getBackup := getBackupHandler.NewHandler(hotelSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Загрузки раздаются статикой, чтобы возвращаемые URL открывались
	r.PathPrefix(uploads.URLPrefix).Handler(
		http.StripPrefix(uploads.URLPrefix, http.FileServer(http.Dir(cfg.Storage.UploadsDir))))

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/data", getData.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotel", getHotel.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours", getTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/upload", uploadImage.Handle).Methods(http.MethodPost)

	// Публичная форма заявки с лимитом частоты по IP
	bookingLimiter := middleware.RateLimit(cfg.RateLimit.BookingRPS, cfg.RateLimit.BookingBurst)
	api.Handle("/booking",
		bookingLimiter(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Password header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth)

	// --- Заявки ---
	admin.HandleFunc("/bookings", manageBookings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", manageBookings.HandleUpdateStatus).Methods(http.MethodPost)

	// --- Номера ---
	admin.HandleFunc("/rooms", manageRooms.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/rooms", manageRooms.HandleUpsert).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{id}", manageRooms.HandleDelete).Methods(http.MethodDelete)

	// --- Экскурсии ---
	admin.HandleFunc("/tours", manageTours.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/tours", manageTours.HandleUpsert).Methods(http.MethodPost)
	admin.HandleFunc("/tours/{id}", manageTours.HandleDelete).Methods(http.MethodDelete)

	// --- Категории ---
	admin.HandleFunc("/categories", manageCategories.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/categories", manageCategories.HandleUpsert).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id}", manageCategories.HandleDelete).Methods(http.MethodDelete)

	// --- Профиль отеля ---
	admin.HandleFunc("/hotel", manageHotel.HandlePatch).Methods(http.MethodPost)
	admin.HandleFunc("/visitor-count", manageHotel.HandleVisitorCount).Methods(http.MethodPost)
	admin.HandleFunc("/password", manageHotel.HandlePassword).Methods(http.MethodPost)
	admin.HandleFunc("/backup", getBackup.Handle).Methods(http.MethodGet)

	// CORS для публичного сайта и админки
	handler := cors.AllowAll().Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
