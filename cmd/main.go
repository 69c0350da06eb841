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

	getRoomGridHandler "github.com/salasct/CT-RoomAllocationService/internal/api/handlers/get_room_grid"
	getRoomOccupancyHandler "github.com/salasct/CT-RoomAllocationService/internal/api/handlers/get_room_occupancy"
	listRoomsHandler "github.com/salasct/CT-RoomAllocationService/internal/api/handlers/list_rooms"
	requestBookingHandler "github.com/salasct/CT-RoomAllocationService/internal/api/handlers/request_booking"
	"github.com/salasct/CT-RoomAllocationService/internal/api/middleware"
	"github.com/salasct/CT-RoomAllocationService/internal/config"
	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/grid"
	"github.com/salasct/CT-RoomAllocationService/internal/infra/loader"
	roomsService "github.com/salasct/CT-RoomAllocationService/internal/service/rooms"
	ingestAllocationsUC "github.com/salasct/CT-RoomAllocationService/internal/usecase/ingest_allocations"
	renderGridUC "github.com/salasct/CT-RoomAllocationService/internal/usecase/render_grid"
	requestBookingUC "github.com/salasct/CT-RoomAllocationService/internal/usecase/request_booking"
	"github.com/salasct/CT-RoomAllocationService/pkg/logger"
	"github.com/salasct/CT-RoomAllocationService/pkg/metrics"
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

	log.Info("Starting CT-RoomAllocationService...")

	// Инициализируем метрики
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Читаем исходные выгрузки: аудитории и распределение дисциплин
	dataLoader := loader.New(log)

	roomRecords, err := dataLoader.LoadRooms(cfg.Data.RoomsFile)
	if err != nil {
		log.Fatal("Failed to load rooms from %s: %v", cfg.Data.RoomsFile, err)
	}

	allocationData, err := dataLoader.LoadAllocations(cfg.Data.AllocationsFile)
	if err != nil {
		log.Fatal("Failed to load allocations from %s: %v", cfg.Data.AllocationsFile, err)
	}

	// Границы семестра; при нечитаемых датах окно деградирует до одного дня
	term := dataLoader.TermWindow(allocationData, time.Now())
	log.Info("Term window: %s .. %s",
		term.First.Format(domain.DateFormat), term.Last.Format(domain.DateFormat))

	// Реестр аудиторий — единственный владелец хранилищ занятости
	registry := roomsService.NewService(log)
	for _, record := range roomRecords {
		if err := registry.Register(domain.Room{Name: record.Name, Capacity: record.Capacity}); err != nil {
			log.Warn("Skipping room %q: %v", record.Name, err)
		}
	}

	// Загружаем распределение дисциплин в хранилища занятости
	ingestUseCase := ingestAllocationsUC.NewUseCase(registry, log)
	summary, err := ingestUseCase.Execute(context.Background(), &ingestAllocationsUC.Request{
		Records: toIngestRecords(allocationData.Records),
		Term:    term,
	})
	if err != nil {
		log.Fatal("Failed to ingest allocations: %v", err)
	}
	log.Info("Ingest complete: admitted=%d bookings=%d meetings=%d", summary.Admitted, summary.Bookings, summary.Meetings)

	metricsCollector.RoomsLoaded.Set(float64(len(registry.List())))
	metricsCollector.BookingsOccupied.Set(float64(registry.TotalBookings()))

	// Построитель недельной сетки
	dayStart, dayEnd, err := cfg.Engine.DayRange()
	if err != nil {
		log.Fatal("Invalid engine configuration: %v", err)
	}
	gridBuilder, err := grid.NewBuilder(dayStart, dayEnd, cfg.Engine.SlotMinutes, log)
	if err != nil {
		log.Fatal("Failed to create grid builder: %v", err)
	}

	// Инициализируем use cases
	requestBookingUseCase := requestBookingUC.NewUseCase(registry, log)
	renderGridUseCase := renderGridUC.NewUseCase(registry, gridBuilder, log)

	// Инициализируем handlers
	requestBooking := requestBookingHandler.NewHandler(requestBookingUseCase, metricsCollector, log)
	getRoomGrid := getRoomGridHandler.NewHandler(renderGridUseCase, log)
	getRoomOccupancy := getRoomOccupancyHandler.NewHandler(registry, log)
	listRooms := listRoomsHandler.NewHandler(registry, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Список аудиторий
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Занятые интервалы аудитории по дням недели
	api.HandleFunc("/rooms/{room}/occupancy", getRoomOccupancy.Handle).Methods(http.MethodGet)

	// Недельная сетка занятости аудитории
	api.HandleFunc("/rooms/{room}/grid", getRoomGrid.Handle).Methods(http.MethodGet)

	// Разовая заявка на аудиторию
	api.HandleFunc("/bookings", requestBooking.Handle).Methods(http.MethodPost)

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

// toIngestRecords переводит записи загрузчика в модель use case
func toIngestRecords(records []loader.AllocationRecord) []ingestAllocationsUC.Record {
	out := make([]ingestAllocationsUC.Record, len(records))
	for i, r := range records {
		out[i] = ingestAllocationsUC.Record{
			Course:        r.Course,
			Code:          r.Code,
			Room:          r.Room,
			Subject:       r.Subject,
			Class:         r.Class,
			WeekdayTokens: r.WeekdayTokens,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			Professor:     r.Professor,
			Status:        r.Status,
		}
	}
	return out
}
