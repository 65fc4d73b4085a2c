package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Leganyst/barbershop-booking/internal/auth"
	"github.com/Leganyst/barbershop-booking/internal/config"
	"github.com/Leganyst/barbershop-booking/internal/db"
	"github.com/Leganyst/barbershop-booking/internal/handler"
	"github.com/Leganyst/barbershop-booking/internal/logger"
	"github.com/Leganyst/barbershop-booking/internal/model"
	"github.com/Leganyst/barbershop-booking/internal/repository"
	"github.com/Leganyst/barbershop-booking/internal/router"
	"github.com/Leganyst/barbershop-booking/internal/service"
)

func main() {
	// 1. Конфигурация из env / config.yaml.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(cfg)
	if err != nil {
		zlog.Fatal("init db", zap.Error(err))
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		zlog.Fatal("auto migrate", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		zlog.Fatal("sql DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// 4. Redis для кэша доступности (опционально).
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			zlog.Warn("redis unavailable, availability cache disabled", zap.Error(err))
			cache = nil
		}
	}

	// 5. Репозитории (реализации на GORM).
	userRepo := repository.NewGormUserRepository(gormDB)
	hoursRepo := repository.NewGormWorkingHoursRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	companyRepo := repository.NewGormCompanyRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// 6. Сервисы.
	availabilitySvc := service.NewAvailabilityService(
		userRepo, hoursRepo, bookingRepo, cache, cfg.AvailabilityCacheTTL(), zlog)
	bookingSvc := service.NewBookingService(gormDB, bookingRepo, availabilitySvc, zlog)
	identitySvc := service.NewIdentityService(userRepo, hoursRepo, eventRepo, zlog)
	companySvc := service.NewCompanyService(companyRepo)

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL())

	// 7. HTTP-роутер.
	engine := router.New(cfg, zlog, issuer, userRepo, router.Handlers{
		Auth:    handler.NewAuthHandler(identitySvc, issuer, zlog),
		Profile: handler.NewProfileHandler(identitySvc, zlog),
		Barber:  handler.NewBarberHandler(identitySvc, availabilitySvc, zlog),
		Booking: handler.NewBookingHandler(bookingSvc, zlog),
		Company: handler.NewCompanyHandler(companySvc, zlog),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: engine,
	}

	// 8. Запускаем сервер в горутине.
	go func() {
		zlog.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("http serve", zap.Error(err))
		}
	}()

	// 9. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down http server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
}
