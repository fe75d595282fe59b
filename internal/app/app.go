package app

import (
	"context"
	"enrolladmin/internal/config"
	"enrolladmin/internal/db"
	"enrolladmin/internal/handlers"
	"enrolladmin/internal/logger"
	"enrolladmin/internal/repository"
	"enrolladmin/internal/repository/memory"
	"enrolladmin/internal/routes"
	"enrolladmin/internal/services"
	"fmt"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InitApp собирает репозитории, сервисы и маршруты. Возвращаемая функция
// останавливает фоновую чистку и закрывает пул соединений.
func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, func(), error) {
	admins, otps, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Сервисы
	var notifier services.OTPNotifier
	if cfg.SMTPHost != "" {
		notifier = services.NewEmailService(cfg)
	}
	authService := services.NewAuthService(admins, cfg.JWTSecret, cfg.AccessTokenTTL)
	passwordService := services.NewPasswordService(admins, otps, notifier, services.PasswordOptions{
		OTPTTL:     cfg.OTPTTL,
		BcryptCost: cfg.BcryptCost,
	})

	if cfg.DbDriver == config.DriverMemory && cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		a, err := authService.SeedAdmin(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword, cfg.BcryptCost)
		if err != nil {
			closeStore()
			return nil, nil, fmt.Errorf("seed admin: %w", err)
		}
		logger.Log.Info("Администратор для memory-хранилища создан", zap.Int64("id", a.ID), zap.String("email", a.Email))
	}

	reapCtx, stopReaper := context.WithCancel(ctx)
	services.StartOTPReaper(reapCtx, passwordService, cfg.OTPReapInterval)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	passwordHandler := handlers.NewPasswordHandler(passwordService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, passwordHandler, cfg.JWTSecret)

	cleanup := func() {
		stopReaper()
		closeStore()
	}
	return router, cleanup, nil
}

func openStore(ctx context.Context, cfg *config.Config) (repository.AdminRepo, repository.OTPRepo, func(), error) {
	switch cfg.DbDriver {
	case config.DriverMemory:
		admins := memory.NewAdminRepository(nil)
		return admins, memory.NewOTPRepository(nil).WithAdmins(admins), func() {}, nil
	case config.DriverPostgres:
		logger.Log.Info("Подключение к БД", zap.String("dsn", cfg.GetDSNSafe()))
		pool, err := db.NewPostgresConnection(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return repository.NewAdminRepository(pool), repository.NewOTPRepository(pool), pool.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DbDriver)
	}
}
