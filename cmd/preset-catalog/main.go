// main.go: точка входа каталога пресетов.
// Порядок запуска: config → logger → миграции → pgxpool → сервисы → HTTP-сервер.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/bigkaa/preset-catalog/internal/api/handlers"
	"github.com/bigkaa/preset-catalog/internal/api/middleware"
	"github.com/bigkaa/preset-catalog/internal/config"
	"github.com/bigkaa/preset-catalog/internal/database"
	"github.com/bigkaa/preset-catalog/internal/repository"
	"github.com/bigkaa/preset-catalog/internal/server"
	"github.com/bigkaa/preset-catalog/internal/service"
)

func main() {
	// 1. Загрузка конфигурации (.env + переменные окружения)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// 2. Настройка логгера
	logger := config.SetupLogger(cfg)
	logger.Info("Каталог пресетов запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
	)

	// 3. Применение миграций БД
	logger.Info("Применение миграций БД...")
	if err := database.Migrate(cfg, logger); err != nil {
		logger.Error("Ошибка миграций БД", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Подключение к PostgreSQL (pgxpool)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка подключения к PostgreSQL", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	// 5. Репозитории
	presetRepo := repository.NewPresetRepository(db.Pool)
	commentRepo := repository.NewCommentRepository(db.Pool)
	downloadRepo := repository.NewDownloadRepository(db.Pool)

	// 6. Сервисы
	validator := service.NewValidator()
	cache := service.NewCacheService(cfg.CacheSize, cfg.CacheTTL)
	catalogSvc := service.NewCatalogService(presetRepo, cache, validator, logger)
	commentSvc := service.NewCommentService(commentRepo, validator, logger)
	downloadSvc := service.NewDownloadService(downloadRepo, cache, logger)

	// 7. Мониторинг зависимостей (не критичен для запуска)
	var deps handlers.DependencyReporter
	dephealthSvc, err := service.NewDephealthService(service.DephealthConfig{
		ServiceID:     handlers.ServiceName,
		Group:         cfg.DephealthGroup,
		PostgresURL:   cfg.DatabaseURL(),
		CheckInterval: cfg.DephealthCheckInterval,
	}, db.SQL, logger)
	if err != nil {
		logger.Warn("topologymetrics недоступен, запуск без мониторинга зависимостей",
			slog.String("error", err.Error()),
		)
	} else if err := dephealthSvc.Start(ctx); err != nil {
		logger.Warn("Ошибка запуска topologymetrics", slog.String("error", err.Error()))
	} else {
		defer dephealthSvc.Stop()
		deps = dephealthSvc
		logger.Info("topologymetrics запущен",
			slog.String("group", cfg.DephealthGroup),
			slog.String("check_interval", cfg.DephealthCheckInterval.String()),
		)
	}

	// 8. Обработчики
	healthHandler := handlers.NewHealthHandler(db, deps)
	apiHandler := handlers.NewAPIHandler(healthHandler, catalogSvc, commentSvc, downloadSvc, logger)

	// 9. HTTP-сервер: request id, реальный IP клиента, recover, метрики, логирование
	srv := server.New(cfg, logger, apiHandler,
		chimw.RequestID,
		chimw.RealIP,
		middleware.MetricsMiddleware(),
		middleware.RequestLogger(logger),
		chimw.Recoverer,
	)

	// 10. Запуск сервера (блокирующий вызов с graceful shutdown)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Каталог пресетов остановлен")
}
