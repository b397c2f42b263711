package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/BigKAA/topologymetrics/sdk-go/dephealth"
	"github.com/BigKAA/topologymetrics/sdk-go/dephealth/checks/pgcheck"
)

// DephealthConfig: параметры мониторинга PostgreSQL через topologymetrics.
type DephealthConfig struct {
	ServiceID     string        // вершина графа зависимостей
	Group         string        // PC_DEPHEALTH_GROUP
	PostgresURL   string        // только для лейблов host/port
	CheckInterval time.Duration // PC_DEPHEALTH_CHECK_INTERVAL
}

// DephealthService следит за единственной критичной зависимостью каталога.
// Результаты идут в app_dependency_health и в /health/ready.
type DephealthService struct {
	dh     *dephealth.DepHealth
	logger *slog.Logger
}

// NewDephealthService проверяет PostgreSQL через db, открытый поверх
// общего pgxpool. opts дополняют базовые опции (например WithRegisterer в тестах).
func NewDephealthService(
	cfg DephealthConfig,
	db *sql.DB,
	logger *slog.Logger,
	opts ...dephealth.Option,
) (*DephealthService, error) {
	all := append([]dephealth.Option{
		dephealth.WithLogger(logger),
		dephealth.AddDependency("postgresql", dephealth.TypePostgres,
			pgcheck.New(pgcheck.WithDB(db)),
			dephealth.FromURL(cfg.PostgresURL),
			dephealth.CheckInterval(cfg.CheckInterval),
			dephealth.Critical(true),
		),
	}, opts...)

	dh, err := dephealth.New(cfg.ServiceID, cfg.Group, all...)
	if err != nil {
		return nil, fmt.Errorf("topologymetrics: %w", err)
	}
	return &DephealthService{
		dh:     dh,
		logger: logger.With(slog.String("component", "dephealth"), slog.String("group", cfg.Group)),
	}, nil
}

func (ds *DephealthService) Start(ctx context.Context) error {
	if err := ds.dh.Start(ctx); err != nil {
		return err
	}
	ds.logger.Info("Мониторинг PostgreSQL запущен")
	return nil
}

func (ds *DephealthService) Stop() {
	ds.dh.Stop()
	ds.logger.Info("Мониторинг PostgreSQL остановлен")
}

// Health: ключ "postgresql:<host>:<port>", значение true при успешной проверке.
func (ds *DephealthService) Health() map[string]bool {
	return ds.dh.Health()
}
