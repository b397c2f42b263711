// Пакет database: пул PostgreSQL для каталога, встроенные миграции схемы
// и проверка готовности для /health/ready.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/bigkaa/preset-catalog/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// readyTimeout ограничивает ping в readiness probe.
const readyTimeout = 3 * time.Second

// DB объединяет пул pgx и *sql.DB поверх того же пула.
// Pool используют репозитории, SQL нужен SQL checker'у topologymetrics.
type DB struct {
	Pool *pgxpool.Pool
	SQL  *sql.DB
}

// Connect открывает пул не более чем на cfg.DBMaxConns подключений.
// При исчерпании пула запросы ждут подключение в пределах своего контекста.
func Connect(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("разбор DSN: %w", err)
	}
	poolCfg.MaxConns = cfg.DBMaxConns
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "preset-catalog"

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("создание пула: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL %s:%d: %w", cfg.DBHost, cfg.DBPort, err)
	}

	logger.Info("Пул PostgreSQL открыт",
		slog.String("database", cfg.DBName),
		slog.Int("max_conns", int(poolCfg.MaxConns)),
	)
	return &DB{Pool: pool, SQL: stdlib.OpenDBFromPool(pool)}, nil
}

// Close закрывает адаптер *sql.DB и пул.
func (db *DB) Close() {
	_ = db.SQL.Close()
	db.Pool.Close()
}

// CheckReady пингует PostgreSQL. Занятый целиком пул даёт "degraded"
// без ping: свободного подключения для него всё равно нет.
func (db *DB) CheckReady() (status, message string) {
	stat := db.Pool.Stat()
	if stat.MaxConns() > 0 && stat.AcquiredConns() >= stat.MaxConns() {
		return "degraded", fmt.Sprintf("пул исчерпан: %d/%d подключений заняты",
			stat.AcquiredConns(), stat.MaxConns())
	}

	ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
	defer cancel()
	if err := db.Pool.Ping(ctx); err != nil {
		return "fail", fmt.Sprintf("PostgreSQL недоступен: %v", err)
	}
	return "ok", fmt.Sprintf("подключений занято: %d/%d", stat.AcquiredConns(), stat.MaxConns())
}

// Migrate применяет встроенные миграции схемы каталога
// (enum hardware_type, presets, comments, downloads).
func Migrate(cfg *config.Config, logger *slog.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("источник миграций: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.MigrateURL())
	if err != nil {
		return fmt.Errorf("инициализация миграций: %w", err)
	}
	defer m.Close()
	m.Log = migrateLogger{logger: logger.With(slog.String("component", "migrate"))}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("Схема БД актуальна")
	case err != nil:
		return fmt.Errorf("применение миграций: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("версия схемы: %w", err)
	}
	if dirty {
		return fmt.Errorf("схема БД в состоянии dirty на версии %d", version)
	}
	logger.Info("Схема БД готова", slog.Uint64("version", uint64(version)))
	return nil
}

// migrateLogger направляет журнал golang-migrate в slog на уровне debug.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
