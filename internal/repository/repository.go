// Пакет repository реализует доступ к данным PostgreSQL.
// Все запросы пишутся на чистом SQL через pgx, без ORM.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound возвращается, если запись не найдена.
var ErrNotFound = errors.New("запись не найдена")

// DBTX реализуется как *pgxpool.Pool, так и pgx.Tx, поэтому
// репозитории работают и внутри, и вне транзакций.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// rowScanner общий интерфейс pgx.Row и pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// isForeignKeyViolation проверяет нарушение внешнего ключа PostgreSQL.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}
