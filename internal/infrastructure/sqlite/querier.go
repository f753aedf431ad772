package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// Querier abstrai *sql.DB e *sql.Tx para que os repositórios funcionem tanto
// com a conexão direta quanto dentro de uma transação.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// timeLayout formato dos timestamps gravados pelo SQLite (CURRENT_TIMESTAMP, UTC).
const timeLayout = "2006-01-02 15:04:05"

// parseTime converte o timestamp textual do SQLite. Valor inválido vira zero
// em vez de erro: o campo é informativo, nunca participa de invariantes.
func parseTime(s string) time.Time {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
