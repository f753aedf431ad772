package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chaveiropro/chaveiro-api/internal/application/ledger"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação SQLite.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner constrói o runner com a conexão.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Nenhum commit parcial: ou as duas metades do movimento
// persistem, ou nenhuma.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoEstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	movRepo := NewMovimentacaoEstoqueRepository(tx)
	produtoRepo := NewProdutoRepository(tx)

	if err := fn(movRepo, produtoRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
