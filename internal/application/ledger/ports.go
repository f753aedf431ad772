package ledger

import (
	"context"

	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade do par
// inserção-de-movimento + ajuste-de-quantidade.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
