package repository

import (
	"context"

	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
)

// MovimentacaoEstoqueRepository porta de persistência para o razão de estoque.
type MovimentacaoEstoqueRepository interface {
	Create(ctx context.Context, mov *entity.MovimentacaoEstoque) (int64, error)
	// ListWithProduto devolve as mais recentes primeiro com o nome atual do
	// produto (INNER JOIN: movimentos de produtos excluídos ficam de fora).
	ListWithProduto(ctx context.Context, limit int) ([]*entity.MovimentacaoEstoqueComProduto, error)
}
