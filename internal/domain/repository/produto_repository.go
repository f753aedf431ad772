package repository

import (
	"context"

	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
)

// ProdutoRepository define a porta de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Produto, error)
	// List devolve todos os produtos ordenados por nome (sem paginação).
	List(ctx context.Context) ([]*entity.Produto, error)
	// Update substitui os quatro campos mutáveis por inteiro (não é patch parcial).
	// Devolve domain.ErrNotFound quando o id não existe.
	Update(ctx context.Context, produto *entity.Produto) error
	// Delete remove o produto; sucesso silencioso quando o id não existe.
	Delete(ctx context.Context, id int64) error
	// AjustarQuantidade aplica quantidade = quantidade + delta em um único
	// statement. No-op silencioso quando o produto não existe.
	AjustarQuantidade(ctx context.Context, id int64, delta int64) error
}
