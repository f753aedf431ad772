package repository

import (
	"context"

	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
)

// MovimentacaoRepository porta de persistência para o caixa (append-only + exclusão).
type MovimentacaoRepository interface {
	Create(ctx context.Context, mov *entity.Movimentacao) (int64, error)
	// List devolve as mais recentes primeiro, limitadas a limit.
	List(ctx context.Context, limit int) ([]*entity.Movimentacao, error)
	// Delete remove o registro; sucesso silencioso quando o id não existe.
	Delete(ctx context.Context, id int64) error
}
