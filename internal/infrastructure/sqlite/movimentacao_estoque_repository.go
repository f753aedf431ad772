package sqlite

import (
	"context"
	"fmt"

	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

var _ repository.MovimentacaoEstoqueRepository = (*MovimentacaoEstoqueRepo)(nil)

// MovimentacaoEstoqueRepo implementação da porta MovimentacaoEstoqueRepository sobre SQLite.
type MovimentacaoEstoqueRepo struct {
	q Querier
}

// NewMovimentacaoEstoqueRepository constrói o adaptador de persistência para o razão de estoque.
func NewMovimentacaoEstoqueRepository(q Querier) *MovimentacaoEstoqueRepo {
	return &MovimentacaoEstoqueRepo{q: q}
}

// Create insere o movimento (data = momento da inserção) e devolve o id.
// Não valida a existência do produto referenciado.
func (r *MovimentacaoEstoqueRepo) Create(ctx context.Context, mov *entity.MovimentacaoEstoque) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO movimentacoes_estoque (produto_id, tipo, quantidade, observacao)
		VALUES (?, ?, ?, ?)`,
		mov.ProdutoID, mov.Tipo, mov.Quantidade, mov.Observacao,
	)
	if err != nil {
		return 0, fmt.Errorf("insert movimentacao de estoque: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("id da movimentacao de estoque: %w", err)
	}
	return id, nil
}

// ListWithProduto devolve as mais recentes primeiro com o nome atual do
// produto. INNER JOIN: movimentos de produtos já excluídos não aparecem.
func (r *MovimentacaoEstoqueRepo) ListWithProduto(ctx context.Context, limit int) ([]*entity.MovimentacaoEstoqueComProduto, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT me.id, me.produto_id, me.tipo, me.quantidade, me.observacao, me.data, p.nome AS produto_nome
		FROM movimentacoes_estoque me
		JOIN produtos p ON me.produto_id = p.id
		ORDER BY me.data DESC, me.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes de estoque: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimentacaoEstoqueComProduto
	for rows.Next() {
		var m entity.MovimentacaoEstoqueComProduto
		var data string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &m.Observacao, &data, &m.ProdutoNome); err != nil {
			return nil, fmt.Errorf("scan movimentacao de estoque: %w", err)
		}
		m.Data = parseTime(data)
		list = append(list, &m)
	}
	return list, rows.Err()
}
