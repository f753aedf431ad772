package sqlite

import (
	"context"
	"fmt"

	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação da porta MovimentacaoRepository (caixa) sobre SQLite.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador de persistência para o caixa.
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create insere o lançamento (data = momento da inserção) e devolve o id.
func (r *MovimentacaoRepo) Create(ctx context.Context, mov *entity.Movimentacao) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO movimentacoes (tipo, descricao, valor)
		VALUES (?, ?, ?)`,
		mov.Tipo, mov.Descricao, mov.Valor,
	)
	if err != nil {
		return 0, fmt.Errorf("insert movimentacao: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("id da movimentacao: %w", err)
	}
	return id, nil
}

// List devolve as mais recentes primeiro, limitadas a limit.
// Desempate por id para ordem estável dentro do mesmo segundo.
func (r *MovimentacaoRepo) List(ctx context.Context, limit int) ([]*entity.Movimentacao, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, tipo, descricao, valor, data
		FROM movimentacoes ORDER BY data DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		var data string
		if err := rows.Scan(&m.ID, &m.Tipo, &m.Descricao, &m.Valor, &data); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		m.Data = parseTime(data)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete remove o lançamento incondicionalmente; nenhum agregado é revertido.
// Sucesso silencioso quando o id não existe.
func (r *MovimentacaoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM movimentacoes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete movimentacao: %w", err)
	}
	return nil
}
