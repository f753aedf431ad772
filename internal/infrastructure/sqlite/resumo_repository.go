package sqlite

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

var _ repository.ResumoRepository = (*ResumoRepo)(nil)

// ResumoRepo consultas de agregação do painel sobre SQLite. Cada método é uma
// consulta independente; nenhuma soma ou saldo é armazenado.
type ResumoRepo struct {
	q Querier
}

// NewResumoRepository constrói o adaptador de consultas do painel.
func NewResumoRepository(q Querier) *ResumoRepo {
	return &ResumoRepo{q: q}
}

// SomaPorTipo soma valor das movimentações de caixa do tipo dado.
func (r *ResumoRepo) SomaPorTipo(ctx context.Context, tipo string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(valor), 0) FROM movimentacoes WHERE tipo = ?`, tipo,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("soma por tipo: %w", err)
	}
	return total, nil
}

// SomaPorTipoDesde soma valor restrita a date(data) >= desde ("YYYY-MM-DD").
// A comparação trunca o timestamp gravado para a parte de data.
func (r *ResumoRepo) SomaPorTipoDesde(ctx context.Context, tipo, desde string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(valor), 0) FROM movimentacoes WHERE tipo = ? AND date(data) >= ?`,
		tipo, desde,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("soma por tipo desde: %w", err)
	}
	return total, nil
}

// CountProdutos conta todos os produtos cadastrados.
func (r *ResumoRepo) CountProdutos(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM produtos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count produtos: %w", err)
	}
	return n, nil
}

// CountProdutosEstoqueBaixo conta produtos com quantidade <= limite.
func (r *ResumoRepo) CountProdutosEstoqueBaixo(ctx context.Context, limite int64) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM produtos WHERE quantidade <= ?`, limite,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count estoque baixo: %w", err)
	}
	return n, nil
}
