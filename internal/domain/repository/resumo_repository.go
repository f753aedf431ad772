package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ResumoRepository consultas de agregação para o painel. Cada método executa
// uma consulta independente; o chamador monta o snapshot sem garantia de
// isolamento entre elas.
type ResumoRepository interface {
	// SomaPorTipo soma valor das movimentações de caixa do tipo dado.
	SomaPorTipo(ctx context.Context, tipo string) (decimal.Decimal, error)
	// SomaPorTipoDesde idem, restrita a date(data) >= desde ("YYYY-MM-DD").
	SomaPorTipoDesde(ctx context.Context, tipo, desde string) (decimal.Decimal, error)
	CountProdutos(ctx context.Context) (int64, error)
	// CountProdutosEstoqueBaixo conta produtos com quantidade <= limite.
	CountProdutosEstoqueBaixo(ctx context.Context, limite int64) (int64, error)
}
