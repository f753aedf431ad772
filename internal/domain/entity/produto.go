package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo da loja.
// Quantidade é um agregado mutável: ajustada pelo motor de estoque a cada
// movimentação e também editável diretamente pelo cadastro (override manual,
// nunca reconciliado com o histórico de movimentações).
type Produto struct {
	ID           int64
	Nome         string
	Quantidade   int64 // pode ficar negativa; nenhum piso é imposto
	PrecoCusto   decimal.Decimal
	PrecoVenda   decimal.Decimal
	DataCadastro time.Time
}

// EstoqueBaixoLimite limite fixo para o indicador de estoque baixo do resumo.
const EstoqueBaixoLimite = 5
