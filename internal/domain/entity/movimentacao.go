package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação (caixa e estoque compartilham o mesmo domínio).
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// TipoValido informa se o tipo pertence ao domínio entrada/saida.
func TipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSaida
}

// Movimentacao representa um lançamento financeiro (caixa).
// Fato imutável depois de criado; a única alteração permitida é a exclusão
// do registro inteiro, que não reverte nenhum agregado.
type Movimentacao struct {
	ID        int64
	Tipo      string
	Descricao string
	Valor     decimal.Decimal
	Data      time.Time
}
