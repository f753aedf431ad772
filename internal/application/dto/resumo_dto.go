package dto

import "github.com/shopspring/decimal"

// ResumoResponse resposta de GET /api/resumo: os seis indicadores do painel,
// calculados do zero a cada chamada.
type ResumoResponse struct {
	SaldoTotal           decimal.Decimal `json:"saldo_total"`
	EntradasMes          decimal.Decimal `json:"entradas_mes"`
	SaidasMes            decimal.Decimal `json:"saidas_mes"`
	SaldoMes             decimal.Decimal `json:"saldo_mes"`
	TotalProdutos        int64           `json:"total_produtos"`
	ProdutosEstoqueBaixo int64           `json:"produtos_estoque_baixo"`
}
