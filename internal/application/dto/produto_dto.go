package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
)

// Timestamps saem no mesmo formato em que o SQLite os grava.
const dataLayout = "2006-01-02 15:04:05"

// CreateProdutoRequest corpo de POST /api/produtos.
// Apenas nome é obrigatório; os demais campos assumem zero quando ausentes.
type CreateProdutoRequest struct {
	Nome       string           `json:"nome"`
	Quantidade *int64           `json:"quantidade"`
	PrecoCusto *decimal.Decimal `json:"preco_custo"`
	PrecoVenda *decimal.Decimal `json:"preco_venda"`
}

// UpdateProdutoRequest corpo de PUT /api/produtos/{id}.
// Substituição integral: os quatro campos são obrigatórios (ponteiros para
// distinguir ausente de zero).
type UpdateProdutoRequest struct {
	Nome       *string          `json:"nome"`
	Quantidade *int64           `json:"quantidade"`
	PrecoCusto *decimal.Decimal `json:"preco_custo"`
	PrecoVenda *decimal.Decimal `json:"preco_venda"`
}

// Completo informa se todos os campos obrigatórios do PUT estão presentes.
func (r UpdateProdutoRequest) Completo() bool {
	return r.Nome != nil && r.Quantidade != nil && r.PrecoCusto != nil && r.PrecoVenda != nil
}

// ProdutoResponse item de GET /api/produtos.
type ProdutoResponse struct {
	ID           int64           `json:"id"`
	Nome         string          `json:"nome"`
	Quantidade   int64           `json:"quantidade"`
	PrecoCusto   decimal.Decimal `json:"preco_custo"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	DataCadastro string          `json:"data_cadastro"`
}

// ToProdutoResponse converte a entidade para o formato de resposta.
func ToProdutoResponse(p *entity.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		Quantidade:   p.Quantidade,
		PrecoCusto:   p.PrecoCusto,
		PrecoVenda:   p.PrecoVenda,
		DataCadastro: formatData(p.DataCadastro),
	}
}

func formatData(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dataLayout)
}
