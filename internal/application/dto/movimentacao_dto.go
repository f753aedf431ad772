package dto

import (
	"github.com/shopspring/decimal"

	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
)

// RegistrarMovimentacaoEstoqueRequest corpo de POST /api/movimentacoes-estoque.
// produto_id, tipo e quantidade são obrigatórios; observacao é opcional.
type RegistrarMovimentacaoEstoqueRequest struct {
	ProdutoID  *int64  `json:"produto_id"`
	Tipo       *string `json:"tipo"`
	Quantidade *int64  `json:"quantidade"`
	Observacao string  `json:"observacao"`
}

// Completo informa se todos os campos obrigatórios estão presentes.
func (r RegistrarMovimentacaoEstoqueRequest) Completo() bool {
	return r.ProdutoID != nil && r.Tipo != nil && r.Quantidade != nil
}

// MovimentacaoEstoqueResponse item de GET /api/movimentacoes-estoque.
type MovimentacaoEstoqueResponse struct {
	ID          int64  `json:"id"`
	ProdutoID   int64  `json:"produto_id"`
	ProdutoNome string `json:"produto_nome"`
	Tipo        string `json:"tipo"`
	Quantidade  int64  `json:"quantidade"`
	Observacao  string `json:"observacao"`
	Data        string `json:"data"`
}

// ToMovimentacaoEstoqueResponse converte a linha da listagem para resposta.
func ToMovimentacaoEstoqueResponse(m *entity.MovimentacaoEstoqueComProduto) MovimentacaoEstoqueResponse {
	return MovimentacaoEstoqueResponse{
		ID:          m.ID,
		ProdutoID:   m.ProdutoID,
		ProdutoNome: m.ProdutoNome,
		Tipo:        m.Tipo,
		Quantidade:  m.Quantidade,
		Observacao:  m.Observacao,
		Data:        formatData(m.Data),
	}
}

// RegistrarMovimentacaoRequest corpo de POST /api/movimentacoes.
// tipo, descricao e valor são todos obrigatórios.
type RegistrarMovimentacaoRequest struct {
	Tipo      *string          `json:"tipo"`
	Descricao *string          `json:"descricao"`
	Valor     *decimal.Decimal `json:"valor"`
}

// Completo informa se todos os campos obrigatórios estão presentes.
func (r RegistrarMovimentacaoRequest) Completo() bool {
	return r.Tipo != nil && r.Descricao != nil && r.Valor != nil
}

// MovimentacaoResponse item de GET /api/movimentacoes.
type MovimentacaoResponse struct {
	ID        int64           `json:"id"`
	Tipo      string          `json:"tipo"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
	Data      string          `json:"data"`
}

// ToMovimentacaoResponse converte a entidade para o formato de resposta.
func ToMovimentacaoResponse(m *entity.Movimentacao) MovimentacaoResponse {
	return MovimentacaoResponse{
		ID:        m.ID,
		Tipo:      m.Tipo,
		Descricao: m.Descricao,
		Valor:     m.Valor,
		Data:      formatData(m.Data),
	}
}
