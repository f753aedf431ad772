package entity

import "time"

// MovimentacaoEstoque representa um movimento de estoque (entrada ou saida).
// Imutável depois de criado; cada inserção é pareada, na mesma transação,
// com o ajuste de quantidade do produto referenciado. A referência não é
// validada contra a existência do produto no momento da inserção.
type MovimentacaoEstoque struct {
	ID         int64
	ProdutoID  int64
	Tipo       string
	Quantidade int64
	Observacao string
	Data       time.Time
}

// MovimentacaoEstoqueComProduto é a linha da listagem: movimento junto com o
// nome atual do produto (INNER JOIN; movimentos órfãos não aparecem).
type MovimentacaoEstoqueComProduto struct {
	MovimentacaoEstoque
	ProdutoNome string
}

// Delta devolve a variação assinada de quantidade aplicada ao produto.
func (m MovimentacaoEstoque) Delta() int64 {
	if m.Tipo == TipoSaida {
		return -m.Quantidade
	}
	return m.Quantidade
}
