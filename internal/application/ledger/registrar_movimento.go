package ledger

import (
	"context"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/domain"
	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

// RegistrarMovimentoUseCase registra movimentações de estoque de forma
// transacional: inserção do movimento e ajuste de quantidade do produto como
// uma unidade atômica (Commit ou Rollback das duas metades).
type RegistrarMovimentoUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovimentacaoEstoqueRepository
}

// NewRegistrarMovimentoUseCase constrói o caso de uso.
func NewRegistrarMovimentoUseCase(txRunner TxRunner, movRepo repository.MovimentacaoEstoqueRepository) *RegistrarMovimentoUseCase {
	return &RegistrarMovimentoUseCase{txRunner: txRunner, movRepo: movRepo}
}

// MovimentoInput entrada para registrar uma movimentação de estoque.
type MovimentoInput struct {
	ProdutoID  int64
	Tipo       string
	Quantidade int64
	Observacao string
}

// Registrar valida o tipo e executa, em uma única transação:
// (a) inserção do movimento; (b) quantidade = quantidade ± delta no produto.
// Não há verificação de existência do produto: se ele foi excluído, o ajuste
// afeta zero linhas e a transação confirma mesmo assim. A quantidade
// resultante pode ficar negativa; nenhum piso é imposto.
func (uc *RegistrarMovimentoUseCase) Registrar(ctx context.Context, input MovimentoInput) error {
	if !entity.TipoValido(input.Tipo) {
		return domain.ErrInvalidInput
	}

	mov := &entity.MovimentacaoEstoque{
		ProdutoID:  input.ProdutoID,
		Tipo:       input.Tipo,
		Quantidade: input.Quantidade,
		Observacao: input.Observacao,
	}

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		if _, err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return produtoRepo.AjustarQuantidade(ctx, mov.ProdutoID, mov.Delta())
	})
}

// Listar devolve as movimentações mais recentes com o nome atual do produto.
// limit <= 0 assume o padrão de 100.
func (uc *RegistrarMovimentoUseCase) Listar(ctx context.Context, limit int) ([]dto.MovimentacaoEstoqueResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	list, err := uc.movRepo.ListWithProduto(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimentacaoEstoqueResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.ToMovimentacaoEstoqueResponse(m))
	}
	return items, nil
}
