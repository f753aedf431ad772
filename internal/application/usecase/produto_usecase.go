package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/domain"
	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso CRUD do catálogo. A quantidade também é
// ajustada pelo motor de estoque; edições diretas aqui são um override
// manual e nunca são reconciliadas com o histórico de movimentações.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um novo produto. Nome é obrigatório; quantidade e preços
// assumem zero quando ausentes.
func (uc *ProdutoUseCase) Create(ctx context.Context, in dto.CreateProdutoRequest) (int64, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return 0, domain.ErrInvalidInput
	}
	produto := &entity.Produto{
		Nome:       in.Nome,
		PrecoCusto: decimal.Zero,
		PrecoVenda: decimal.Zero,
	}
	if in.Quantidade != nil {
		produto.Quantidade = *in.Quantidade
	}
	if in.PrecoCusto != nil {
		produto.PrecoCusto = *in.PrecoCusto
	}
	if in.PrecoVenda != nil {
		produto.PrecoVenda = *in.PrecoVenda
	}
	return uc.repo.Create(ctx, produto)
}

// List lista todos os produtos ordenados por nome.
func (uc *ProdutoUseCase) List(ctx context.Context) ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ToProdutoResponse(p))
	}
	return items, nil
}

// Update substitui os quatro campos mutáveis por inteiro (não é patch
// parcial). Devolve domain.ErrInvalidInput se faltar campo e
// domain.ErrNotFound se o id não existir.
func (uc *ProdutoUseCase) Update(ctx context.Context, id int64, in dto.UpdateProdutoRequest) error {
	if !in.Completo() || strings.TrimSpace(*in.Nome) == "" {
		return domain.ErrInvalidInput
	}
	produto := &entity.Produto{
		ID:         id,
		Nome:       *in.Nome,
		Quantidade: *in.Quantidade,
		PrecoCusto: *in.PrecoCusto,
		PrecoVenda: *in.PrecoVenda,
	}
	return uc.repo.Update(ctx, produto)
}

// Delete remove o produto. Sucesso silencioso quando o id não existe; o
// histórico de movimentações fica órfão (sem cascade).
func (uc *ProdutoUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
