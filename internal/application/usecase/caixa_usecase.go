package usecase

import (
	"context"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/domain"
	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

// CaixaUseCase lançamentos financeiros (entradas e saídas de caixa).
// Cada lançamento é um fato imutável; não existe saldo materializado.
type CaixaUseCase struct {
	repo repository.MovimentacaoRepository
}

// NewCaixaUseCase constrói o caso de uso.
func NewCaixaUseCase(repo repository.MovimentacaoRepository) *CaixaUseCase {
	return &CaixaUseCase{repo: repo}
}

// Registrar insere um lançamento. Inserção pura: nenhum outro registro é
// tocado. O tipo precisa pertencer ao domínio entrada/saida.
func (uc *CaixaUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimentacaoRequest) (int64, error) {
	if !in.Completo() || !entity.TipoValido(*in.Tipo) {
		return 0, domain.ErrInvalidInput
	}
	mov := &entity.Movimentacao{
		Tipo:      *in.Tipo,
		Descricao: *in.Descricao,
		Valor:     *in.Valor,
	}
	return uc.repo.Create(ctx, mov)
}

// Listar devolve os lançamentos mais recentes. limit <= 0 assume 100.
func (uc *CaixaUseCase) Listar(ctx context.Context, limit int) ([]dto.MovimentacaoResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	list, err := uc.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.ToMovimentacaoResponse(m))
	}
	return items, nil
}

// Excluir remove o lançamento por inteiro. Correção pura de razão: nenhum
// agregado é revertido. Sucesso silencioso quando o id não existe.
func (uc *CaixaUseCase) Excluir(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
