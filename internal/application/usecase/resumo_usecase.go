package usecase

import (
	"context"
	"time"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

// ResumoUseCase monta o snapshot do painel. Tudo é recalculado a cada
// chamada com consultas independentes, sem isolamento de snapshot entre
// elas: sob escrita concorrente os seis números podem refletir instantes
// ligeiramente diferentes.
type ResumoUseCase struct {
	repo repository.ResumoRepository
}

// NewResumoUseCase constrói o caso de uso.
func NewResumoUseCase(repo repository.ResumoRepository) *ResumoUseCase {
	return &ResumoUseCase{repo: repo}
}

// Resumo calcula os seis indicadores. O recorte mensal usa o dia 1 do mês
// corrente no fuso local, comparado contra a parte de data dos timestamps.
func (uc *ResumoUseCase) Resumo(ctx context.Context) (*dto.ResumoResponse, error) {
	entradas, err := uc.repo.SomaPorTipo(ctx, entity.TipoEntrada)
	if err != nil {
		return nil, err
	}
	saidas, err := uc.repo.SomaPorTipo(ctx, entity.TipoSaida)
	if err != nil {
		return nil, err
	}

	hoje := time.Now()
	inicioMes := time.Date(hoje.Year(), hoje.Month(), 1, 0, 0, 0, 0, hoje.Location()).Format("2006-01-02")

	entradasMes, err := uc.repo.SomaPorTipoDesde(ctx, entity.TipoEntrada, inicioMes)
	if err != nil {
		return nil, err
	}
	saidasMes, err := uc.repo.SomaPorTipoDesde(ctx, entity.TipoSaida, inicioMes)
	if err != nil {
		return nil, err
	}

	totalProdutos, err := uc.repo.CountProdutos(ctx)
	if err != nil {
		return nil, err
	}
	estoqueBaixo, err := uc.repo.CountProdutosEstoqueBaixo(ctx, entity.EstoqueBaixoLimite)
	if err != nil {
		return nil, err
	}

	return &dto.ResumoResponse{
		SaldoTotal:           entradas.Sub(saidas),
		EntradasMes:          entradasMes,
		SaidasMes:            saidasMes,
		SaldoMes:             entradasMes.Sub(saidasMes),
		TotalProdutos:        totalProdutos,
		ProdutosEstoqueBaixo: estoqueBaixo,
	}, nil
}
