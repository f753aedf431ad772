package usecase_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/application/usecase"
	"github.com/chaveiropro/chaveiro-api/internal/domain"
	"github.com/chaveiropro/chaveiro-api/internal/infrastructure/sqlite"
)

func abrirBanco(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "chaveiro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }

func TestProdutoUseCase_CreateExigeNome(t *testing.T) {
	uc := usecase.NewProdutoUseCase(sqlite.NewProdutoRepository(abrirBanco(t)))

	_, err := uc.Create(context.Background(), dto.CreateProdutoRequest{Nome: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProdutoRequest{Nome: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome só com espaços conta como vazio")
}

func TestProdutoUseCase_CreateAplicaDefaults(t *testing.T) {
	uc := usecase.NewProdutoUseCase(sqlite.NewProdutoRepository(abrirBanco(t)))
	ctx := context.Background()

	id, err := uc.Create(ctx, dto.CreateProdutoRequest{Nome: "Chave simples"})
	require.NoError(t, err)
	require.Positive(t, id)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Zero(t, list[0].Quantidade)
	assert.True(t, list[0].PrecoCusto.IsZero())
	assert.True(t, list[0].PrecoVenda.IsZero())
}

func TestProdutoUseCase_UpdateExigeTodosOsCampos(t *testing.T) {
	db := abrirBanco(t)
	uc := usecase.NewProdutoUseCase(sqlite.NewProdutoRepository(db))
	ctx := context.Background()

	id, err := uc.Create(ctx, dto.CreateProdutoRequest{Nome: "Fechadura"})
	require.NoError(t, err)

	// Substituição integral, não patch: faltar qualquer campo é erro
	err = uc.Update(ctx, id, dto.UpdateProdutoRequest{
		Nome:       ptr("Fechadura digital"),
		Quantidade: ptr(int64(2)),
		// preco_custo e preco_venda ausentes
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Update(ctx, id, dto.UpdateProdutoRequest{
		Nome:       ptr("Fechadura digital"),
		Quantidade: ptr(int64(2)),
		PrecoCusto: ptr(decimal.NewFromInt(120)),
		PrecoVenda: ptr(decimal.NewFromInt(250)),
	})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Fechadura digital", list[0].Nome)
	assert.EqualValues(t, 2, list[0].Quantidade)
}

func TestProdutoUseCase_UpdateInexistente(t *testing.T) {
	uc := usecase.NewProdutoUseCase(sqlite.NewProdutoRepository(abrirBanco(t)))

	err := uc.Update(context.Background(), 4242, dto.UpdateProdutoRequest{
		Nome:       ptr("Fantasma"),
		Quantidade: ptr(int64(0)),
		PrecoCusto: ptr(decimal.Zero),
		PrecoVenda: ptr(decimal.Zero),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Duas leituras sem escrita no meio devolvem o mesmo resultado.
func TestProdutoUseCase_ListIdempotente(t *testing.T) {
	uc := usecase.NewProdutoUseCase(sqlite.NewProdutoRepository(abrirBanco(t)))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProdutoRequest{Nome: "Cadeado", Quantidade: ptr(int64(3))})
	require.NoError(t, err)

	primeira, err := uc.List(ctx)
	require.NoError(t, err)
	segunda, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, primeira, segunda)
}
