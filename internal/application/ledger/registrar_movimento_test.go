package ledger_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaveiropro/chaveiro-api/internal/application/ledger"
	"github.com/chaveiropro/chaveiro-api/internal/domain"
	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/infrastructure/sqlite"
)

// montar sobe um banco novo e o caso de uso pronto para usar.
func montar(t *testing.T) (*sql.DB, *ledger.RegistrarMovimentoUseCase) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "chaveiro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	uc := ledger.NewRegistrarMovimentoUseCase(
		sqlite.NewTxRunner(db),
		sqlite.NewMovimentacaoEstoqueRepository(db),
	)
	return db, uc
}

func criarProduto(t *testing.T, db *sql.DB, nome string, quantidade int64) int64 {
	t.Helper()
	id, err := sqlite.NewProdutoRepository(db).Create(context.Background(), &entity.Produto{
		Nome:       nome,
		Quantidade: quantidade,
		PrecoCusto: decimal.Zero,
		PrecoVenda: decimal.Zero,
	})
	require.NoError(t, err)
	return id
}

func quantidadeDe(t *testing.T, db *sql.DB, id int64) int64 {
	t.Helper()
	p, err := sqlite.NewProdutoRepository(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantidade
}

// Entrada soma, saída subtrai; cada chamada grava exatamente um movimento.
func TestRegistrar_EntradaESaidaAjustamQuantidade(t *testing.T) {
	db, uc := montar(t)
	ctx := context.Background()
	id := criarProduto(t, db, "Chave Tetra", 10)

	require.NoError(t, uc.Registrar(ctx, ledger.MovimentoInput{
		ProdutoID: id, Tipo: entity.TipoSaida, Quantidade: 3,
	}))
	assert.EqualValues(t, 7, quantidadeDe(t, db, id))

	require.NoError(t, uc.Registrar(ctx, ledger.MovimentoInput{
		ProdutoID: id, Tipo: entity.TipoEntrada, Quantidade: 5, Observacao: "reposição",
	}))
	assert.EqualValues(t, 12, quantidadeDe(t, db, id))

	list, err := uc.Listar(ctx, 100)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Chave Tetra", list[0].ProdutoNome)
}

// Produto criado zerado e mexido só por movimentações: a quantidade é sempre
// a soma dos deltas assinados.
func TestRegistrar_QuantidadeDerivavelDosMovimentos(t *testing.T) {
	db, uc := montar(t)
	ctx := context.Background()
	id := criarProduto(t, db, "Cadeado", 0)

	passos := []struct {
		tipo  string
		qtd   int64
		saldo int64
	}{
		{entity.TipoEntrada, 8, 8},
		{entity.TipoSaida, 3, 5},
		{entity.TipoSaida, 7, -2}, // pode ficar negativo
		{entity.TipoEntrada, 2, 0},
	}
	for _, passo := range passos {
		require.NoError(t, uc.Registrar(ctx, ledger.MovimentoInput{
			ProdutoID: id, Tipo: passo.tipo, Quantidade: passo.qtd,
		}))
		assert.EqualValues(t, passo.saldo, quantidadeDe(t, db, id))
	}
}

func TestRegistrar_TipoDesconhecidoEhRejeitado(t *testing.T) {
	db, uc := montar(t)
	ctx := context.Background()
	id := criarProduto(t, db, "Miolo", 5)

	err := uc.Registrar(ctx, ledger.MovimentoInput{ProdutoID: id, Tipo: "ajuste", Quantidade: 1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	var n int64
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movimentacoes_estoque`).Scan(&n))
	assert.Zero(t, n, "nada deve ser gravado quando o tipo é inválido")
	assert.EqualValues(t, 5, quantidadeDe(t, db, id))
}

// Sem verificação de existência: o movimento persiste e a chamada tem
// sucesso mesmo com produto inexistente (o ajuste afeta zero linhas).
func TestRegistrar_ProdutoInexistenteAindaCommita(t *testing.T) {
	db, uc := montar(t)
	ctx := context.Background()

	require.NoError(t, uc.Registrar(ctx, ledger.MovimentoInput{
		ProdutoID: 4242, Tipo: entity.TipoEntrada, Quantidade: 10,
	}))

	var n int64
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movimentacoes_estoque`).Scan(&n))
	assert.EqualValues(t, 1, n, "o movimento deve persistir mesmo órfão")

	// Órfão desde o nascimento: não aparece na listagem (INNER JOIN)
	list, err := uc.Listar(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListar_MaisRecentesPrimeiroComLimite(t *testing.T) {
	db, uc := montar(t)
	ctx := context.Background()
	id := criarProduto(t, db, "Chave Yale", 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, uc.Registrar(ctx, ledger.MovimentoInput{
			ProdutoID: id, Tipo: entity.TipoEntrada, Quantidade: int64(i + 1),
		}))
	}

	list, err := uc.Listar(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.EqualValues(t, 5, list[0].Quantidade, "a última registrada vem primeiro")

	// limit <= 0 assume o padrão de 100
	tudo, err := uc.Listar(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, tudo, 5)
}
