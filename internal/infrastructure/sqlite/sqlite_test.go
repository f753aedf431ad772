package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaveiropro/chaveiro-api/internal/domain"
	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
	"github.com/chaveiropro/chaveiro-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// abrirBanco cria um banco novo em diretório temporário.
func abrirBanco(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "chaveiro.db"))
	require.NoError(t, err, "o banco deve abrir e criar o esquema")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// criarProduto insere um produto e devolve o id.
func criarProduto(t *testing.T, db *sql.DB, nome string, quantidade int64) int64 {
	t.Helper()
	repo := sqlite.NewProdutoRepository(db)
	id, err := repo.Create(context.Background(), &entity.Produto{
		Nome:       nome,
		Quantidade: quantidade,
		PrecoCusto: decimal.Zero,
		PrecoVenda: decimal.Zero,
	})
	require.NoError(t, err)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// ProdutoRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutoRepo_CriarEBuscar(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &entity.Produto{
		Nome:       "Chave Tetra",
		Quantidade: 10,
		PrecoCusto: decimal.NewFromFloat(2.5),
		PrecoVenda: decimal.NewFromFloat(6.0),
	})
	require.NoError(t, err)
	require.Positive(t, id, "o id deve vir do autoincremento do banco")

	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Chave Tetra", p.Nome)
	assert.EqualValues(t, 10, p.Quantidade)
	assert.True(t, p.PrecoCusto.Equal(decimal.NewFromFloat(2.5)), "preco_custo deve sobreviver à ida e volta")
	assert.True(t, p.PrecoVenda.Equal(decimal.NewFromFloat(6.0)))
	assert.False(t, p.DataCadastro.IsZero(), "data_cadastro deve ser preenchida pelo banco")
}

func TestProdutoRepo_GetInexistenteDevolveNil(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)

	p, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProdutoRepo_ListOrdenadoPorNome(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)

	criarProduto(t, db, "Fechadura", 1)
	criarProduto(t, db, "Cadeado", 2)
	criarProduto(t, db, "Chave Yale", 3)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Cadeado", list[0].Nome)
	assert.Equal(t, "Chave Yale", list[1].Nome)
	assert.Equal(t, "Fechadura", list[2].Nome)
}

func TestProdutoRepo_UpdateSubstituiTodosOsCampos(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)
	ctx := context.Background()
	id := criarProduto(t, db, "Chave simples", 4)

	err := repo.Update(ctx, &entity.Produto{
		ID:         id,
		Nome:       "Chave codificada",
		Quantidade: 6,
		PrecoCusto: decimal.NewFromInt(30),
		PrecoVenda: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Chave codificada", p.Nome)
	assert.EqualValues(t, 6, p.Quantidade)
	assert.True(t, p.PrecoCusto.Equal(decimal.NewFromInt(30)))
}

func TestProdutoRepo_UpdateInexistenteDevolveNotFound(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)

	err := repo.Update(context.Background(), &entity.Produto{
		ID:         4242,
		Nome:       "Fantasma",
		PrecoCusto: decimal.Zero,
		PrecoVenda: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProdutoRepo_DeleteSilenciosoQuandoAusente(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)

	assert.NoError(t, repo.Delete(context.Background(), 4242))
}

func TestProdutoRepo_AjustarQuantidadePermiteNegativo(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)
	ctx := context.Background()
	id := criarProduto(t, db, "Miolo", 2)

	require.NoError(t, repo.AjustarQuantidade(ctx, id, -5))

	p, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, -3, p.Quantidade, "nenhum piso é imposto à quantidade")
}

func TestProdutoRepo_AjustarQuantidadeNoOpQuandoAusente(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewProdutoRepository(db)

	assert.NoError(t, repo.AjustarQuantidade(context.Background(), 4242, 3))
}

// ──────────────────────────────────────────────────────────────────────────────
// MovimentacaoRepo (caixa)
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimentacaoRepo_CriarListarExcluir(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewMovimentacaoRepository(db)
	ctx := context.Background()

	id1, err := repo.Create(ctx, &entity.Movimentacao{Tipo: entity.TipoEntrada, Descricao: "venda", Valor: decimal.NewFromInt(100)})
	require.NoError(t, err)
	id2, err := repo.Create(ctx, &entity.Movimentacao{Tipo: entity.TipoSaida, Descricao: "aluguel", Valor: decimal.NewFromInt(40)})
	require.NoError(t, err)

	list, err := repo.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id2, list[0].ID, "a mais recente vem primeiro")
	assert.Equal(t, id1, list[1].ID)

	// Exclusão é incondicional e não mexe em mais nada
	require.NoError(t, repo.Delete(ctx, id1))
	list, err = repo.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id2, list[0].ID)

	// Excluir de novo (id já ausente) é sucesso silencioso
	assert.NoError(t, repo.Delete(ctx, id1))
}

func TestMovimentacaoRepo_ListRespeitaLimite(t *testing.T) {
	db := abrirBanco(t)
	repo := sqlite.NewMovimentacaoRepository(db)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := repo.Create(ctx, &entity.Movimentacao{Tipo: entity.TipoEntrada, Descricao: "venda", Valor: decimal.NewFromInt(int64(i))})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Ordem não crescente de data (desempate por id)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].Data.Before(list[i].Data), "timestamps devem ser não crescentes")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MovimentacaoEstoqueRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimentacaoEstoqueRepo_ListComNomeDoProduto(t *testing.T) {
	db := abrirBanco(t)
	movRepo := sqlite.NewMovimentacaoEstoqueRepository(db)
	ctx := context.Background()
	id := criarProduto(t, db, "Chave Gorje", 5)

	_, err := movRepo.Create(ctx, &entity.MovimentacaoEstoque{ProdutoID: id, Tipo: entity.TipoEntrada, Quantidade: 2, Observacao: "reposição"})
	require.NoError(t, err)

	list, err := movRepo.ListWithProduto(ctx, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Chave Gorje", list[0].ProdutoNome)
	assert.Equal(t, "reposição", list[0].Observacao)
}

func TestMovimentacaoEstoqueRepo_OrfaosFicamForaDaListagem(t *testing.T) {
	db := abrirBanco(t)
	movRepo := sqlite.NewMovimentacaoEstoqueRepository(db)
	produtoRepo := sqlite.NewProdutoRepository(db)
	ctx := context.Background()
	id := criarProduto(t, db, "Segredo", 1)

	_, err := movRepo.Create(ctx, &entity.MovimentacaoEstoque{ProdutoID: id, Tipo: entity.TipoSaida, Quantidade: 1})
	require.NoError(t, err)

	// Excluir o produto deixa o movimento órfão: o INNER JOIN o esconde,
	// mas a linha continua existindo no banco.
	require.NoError(t, produtoRepo.Delete(ctx, id))

	list, err := movRepo.ListWithProduto(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, list)

	var n int64
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movimentacoes_estoque`).Scan(&n))
	assert.EqualValues(t, 1, n, "a linha órfã permanece no banco")
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner — atomicidade (ou as duas metades persistem, ou nenhuma)
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RollbackDescartaAsDuasMetades(t *testing.T) {
	db := abrirBanco(t)
	runner := sqlite.NewTxRunner(db)
	ctx := context.Background()
	id := criarProduto(t, db, "Cilindro", 10)

	falha := errors.New("falha injetada")
	err := runner.Run(ctx, func(movRepo repository.MovimentacaoEstoqueRepository, produtoRepo repository.ProdutoRepository) error {
		if _, err := movRepo.Create(ctx, &entity.MovimentacaoEstoque{ProdutoID: id, Tipo: entity.TipoSaida, Quantidade: 3}); err != nil {
			return err
		}
		if err := produtoRepo.AjustarQuantidade(ctx, id, -3); err != nil {
			return err
		}
		return falha
	})
	require.ErrorIs(t, err, falha)

	var n int64
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movimentacoes_estoque`).Scan(&n))
	assert.Zero(t, n, "o movimento não deve ter persistido")

	p, err := sqlite.NewProdutoRepository(db).GetByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 10, p.Quantidade, "a quantidade não deve ter mudado")
}

func TestTxRunner_CommitPersisteAsDuasMetades(t *testing.T) {
	db := abrirBanco(t)
	runner := sqlite.NewTxRunner(db)
	ctx := context.Background()
	id := criarProduto(t, db, "Cilindro", 10)

	err := runner.Run(ctx, func(movRepo repository.MovimentacaoEstoqueRepository, produtoRepo repository.ProdutoRepository) error {
		if _, err := movRepo.Create(ctx, &entity.MovimentacaoEstoque{ProdutoID: id, Tipo: entity.TipoEntrada, Quantidade: 4}); err != nil {
			return err
		}
		return produtoRepo.AjustarQuantidade(ctx, id, 4)
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movimentacoes_estoque`).Scan(&n))
	assert.EqualValues(t, 1, n)

	p, err := sqlite.NewProdutoRepository(db).GetByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 14, p.Quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResumoRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestResumoRepo_SomasECountagens(t *testing.T) {
	db := abrirBanco(t)
	resumoRepo := sqlite.NewResumoRepository(db)
	caixaRepo := sqlite.NewMovimentacaoRepository(db)
	ctx := context.Background()

	_, err := caixaRepo.Create(ctx, &entity.Movimentacao{Tipo: entity.TipoEntrada, Descricao: "venda", Valor: decimal.NewFromInt(100)})
	require.NoError(t, err)
	_, err = caixaRepo.Create(ctx, &entity.Movimentacao{Tipo: entity.TipoSaida, Descricao: "compra", Valor: decimal.NewFromInt(40)})
	require.NoError(t, err)

	entradas, err := resumoRepo.SomaPorTipo(ctx, entity.TipoEntrada)
	require.NoError(t, err)
	assert.True(t, entradas.Equal(decimal.NewFromInt(100)))

	saidas, err := resumoRepo.SomaPorTipo(ctx, entity.TipoSaida)
	require.NoError(t, err)
	assert.True(t, saidas.Equal(decimal.NewFromInt(40)))

	criarProduto(t, db, "Chave", 4)
	criarProduto(t, db, "Fechadura", 9)

	total, err := resumoRepo.CountProdutos(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	baixo, err := resumoRepo.CountProdutosEstoqueBaixo(ctx, entity.EstoqueBaixoLimite)
	require.NoError(t, err)
	assert.EqualValues(t, 1, baixo)
}

func TestResumoRepo_SomaVaziaDevolveZero(t *testing.T) {
	db := abrirBanco(t)
	resumoRepo := sqlite.NewResumoRepository(db)

	total, err := resumoRepo.SomaPorTipo(context.Background(), entity.TipoEntrada)
	require.NoError(t, err)
	assert.True(t, total.IsZero(), "COALESCE garante zero sem lançamentos")
}

func TestResumoRepo_SomaDesdeTruncaParaData(t *testing.T) {
	db := abrirBanco(t)
	resumoRepo := sqlite.NewResumoRepository(db)
	ctx := context.Background()

	// Lançamento antigo inserido com data explícita (fora do recorte)
	_, err := db.ExecContext(ctx, `
		INSERT INTO movimentacoes (tipo, descricao, valor, data)
		VALUES ('entrada', 'venda antiga', 70, '2020-01-15 10:30:00')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO movimentacoes (tipo, descricao, valor, data)
		VALUES ('entrada', 'venda no limite', 30, '2020-02-01 00:00:00')`)
	require.NoError(t, err)

	total, err := resumoRepo.SomaPorTipoDesde(ctx, entity.TipoEntrada, "2020-02-01")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(30)),
		"a comparação usa só a parte de data: meia-noite do dia 1 entra no recorte")

	tudo, err := resumoRepo.SomaPorTipoDesde(ctx, entity.TipoEntrada, "2020-01-01")
	require.NoError(t, err)
	assert.True(t, tudo.Equal(decimal.NewFromInt(100)))
}
