package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chaveiropro/chaveiro-api/internal/domain"
	"github.com/chaveiropro/chaveiro-api/internal/domain/entity"
	"github.com/chaveiropro/chaveiro-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação da porta ProdutoRepository sobre SQLite (usável com conexão ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos. Passar *sql.DB ou *sql.Tx.
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto e devolve o id gerado pelo banco.
func (r *ProdutoRepo) Create(ctx context.Context, produto *entity.Produto) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO produtos (nome, quantidade, preco_custo, preco_venda)
		VALUES (?, ?, ?, ?)`,
		produto.Nome, produto.Quantidade, produto.PrecoCusto, produto.PrecoVenda,
	)
	if err != nil {
		return 0, fmt.Errorf("insert produto: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("id do produto: %w", err)
	}
	return id, nil
}

// GetByID obtém um produto por ID. Devolve nil quando não existe.
func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, nome, quantidade, preco_custo, preco_venda, data_cadastro
		FROM produtos WHERE id = ?`, id)
	p, err := scanProduto(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// List devolve todos os produtos ordenados por nome (sem paginação).
func (r *ProdutoRepo) List(ctx context.Context) ([]*entity.Produto, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, nome, quantidade, preco_custo, preco_venda, data_cadastro
		FROM produtos ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update substitui os quatro campos mutáveis por inteiro.
// Devolve domain.ErrNotFound quando nenhuma linha é afetada.
func (r *ProdutoRepo) Update(ctx context.Context, produto *entity.Produto) error {
	cmd, err := r.q.ExecContext(ctx, `
		UPDATE produtos
		SET nome = ?, quantidade = ?, preco_custo = ?, preco_venda = ?
		WHERE id = ?`,
		produto.Nome, produto.Quantidade, produto.PrecoCusto, produto.PrecoVenda, produto.ID,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	n, err := cmd.RowsAffected()
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o produto. Sucesso silencioso quando o id não existe; o
// histórico de movimentações do produto fica órfão (sem cascade).
func (r *ProdutoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM produtos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// AjustarQuantidade aplica o delta em um único statement (incremento atômico,
// nunca read-modify-write). No-op silencioso quando o produto não existe.
func (r *ProdutoRepo) AjustarQuantidade(ctx context.Context, id int64, delta int64) error {
	if _, err := r.q.ExecContext(ctx,
		`UPDATE produtos SET quantidade = quantidade + ? WHERE id = ?`,
		delta, id,
	); err != nil {
		return fmt.Errorf("ajustar quantidade: %w", err)
	}
	return nil
}

func scanProduto(scan func(dest ...any) error) (*entity.Produto, error) {
	var p entity.Produto
	var data string
	if err := scan(&p.ID, &p.Nome, &p.Quantidade, &p.PrecoCusto, &p.PrecoVenda, &data); err != nil {
		return nil, err
	}
	p.DataCadastro = parseTime(data)
	return &p, nil
}
