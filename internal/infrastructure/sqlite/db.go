package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Esquema das três tabelas. IDs inteiros autoincrementais; a FK de
// movimentacoes_estoque para produtos não tem cascade de propósito: excluir
// um produto deixa o histórico órfão.
const schema = `
CREATE TABLE IF NOT EXISTS produtos (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	nome          TEXT NOT NULL,
	quantidade    INTEGER DEFAULT 0,
	preco_custo   NUMERIC DEFAULT 0,
	preco_venda   NUMERIC DEFAULT 0,
	data_cadastro TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS movimentacoes (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	tipo      TEXT NOT NULL,
	descricao TEXT,
	valor     NUMERIC NOT NULL,
	data      TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS movimentacoes_estoque (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	produto_id INTEGER,
	tipo       TEXT NOT NULL,
	quantidade INTEGER NOT NULL,
	observacao TEXT,
	data       TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (produto_id) REFERENCES produtos (id)
);
`

// Open abre (criando se necessário) o arquivo do banco e garante o esquema.
// Busy timeout + WAL para conviver com acessos concorrentes ao arquivo.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout=5000&_pragma=journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("abrir banco: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping banco: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("criar esquema: %w", err)
	}
	return db, nil
}
