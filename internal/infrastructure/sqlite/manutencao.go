package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Manutencao rotinas de manutenção do arquivo do banco (compactação,
// reindexação, verificação de integridade e backups rotativos).
// Não deve rodar enquanto o servidor mantém o arquivo aberto.
type Manutencao struct {
	path string
}

// NewManutencao cria o serviço apontando para o arquivo do banco.
func NewManutencao(path string) *Manutencao {
	return &Manutencao{path: path}
}

// Fase resultado de uma fase da manutenção. As fases são independentes:
// a falha de uma não desfaz as anteriores já concluídas.
type Fase struct {
	Nome string
	Err  error
}

// Contagens total de registros por tabela.
type Contagens struct {
	Produtos             int64
	Movimentacoes        int64
	MovimentacoesEstoque int64
}

// Tamanho devolve o tamanho do arquivo do banco em bytes (0 se não existe).
func (m *Manutencao) Tamanho() (int64, error) {
	info, err := os.Stat(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("stat banco: %w", err)
	}
	return info.Size(), nil
}

// Contar conta os registros de cada tabela.
func (m *Manutencao) Contar(ctx context.Context) (Contagens, error) {
	db, err := Open(ctx, m.path)
	if err != nil {
		return Contagens{}, err
	}
	defer db.Close()

	var c Contagens
	for _, q := range []struct {
		sql  string
		dest *int64
	}{
		{`SELECT COUNT(*) FROM produtos`, &c.Produtos},
		{`SELECT COUNT(*) FROM movimentacoes`, &c.Movimentacoes},
		{`SELECT COUNT(*) FROM movimentacoes_estoque`, &c.MovimentacoesEstoque},
	} {
		if err := db.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
			return Contagens{}, fmt.Errorf("contar registros: %w", err)
		}
	}
	return c, nil
}

// Backup cria uma cópia timestampada do arquivo ao lado do original
// (<nome>_backup_YYYYMMDD_HHMMSS.db) e devolve o caminho criado.
func (m *Manutencao) Backup() (string, error) {
	src, err := os.Open(m.path)
	if err != nil {
		return "", fmt.Errorf("abrir banco para backup: %w", err)
	}
	defer src.Close()

	dest := filepath.Join(filepath.Dir(m.path),
		m.backupPrefix()+time.Now().Format("20060102_150405")+".db")
	dst, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("criar backup: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("copiar backup: %w", err)
	}
	return dest, nil
}

// LimparBackupsAntigos remove backups antigos, mantendo só os `manter` mais
// recentes. Devolve os caminhos removidos.
func (m *Manutencao) LimparBackupsAntigos(manter int) ([]string, error) {
	dir := filepath.Dir(m.path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listar backups: %w", err)
	}

	prefix := m.backupPrefix()
	var backups []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".db") {
			backups = append(backups, name)
		}
	}
	// Timestamp no nome: ordem lexicográfica decrescente = mais recente primeiro
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))

	var removidos []string
	for _, name := range backups[min(manter, len(backups)):] {
		full := filepath.Join(dir, name)
		if err := os.Remove(full); err != nil {
			return removidos, fmt.Errorf("remover backup %s: %w", name, err)
		}
		removidos = append(removidos, full)
	}
	return removidos, nil
}

// Otimizar abre o banco com acesso próprio e executa REINDEX, ANALYZE, VACUUM
// e integrity_check, devolvendo o resultado fase a fase.
func (m *Manutencao) Otimizar(ctx context.Context) []Fase {
	db, err := Open(ctx, m.path)
	if err != nil {
		return []Fase{{Nome: "abrir", Err: err}}
	}
	defer db.Close()

	fases := []Fase{
		{Nome: "reindex", Err: execFase(ctx, db, `REINDEX`)},
		{Nome: "analyze", Err: execFase(ctx, db, `ANALYZE`)},
		{Nome: "vacuum", Err: execFase(ctx, db, `VACUUM`)},
	}
	fases = append(fases, Fase{Nome: "integrity_check", Err: verificarIntegridade(ctx, db)})
	return fases
}

// Rapida passada de manutenção de inicialização (VACUUM, ANALYZE,
// integrity_check) sobre uma conexão já aberta. Falha não é fatal.
func Rapida(ctx context.Context, db *sql.DB) []Fase {
	return []Fase{
		{Nome: "vacuum", Err: execFase(ctx, db, `VACUUM`)},
		{Nome: "analyze", Err: execFase(ctx, db, `ANALYZE`)},
		{Nome: "integrity_check", Err: verificarIntegridade(ctx, db)},
	}
}

func execFase(ctx context.Context, db *sql.DB, stmt string) error {
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%s: %w", strings.ToLower(stmt), err)
	}
	return nil
}

func verificarIntegridade(ctx context.Context, db *sql.DB) error {
	var resultado string
	if err := db.QueryRowContext(ctx, `PRAGMA integrity_check`).Scan(&resultado); err != nil {
		return fmt.Errorf("integrity check: %w", err)
	}
	if resultado != "ok" {
		return fmt.Errorf("integridade comprometida: %s", resultado)
	}
	return nil
}

func (m *Manutencao) backupPrefix() string {
	base := strings.TrimSuffix(filepath.Base(m.path), filepath.Ext(m.path))
	return base + "_backup_"
}
