// Ferramenta offline de manutenção do banco: backup rotativo, compactação,
// reindexação e verificação de integridade. Precisa de acesso exclusivo ao
// arquivo — encerre o servidor antes de executar.
//
// Uso:
//
//	manutencao          menu interativo
//	manutencao --auto   executa a manutenção completa sem perguntar
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chaveiropro/chaveiro-api/internal/infrastructure/sqlite"
	"github.com/chaveiropro/chaveiro-api/pkg/config"
)

const manterBackups = 5

func main() {
	auto := flag.Bool("auto", false, "executa a manutenção completa sem menu")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}
	m := sqlite.NewManutencao(cfg.DB.Path)

	if *auto {
		if !executarCompleta(m) {
			os.Exit(1)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println()
		fmt.Println("============================================================")
		fmt.Println("MANUTENÇÃO DO BANCO - CHAVEIRO")
		fmt.Println("============================================================")
		fmt.Println()
		fmt.Println("1 - Executar manutenção completa (recomendado)")
		fmt.Println("2 - Apenas verificar estado do banco")
		fmt.Println("3 - Criar backup manual")
		fmt.Println("4 - Limpar backups antigos")
		fmt.Println("0 - Sair")
		fmt.Println()
		fmt.Print("Escolha uma opção: ")

		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			executarCompleta(m)
		case "2":
			mostrarEstado(m)
		case "3":
			if caminho, err := m.Backup(); err != nil {
				fmt.Println("erro ao criar backup:", err)
			} else {
				fmt.Println("backup criado:", caminho)
			}
		case "4":
			limparBackups(m)
		case "0":
			fmt.Println("Até logo!")
			return
		default:
			fmt.Println("opção inválida")
		}
	}
}

// executarCompleta roda todas as fases. Cada fase é independente: a falha de
// uma não desfaz as anteriores (um backup bem-sucedido permanece mesmo que a
// verificação de integridade falhe depois).
func executarCompleta(m *sqlite.Manutencao) bool {
	fmt.Println()
	fmt.Println("Estado atual:")
	tamanhoInicial := mostrarEstado(m)

	fmt.Println()
	fmt.Println("Criando backup de segurança...")
	if caminho, err := m.Backup(); err != nil {
		fmt.Println("  backup FALHOU:", err)
	} else {
		fmt.Println("  backup criado:", caminho)
	}

	fmt.Println()
	fmt.Println("Executando operações de manutenção...")
	ok := true
	for _, fase := range m.Otimizar(context.Background()) {
		if fase.Err != nil {
			ok = false
			fmt.Printf("  %s: FALHOU (%v)\n", fase.Nome, fase.Err)
			continue
		}
		fmt.Printf("  %s: ok\n", fase.Nome)
	}

	fmt.Println()
	fmt.Println("Estado após manutenção:")
	tamanhoFinal := mostrarEstado(m)
	if tamanhoInicial > tamanhoFinal {
		economia := tamanhoInicial - tamanhoFinal
		fmt.Printf("Espaço recuperado: %.2f MB (%.1f%%)\n",
			float64(economia)/(1024*1024), float64(economia)/float64(tamanhoInicial)*100)
	}

	fmt.Println()
	fmt.Printf("Limpando backups antigos (mantendo os %d mais recentes)...\n", manterBackups)
	limparBackups(m)

	if ok {
		fmt.Println()
		fmt.Println("Manutenção concluída com sucesso!")
	} else {
		fmt.Println()
		fmt.Println("Manutenção concluída com falhas. Dica: encerre o servidor antes de executar.")
	}
	return ok
}

func mostrarEstado(m *sqlite.Manutencao) int64 {
	tamanho, err := m.Tamanho()
	if err != nil {
		fmt.Println("  tamanho do banco:", err)
	} else {
		fmt.Printf("  tamanho do banco: %.2f MB (%d bytes)\n", float64(tamanho)/(1024*1024), tamanho)
	}

	contagens, err := m.Contar(context.Background())
	if err != nil {
		fmt.Println("  contagem de registros:", err)
		return tamanho
	}
	fmt.Printf("  produtos cadastrados: %d\n", contagens.Produtos)
	fmt.Printf("  movimentações financeiras: %d\n", contagens.Movimentacoes)
	fmt.Printf("  movimentações de estoque: %d\n", contagens.MovimentacoesEstoque)
	return tamanho
}

func limparBackups(m *sqlite.Manutencao) {
	removidos, err := m.LimparBackupsAntigos(manterBackups)
	if err != nil {
		fmt.Println("  limpeza de backups:", err)
		return
	}
	for _, caminho := range removidos {
		fmt.Println("  backup antigo removido:", caminho)
	}
	if len(removidos) == 0 {
		fmt.Println("  nada a remover")
	}
}
