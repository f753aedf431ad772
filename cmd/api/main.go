package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/chaveiropro/chaveiro-api/internal/application/ledger"
	"github.com/chaveiropro/chaveiro-api/internal/application/usecase"
	"github.com/chaveiropro/chaveiro-api/internal/infrastructure/sqlite"
	httpRouter "github.com/chaveiropro/chaveiro-api/internal/interfaces/http"
	"github.com/chaveiropro/chaveiro-api/pkg/config"
	"github.com/chaveiropro/chaveiro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	db, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("abrir banco SQLite")
	}
	defer db.Close()

	// Passada rápida de manutenção antes de aceitar tráfego.
	// Falha em qualquer fase é registrada mas não impede a subida.
	for _, fase := range sqlite.Rapida(ctx, db) {
		if fase.Err != nil {
			log.Warn().Err(fase.Err).Str("fase", fase.Nome).Msg("manutenção de inicialização")
			continue
		}
		log.Debug().Str("fase", fase.Nome).Msg("manutenção de inicialização ok")
	}

	produtoRepo := sqlite.NewProdutoRepository(db)
	movEstoqueRepo := sqlite.NewMovimentacaoEstoqueRepository(db)
	caixaRepo := sqlite.NewMovimentacaoRepository(db)
	resumoRepo := sqlite.NewResumoRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	caixaUC := usecase.NewCaixaUseCase(caixaRepo)
	resumoUC := usecase.NewResumoUseCase(resumoRepo)
	registrarMovimentoUC := ledger.NewRegistrarMovimentoUseCase(txRunner, movEstoqueRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Frontend estático (se presente)
	app.Static("/", "./static")

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:          produtoUC,
		CaixaUC:            caixaUC,
		ResumoUC:           resumoUC,
		RegistrarMovimento: registrarMovimentoUC,
		ExposeMetrics:      cfg.Metrics.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	if cfg.App.OpenBrowser {
		// Conveniência local: abre o navegador depois que o servidor sobe.
		go func() {
			time.Sleep(1500 * time.Millisecond)
			if err := abrirNavegador(fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)); err != nil {
				log.Warn().Err(err).Msg("abrir navegador")
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

func abrirNavegador(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
