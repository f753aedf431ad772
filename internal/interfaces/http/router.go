package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chaveiropro/chaveiro-api/internal/application/ledger"
	"github.com/chaveiropro/chaveiro-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC          *usecase.ProdutoUseCase
	CaixaUC            *usecase.CaixaUseCase
	ResumoUC           *usecase.ResumoUseCase
	RegistrarMovimento *ledger.RegistrarMovimentoUseCase
	ExposeMetrics      bool
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Produtos (estoque)
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	api.Get("/produtos", produtoHandler.List)
	api.Post("/produtos", produtoHandler.Create)
	api.Put("/produtos/:id", produtoHandler.Update)
	api.Delete("/produtos/:id", produtoHandler.Delete)

	// Movimentações de estoque
	estoqueHandler := NewEstoqueHandler(deps.RegistrarMovimento)
	api.Get("/movimentacoes-estoque", estoqueHandler.Listar)
	api.Post("/movimentacoes-estoque", estoqueHandler.Registrar)

	// Movimentações financeiras (caixa)
	caixaHandler := NewCaixaHandler(deps.CaixaUC)
	api.Get("/movimentacoes", caixaHandler.Listar)
	api.Post("/movimentacoes", caixaHandler.Registrar)
	api.Delete("/movimentacoes/:id", caixaHandler.Excluir)

	// Painel (resumo)
	resumoHandler := NewResumoHandler(deps.ResumoUC)
	api.Get("/resumo", resumoHandler.Resumo)

	if deps.ExposeMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
}
