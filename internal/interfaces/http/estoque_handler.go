package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/application/ledger"
	"github.com/chaveiropro/chaveiro-api/internal/domain"
)

// EstoqueHandler trata as requisições HTTP das movimentações de estoque.
type EstoqueHandler struct {
	uc *ledger.RegistrarMovimentoUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *ledger.RegistrarMovimentoUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Registrar POST /api/movimentacoes-estoque — movimento + ajuste de
// quantidade em uma transação.
func (h *EstoqueHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if !in.Completo() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "produto_id, tipo e quantidade são obrigatórios"})
	}
	input := ledger.MovimentoInput{
		ProdutoID:  *in.ProdutoID,
		Tipo:       *in.Tipo,
		Quantidade: *in.Quantidade,
		Observacao: in.Observacao,
	}
	if err := h.uc.Registrar(c.Context(), input); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser entrada ou saida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	movimentacoesRegistradas.WithLabelValues("estoque", input.Tipo).Inc()
	return c.JSON(dto.MessageResponse{Message: "Movimentação registrada com sucesso!"})
}

// Listar GET /api/movimentacoes-estoque — 100 mais recentes com produto_nome.
func (h *EstoqueHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context(), 100)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
