package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/application/usecase"
	"github.com/chaveiropro/chaveiro-api/internal/domain"
)

// CaixaHandler trata as requisições HTTP dos lançamentos financeiros.
type CaixaHandler struct {
	uc *usecase.CaixaUseCase
}

// NewCaixaHandler constrói o handler.
func NewCaixaHandler(uc *usecase.CaixaUseCase) *CaixaHandler {
	return &CaixaHandler{uc: uc}
}

// Registrar POST /api/movimentacoes — tipo, descricao e valor obrigatórios.
func (h *CaixaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	id, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo (entrada|saida), descricao e valor são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if in.Tipo != nil {
		movimentacoesRegistradas.WithLabelValues("caixa", *in.Tipo).Inc()
	}
	return c.JSON(dto.IDMessageResponse{ID: id, Message: "Movimentação registrada com sucesso!"})
}

// Listar GET /api/movimentacoes — 100 lançamentos mais recentes.
func (h *CaixaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context(), 100)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Excluir DELETE /api/movimentacoes/:id — remoção incondicional, sem reverter
// nenhum agregado.
func (h *CaixaHandler) Excluir(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Excluir(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Movimentação excluída com sucesso!"})
}
