package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chaveiropro/chaveiro-api/internal/application/dto"
	"github.com/chaveiropro/chaveiro-api/internal/application/usecase"
)

// ResumoHandler trata GET /api/resumo (painel).
type ResumoHandler struct {
	uc *usecase.ResumoUseCase
}

// NewResumoHandler constrói o handler.
func NewResumoHandler(uc *usecase.ResumoUseCase) *ResumoHandler {
	return &ResumoHandler{uc: uc}
}

// Resumo GET /api/resumo — os seis indicadores, recalculados a cada chamada.
func (h *ResumoHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
