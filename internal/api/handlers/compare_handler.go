package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pointswise/internal/dto"
	"pointswise/internal/service"
)

type CompareHandler struct {
	compareService *service.ComparisonService
	logger         *zap.Logger
}

func NewCompareHandler(compareService *service.ComparisonService, logger *zap.Logger) *CompareHandler {
	return &CompareHandler{
		compareService: compareService,
		logger:         logger,
	}
}

// Compare godoc
// @Summary Compare booking payment paths
// @Description Compares portal, direct, and optional award paths for a trip and returns a ranked recommendation with confidence and rationale
// @Tags compare
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Comparison request"
// @Success 200 {object} dto.CompareResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/v1/compare [post]
func (h *CompareHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, fieldErrs, err := h.compareService.Compare(c.Context(), req)
	if err != nil {
		h.logger.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to run comparison",
		})
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: fieldErrs})
	}

	return c.JSON(resp)
}
