package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pointswise/internal/service"
)

type PartnerHandler struct {
	partnerService *service.PartnerService
	logger         *zap.Logger
}

func NewPartnerHandler(partnerService *service.PartnerService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
		logger:         logger,
	}
}

// ListPartners godoc
// @Summary List transfer partners
// @Description Returns the transfer-partner catalog with its presentation grouping
// @Tags partners
// @Produce json
// @Success 200 {object} dto.PartnersResponse
// @Router /api/v1/partners [get]
func (h *PartnerHandler) ListPartners(c *fiber.Ctx) error {
	return c.JSON(h.partnerService.Catalog())
}

// GetPartner godoc
// @Summary Get one transfer partner
// @Tags partners
// @Produce json
// @Param id path string true "Partner id"
// @Success 200 {object} models.TransferPartner
// @Failure 404 {object} map[string]string
// @Router /api/v1/partners/{id} [get]
func (h *PartnerHandler) GetPartner(c *fiber.Ctx) error {
	partner, ok := h.partnerService.ByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown transfer partner",
		})
	}
	return c.JSON(partner)
}
