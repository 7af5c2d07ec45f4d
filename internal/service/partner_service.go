package service

import (
	"pointswise/internal/dto"
	"pointswise/internal/engine"
	"pointswise/internal/models"
)

// PartnerService exposes the static transfer-partner catalog to the
// presentation layer.
type PartnerService struct{}

func NewPartnerService() *PartnerService {
	return &PartnerService{}
}

func (s *PartnerService) Catalog() dto.PartnersResponse {
	return dto.PartnersResponse{
		Partners: engine.Partners(),
		Groups:   engine.PartnerGroupings(),
	}
}

func (s *PartnerService) ByID(id string) (models.TransferPartner, bool) {
	return engine.PartnerByID(id)
}
