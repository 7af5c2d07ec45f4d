package dto

import "pointswise/internal/models"

// PartnersResponse is the transfer-partner catalog with its presentation
// grouping.
type PartnersResponse struct {
	Partners []models.TransferPartner `json:"partners"`
	Groups   models.PartnerGroups     `json:"groups"`
}
