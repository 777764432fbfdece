package dto

import "github.com/guttosm/aquapulse/internal/domain/models"

// FleetAggregateResponse is the JSON body returned by
// GET /api/v1/fleet/aggregate.
//
// Every monetary figure in Rows is expressed in BaseCurrency; rows are
// sorted by date ascending.
type FleetAggregateResponse struct {
	Window       string            `json:"window" example:"2024"`
	BaseCurrency string            `json:"base_currency" example:"ILS"`
	Rows         []models.FleetRow `json:"rows"`
}
