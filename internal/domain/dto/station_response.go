package dto

import "github.com/guttosm/aquapulse/internal/domain/models"

// StationResponse is the JSON body returned by GET /api/v1/stations/:id
// and by the config update endpoint.
//
// It mirrors the internal extended record but is a distinct type so the API
// contract can drift from the domain model without breaking consumers.
type StationResponse struct {
	ID      string                 `json:"id" example:"ST-001"`
	Config  models.StationConfig   `json:"config"`
	Hourly  []models.HourlyRecord  `json:"hourly"`
	Daily   []models.DailyRecord   `json:"daily"`
	Monthly []models.MonthlyRecord `json:"monthly"`
}

// NewStationResponse maps a repository record into the API shape.
func NewStationResponse(rec *models.StationRecord) StationResponse {
	return StationResponse{
		ID:      rec.ID,
		Config:  rec.Config,
		Hourly:  rec.Hourly,
		Daily:   rec.Daily,
		Monthly: rec.Monthly,
	}
}
