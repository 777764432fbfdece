package service

import (
	"context"

	"github.com/guttosm/aquapulse/internal/domain/models"
	"github.com/guttosm/aquapulse/internal/storage"
)

// StationService exposes per-station reads and config updates to the HTTP
// layer. It decouples handlers from the repository implementation.
type StationService interface {
	GetStation(ctx context.Context, id string) *models.StationRecord
	UpdateStationConfig(ctx context.Context, id string, patch models.ConfigPatch) *models.StationRecord
}

type stationService struct {
	repo storage.StationRepository
}

func NewStationService(repo storage.StationRepository) StationService {
	return &stationService{repo: repo}
}

func (s *stationService) GetStation(_ context.Context, id string) *models.StationRecord {
	return s.repo.Get(id)
}

func (s *stationService) UpdateStationConfig(_ context.Context, id string, patch models.ConfigPatch) *models.StationRecord {
	return s.repo.UpdateConfig(id, patch)
}
