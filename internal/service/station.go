package service

import (
	"context"
	"fmt"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

type stationService struct {
	stationRepo repository.RefillStationRepository
}

func NewStationService(stationRepo repository.RefillStationRepository) StationService {
	return &stationService{stationRepo: stationRepo}
}

func (s *stationService) CreateStation(ctx context.Context, st *domain.RefillStation) error {
	if st.Name == "" {
		return fmt.Errorf("station name is required: %w", domain.ErrValidation)
	}
	return s.stationRepo.Create(ctx, st)
}

func (s *stationService) GetStation(ctx context.Context, id int32) (*domain.RefillStation, error) {
	return s.stationRepo.GetByID(ctx, id)
}

func (s *stationService) ListStations(ctx context.Context) ([]domain.RefillStation, error) {
	return s.stationRepo.List(ctx)
}

func (s *stationService) UpdateStation(ctx context.Context, st *domain.RefillStation) error {
	if st.Name == "" {
		return fmt.Errorf("station name is required: %w", domain.ErrValidation)
	}
	return s.stationRepo.Update(ctx, st)
}

func (s *stationService) DeleteStation(ctx context.Context, id int32) error {
	return s.stationRepo.Delete(ctx, id)
}

func (s *stationService) SetStationPrice(ctx context.Context, p *domain.StationPrice) error {
	if !p.GasType.Valid() || !p.Size.Valid() {
		return fmt.Errorf("invalid gas type or size: %w", domain.ErrValidation)
	}
	return s.stationRepo.UpsertPrice(ctx, p)
}

func (s *stationService) ListStationPrices(ctx context.Context, stationID int32) ([]domain.StationPrice, error) {
	return s.stationRepo.ListPrices(ctx, stationID)
}
