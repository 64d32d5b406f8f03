package service

import (
	"context"
	"errors"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/logger"
	"gasdepot-backend/internal/repository"
)

type pricingService struct {
	priceRepo    repository.PriceRepository
	cylinderRepo repository.CylinderRepository
}

func NewPricingService(priceRepo repository.PriceRepository, cylinderRepo repository.CylinderRepository) PricingService {
	return &pricingService{priceRepo: priceRepo, cylinderRepo: cylinderRepo}
}

// ResolvePrice prefers a member-specific override over the shared base price.
// A missing price resolves to zero with Missing=true instead of an error: a
// price gap must never block a rental. Errors are store I/O only.
func (s *pricingService) ResolvePrice(ctx context.Context, cylinder *domain.Cylinder, memberID int32) (PriceQuote, error) {
	custom, err := s.priceRepo.GetMemberPrice(ctx, memberID, cylinder.GasType, cylinder.Size)
	if err == nil {
		return PriceQuote{UnitPriceCents: custom.PriceCents, IsCustom: true}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return PriceQuote{}, err
	}

	base, err := s.priceRepo.GetBasePrice(ctx, cylinder.GasType, cylinder.Size)
	if err == nil {
		return PriceQuote{UnitPriceCents: base.PriceCents}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return PriceQuote{}, err
	}

	logger.Warn("no price configured, resolving to zero",
		"gas_type", cylinder.GasType, "size", cylinder.Size, "member_id", memberID)
	return PriceQuote{Missing: true}, nil
}

func (s *pricingService) QuoteRental(ctx context.Context, cylinderIDs []int32, memberID int32) (*RentalQuote, error) {
	quote := &RentalQuote{}
	for _, id := range cylinderIDs {
		cyl, err := s.cylinderRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		pq, err := s.ResolvePrice(ctx, cyl, memberID)
		if err != nil {
			return nil, err
		}
		quote.Items = append(quote.Items, QuotedItem{CylinderID: cyl.ID, SerialCode: cyl.SerialCode, Quote: pq})
		quote.TotalCents += pq.UnitPriceCents
		if pq.Missing {
			quote.AnyMissing = true
		}
	}
	return quote, nil
}
