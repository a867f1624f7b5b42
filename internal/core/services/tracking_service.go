package services

import (
	"context"
	"errors"

	"github.com/jslogistics/jsl-backend/internal/apperrors"
	"github.com/jslogistics/jsl-backend/internal/core/domain"
	portsrepo "github.com/jslogistics/jsl-backend/internal/core/ports/repositories"
	portssvc "github.com/jslogistics/jsl-backend/internal/core/ports/services"
)

// trackingService resolves public tracking numbers to orders. It is the only
// unauthenticated read path; the handler layer reduces the result to the
// shipment-safe subset.
type trackingService struct {
	BaseService
	orderRepo portsrepo.OrderReader
}

// NewTrackingService creates a new tracking service.
func NewTrackingService(orderRepo portsrepo.OrderReader) portssvc.TrackingSvcFacade {
	return &trackingService{orderRepo: orderRepo}
}

var _ portssvc.TrackingSvcFacade = (*trackingService)(nil)

func (s *trackingService) Track(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	// A malformed number never reaches the database, but its failure is the
	// same ErrNotFound an unknown number gets. Nothing about the numbering
	// scheme can be learned from the error envelope.
	if !domain.IsWellFormedTrackingNumber(trackingNumber) {
		return nil, apperrors.ErrNotFound
	}

	order, err := s.orderRepo.FindOrderByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve tracking number")
		}
		return nil, err
	}
	return order, nil
}
