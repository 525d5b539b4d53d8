package usecase

import (
	"context"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
)

func (s *Usecase) Profile(ctx context.Context) (*entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	return s.customer(ctx, clm.CustomerID)
}
