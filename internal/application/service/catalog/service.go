package catalog

import (
	"context"

	domain "bondprojector/internal/domain/entity/bonds"
	interfaces "bondprojector/internal/domain/interfaces"

	"github.com/google/uuid"
)

type Service struct {
	repo interfaces.CatalogRepository
}

func NewService(repo interfaces.CatalogRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Bond, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, uid uuid.UUID) (domain.Bond, error) {
	return s.repo.Get(ctx, uid)
}

// Filter keeps the bonds capitalizing with the given period, in catalog order.
func (s *Service) Filter(ctx context.Context, period domain.CapitalizationPeriod) ([]domain.Bond, error) {
	if !period.IsValid() {
		return nil, domain.ErrInvalidCapitalizationPeriod
	}
	return s.where(ctx, func(b domain.Bond) bool { return b.CapitalizationPeriod == period })
}

// Monthly returns the monthly-capitalizing bonds.
func (s *Service) Monthly(ctx context.Context) ([]domain.Bond, error) {
	return s.where(ctx, domain.IsMonthly)
}

func (s *Service) where(ctx context.Context, keep func(domain.Bond) bool) ([]domain.Bond, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Bond, 0, len(all))
	for _, b := range all {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}
