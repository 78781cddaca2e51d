package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"orion_tours/internal/domain"
)

type QueryService struct {
	repo domain.TourRepository
}

func NewQueryService(r domain.TourRepository) *QueryService {
	return &QueryService{repo: r}
}

// SearchTours runs the page listing and the matching count as two
// independent reads and merges them into one envelope. Either failure fails
// the whole call; the shared errgroup context cancels the sibling query.
// The two reads are not a single snapshot: total and len(items) may diverge
// under concurrent writes, which callers must tolerate.
func (s *QueryService) SearchTours(ctx context.Context, f domain.FilterRecord) (domain.TourPage, error) {
	var (
		items []domain.TourRow
		total int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.ListTours(ctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountTours(ctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.TourPage{}, err
	}

	if items == nil {
		items = []domain.TourRow{}
	}
	return domain.TourPage{
		Page:     f.Page,
		PageSize: f.PageSize,
		Total:    total,
		Items:    items,
	}, nil
}

func (s *QueryService) ListDepartures(ctx context.Context) ([]domain.NameRef, error) {
	return s.repo.ListDepartures(ctx)
}

func (s *QueryService) ListCountries(ctx context.Context) ([]domain.NameRef, error) {
	return s.repo.ListCountries(ctx)
}

func (s *QueryService) ListResorts(ctx context.Context, countryID *int) ([]domain.NameRef, error) {
	return s.repo.ListResorts(ctx, countryID)
}

func (s *QueryService) ListHotels(ctx context.Context, resortIDs []int64) ([]domain.HotelRef, error) {
	return s.repo.ListHotels(ctx, resortIDs)
}

func (s *QueryService) ListMealPlans(ctx context.Context) ([]domain.MealPlanRef, error) {
	return s.repo.ListMealPlans(ctx)
}
