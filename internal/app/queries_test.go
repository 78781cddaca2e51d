package app_test

import (
	"context"
	"errors"
	"testing"

	"orion_tours/internal/app"
	"orion_tours/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	items []domain.TourRow
	total int

	listErr  error
	countErr error

	gotFilter domain.FilterRecord
}

func (f *fakeRepo) ListTours(ctx context.Context, fr domain.FilterRecord) ([]domain.TourRow, error) {
	f.gotFilter = fr
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeRepo) CountTours(ctx context.Context, fr domain.FilterRecord) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func (f *fakeRepo) ListDepartures(ctx context.Context) ([]domain.NameRef, error) {
	return []domain.NameRef{{ID: 1, Name: "Moscow"}}, nil
}
func (f *fakeRepo) ListCountries(ctx context.Context) ([]domain.NameRef, error) {
	return []domain.NameRef{{ID: 7, Name: "Turkey"}}, nil
}
func (f *fakeRepo) ListResorts(ctx context.Context, countryID *int) ([]domain.NameRef, error) {
	if countryID != nil && *countryID == 7 {
		return []domain.NameRef{{ID: 1, Name: "Antalya"}}, nil
	}
	return nil, nil
}
func (f *fakeRepo) ListHotels(ctx context.Context, resortIDs []int64) ([]domain.HotelRef, error) {
	return nil, nil
}
func (f *fakeRepo) ListMealPlans(ctx context.Context) ([]domain.MealPlanRef, error) {
	return nil, nil
}

// ---- tests ----

func TestSearchTours_AssemblesEnvelope(t *testing.T) {
	repo := &fakeRepo{
		items: []domain.TourRow{{ID: 9, Title: "Kemer Grand 4*"}, {ID: 3, Title: "Alanya Grand 3*"}},
		total: 41,
	}
	q := app.NewQueryService(repo)

	f := app.NormalizeFilters(map[string]any{"page": "2", "pageSize": "2"})
	page, err := q.SearchTours(context.Background(), f)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.Page != 2 || page.PageSize != 2 {
		t.Fatalf("envelope pagination: %+v", page)
	}
	if page.Total != 41 || len(page.Items) != 2 {
		t.Fatalf("envelope contents: total=%d items=%d", page.Total, len(page.Items))
	}
	if repo.gotFilter.Page != 2 || repo.gotFilter.PageSize != 2 {
		t.Fatalf("filter passed through: %+v", repo.gotFilter)
	}
}

func TestSearchTours_EmptyResultIsNotNil(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{items: nil, total: 0})

	page, err := q.SearchTours(context.Background(), app.NormalizeFilters(nil))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.Items == nil || len(page.Items) != 0 {
		t.Fatalf("items must be an empty list, got %#v", page.Items)
	}
	if page.Total != 0 {
		t.Fatalf("total: %d", page.Total)
	}
}

func TestSearchTours_ListFailureFailsWholeCall(t *testing.T) {
	boom := errors.New("list query failed")
	q := app.NewQueryService(&fakeRepo{listErr: boom, total: 10})

	_, err := q.SearchTours(context.Background(), app.NormalizeFilters(nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestSearchTours_CountFailureFailsWholeCall(t *testing.T) {
	boom := errors.New("count query failed")
	q := app.NewQueryService(&fakeRepo{countErr: boom})

	_, err := q.SearchTours(context.Background(), app.NormalizeFilters(nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected count error, got %v", err)
	}
}

func TestListResorts_PassesCountryFilter(t *testing.T) {
	q := app.NewQueryService(&fakeRepo{})

	cid := 7
	out, err := q.ListResorts(context.Background(), &cid)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Antalya" {
		t.Fatalf("resorts: %+v", out)
	}
}
