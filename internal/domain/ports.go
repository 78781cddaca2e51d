package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// TourRepository is the read boundary the search service depends on.
// ListTours and CountTours must apply exactly the same predicate set for
// any given FilterRecord, so Total always matches what Items pages over.
type TourRepository interface {
	ListTours(ctx context.Context, f FilterRecord) ([]TourRow, error)
	CountTours(ctx context.Context, f FilterRecord) (int, error)

	// Reference lists for filter controls.
	ListDepartures(ctx context.Context) ([]NameRef, error)
	ListCountries(ctx context.Context) ([]NameRef, error)
	ListResorts(ctx context.Context, countryID *int) ([]NameRef, error)
	ListHotels(ctx context.Context, resortIDs []int64) ([]HotelRef, error)
	ListMealPlans(ctx context.Context) ([]MealPlanRef, error)
}
