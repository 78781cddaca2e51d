package postgres

import (
	"context"

	"github.com/lib/pq"

	"orion_tours/internal/domain"
)

// Write paths used by cmd/seeder. They live on the concrete repo rather than
// the TourRepository port: the search service is read-only.

func (r *Repo) UpsertCountry(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, upsertCountrySQL, id, name)
	return err
}

func (r *Repo) UpsertDepartureCity(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, upsertDepartureCitySQL, id, name)
	return err
}

func (r *Repo) UpsertResort(ctx context.Context, id int64, name string, countryID int64) error {
	_, err := r.db.ExecContext(ctx, upsertResortSQL, id, name, countryID)
	return err
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.HotelRef, maxAdults, maxChildren int) error {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL, h.ID, h.Name, h.Stars, h.ResortID, maxAdults, maxChildren)
	return err
}

func (r *Repo) UpsertMealPlan(ctx context.Context, mp domain.MealPlanRef) error {
	_, err := r.db.ExecContext(ctx, upsertMealPlanSQL, mp.ID, mp.Code, mp.Name)
	return err
}

func (r *Repo) UpsertCurrencyRate(ctx context.Context, code string, rateToRUB float64) error {
	_, err := r.db.ExecContext(ctx, upsertCurrencyRateSQL, code, rateToRUB)
	return err
}

func (r *Repo) UpsertTour(ctx context.Context, t domain.Tour) error {
	photos := t.Photos
	if photos == nil {
		photos = []string{}
	}
	_, err := r.db.ExecContext(ctx, upsertTourSQL,
		t.ID,
		t.Title,
		t.DepartureCityID,
		t.CountryID,
		t.ResortID,
		t.HotelID,
		t.MealPlanID,
		t.StartDate,
		t.Nights,
		t.PriceRUB,
		t.WithFlight,
		t.Available,
		t.IsHot,
		t.Popularity,
		pq.Array(photos),
	)
	return err
}
