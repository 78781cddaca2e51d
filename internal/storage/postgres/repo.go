package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"orion_tours/internal/adapters/observability"
	"orion_tours/internal/domain"
)

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

// idArray returns NULL for an empty set so "$1 IS NULL OR ..." filters can
// treat empty and absent identically.
func idArray(ids []int64) any {
	if len(ids) == 0 {
		return nil
	}
	return pq.Array(ids)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListTours(ctx context.Context, f domain.FilterRecord) ([]domain.TourRow, error) {
	q := buildSearchQuery(f)

	start := time.Now()
	rows, err := r.db.QueryContext(ctx, q.listSQL, q.listArgs...)
	observability.ObserveDB("tours_list", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TourRow{}
	for rows.Next() {
		var (
			tr        domain.TourRow
			startDate time.Time
			photos    pq.StringArray
		)
		if err := rows.Scan(
			&tr.ID,
			&tr.Title,
			&startDate,
			&tr.Nights,
			&tr.Price,
			&tr.Currency,
			&tr.WithFlight,
			&tr.Available,
			&tr.IsHot,
			&tr.Popularity,
			&tr.Country,
			&tr.Resort,
			&tr.Hotel,
			&tr.Stars,
			&tr.MealCode,
			&tr.MealName,
			&photos,
		); err != nil {
			return nil, err
		}
		tr.StartDate = startDate.Format("2006-01-02")
		tr.Photos = []string(photos)
		if tr.Photos == nil {
			tr.Photos = []string{}
		}
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) CountTours(ctx context.Context, f domain.FilterRecord) (int, error) {
	q := buildSearchQuery(f)

	start := time.Now()
	var total int
	err := r.db.QueryRowContext(ctx, q.countSQL, q.countArgs...).Scan(&total)
	observability.ObserveDB("tours_count", err, time.Since(start))
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repo) ListDepartures(ctx context.Context) ([]domain.NameRef, error) {
	return r.nameRefs(ctx, "meta_departures", listDeparturesSQL)
}

func (r *Repo) ListCountries(ctx context.Context) ([]domain.NameRef, error) {
	return r.nameRefs(ctx, "meta_countries", listCountriesSQL)
}

func (r *Repo) ListResorts(ctx context.Context, countryID *int) ([]domain.NameRef, error) {
	return r.nameRefs(ctx, "meta_resorts", listResortsSQL, nullInt(countryID))
}

func (r *Repo) nameRefs(ctx context.Context, name, query string, args ...any) ([]domain.NameRef, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, query, args...)
	observability.ObserveDB(name, err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.NameRef{}
	for rows.Next() {
		var ref domain.NameRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListHotels(ctx context.Context, resortIDs []int64) ([]domain.HotelRef, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, listHotelsSQL, idArray(resortIDs))
	observability.ObserveDB("meta_hotels", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.HotelRef{}
	for rows.Next() {
		var h domain.HotelRef
		if err := rows.Scan(&h.ID, &h.Name, &h.Stars, &h.ResortID); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ListMealPlans(ctx context.Context) ([]domain.MealPlanRef, error) {
	start := time.Now()
	rows, err := r.db.QueryContext(ctx, listMealPlansSQL)
	observability.ObserveDB("meta_meal_plans", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MealPlanRef{}
	for rows.Next() {
		var mp domain.MealPlanRef
		if err := rows.Scan(&mp.ID, &mp.Code, &mp.Name); err != nil {
			return nil, err
		}
		out = append(out, mp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
