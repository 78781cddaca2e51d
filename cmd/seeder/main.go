package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"orion_tours/internal/adapters/observability"
	"orion_tours/internal/domain"
	"orion_tours/internal/shared"
	pgrepo "orion_tours/internal/storage/postgres"
)

// Deterministic fixture data for local development and demos. The API never
// writes; this loader is the operational counterpart to the migrations.

type refFixtures struct {
	countries  []domain.NameRef
	departures []domain.NameRef
	resorts    []struct {
		id        int64
		name      string
		countryID int64
	}
	hotels    []domain.HotelRef
	mealPlans []domain.MealPlanRef
	rates     map[string]float64
}

func fixtures() refFixtures {
	f := refFixtures{
		countries: []domain.NameRef{
			{ID: 1, Name: "Turkey"}, {ID: 2, Name: "Egypt"},
			{ID: 3, Name: "Thailand"}, {ID: 4, Name: "UAE"},
		},
		departures: []domain.NameRef{
			{ID: 1, Name: "Moscow"}, {ID: 2, Name: "Saint Petersburg"}, {ID: 3, Name: "Kazan"},
		},
		mealPlans: []domain.MealPlanRef{
			{ID: 1, Code: "RO", Name: "Room only"},
			{ID: 2, Code: "BB", Name: "Bed & breakfast"},
			{ID: 3, Code: "HB", Name: "Half board"},
			{ID: 4, Code: "AI", Name: "All inclusive"},
		},
		rates: map[string]float64{"rub": 1, "usd": 90},
	}
	resortNames := map[int64][]string{
		1: {"Antalya", "Alanya", "Kemer"},
		2: {"Hurghada", "Sharm El Sheikh"},
		3: {"Phuket", "Pattaya"},
		4: {"Dubai", "Ras Al Khaimah"},
	}
	var resortID, hotelID int64
	for _, c := range f.countries {
		for _, rn := range resortNames[c.ID] {
			resortID++
			f.resorts = append(f.resorts, struct {
				id        int64
				name      string
				countryID int64
			}{resortID, rn, c.ID})
			for stars := 3; stars <= 5; stars++ {
				hotelID++
				f.hotels = append(f.hotels, domain.HotelRef{
					ID:       hotelID,
					Name:     fmt.Sprintf("%s Grand %d*", rn, stars),
					Stars:    stars,
					ResortID: resortID,
				})
			}
		}
	}
	return f
}

func makeTours(f refFixtures, n int) []domain.Tour {
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	resortCountry := map[int64]int64{}
	for _, r := range f.resorts {
		resortCountry[r.id] = r.countryID
	}

	tours := make([]domain.Tour, 0, n)
	for i := 0; i < n; i++ {
		h := f.hotels[rng.Intn(len(f.hotels))]
		tours = append(tours, domain.Tour{
			ID:              int64(i + 1),
			Title:           fmt.Sprintf("%s, %d nights", h.Name, 7+rng.Intn(8)),
			DepartureCityID: f.departures[rng.Intn(len(f.departures))].ID,
			CountryID:       resortCountry[h.ResortID],
			ResortID:        h.ResortID,
			HotelID:         h.ID,
			MealPlanID:      f.mealPlans[rng.Intn(len(f.mealPlans))].ID,
			StartDate:       base.AddDate(0, 0, rng.Intn(120)),
			Nights:          5 + rng.Intn(11),
			PriceRUB:        float64(40_000 + rng.Intn(260_000)),
			WithFlight:      rng.Intn(4) != 0,
			Available:       rng.Intn(5) != 0,
			IsHot:           rng.Intn(6) == 0,
			Popularity:      rng.Intn(1000),
			Photos:          []string{fmt.Sprintf("https://img.example/tour/%d/1.jpg", i+1)},
		})
	}
	return tours
}

func seedReference(ctx context.Context, repo *pgrepo.Repo, f refFixtures) error {
	for _, c := range f.countries {
		if err := repo.UpsertCountry(ctx, c.ID, c.Name); err != nil {
			return err
		}
	}
	for _, d := range f.departures {
		if err := repo.UpsertDepartureCity(ctx, d.ID, d.Name); err != nil {
			return err
		}
	}
	for _, r := range f.resorts {
		if err := repo.UpsertResort(ctx, r.id, r.name, r.countryID); err != nil {
			return err
		}
	}
	for _, h := range f.hotels {
		if err := repo.UpsertHotel(ctx, h, 2+h.Stars%3, h.Stars%4); err != nil {
			return err
		}
	}
	for _, mp := range f.mealPlans {
		if err := repo.UpsertMealPlan(ctx, mp); err != nil {
			return err
		}
	}
	for code, rate := range f.rates {
		if err := repo.UpsertCurrencyRate(ctx, code, rate); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Int("tours", cfg.SeedTours).Msg("seeder starting")

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := pgrepo.New(db)
	f := fixtures()

	// reference rows first to satisfy tour FKs
	if err := seedReference(ctx, repo, f); err != nil {
		log.Fatal().Err(err).Msg("seed reference data failed")
	}
	log.Info().Msg("reference data seeded")

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, t := range makeTours(f, cfg.SeedTours) {
		t := t

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(tour domain.Tour) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertTour(ctx, tour); err != nil {
				log.Warn().Int64("id", tour.ID).Err(err).Msg("seed tour failed")
				return
			}
		}(t)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
