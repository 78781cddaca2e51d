package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"orion_tours/internal/domain"
)

var tourColumns = []string{
	"id", "title", "start_date", "nights", "price", "currency",
	"with_flight", "available", "is_hot", "popularity",
	"country", "resort", "hotel", "stars", "meal_code", "meal_name", "photos",
}

func newMockRepo(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

func TestListTours_ScansRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	start := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(tourColumns).
		AddRow(int64(5), "Antalya Grand 5*, 7 nights", start, 7, 1200.5, "usd",
			true, true, false, 310,
			"Turkey", "Antalya", "Antalya Grand 5*", 5, "AI", "All inclusive",
			[]byte(`{https://img.example/5/1.jpg,https://img.example/5/2.jpg}`)).
		AddRow(int64(4), "Kemer Grand 4*, 10 nights", start, 10, 900.0, "usd",
			false, true, true, 120,
			"Turkey", "Kemer", "Kemer Grand 4*", 4, "BB", "Bed & breakfast",
			[]byte(`{}`))

	mock.ExpectQuery(regexp.QuoteMeta("FROM tour t")).
		WillReturnRows(rows)

	f := domain.FilterRecord{Page: 1, PageSize: 12, Currency: "usd", Sort: domain.SortPriceAsc}
	out, err := repo.ListTours(context.Background(), f)
	if err != nil {
		t.Fatalf("ListTours: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("rows: %d", len(out))
	}

	first := out[0]
	if first.ID != 5 || first.Price != 1200.5 || first.Currency != "usd" {
		t.Fatalf("first row: %+v", first)
	}
	if first.StartDate != "2026-07-10" {
		t.Fatalf("start_date formatting: %s", first.StartDate)
	}
	if len(first.Photos) != 2 {
		t.Fatalf("photos: %v", first.Photos)
	}
	if out[1].Photos == nil || len(out[1].Photos) != 0 {
		t.Fatalf("empty photos must decode to an empty list, got %#v", out[1].Photos)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListTours_PropagatesQueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("FROM tour t")).WillReturnError(boom)

	_, err := repo.ListTours(context.Background(), domain.FilterRecord{Page: 1, PageSize: 12, Currency: "rub"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestCountTours(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS total")).
		WithArgs("rub").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(37))

	total, err := repo.CountTours(context.Background(), domain.FilterRecord{Page: 1, PageSize: 12, Currency: "rub"})
	if err != nil {
		t.Fatalf("CountTours: %v", err)
	}
	if total != 37 {
		t.Fatalf("total: %d", total)
	}
}

func TestCountTours_NoRowIsZero(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS total")).
		WillReturnRows(sqlmock.NewRows([]string{"total"}))

	total, err := repo.CountTours(context.Background(), domain.FilterRecord{Page: 1, PageSize: 12, Currency: "rub"})
	if err != nil {
		t.Fatalf("expected no error on empty count, got %v", err)
	}
	if total != 0 {
		t.Fatalf("total: %d", total)
	}
}

func TestListResorts_CountryFilterIsNullable(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM resort")).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Antalya"))

	out, err := repo.ListResorts(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListResorts: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Antalya" {
		t.Fatalf("resorts: %+v", out)
	}

	cid := 2
	mock.ExpectQuery(regexp.QuoteMeta("FROM resort")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	if _, err := repo.ListResorts(context.Background(), &cid); err != nil {
		t.Fatalf("ListResorts(filtered): %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListHotels_EmptySetMeansAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM hotel")).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stars", "resort_id"}).
			AddRow(int64(3), "Antalya Grand 5*", 5, int64(1)))

	out, err := repo.ListHotels(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListHotels: %v", err)
	}
	if len(out) != 1 || out[0].Stars != 5 {
		t.Fatalf("hotels: %+v", out)
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM hotel")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "stars", "resort_id"}))

	if _, err := repo.ListHotels(context.Background(), []int64{1, 2}); err != nil {
		t.Fatalf("ListHotels(filtered): %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListMealPlans(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM meal_plan")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name"}).
			AddRow(int64(4), "AI", "All inclusive"))

	out, err := repo.ListMealPlans(context.Background())
	if err != nil {
		t.Fatalf("ListMealPlans: %v", err)
	}
	if len(out) != 1 || out[0].Code != "AI" {
		t.Fatalf("meal plans: %+v", out)
	}
}
