package domain

import "time"

// Tour is the write model used by the seeder; prices are stored in the
// reference currency (RUB).
type Tour struct {
	ID              int64
	Title           string
	DepartureCityID int64
	CountryID       int64
	ResortID        int64
	HotelID         int64
	MealPlanID      int64
	StartDate       time.Time
	Nights          int
	PriceRUB        float64
	WithFlight      bool
	Available       bool
	IsHot           bool
	Popularity      int
	Photos          []string
}

// TourRow is one search result, pre-joined so a result card renders
// without further lookups. Price is already converted into Currency.
type TourRow struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	StartDate  string   `json:"start_date"` // YYYY-MM-DD
	Nights     int      `json:"nights"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
	WithFlight bool     `json:"with_flight"`
	Available  bool     `json:"available"`
	IsHot      bool     `json:"is_hot"`
	Popularity int      `json:"popularity"`
	Country    string   `json:"country"`
	Resort     string   `json:"resort"`
	Hotel      string   `json:"hotel"`
	Stars      int      `json:"stars"`
	MealCode   string   `json:"meal_code"`
	MealName   string   `json:"meal_name"`
	Photos     []string `json:"photos"`
}

// TourPage is the paginated search envelope. Total counts every match,
// Items carries one page of them.
type TourPage struct {
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Total    int       `json:"total"`
	Items    []TourRow `json:"items"`
}

// Reference ("meta") rows used to populate filter controls.

type NameRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type HotelRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Stars    int    `json:"stars"`
	ResortID int64  `json:"resort_id"`
}

type MealPlanRef struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
