package domain

// SortKey is the closed set of result orderings. It is resolved once at
// normalization time; the storage layer maps each key to its ORDER BY
// expression, so no raw sort string ever reaches SQL assembly.
type SortKey string

const (
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortPopularity SortKey = "popularity"
	SortNewest     SortKey = "newest"
)

// FilterRecord is the normalized, fully-typed form of one search request.
// Pointer fields are nil when the filter was absent or unparseable; a nil
// field contributes no predicate. Page/PageSize/Currency/Sort always hold
// valid values after normalization.
type FilterRecord struct {
	Page     int
	PageSize int
	Currency string // "rub" | "usd"
	Sort     SortKey

	FromID     *int
	CountryID  *int
	DateFrom   *string // YYYY-MM-DD, lexical only
	DateTo     *string
	NightsMin  *int
	NightsMax  *int
	Adults     *int
	Children   *int // 0 is a meaningful explicit value here
	StarsMin   *int
	MealPlanID *int
	PriceMin   *float64 // bounds in the requested currency
	PriceMax   *float64

	ResortIDs []int64
	HotelIDs  []int64

	WithFlight    *bool
	AvailableOnly *bool
}

// Offset is the row offset implied by Page/PageSize (1-indexed pages).
func (f FilterRecord) Offset() int { return (f.Page - 1) * f.PageSize }
