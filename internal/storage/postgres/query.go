package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"orion_tours/internal/domain"
)

// searchQuery carries the composed list/count pair for one FilterRecord.
// Both statements share the same join plan and WHERE clauses; the list
// statement alone adds ORDER BY and LIMIT/OFFSET.
type searchQuery struct {
	listSQL   string
	listArgs  []any
	countSQL  string
	countArgs []any
}

// whereBuilder folds optional predicates into an ordered clause list with a
// parallel argument list. Clause templates hold a %d verb for the next $N
// placeholder; filter values are only ever bound, never interpolated.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (b *whereBuilder) add(tmpl string, v any) {
	b.args = append(b.args, v)
	b.clauses = append(b.clauses, fmt.Sprintf(tmpl, len(b.args)))
}

func (b *whereBuilder) addStatic(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *whereBuilder) whereSQL() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.clauses, " AND ")
}

// buildSearchQuery translates a normalized FilterRecord into the list and
// count statements. Absent filters contribute nothing; present ones are
// ANDed in a fixed order. The requested currency is always $1 because the
// currency_rate join needs it even with no filters at all; an unmatched
// code simply joins to zero rows.
func buildSearchQuery(f domain.FilterRecord) searchQuery {
	b := &whereBuilder{args: []any{f.Currency}}

	if f.FromID != nil {
		b.add("t.departure_city_id = $%d", *f.FromID)
	}
	if f.CountryID != nil {
		b.add("t.country_id = $%d", *f.CountryID)
	}
	if f.DateFrom != nil {
		b.add("t.start_date >= $%d::date", *f.DateFrom)
	}
	if f.DateTo != nil {
		b.add("t.start_date <= $%d::date", *f.DateTo)
	}
	if f.NightsMin != nil {
		b.add("t.nights >= $%d", *f.NightsMin)
	}
	if f.NightsMax != nil {
		b.add("t.nights <= $%d", *f.NightsMax)
	}
	if f.MealPlanID != nil {
		b.add("t.meal_plan_id = $%d", *f.MealPlanID)
	}
	if f.StarsMin != nil {
		b.add("h.stars >= $%d", *f.StarsMin)
	}
	if len(f.ResortIDs) > 0 {
		b.add("t.resort_id = ANY($%d::bigint[])", pq.Array(f.ResortIDs))
	}
	if len(f.HotelIDs) > 0 {
		b.add("t.hotel_id = ANY($%d::bigint[])", pq.Array(f.HotelIDs))
	}
	if f.WithFlight != nil {
		b.add("t.with_flight = $%d", *f.WithFlight)
	}
	if f.AvailableOnly != nil && *f.AvailableOnly {
		b.addStatic("t.available = TRUE")
	}
	if f.Adults != nil {
		b.add("h.max_adults >= $%d", *f.Adults)
	}
	if f.Children != nil {
		b.add("h.max_children >= $%d", *f.Children)
	}
	// price bounds apply to the converted price, same expression the list
	// statement selects
	if f.PriceMin != nil {
		b.add("(t.price_rub / cr.rate_to_rub) >= $%d", *f.PriceMin)
	}
	if f.PriceMax != nil {
		b.add("(t.price_rub / cr.rate_to_rub) <= $%d", *f.PriceMax)
	}

	where := b.whereSQL()

	countArgs := make([]any, len(b.args))
	copy(countArgs, b.args)

	listArgs := append(b.args, f.PageSize, f.Offset())
	listSQL := fmt.Sprintf("%s\n%s\n%s\nORDER BY %s\nLIMIT $%d OFFSET $%d",
		searchSelectSQL, searchFromSQL, where,
		orderBySQL(f.Sort), len(listArgs)-1, len(listArgs))

	countSQL := fmt.Sprintf("SELECT COUNT(*) AS total\n%s\n%s", searchFromSQL, where)

	return searchQuery{
		listSQL:   listSQL,
		listArgs:  listArgs,
		countSQL:  countSQL,
		countArgs: countArgs,
	}
}

// orderBySQL maps a resolved SortKey to its ordering expression. Every key
// tie-breaks on id DESC so pagination is reproducible across equal primary
// sort values. Unrecognized keys fall back to ascending converted price.
func orderBySQL(k domain.SortKey) string {
	switch k {
	case domain.SortPriceDesc:
		return "(t.price_rub / cr.rate_to_rub) DESC, t.id DESC"
	case domain.SortPopularity:
		return "t.popularity DESC, t.id DESC"
	case domain.SortNewest:
		return "t.created_at DESC, t.id DESC"
	default:
		return "(t.price_rub / cr.rate_to_rub) ASC, t.id DESC"
	}
}
