package app

import (
	"math"
	"strconv"
	"strings"

	"orion_tours/internal/domain"
)

const (
	defaultPageSize = 12
	maxPageSize     = 60
)

// NormalizeFilters converts a loosely-typed key/value mapping (decoded JSON
// body or flattened query string) into a FilterRecord. Malformed or missing
// fields degrade to "no constraint"; this function never fails.
//
// Zero is folded into "absent" for the plain integer filters, matching the
// upstream contract. Children and the price bounds keep an explicit zero.
func NormalizeFilters(raw map[string]any) domain.FilterRecord {
	f := domain.FilterRecord{
		Page:     1,
		PageSize: defaultPageSize,
		Currency: pickCurrency(raw["currency"]),
		Sort:     pickSort(raw["sort"]),
	}

	if p := intOrNil(raw["page"]); p != nil && *p > 1 {
		f.Page = *p
	}
	if ps := intOrNil(raw["pageSize"]); ps != nil && *ps != 0 {
		n := *ps
		if n < 1 {
			n = 1
		}
		if n > maxPageSize {
			n = maxPageSize
		}
		f.PageSize = n
	}

	f.FromID = nonZero(intOrNil(raw["fromId"]))
	f.CountryID = nonZero(intOrNil(raw["countryId"]))
	f.DateFrom = strOrNil(raw["dateFrom"])
	f.DateTo = strOrNil(raw["dateTo"])
	f.NightsMin = nonZero(intOrNil(raw["nightsMin"]))
	f.NightsMax = nonZero(intOrNil(raw["nightsMax"]))
	f.Adults = nonZero(intOrNil(raw["adults"]))
	f.Children = intOrNil(raw["children"]) // explicit 0 means "no children"
	f.StarsMin = nonZero(intOrNil(raw["starsMin"]))
	f.MealPlanID = nonZero(intOrNil(raw["mealPlanId"]))
	f.PriceMin = floatOrNil(raw["priceMin"])
	f.PriceMax = floatOrNil(raw["priceMax"])
	f.ResortIDs = ParseIDList(raw["resortIds"])
	f.HotelIDs = ParseIDList(raw["hotelIds"])
	f.WithFlight = boolOrNil(raw["withFlight"])
	f.AvailableOnly = boolOrNil(raw["availableOnly"])

	return f
}

// ParseIDList accepts a comma-joined string or a list of scalars and returns
// the numeric entries, dropping everything else silently.
func ParseIDList(v any) []int64 {
	out := []int64{}
	switch vv := v.(type) {
	case nil:
	case []int64:
		out = append(out, vv...)
	case []any:
		for _, e := range vv {
			if n := intOrNil(e); n != nil {
				out = append(out, int64(*n))
			}
		}
	default:
		s, ok := scalarString(v)
		if !ok {
			return out
		}
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if n, err := strconv.ParseInt(part, 10, 64); err == nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func intOrNil(v any) *int {
	switch vv := v.(type) {
	case int:
		n := vv
		return &n
	case int64:
		n := int(vv)
		return &n
	case float64:
		if math.IsNaN(vv) || math.IsInf(vv, 0) {
			return nil
		}
		n := int(vv)
		return &n
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return &n
		}
	}
	return nil
}

func floatOrNil(v any) *float64 {
	switch vv := v.(type) {
	case int:
		f := float64(vv)
		return &f
	case int64:
		f := float64(vv)
		return &f
	case float64:
		if math.IsNaN(vv) || math.IsInf(vv, 0) {
			return nil
		}
		f := vv
		return &f
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f
		}
	}
	return nil
}

func boolOrNil(v any) *bool {
	switch vv := v.(type) {
	case bool:
		b := vv
		return &b
	case string:
		switch strings.ToLower(strings.TrimSpace(vv)) {
		case "true":
			b := true
			return &b
		case "false":
			b := false
			return &b
		}
	}
	return nil
}

func strOrNil(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}

// nonZero folds an explicit 0 into "absent".
func nonZero(p *int) *int {
	if p == nil || *p == 0 {
		return nil
	}
	return p
}

func scalarString(v any) (string, bool) {
	switch vv := v.(type) {
	case string:
		return vv, true
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64), true
	case int:
		return strconv.Itoa(vv), true
	case int64:
		return strconv.FormatInt(vv, 10), true
	}
	return "", false
}

func pickCurrency(v any) string {
	s, _ := v.(string)
	if strings.ToLower(s) == "usd" {
		return "usd"
	}
	return "rub"
}

func pickSort(v any) domain.SortKey {
	s, _ := v.(string)
	switch domain.SortKey(s) {
	case domain.SortPriceDesc, domain.SortPopularity, domain.SortNewest:
		return domain.SortKey(s)
	default:
		return domain.SortPriceAsc
	}
}
