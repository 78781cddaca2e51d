package postgres

// -----------------------------------------------------------------------------
// SEARCH
// -----------------------------------------------------------------------------

// Columns for one result card: tour fields, converted price, and the joined
// display names. The price expression must stay identical to the one used in
// the price predicates (see query.go).
const searchSelectSQL = `
SELECT
  t.id, t.title, t.start_date, t.nights,
  (t.price_rub / cr.rate_to_rub) AS price,
  cr.code AS currency,
  t.with_flight, t.available, t.is_hot, t.popularity,
  c.name AS country, r.name AS resort,
  h.name AS hotel, h.stars,
  mp.code AS meal_code, mp.name AS meal_name,
  t.photos`

// Shared join plan for the list and count statements. currency_rate joins on
// the bound currency code ($1); a code with no rate row yields an empty set.
const searchFromSQL = `FROM tour t
JOIN hotel h ON h.id = t.hotel_id
JOIN country c ON c.id = t.country_id
JOIN resort r ON r.id = t.resort_id
JOIN meal_plan mp ON mp.id = t.meal_plan_id
JOIN currency_rate cr ON cr.code = $1`

// -----------------------------------------------------------------------------
// REFERENCE LISTS
// -----------------------------------------------------------------------------

const listDeparturesSQL = `
SELECT id, name FROM departure_city ORDER BY name`

const listCountriesSQL = `
SELECT id, name FROM country ORDER BY name`

const listResortsSQL = `
SELECT id, name
FROM resort
WHERE ($1::bigint IS NULL OR country_id = $1::bigint)
ORDER BY name`

const listHotelsSQL = `
SELECT id, name, stars, resort_id
FROM hotel
WHERE ($1::bigint[] IS NULL OR resort_id = ANY($1::bigint[]))
ORDER BY stars DESC, name`

const listMealPlansSQL = `
SELECT id, code, name FROM meal_plan ORDER BY id`

// -----------------------------------------------------------------------------
// SEEDING (cmd/seeder only; the API itself never writes)
// -----------------------------------------------------------------------------

const upsertCountrySQL = `
INSERT INTO country (id, name) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

const upsertDepartureCitySQL = `
INSERT INTO departure_city (id, name) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`

const upsertResortSQL = `
INSERT INTO resort (id, name, country_id) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, country_id = EXCLUDED.country_id`

const upsertHotelSQL = `
INSERT INTO hotel (id, name, stars, resort_id, max_adults, max_children)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
  name         = EXCLUDED.name,
  stars        = EXCLUDED.stars,
  resort_id    = EXCLUDED.resort_id,
  max_adults   = EXCLUDED.max_adults,
  max_children = EXCLUDED.max_children`

const upsertMealPlanSQL = `
INSERT INTO meal_plan (id, code, name) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET code = EXCLUDED.code, name = EXCLUDED.name`

const upsertCurrencyRateSQL = `
INSERT INTO currency_rate (code, rate_to_rub) VALUES ($1, $2)
ON CONFLICT (code) DO UPDATE SET rate_to_rub = EXCLUDED.rate_to_rub`

const upsertTourSQL = `
INSERT INTO tour
  (id, title, departure_city_id, country_id, resort_id, hotel_id, meal_plan_id,
   start_date, nights, price_rub, with_flight, available, is_hot, popularity, photos)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE SET
  title             = EXCLUDED.title,
  departure_city_id = EXCLUDED.departure_city_id,
  country_id        = EXCLUDED.country_id,
  resort_id         = EXCLUDED.resort_id,
  hotel_id          = EXCLUDED.hotel_id,
  meal_plan_id      = EXCLUDED.meal_plan_id,
  start_date        = EXCLUDED.start_date,
  nights            = EXCLUDED.nights,
  price_rub         = EXCLUDED.price_rub,
  with_flight       = EXCLUDED.with_flight,
  available         = EXCLUDED.available,
  is_hot            = EXCLUDED.is_hot,
  popularity        = EXCLUDED.popularity,
  photos            = EXCLUDED.photos`
