package httpserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"orion_tours/internal/app"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]bool{"ok": true})
	})

	s.mux.Get("/api/tours", h.searchToursQuery)
	s.mux.Post("/api/tours/search", h.searchToursBody)

	s.mux.Get("/api/meta/departures", h.listDepartures)
	s.mux.Get("/api/meta/countries", h.listCountries)
	s.mux.Get("/api/meta/resorts", h.listResorts)
	s.mux.Get("/api/meta/hotels", h.listHotels)
	s.mux.Post("/api/meta/hotels", h.listHotelsBody)
	s.mux.Get("/api/meta/meal-plans", h.listMealPlans)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// fail reports an operation-level failure under its stable code. Internal
// detail is logged, never returned.
func fail(w http.ResponseWriter, opCode string, err error) {
	log.Error().Err(err).Str("op", opCode).Msg("operation failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Error", opCode)
}

// rawFromValues flattens a query string into the key/value shape the
// normalizer accepts; first value wins on repeats, like the upstream API.
func rawFromValues(vals url.Values) map[string]any {
	raw := make(map[string]any, len(vals))
	for k, vs := range vals {
		if len(vs) > 0 {
			raw[k] = vs[0]
		}
	}
	return raw
}

func (h *Handlers) searchToursQuery(w http.ResponseWriter, r *http.Request) {
	f := app.NormalizeFilters(rawFromValues(r.URL.Query()))
	page, err := h.Q.SearchTours(r.Context(), f)
	if err != nil {
		fail(w, "tours_failed", err)
		return
	}
	writeJSON(w, page)
}

func (h *Handlers) searchToursBody(w http.ResponseWriter, r *http.Request) {
	raw := map[string]any{}
	// malformed filter input degrades to "no constraints", never an error
	_ = json.NewDecoder(r.Body).Decode(&raw)

	f := app.NormalizeFilters(raw)
	page, err := h.Q.SearchTours(r.Context(), f)
	if err != nil {
		fail(w, "tours_failed", err)
		return
	}
	writeJSON(w, page)
}

func (h *Handlers) listDepartures(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListDepartures(r.Context())
	if err != nil {
		fail(w, "departures_failed", err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) listCountries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListCountries(r.Context())
	if err != nil {
		fail(w, "countries_failed", err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) listResorts(w http.ResponseWriter, r *http.Request) {
	var countryID *int
	if s := r.URL.Query().Get("countryId"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			countryID = &n
		}
	}
	out, err := h.Q.ListResorts(r.Context(), countryID)
	if err != nil {
		fail(w, "resorts_failed", err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	ids := app.ParseIDList(r.URL.Query().Get("resortIds"))
	out, err := h.Q.ListHotels(r.Context(), ids)
	if err != nil {
		fail(w, "hotels_failed", err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) listHotelsBody(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	out, err := h.Q.ListHotels(r.Context(), app.ParseIDList(body["resortIds"]))
	if err != nil {
		fail(w, "hotels_failed", err)
		return
	}
	writeJSON(w, out)
}

func (h *Handlers) listMealPlans(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListMealPlans(r.Context())
	if err != nil {
		fail(w, "meal_plans_failed", err)
		return
	}
	writeJSON(w, out)
}
