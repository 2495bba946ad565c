// Package routes wires the JSON API in front of the inventory cache engine.
package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/nmoreno/steamvault/internal/http/middleware"
	"github.com/nmoreno/steamvault/internal/inventory"
	"github.com/nmoreno/steamvault/internal/steam"
)

type Server struct {
	Router *chi.Mux
	Inv    *inventory.Service
	Log    zerolog.Logger
}

type ServerOptions struct {
	Inv            *inventory.Service
	Log            zerolog.Logger
	PriceRateLimit int
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	s := &Server{Router: r, Inv: opts.Inv, Log: opts.Log}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			s.Log.Error().Err(err).Msg("write health check response")
		}
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/inventory/{steamid}", s.handleInventory)
		api.With(middleware.PriceThrottle(opts.PriceRateLimit)).Get("/item-price", s.handleItemPrice)
		api.Get("/inventory-search-cache/{steamid}", s.handleSearchCache)
		api.Get("/inventory-search/{steamid}", s.handleSearchLive)
	})

	return s
}

type inventoryResponse struct {
	Total       int              `json:"total"`
	Items       []inventory.Item `json:"items"`
	MoreItems   bool             `json:"more_items"`
	LastAssetID *string          `json:"last_assetid"`
}

type searchResponse struct {
	Total     int              `json:"total"`
	Items     []inventory.Item `json:"items"`
	FromCache bool             `json:"from_cache"`
}

type priceUnavailableResponse struct {
	LowestPrice *string `json:"lowest_price"`
	MedianPrice *string `json:"median_price"`
	Volume      *string `json:"volume"`
	Message     string  `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	steamID := chi.URLParam(r, "steamid")

	// unparseable or sub-1 per_page falls back to the engine default;
	// oversized values are clamped to the upstream maximum
	perPage := 0
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			if n > 100 {
				n = 100
			}
			perPage = n
		}
	}
	cursor := r.URL.Query().Get("start_assetid")

	page, err := s.Inv.GetPage(r.Context(), steamID, perPage, cursor)
	if err != nil {
		if !errors.Is(err, inventory.ErrUnavailable) {
			s.Log.Error().Err(err).Str("steam_id", steamID).Msg("get inventory page")
		}
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Inventario vacío o no disponible"})
		return
	}

	resp := inventoryResponse{
		Total:     len(page.Items),
		Items:     page.Items,
		MoreItems: page.HasMore,
	}
	if page.NextCursor != "" {
		resp.LastAssetID = &page.NextCursor
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleItemPrice(w http.ResponseWriter, r *http.Request) {
	marketName := r.URL.Query().Get("market_name")
	if marketName == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Falta market_name"})
		return
	}

	res := s.Inv.GetPrice(r.Context(), marketName)
	if !res.Available {
		s.writeJSON(w, http.StatusOK, priceUnavailableResponse{Message: "Precio no disponible"})
		return
	}
	s.writeJSON(w, http.StatusOK, res.Overview)
}

func (s *Server) handleSearchCache(w http.ResponseWriter, r *http.Request) {
	res := s.Inv.SearchCached(chi.URLParam(r, "steamid"), r.URL.Query().Get("q"))
	s.writeSearch(w, res)
}

func (s *Server) handleSearchLive(w http.ResponseWriter, r *http.Request) {
	res := s.Inv.SearchLive(r.Context(), chi.URLParam(r, "steamid"), r.URL.Query().Get("q"))
	s.writeSearch(w, res)
}

func (s *Server) writeSearch(w http.ResponseWriter, res inventory.SearchResult) {
	items := res.Items
	if items == nil {
		items = []inventory.Item{}
	}
	s.writeJSON(w, http.StatusOK, searchResponse{
		Total:     len(items),
		Items:     items,
		FromCache: res.FromCache,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error().Err(err).Msg("encode response")
	}
}

// compile-time check that the concrete client satisfies the engine's
// upstream boundary
var _ inventory.Source = (*steam.Client)(nil)
