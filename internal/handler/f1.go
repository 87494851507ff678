package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"f1proxy/internal/offline"
	"f1proxy/pkg/ergast"
)

const (
	defaultSeasonsLimit  = 80
	defaultSeasonsOffset = 0
)

// F1Handler serves the read-only passthrough endpoints backed by the Ergast
// API. Each request triggers exactly one upstream call; when the upstream is
// unreachable every endpoint answers with its offline substitute instead.
type F1Handler struct {
	ergast *ergast.Client
	logger *slog.Logger
}

func NewF1Handler(client *ergast.Client, logger *slog.Logger) *F1Handler {
	return &F1Handler{ergast: client, logger: logger}
}

type SeasonsResponse struct {
	Count int   `json:"count"`
	Items []any `json:"items"`
}

type SeasonItemsResponse struct {
	Season  int   `json:"season"`
	Count   int   `json:"count"`
	Items   []any `json:"items"`
	Offline bool  `json:"offline,omitempty"`
}

type ResultsResponse struct {
	Season  int   `json:"season"`
	Round   int   `json:"round"`
	Count   int   `json:"count"`
	Items   []any `json:"items"`
	Offline bool  `json:"offline,omitempty"`
}

func (h *F1Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", defaultSeasonsLimit)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", defaultSeasonsOffset)
	if !ok {
		return
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	data, err := h.ergast.Fetch(r.Context(), "seasons", params)
	if err != nil {
		if isUnavailable(err) {
			respondJSON(w, http.StatusOK, offline.Seasons(limit, offset))
			return
		}
		h.respondUpstreamError(w, err)
		return
	}

	seasons := ergast.Table(data, "SeasonTable", "Seasons")
	respondJSON(w, http.StatusOK, SeasonsResponse{Count: len(seasons), Items: seasons})
}

func (h *F1Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	h.listSeasonResource(w, r, "drivers", "DriverTable", "Drivers")
}

func (h *F1Handler) ListConstructors(w http.ResponseWriter, r *http.Request) {
	h.listSeasonResource(w, r, "constructors", "ConstructorTable", "Constructors")
}

func (h *F1Handler) ListRaces(w http.ResponseWriter, r *http.Request) {
	// The race calendar lives at the bare season path upstream.
	h.listSeasonResource(w, r, "", "RaceTable", "Races")
}

func (h *F1Handler) listSeasonResource(w http.ResponseWriter, r *http.Request, subpath, table, list string) {
	season, ok := pathInt(w, r, "season")
	if !ok {
		return
	}

	endpoint := strconv.Itoa(season)
	if subpath != "" {
		endpoint += "/" + subpath
	}

	data, err := h.ergast.Fetch(r.Context(), endpoint, nil)
	if err != nil {
		if isUnavailable(err) {
			respondJSON(w, http.StatusOK, SeasonItemsResponse{
				Season:  season,
				Items:   []any{},
				Offline: true,
			})
			return
		}
		h.respondUpstreamError(w, err)
		return
	}

	items := ergast.Table(data, table, list)
	respondJSON(w, http.StatusOK, SeasonItemsResponse{
		Season: season,
		Count:  len(items),
		Items:  items,
	})
}

func (h *F1Handler) RaceResults(w http.ResponseWriter, r *http.Request) {
	season, ok := pathInt(w, r, "season")
	if !ok {
		return
	}
	round, ok := pathInt(w, r, "round")
	if !ok {
		return
	}

	data, err := h.ergast.Fetch(r.Context(), fmt.Sprintf("%d/%d/results", season, round), nil)
	if err != nil {
		if isUnavailable(err) {
			respondJSON(w, http.StatusOK, ResultsResponse{
				Season:  season,
				Round:   round,
				Items:   []any{},
				Offline: true,
			})
			return
		}
		h.respondUpstreamError(w, err)
		return
	}

	// The round's results hang off the first race entry; an empty race list
	// means no results, not an error.
	races := ergast.Table(data, "RaceTable", "Races")
	results := []any{}
	if len(races) > 0 {
		if race, ok := races[0].(map[string]any); ok {
			if list, ok := race["Results"].([]any); ok {
				results = list
			}
		}
	}

	respondJSON(w, http.StatusOK, ResultsResponse{
		Season: season,
		Round:  round,
		Count:  len(results),
		Items:  results,
	})
}

func (h *F1Handler) respondUpstreamError(w http.ResponseWriter, err error) {
	var upstream *ergast.UpstreamError
	if errors.As(err, &upstream) {
		respondError(w, http.StatusBadGateway, fmt.Sprintf("Upstream error %d", upstream.Status))
		return
	}
	h.logger.Error("upstream request failed", "error", err)
	respondError(w, http.StatusBadGateway, "upstream error")
}

func isUnavailable(err error) bool {
	var unavailable *ergast.UnavailableError
	return errors.As(err, &unavailable)
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, defaultVal int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid "+key+" parameter: must be an integer")
		return 0, false
	}
	return v, true
}

func pathInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	v, err := strconv.Atoi(r.PathValue(key))
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid "+key+": must be an integer")
		return 0, false
	}
	return v, true
}
