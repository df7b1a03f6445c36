package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/orthography"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/lookup"
)

type lookupService interface {
	BulkSearch(ctx context.Context, q lookup.BulkQuery) (*lookup.BulkResult, error)
	SearchIndexable(ctx context.Context, terms []string) ([]lookup.Descriptor, error)
	Suggest(ctx context.Context, language, query string, limit int) ([]orthography.Suggestion, error)
}

// LookupHandler serves the public recording search endpoints.
type LookupHandler struct {
	lookup  lookupService
	timeout time.Duration
	log     *slog.Logger
}

// NewLookupHandler creates a LookupHandler. A zero timeout leaves requests
// bounded only by the server's write timeout.
func NewLookupHandler(svc lookupService, timeout time.Duration, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		lookup:  svc,
		timeout: timeout,
		log:     logger.With("handler", "lookup"),
	}
}

type suggestionResponse struct {
	Wordform string  `json:"wordform"`
	Weight   float64 `json:"weight"`
}

// BulkSearch returns the recordings of every q term. Any origin may call it,
// whatever the CORS configuration.
// GET /{language}/api/bulk_search?q=nipaw&q=wapamew&exact=false
func (h *LookupHandler) BulkSearch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	query := r.URL.Query()
	exact, err := parseFlag(query.Get("exact"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "exact must be a boolean")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	result, err := h.lookup.BulkSearch(ctx, lookup.BulkQuery{
		Language: r.PathValue("language"),
		Terms:    query["q"],
		Exact:    exact,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Search returns the recordings, in any language, of up to three
// comma-separated terms. No match is a 404.
// GET /recording/_search/{terms}
func (h *LookupHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	found, err := h.lookup.SearchIndexable(ctx, strings.Split(r.PathValue("terms"), ","))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if len(found) == 0 {
		writeError(w, http.StatusNotFound, "no recordings found")
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// Suggest ranks known transcriptions by closeness to q.
// GET /{language}/api/suggest?q=nipaw&limit=10
func (h *LookupHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	suggestions, err := h.lookup.Suggest(ctx, r.PathValue("language"), query.Get("q"), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]suggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = suggestionResponse{Wordform: s.Wordform, Weight: s.Weight}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *LookupHandler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

// parseFlag reads an optional boolean query parameter. Empty is false.
func parseFlag(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false, nil
	case "1", "true", "yes", "on":
		return true, nil
	}
	return strconv.ParseBool(v)
}
