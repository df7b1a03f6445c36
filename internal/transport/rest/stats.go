package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

type statsService interface {
	ForLanguage(ctx context.Context, slug string) (*domain.LanguageStats, error)
}

// StatsHandler serves corpus statistics.
type StatsHandler struct {
	stats statsService
	log   *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(stats statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{stats: stats, log: logger.With("handler", "stats")}
}

// Language returns the statistics of one language variant.
// GET /{language}/api/stats
func (h *StatsHandler) Language(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.ForLanguage(r.Context(), r.PathValue("language"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
