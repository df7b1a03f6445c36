package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/service/merge"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/pkg/ctxutil"
)

type mergeService interface {
	Merge(ctx context.Context, input merge.MergeInput) (*merge.MergeResult, error)
	AutoMerge(ctx context.Context, languageSlug string, userID *uuid.UUID) (*merge.AutoMergeResult, error)
}

// AdminHandler serves the operator endpoints. Every route is mounted behind
// middleware.RequireOperator.
type AdminHandler struct {
	merge mergeService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc mergeService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		merge: svc,
		log:   logger.With("handler", "admin"),
	}
}

type mergeRequest struct {
	Destination int64   `json:"destination"`
	Sources     []int64 `json:"sources"`
	Deep        bool    `json:"deep"`
}

// Merge folds source phrases into a destination phrase.
// POST /admin/phrases/merge
func (h *AdminHandler) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.merge.Merge(r.Context(), merge.MergeInput{
		Destination: req.Destination,
		Sources:     req.Sources,
		Deep:        req.Deep,
		UserID:      ctxutil.OperatorRef(r.Context()),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AutoMerge merges every safely mergeable duplicate in a language.
// POST /admin/{language}/automerge
func (h *AdminHandler) AutoMerge(w http.ResponseWriter, r *http.Request) {
	result, err := h.merge.AutoMerge(r.Context(), r.PathValue("language"), ctxutil.OperatorRef(r.Context()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
