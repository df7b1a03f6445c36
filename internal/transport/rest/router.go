package rest

import (
	"net/http"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/transport/middleware"
)

// Handlers are the endpoint groups mounted by NewRouter. A nil Admin leaves
// the operator endpoints unmounted; nil Audio and Metrics likewise.
type Handlers struct {
	Lookup *LookupHandler
	Stats  *StatsHandler
	Admin  *AdminHandler
	Health *HealthHandler
	// Audio serves compressed recordings by blob ref under /recording/audio/.
	Audio   http.Handler
	Metrics http.Handler
}

// RouterOptions are the middleware applied per route group.
type RouterOptions struct {
	// Public wraps the lookup and statistics endpoints.
	Public middleware.Middleware
	// Operator wraps the admin endpoints.
	Operator middleware.Middleware
}

// NewRouter builds the ServeMux of the API.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	public := orIdentity(opts.Public)
	operator := orIdentity(opts.Operator)

	mux := http.NewServeMux()

	mux.Handle("GET /{language}/api/bulk_search", public(http.HandlerFunc(h.Lookup.BulkSearch)))
	mux.Handle("GET /{language}/api/suggest", public(http.HandlerFunc(h.Lookup.Suggest)))
	mux.Handle("GET /recording/_search/{terms}", public(http.HandlerFunc(h.Lookup.Search)))
	mux.Handle("GET /{language}/api/stats", public(http.HandlerFunc(h.Stats.Language)))

	if h.Admin != nil {
		mux.Handle("POST /admin/phrases/merge", operator(http.HandlerFunc(h.Admin.Merge)))
		mux.Handle("POST /admin/{language}/automerge", operator(http.HandlerFunc(h.Admin.AutoMerge)))
	}

	if h.Audio != nil {
		mux.Handle("GET /recording/audio/", http.StripPrefix("/recording/audio/", public(h.Audio)))
	}

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	return mux
}

func orIdentity(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
