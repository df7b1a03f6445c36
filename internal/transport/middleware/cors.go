package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/config"
)

// CORS sets the cross-origin headers and answers preflight requests. With a
// wildcard in AllowedOrigins every response carries
// "Access-Control-Allow-Origin: *", whether or not the request had an
// Origin header.
func CORS(cfg config.CORSConfig) Middleware {
	var (
		wildcard bool
		origins  = make(map[string]bool)
	)
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			wildcard = true
		default:
			origins[o] = true
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			origin := r.Header.Get("Origin")
			switch {
			case wildcard:
				h.Set("Access-Control-Allow-Origin", "*")
			case origins[origin]:
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
