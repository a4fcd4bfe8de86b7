package middlewares

import (
	"net/http"
	"strings"

	"github.com/kahawa/coffee-balancing/appctx"
)

func SetContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// SessionTokenMiddleware extracts the bearer token into the request
// context. Whether a session actually exists is checked once per report
// load by the data source.
func SessionTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			r = r.WithContext(appctx.WithToken(r.Context(), strings.TrimPrefix(auth, "Bearer ")))
		}
		next.ServeHTTP(w, r)
	})
}
