package delivery

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// AnonKeyMiddleware admits requests carrying "Authorization: Bearer <key>".
// Websocket clients cannot set headers and pass the key as ?apikey=.
func AnonKeyMiddleware(anonKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
			if token == "" {
				token = r.URL.Query().Get("apikey")
			}
			if token == "" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing authorization"})
				return
			}
			if subtle.ConstantTimeCompare([]byte(token), []byte(anonKey)) != 1 {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid authorization"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
