package middleware

import "net/http"

// ContentTypeJSON sets the Content-Type header to application/json unless a
// handler already set one (problem responses use application/problem+json).
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}
