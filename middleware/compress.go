package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CompressHandler gzips responses for clients that accept it. PDF
// downloads pass through untouched; gofpdf output is already compressed.
func CompressHandler(next http.Handler) http.Handler {
	compressed := handlers.CompressHandler(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Report-Download") != "" {
			next.ServeHTTP(w, r)
			return
		}
		compressed.ServeHTTP(w, r)
	})
}
