package middleware

import (
	"net/http"

	"github.com/agromarket-cm/agromarket/internal/domain"
)

// DefaultMaxBodyBytes caps request bodies. Every write endpoint takes a
// small JSON document, so 64 KiB leaves generous headroom.
const DefaultMaxBodyBytes = 64 << 10

// BodyLimit rejects request bodies larger than maxBytes. A non-positive
// maxBytes falls back to DefaultMaxBodyBytes.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				respondWithError(w, r, domain.Errorf(domain.EINVALID, "", "Request body too large"))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
