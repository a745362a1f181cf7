package middleware

import (
	"fmt"
	"net/http"

	"github.com/acmelabs/storefront-api/api/responses"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

// Recoverer converts panics into 500 envelopes so no request ever ends in
// a raw fault.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic: %v", rec)
					responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
