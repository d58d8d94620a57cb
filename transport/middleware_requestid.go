package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-management/constant"
	utilsContext "github.com/muhammadheryan/inventory-management/utils/context"
)

// RequestIDMiddleware keeps the caller's X-Request-ID or mints one, stores it in the
// request context and echoes it back.
func RequestIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(constant.RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(constant.RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(utilsContext.WithRequestID(r.Context(), id)))
		})
	}
}
