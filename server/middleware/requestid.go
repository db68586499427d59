package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/validation"
)

// HeaderRequestID carries the request ID on requests and responses.
const HeaderRequestID = "X-Request-Id"

// RequestID keeps a client-supplied X-Request-Id when it is a UUID and
// generates one otherwise. The ID is echoed on the response and stored in
// the request context for loggers and tracers.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" || validation.New().OptionalUUID("request_id", id).HasErrors() {
				id = uuid.New().String()
			}
			r.Header.Set(HeaderRequestID, id)
			w.Header().Set(HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(logger.ContextWithRequestID(r.Context(), id)))
		})
	}
}
