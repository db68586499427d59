package middleware

import (
	"net/http"
	"time"

	"github.com/kbukum/golinq/observability"
)

// Metrics records in-flight count, total and duration of every request on
// m. A nil m disables recording.
func Metrics(m *observability.QueryMetrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			m.RecordRequestStart(ctx)
			sw := newStatusWriter(w)
			defer func() {
				m.RecordRequestEnd(ctx, r.URL.Path, sw.status, time.Since(start))
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
