// Package server exposes query plans over HTTP.
//
// The server runs a Gin engine behind h2c so HTTP/1.1 and cleartext HTTP/2
// clients share one port. Middleware is applied around the whole engine:
//
//   - Recovery: panic recovery with structured logging
//   - RequestID: X-Request-Id propagation into the request context
//   - Metrics: request counters when telemetry is on
//   - BodySizeLimit: request body limit
//   - RequestLogger: request logging with duration tracking
//
// # Endpoints
//
//   - POST /v1/query: evaluate {input, plan} and answer {data, meta}
//   - GET /health: engine self-check
//   - GET /version: build version information
package server
