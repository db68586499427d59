// Package endpoint provides the health and version handlers mounted by the server:
// /health and /version.
package endpoint
