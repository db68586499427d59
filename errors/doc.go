// Package errors provides the coded error type shared by every golinq package.
// Operators raise *AppError values whose Code names the failure kind; the
// engine and the query handle pass them through untouched so callers can
// branch on the code with Is or AsAppError.
package errors
