// Package version reports the build identity of the golinq binaries.
//
// Release builds stamp the variables with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/golinq/version.Version=v1.2.0" ./cmd/linq
//
// Unstamped builds fall back to the VCS settings the Go toolchain embeds.
package version
