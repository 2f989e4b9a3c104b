// Package timeouts defines shared timeout constants used across the web
// service. Centralizing these values prevents drift between boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// Backend caps a single call to the record backend. There is no retry, so
// this bound is also the worst case a submitting user waits.
const Backend = 15 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
