// Package handler implements HTTP request handlers.
//
// This package provides the service's HTTP surface:
// - /: HTML status page with hostname, time, port and environment
// - /api/health: health check endpoint
// - /api/info: system information endpoint
// - /api/status: simple status check
//
// Unmatched routes and recovered panics are converted to a fixed JSON
// error envelope at the router boundary.
package handler
