// Package app provides application initialization and lifecycle management.
//
// The App type wires all dependencies together and manages:
// - Status page template parsing
// - HTTP handler and middleware setup
// - HTTP server lifecycle
// - Graceful shutdown
package app
