// Package server runs the relay's HTTP server and background workers.
//
// It covers startup, signal handling, and graceful shutdown bounded by the
// configured shutdown timeout.
package server
