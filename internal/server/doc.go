// Package server runs the account HTTP server, including startup, signal
// handling and graceful shutdown.
package server
