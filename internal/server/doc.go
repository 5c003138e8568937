// Package server runs the stub service: its HTTP listener and background
// workers, with signal handling and graceful shutdown.
package server
