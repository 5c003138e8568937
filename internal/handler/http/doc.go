// Package http implements the HTTP transport of the catalog stub service.
//
// It exposes the catalog listing and operation endpoints the client talks
// to, plus request id propagation, access logging and per-client throttling
// of operation submissions.
package http
