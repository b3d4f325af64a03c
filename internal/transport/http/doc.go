// Package http provides the HTTP transport layer for the dashboard API.
// Handlers parse and validate filter query parameters, delegate to the
// dashboard services, and render JSON with go-chi/render. Pipeline errors
// are mapped to API errors in one place (errors.FromAppError): load
// failures become 503, schema mismatches 422.
package http
