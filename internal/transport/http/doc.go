// Package http contains the HTTP handlers for the dashboard API. Handlers
// validate their inputs, delegate to the data and metrics layers, and render
// JSON with go-chi/render; they hold no business logic of their own.
package http
