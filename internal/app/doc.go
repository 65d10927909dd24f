// Package app assembles the dashboard service: configuration, logging, the
// dataset loader, the metrics calculator and the chi router with its
// middleware chain, plus graceful startup and shutdown.
package app
