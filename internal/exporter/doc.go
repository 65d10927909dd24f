// Package exporter writes metric snapshots to CSV and Excel files under the
// configured reports directory, and holds the display-only compact currency
// formatter. Exports render the snapshot; they never recompute it.
package exporter
