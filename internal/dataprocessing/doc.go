// Package dataprocessing loads the funding invoice and credit note CSV
// exports into memory. Loading is deliberately tolerant: unparseable dates
// and amounts become missing markers rather than errors, status codes are
// normalized to canonical labels, and the raw text of every cell is kept so
// quality analysis can inspect the dataset exactly as it arrived.
package dataprocessing
