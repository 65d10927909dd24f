// Package quality scores the loaded datasets and cross-references the two
// files. Scores run 0-10 with fixed penalties for missing cells, duplicate
// rows and uncoerced text columns; the relationship checks are read-only
// diagnostics over invoice ids and user ids.
package quality
