// Package metrics derives dashboard figures from the loaded datasets.
// Aggregation is deterministic and stateless: filters are applied first, the
// calculator then works only from what it is given, and every monetary
// aggregate is rounded to cents at the point of computation.
package metrics
