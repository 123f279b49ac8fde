// Package metrics exposes Prometheus collectors for topology generation.
//
// A Registry owns its own *prometheus.Registry, so tests and parallel
// simulation sweeps never collide on global registration. Attach it to a
// generator with builder.WithMetrics; scrape it through Gatherer().
//
// Collected series (prefix ripnet_):
//
//	generations_total{status}           runs by outcome (success|error)
//	generation_duration_seconds         wall time per run
//	pairs_attempted_total               pair-phase iterations
//	address_collisions_total            iterations skipped on address reuse
//	edges_total{phase}                  edges created (initial|repair)
//	repair_skipped_total                repair steps with no allowed pairing
//	nodes_added_total                   nodes added by successful runs
//	topology_nodes                      size of the topology last written to
package metrics
