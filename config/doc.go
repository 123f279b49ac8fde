// Package config loads a topology-generator configuration from a YAML or
// TOML file, validates it, and turns it into builder options.
//
// File shape (YAML; TOML uses the same keys):
//
//	pairs: 50
//	seed: 42                  # optional; omitted ⇒ clock seed per run
//	roles: [core, edge]
//	forbid: [[edge, edge]]    # role pairs that may not be linked
//	strict: false
//	address_prefix: [10, 0]
//	weight: {min: 1, max: 15}
//	max_role_draws: 1024
//	batch: 4
//	workers: 2
//
// Unknown keys are rejected. Validation failures wrap ErrInvalidConfig; a
// file extension other than .yaml, .yml or .toml yields ErrUnsupportedFormat.
package config
