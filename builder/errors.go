// SPDX-License-Identifier: MIT
// Package: ripnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` and a method tag.
//   • Generation MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Silent outcomes (NOT errors):
//   • Address collisions in the pair phase: the iteration is skipped.
//   • Repair steps where no pairing is allowed by the policy: no edge is added.
//   Both are counted in Stats and logged at debug level.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPairs indicates a negative node-pair count.
// Usage: if errors.Is(err, ErrTooFewPairs) { /* report invalid size */ }.
var ErrTooFewPairs = errors.New("builder: node-pair count too small")

// ErrRolePolicyUnsatisfiable indicates the role-pair draw was rejected by the
// ConnectionPolicy maxRoleDraws times in a row. With a policy that accepts no
// pair of the configured roles this is the only way the draw loop can end.
// Usage: if errors.Is(err, ErrRolePolicyUnsatisfiable) { /* relax policy */ }.
var ErrRolePolicyUnsatisfiable = errors.New("builder: connection policy rejected every role draw")

// ErrEmptyTopology indicates that strict mode was requested and the pair phase
// produced no initial edge (zero pairs requested, or every iteration collided).
// Usage: if errors.Is(err, ErrEmptyTopology) { /* retry with more pairs */ }.
var ErrEmptyTopology = errors.New("builder: topology has no edges")

// ErrConstructFailed indicates that the underlying core.Topology refused a
// mutation (bad weight from a custom WeightFn, empty address from a custom
// AddressFn, ...). The core sentinel is preserved in the chain.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect custom strategies */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a configuration value that could not be turned
// into a BuilderOption (e.g., an unknown role label coming from a config file).
// Option constructors themselves panic on meaningless values; this sentinel is
// for validations that must surface as errors instead.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// wrapf prefixes err with the method tag and a formatted message while keeping
// both sentinel (outer) and cause (inner) reachable via errors.Is.
// Result: "<method>: <msg>: <sentinel>: <cause>".
func wrapf(method string, sentinel, cause error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("%s: %s: %w", method, msg, sentinel)
	}

	return fmt.Errorf("%s: %s: %w: %w", method, msg, sentinel, cause)
}
