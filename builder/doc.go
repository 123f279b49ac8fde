// Package builder generates randomized router topologies for RIP simulation
// runs. It lives on top of core, which holds the node/edge container, and
// keeps every generation knob in one functional-options configuration.
//
// Generation has two phases:
//
//   - Pair phase: numNodePairs iterations, each drawing two addresses. If
//     either address is already allocated the iteration is skipped silently;
//     otherwise two nodes with policy-approved roles are created and linked
//     by one weighted edge (an "initial edge").
//   - Repair phase ("stitch"): initial edges are walked in creation order and
//     each consecutive pair is linked by one extra edge between the first
//     endpoint pairing (XX, XY, YX, YY) the ConnectionPolicy allows.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, strategies, policy, logger, metrics.
//   - Address draws (AddressFn implementations):
//     – DefaultAddressFn:  "a.b.c.d", each octet uniform in [0,255).
//     – PrefixAddressFn:   fixed leading octets, random tail.
//     – FixedAddressFn:    always the same address (collision fixtures).
//   - Edge-weight draws (WeightFn implementations):
//     – NonZeroWeightFn:   uniform in [0,100), redrawn while 0.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform in [min,max].
//   - Roles:
//     – RoleFn / UniformRoleFn: pick a label from the configured set.
//     – ConnectionPolicy / AllowAll / ForbidPairs: role compatibility.
//   - Entry points:
//     – NewNetworkGraph:   one topology.
//     – GenerateBatch:     many independent topologies on a worker pool.
//
// Guarantees:
//
//   - Address uniqueness within a generator and within its topology.
//   - Every initial edge joins two nodes created in the same iteration.
//   - Weights lie in [1,99]; no self-loops.
//   - Reproducible output for a fixed seed and option list.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     runtime failures are sentinel errors (errors.Is).
//
// Connectivity is best effort: with AllowAll and a private topology the
// result is a single component whenever at least one pair succeeded; a
// restrictive policy may leave it fragmented (see NetworkGraph.Components).
// NetworkGraph.Diameter tells whether RIP can span the result at all.
//
// A failed run leaves no trace: the nodes it added, and with them its edges,
// are removed again, which matters when the topology is shared.
package builder
