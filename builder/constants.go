// Package builder defines shared constants used by the topology generator,
// ensuring consistent defaults and validation across both phases.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors and log records with the phase name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNetworkGraph is the canonical name for the NewNetworkGraph entry point.
	MethodNetworkGraph = "NetworkGraph"
	// MethodPairs is the canonical name for the pair-generation phase.
	MethodPairs = "Pairs"
	// MethodStitch is the canonical name for the connectivity-repair phase.
	MethodStitch = "Stitch"
	// MethodGenerateBatch is the canonical name for the batch entry point.
	MethodGenerateBatch = "GenerateBatch"
)

//-----------------------------------------------------------------------------
// Address Defaults
//-----------------------------------------------------------------------------

// AddressOctets is the number of dotted components in a generated address.
const AddressOctets = 4

// OctetBound is the exclusive upper bound for each drawn octet: [0, 255).
const OctetBound = 255

// AddressSeparator joins octets.
const AddressSeparator = "."

//-----------------------------------------------------------------------------
// Weight Defaults
//-----------------------------------------------------------------------------

// WeightBound is the exclusive upper bound of the raw weight draw [0, 100).
// Zero is rejected, so weights land in [1, 99].
const WeightBound = 100

//-----------------------------------------------------------------------------
// Generation Bounds
//-----------------------------------------------------------------------------

// MinNodePairs is the smallest accepted node-pair count. Zero is valid and
// yields an empty topology unless strict mode is on.
const MinNodePairs = 0

// DefaultMaxRoleDraws bounds the role-pair draw loop. A permissive policy
// always succeeds on the first draw.
const DefaultMaxRoleDraws = 1024

// DefaultBatchWorkers is the pool size used by GenerateBatch when workers <= 0.
const DefaultBatchWorkers = 4
