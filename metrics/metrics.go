package metrics

import (
	"time"
)

// RecordGeneration records a finished run. On error only the status counter
// and the duration are updated; partial counts are not meaningful.
func (r *Registry) RecordGeneration(status string, duration time.Duration, g Generation) {
	r.GenerationsTotal.WithLabelValues(status).Inc()
	r.GenerationDuration.Observe(duration.Seconds())
	if status != StatusSuccess {
		return
	}

	r.PairsAttemptedTotal.Add(float64(g.PairsAttempted))
	r.AddressCollisionsTotal.Add(float64(g.Collisions))
	r.EdgesTotal.WithLabelValues(PhaseInitial).Add(float64(g.InitialEdges))
	r.EdgesTotal.WithLabelValues(PhaseRepair).Add(float64(g.RepairEdges))
	r.RepairSkippedTotal.Add(float64(g.RepairSkipped))
	r.NodesAddedTotal.Add(float64(g.Nodes))
	r.TopologyNodes.Set(float64(g.TopologyNodes))
}
