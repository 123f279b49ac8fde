package routing

import (
	"sort"

	"github.com/katalvlaran/ripnet/core"
)

// Table returns the converged routing table of source: one Route per
// reachable router (the source itself included, metric 0), sorted by
// destination address.
//
// Errors: ErrNilTopology, ErrEmptySource, ErrSourceNotFound.
// Node incidence lists are read without the topology lock, so t must not be
// under generation while Table runs.
func Table(t *core.Topology, source string, opts ...Option) ([]Route, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist, prev, err := shortest(t, source, cfg)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(dist))
	for dest, m := range dist {
		if m == Unreachable || m > cfg.MaxMetric {
			continue
		}
		hop, hops := nextHop(prev, source, dest)
		routes = append(routes, Route{Destination: dest, NextHop: hop, Metric: m, Hops: hops})
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].Destination < routes[j].Destination })

	return routes, nil
}

// Metric returns the converged metric from source to dest, or Unreachable.
func Metric(t *core.Topology, source, dest string, opts ...Option) (int64, error) {
	routes, err := Table(t, source, opts...)
	if err != nil {
		return 0, err
	}
	i := sort.Search(len(routes), func(i int) bool { return routes[i].Destination >= dest })
	if i < len(routes) && routes[i].Destination == dest {
		return routes[i].Metric, nil
	}

	return Unreachable, nil
}

// nextHop walks prev back from dest and returns the router right after
// source together with the path length in links.
func nextHop(prev map[string]string, source, dest string) (string, int) {
	if dest == source {
		return "", 0
	}
	hops := 1
	cur := dest
	for prev[cur] != source {
		cur = prev[cur]
		hops++
	}

	return cur, hops
}
