package bfs

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	// ErrTopologyNil is returned if a nil topology pointer is passed.
	ErrTopologyNil = errors.New("bfs: topology is nil")

	// ErrSourceNotFound is returned when the source address is not a member.
	ErrSourceNotFound = errors.New("bfs: source router not found")
)

// RIPInfinity is the hop count RIP treats as unreachable. A route of
// RIPInfinity-1 hops is the longest one RIP can carry.
const RIPInfinity = 16

// walkConfig is the resolved set of Options.
type walkConfig struct {
	ctx     context.Context
	maxHops int // 0 = unlimited
}

// Option configures a walk.
type Option func(*walkConfig)

func newWalkConfig(opts []Option) walkConfig {
	cfg := walkConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *walkConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxHops stops the walk at n hops from the source; routers further away
// count as unreachable. n == 0 means no limit. Panics if n < 0.
//
//	bfs.WithMaxHops(bfs.RIPInfinity - 1) // what a RIP router can see
func WithMaxHops(n int) Option {
	if n < 0 {
		panic("bfs: WithMaxHops(n<0)")
	}
	return func(c *walkConfig) {
		c.maxHops = n
	}
}

// HopTable holds the fewest-hop distances from one source router.
// Link weights are ignored.
type HopTable struct {
	// Source is the address the walk started from.
	Source string
	// Order lists reached addresses in visit order; Order[0] is Source.
	Order []string

	hops   map[string]int
	parent map[string]string
}

// Hops returns the hop count to dest and whether dest was reached.
func (h *HopTable) Hops(dest string) (int, bool) {
	d, ok := h.hops[dest]
	return d, ok
}

// Path returns the fewest-hop path Source → dest, or nil if dest was not reached.
func (h *HopTable) Path(dest string) []string {
	d, ok := h.hops[dest]
	if !ok {
		return nil
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = h.parent[cur]
	}

	return path
}

// Eccentricity returns the largest hop count in the table.
func (h *HopTable) Eccentricity() int {
	if len(h.Order) == 0 {
		return 0
	}
	// visit order is non-decreasing in hops
	return h.hops[h.Order[len(h.Order)-1]]
}
