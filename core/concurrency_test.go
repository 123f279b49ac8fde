// Package core_test verifies thread-safety of core.Topology under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/ripnet/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentConnect ensures that concurrent Connect calls against one
// hub node are safe and every edge is registered exactly once.
func TestConcurrentConnect(t *testing.T) {
	topo := core.NewTopology()
	hub := core.NewNode("10.0.0.0", core.RoleCore)
	require.NoError(t, topo.AddNode(hub))

	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			leaf := core.NewNode(fmt.Sprintf("10.0.%d.%d", id/250, id%250+1), core.RoleEdge)
			if err := topo.AddNode(leaf); err != nil {
				t.Errorf("AddNode: %v", err)
				return
			}
			if _, err := topo.Connect(hub, leaf, id%core.MaxWeight+1); err != nil {
				t.Errorf("Connect: %v", err)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, num+1, topo.NodeCount())
	require.Equal(t, num, topo.EdgeCount())
	deg, err := topo.Degree("10.0.0.0")
	require.NoError(t, err)
	require.Equal(t, num, deg)

	seen := make(map[string]struct{}, num)
	for _, e := range topo.Edges() {
		_, dup := seen[e.ID()]
		require.False(t, dup, "edge ID %s reused", e.ID())
		seen[e.ID()] = struct{}{}
	}
}

// TestConcurrentAddNode_DuplicateAddress races many goroutines on one address;
// exactly one must win.
func TestConcurrentAddNode_DuplicateAddress(t *testing.T) {
	topo := core.NewTopology()
	const num = 64
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			if err := topo.AddNode(core.NewNode("192.168.0.1", core.RoleCore)); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, 1, topo.NodeCount())
}
