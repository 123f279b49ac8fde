// SPDX-License-Identifier: MIT
// Package: ripnet/builder
//
// batch.go - concurrent generation of many independent topologies.
//
// Contract:
//   - Item i is generated by NewNetworkGraph(numNodePairs, opts..., WithSeed(s_i)).
//   - Seeds: WithSeed(s) ⇒ s_i = s+i; WithRand(r) ⇒ s_i drawn from r in index
//     order before dispatch; neither ⇒ s_i = clock+i.
//     The per-item seed makes every item reproducible on its own.
//   - Results are returned in index order regardless of completion order.
//   - The first error (lowest index) is returned; remaining items still finish.
//   - A cancelled ctx stops dispatch; undispatched items report ctx.Err().

package builder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// GenerateBatch generates count topologies on a pool of workers goroutines.
// workers <= 0 selects DefaultBatchWorkers.
//
// Items are independent unless opts contains WithTopology, in which case all
// of them add to the same shared topology.
func GenerateBatch(ctx context.Context, count, numNodePairs, workers int, opts ...BuilderOption) ([]*NetworkGraph, error) {
	if count < 0 {
		return nil, fmt.Errorf("%s: count=%d: %w", MethodGenerateBatch, count, ErrOptionViolation)
	}
	if numNodePairs < MinNodePairs {
		return nil, fmt.Errorf("%s: numNodePairs=%d < min=%d: %w", MethodGenerateBatch, numNodePairs, MinNodePairs, ErrTooFewPairs)
	}
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	seeds := batchSeeds(newBuilderConfig(opts...), count)

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("%s: worker pool: %w", MethodGenerateBatch, err)
	}
	defer pool.Release()

	out := make([]*NetworkGraph, count)
	errs := make([]error, count)
	var wg sync.WaitGroup

	for i := 0; i < count; i++ {
		if err = ctx.Err(); err != nil {
			for j := i; j < count; j++ {
				errs[j] = err
			}
			break
		}

		i := i
		itemOpts := make([]BuilderOption, 0, len(opts)+1)
		itemOpts = append(itemOpts, opts...)
		itemOpts = append(itemOpts, WithSeed(seeds[i]))

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			out[i], errs[i] = NewNetworkGraph(numNodePairs, itemOpts...)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for i, e := range errs {
		if e != nil {
			return out, fmt.Errorf("%s: item %d: %w", MethodGenerateBatch, i, e)
		}
	}

	return out, nil
}

// batchSeeds derives one seed per item from cfg.
func batchSeeds(cfg builderConfig, count int) []int64 {
	seeds := make([]int64, count)
	switch {
	case cfg.seeded:
		for i := range seeds {
			seeds[i] = cfg.seed + int64(i)
		}
	case cfg.rng != nil:
		for i := range seeds {
			seeds[i] = cfg.rng.Int63()
		}
	default:
		base := time.Now().UnixNano()
		for i := range seeds {
			seeds[i] = base + int64(i)
		}
	}

	return seeds
}
