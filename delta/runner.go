package delta

import (
	"context"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/nodify/internal/workpool"
	"github.com/katalvlaran/nodify/metrics"
	"github.com/katalvlaran/nodify/node"
	"github.com/katalvlaran/nodify/store"
)

// request is a deferred relaxation of n to distance d.
type request[N any, W node.Weight] struct {
	n N
	d W
}

// runner encapsulates the state of one query.
type runner[N node.Weighted[N, W], W node.Weight] struct {
	start   N
	delta   W
	pool    *workpool.Pool
	dist    *store.DistanceTable[N, W]
	buckets *store.BucketMap[N, W]
	metrics *metrics.Collector
	log     logrus.FieldLogger

	expanded atomic.Int64
	rounds   int // touched by the calling goroutine only
}

// settle runs bucket phases until every bucket is empty.
func (r *runner[N, W]) settle(ctx context.Context) error {
	r.dist.Relax(r.start, 0)
	r.buckets.Push(0, r.start)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		index, ok := r.buckets.Min()
		if !ok {
			return nil
		}

		heavy, err := r.drain(ctx, index)
		if err != nil {
			return err
		}
		if err = r.relaxHeavy(ctx, heavy); err != nil {
			return err
		}
		r.log.WithFields(logrus.Fields{
			"bucket": index,
			"heavy":  len(heavy),
			"rounds": r.rounds,
		}).Trace("delta: bucket settled")
	}
}

// drain processes bucket index until it stays empty and returns the heavy
// relaxations collected along the way.
func (r *runner[N, W]) drain(ctx context.Context, index W) ([]request[N, W], error) {
	var heavy []request[N, W]
	workers := r.pool.Size()

	for {
		taken := dedupe(r.buckets.Take(index))
		if len(taken) == 0 {
			return heavy, nil
		}

		spans := workpool.Split(len(taken), workers)
		local := make([][]request[N, W], len(spans))
		var light atomic.Int64
		err := r.pool.Run(ctx, len(spans), func(ctx context.Context, i int) error {
			for _, n := range taken[spans[i].Lo:spans[i].Hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				d, _ := r.dist.Get(n)
				if d/r.delta < index {
					continue // settled in an earlier bucket
				}

				r.expanded.Add(1)
				for w, next := range n.WeightedOutgoing() {
					if w <= r.delta {
						if r.relax(next, d+w) {
							light.Add(1)
						}
						continue
					}
					local[i] = append(local[i], request[N, W]{n: next, d: d + w})
				}
			}

			return nil
		})
		r.rounds++
		r.metrics.Round(metrics.EngineDelta)
		r.metrics.Relaxed(metrics.KindLight, int(light.Load()))
		if err != nil {
			return nil, err
		}
		for _, reqs := range local {
			heavy = append(heavy, reqs...)
		}
	}
}

// relaxHeavy applies reqs across the pool.
func (r *runner[N, W]) relaxHeavy(ctx context.Context, reqs []request[N, W]) error {
	if len(reqs) == 0 {
		return nil
	}

	spans := workpool.Split(len(reqs), r.pool.Size())
	var applied atomic.Int64
	err := r.pool.Run(ctx, len(spans), func(ctx context.Context, i int) error {
		for _, req := range reqs[spans[i].Lo:spans[i].Hi] {
			if r.relax(req.n, req.d) {
				applied.Add(1)
			}
		}

		return ctx.Err()
	})
	r.metrics.Relaxed(metrics.KindHeavy, int(applied.Load()))

	return err
}

// relax lowers the distance of n to d and queues n in bucket d/delta when
// the table changed.
func (r *runner[N, W]) relax(n N, d W) bool {
	if !r.dist.Relax(n, d) {
		return false
	}
	r.buckets.Push(d/r.delta, n)

	return true
}

// candidate is the best match found in one chunk of the table.
type candidate[N any, W node.Weight] struct {
	n     N
	d     W
	found bool
}

// nearest scans a snapshot of the settled table in parallel chunks and
// returns the matching entry with the smallest distance.
func (r *runner[N, W]) nearest(ctx context.Context, pred node.Predicate[N]) (candidate[N, W], error) {
	entries := make([]request[N, W], 0, r.dist.Len())
	r.dist.Range(func(n N, d W) bool {
		entries = append(entries, request[N, W]{n: n, d: d})

		return true
	})

	spans := workpool.Split(len(entries), r.pool.Size())
	best := make([]candidate[N, W], len(spans))
	err := r.pool.Run(ctx, len(spans), func(ctx context.Context, i int) error {
		c := &best[i]
		for _, e := range entries[spans[i].Lo:spans[i].Hi] {
			if c.found && e.d >= c.d {
				continue
			}
			if pred(e.n) {
				c.n, c.d, c.found = e.n, e.d, true
			}
		}

		return ctx.Err()
	})
	if err != nil {
		return candidate[N, W]{}, err
	}

	var out candidate[N, W]
	for _, c := range best {
		if c.found && (!out.found || c.d < out.d) {
			out = c
		}
	}

	return out, nil
}

// dedupe drops repeated nodes, keeping first occurrences in order.
func dedupe[N comparable](nodes []N) []N {
	if len(nodes) < 2 {
		return nodes
	}
	seen := make(map[N]struct{}, len(nodes))
	out := nodes[:0]
	for _, n := range nodes {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
