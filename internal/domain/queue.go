package domain

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type BatchResult struct {
	Succeeded int
	Failed    int
}

// WriteQueue runs batch writes one at a time with a fixed minimum gap
// between successive items. A zero gap means no throttling. Concurrent
// batches are serialized.
type WriteQueue struct {
	mu      sync.Mutex
	gap     time.Duration
	limiter *rate.Limiter
}

func NewWriteQueue(gap time.Duration) *WriteQueue {
	limit := rate.Inf
	if gap > 0 {
		limit = rate.Every(gap)
	}
	return &WriteQueue{gap: gap, limiter: rate.NewLimiter(limit, 1)}
}

func (q *WriteQueue) Gap() time.Duration { return q.gap }

// Run calls fn for items 0..n-1 in order. Item errors are counted, not
// returned; only context cancellation stops the batch early.
func (q *WriteQueue) Run(
	ctx context.Context,
	n int,
	fn func(ctx context.Context, i int) error,
	step func(BatchResult),
) (BatchResult, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var res BatchResult
	for i := 0; i < n; i++ {
		if err := q.limiter.Wait(ctx); err != nil {
			return res, err
		}
		if err := fn(ctx, i); err != nil {
			res.Failed++
		} else {
			res.Succeeded++
		}
		if step != nil {
			step(res)
		}
	}
	return res, nil
}
