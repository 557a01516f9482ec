package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQueueCountsFailures(t *testing.T) {
	q := domain.NewWriteQueue(0)
	var order []int
	var steps int

	res, err := q.Run(context.Background(), 5, func(_ context.Context, i int) error {
		order = append(order, i)
		if i%2 == 1 {
			return errors.New("boom")
		}
		return nil
	}, func(domain.BatchResult) { steps++ })

	require.NoError(t, err)
	assert.Equal(t, domain.BatchResult{Succeeded: 3, Failed: 2}, res)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Equal(t, 5, steps)
}

func TestWriteQueueKeepsGap(t *testing.T) {
	gap := 20 * time.Millisecond
	q := domain.NewWriteQueue(gap)

	start := time.Now()
	res, err := q.Run(context.Background(), 4, func(context.Context, int) error { return nil }, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Succeeded)
	assert.GreaterOrEqual(t, time.Since(start), 3*gap-2*time.Millisecond)
}

func TestWriteQueueStopsOnCancel(t *testing.T) {
	q := domain.NewWriteQueue(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	res, err := q.Run(ctx, 3, func(context.Context, int) error {
		cancel()
		return nil
	}, nil)
	require.Error(t, err)
	assert.Equal(t, 1, res.Succeeded)
}

func TestIDGenIsMonotonic(t *testing.T) {
	clk := newClock()
	ids := domain.NewIDGen(clk.Now)

	a := ids.Next("album")
	b := ids.Next("album")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^album:\d+$`, a)
}
