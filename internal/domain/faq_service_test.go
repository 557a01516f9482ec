package domain_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/infra"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFAQService(t *testing.T) *domain.FAQService {
	t.Helper()
	clk := newClock()
	return domain.NewFAQService(infra.NewMemoryKV(), domain.NewIDGen(clk.Now), domain.NewWriteQueue(0), nopLogger())
}

func TestFAQInitializeSeedsOnce(t *testing.T) {
	svc := newFAQService(t)
	ctx := context.Background()

	res, err := svc.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, res.Seeded)

	faqs, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, faqs, 13)
	for i := 1; i < len(faqs); i++ {
		assert.LessOrEqual(t, faqs[i-1].Order, faqs[i].Order)
	}

	res, err = svc.Initialize(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Seeded)
	assert.Equal(t, 13, res.Existing)
}

func TestFAQHiddenAndToggle(t *testing.T) {
	svc := newFAQService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, models.FAQ{Question: "q2", Answer: "a", Order: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.FAQ{Question: "q1", Answer: "a", Order: 1})
	require.NoError(t, err)

	_, err = svc.ToggleVisibility(ctx, a.ID)
	require.NoError(t, err)

	visible, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "q1", visible[0].Question)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "q1", all[0].Question)

	got, err := svc.ToggleVisibility(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsHidden)
}

func TestFAQUpdateIgnoresUnknownFields(t *testing.T) {
	svc := newFAQService(t)
	ctx := context.Background()

	f, err := svc.Create(ctx, models.FAQ{Question: "q", Answer: "a"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, f.ID, domain.Patch{
		"answer":    json.RawMessage(`"b"`),
		"createdAt": json.RawMessage(`"1999-01-01T00:00:00Z"`),
	})
	require.NoError(t, err)
	assert.Equal(t, "b", got.Answer)
	assert.True(t, got.CreatedAt.Equal(f.CreatedAt))

	_, err = svc.Create(ctx, models.FAQ{Question: "q"})
	require.ErrorIs(t, err, domain.ErrValidation)
}
