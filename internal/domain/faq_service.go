package domain

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

const faqPrefix = "faq"

type FAQService struct {
	recs  *records[models.FAQ]
	queue *WriteQueue
	log   *logger.ZapLogger
}

func NewFAQService(kv ports.KVStore, ids *IDGen, queue *WriteQueue, log *logger.ZapLogger) *FAQService {
	return &FAQService{
		recs:  newRecords[models.FAQ](kv, faqPrefix, ids),
		queue: queue,
		log:   log,
	}
}

// List orders by the explicit sort order; hidden entries only with showHidden.
func (s *FAQService) List(ctx context.Context, showHidden bool) ([]models.FAQ, error) {
	faqs, err := s.recs.list(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(faqs, func(a, b models.FAQ) int { return cmp.Compare(a.Order, b.Order) })
	if showHidden {
		return faqs, nil
	}
	visible := faqs[:0]
	for _, f := range faqs {
		if !f.IsHidden {
			visible = append(visible, f)
		}
	}
	return visible, nil
}

func (s *FAQService) Create(ctx context.Context, in models.FAQ) (models.FAQ, error) {
	if strings.TrimSpace(in.Question) == "" {
		return models.FAQ{}, invalid("question is required")
	}
	if strings.TrimSpace(in.Answer) == "" {
		return models.FAQ{}, invalid("answer is required")
	}
	now := s.recs.ids.Now()
	in.ID = s.recs.newID()
	in.CreatedAt = now
	in.UpdatedAt = &now
	return in, s.recs.put(ctx, in.ID, in)
}

func (s *FAQService) Update(ctx context.Context, id string, patch Patch) (models.FAQ, error) {
	allowed := Patch{}
	for _, k := range []string{"category", "question", "answer", "order", "isHidden"} {
		if v, ok := patch[k]; ok {
			allowed[k] = v
		}
	}
	return s.recs.merge(ctx, id, allowed, nil)
}

func (s *FAQService) ToggleVisibility(ctx context.Context, id string) (models.FAQ, error) {
	current, err := s.recs.get(ctx, id)
	if err != nil {
		return models.FAQ{}, err
	}
	flag := []byte("true")
	if current.IsHidden {
		flag = []byte("false")
	}
	return s.recs.merge(ctx, id, Patch{"isHidden": flag}, nil)
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	return s.recs.remove(ctx, id)
}

type FAQSeedResult struct {
	Seeded   int `json:"seeded"`
	Existing int `json:"existing"`
}

// Initialize writes the default FAQ set unless any FAQ already exists.
func (s *FAQService) Initialize(ctx context.Context) (FAQSeedResult, error) {
	existing, err := s.recs.list(ctx)
	if err != nil {
		return FAQSeedResult{}, err
	}
	if len(existing) > 0 {
		return FAQSeedResult{Existing: len(existing)}, nil
	}

	res, err := s.queue.Run(ctx, len(defaultFAQs), func(ctx context.Context, i int) error {
		f := defaultFAQs[i]
		now := s.recs.ids.Now()
		f.ID = s.recs.newID()
		f.CreatedAt = now
		f.UpdatedAt = &now
		return s.recs.put(ctx, f.ID, f)
	}, nil)

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "faqs initialized",
		Fields:  map[string]any{"seeded": res.Succeeded, "failed": res.Failed},
	})
	return FAQSeedResult{Seeded: res.Succeeded}, err
}
