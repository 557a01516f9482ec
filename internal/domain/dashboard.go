package domain

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	Albums         int `json:"albums"`
	Videos         int `json:"videos"`
	ActivePopups   int `json:"activePopups"`
	ActiveBanners  int `json:"activeBanners"`
	UnreadMessages int `json:"unreadMessages"`
	FAQs           int `json:"faqs"`
}

type DashboardService struct {
	albums   *AlbumService
	videos   *VideoService
	banners  *BannerService
	popups   *PopupService
	messages *MessageService
	faqs     *FAQService
}

func NewDashboardService(
	albums *AlbumService,
	videos *VideoService,
	banners *BannerService,
	popups *PopupService,
	messages *MessageService,
	faqs *FAQService,
) *DashboardService {
	return &DashboardService{
		albums:   albums,
		videos:   videos,
		banners:  banners,
		popups:   popups,
		messages: messages,
		faqs:     faqs,
	}
}

// Stats reads every collection concurrently; the first failure cancels the
// rest.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var st DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		albums, err := s.albums.recs.list(ctx)
		st.Albums = len(albums)
		return err
	})
	g.Go(func() error {
		videos, err := s.videos.recs.list(ctx)
		st.Videos = len(videos)
		return err
	})
	g.Go(func() error {
		popups, err := s.popups.Active(ctx)
		st.ActivePopups = len(popups)
		return err
	})
	g.Go(func() error {
		banners, err := s.banners.List(ctx)
		for _, b := range banners {
			if b.IsActive {
				st.ActiveBanners++
			}
		}
		return err
	})
	g.Go(func() error {
		msgs, err := s.messages.List(ctx)
		for _, m := range msgs {
			if !m.IsRead {
				st.UnreadMessages++
			}
		}
		return err
	})
	g.Go(func() error {
		faqs, err := s.faqs.List(ctx, true)
		st.FAQs = len(faqs)
		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}
	return st, nil
}
