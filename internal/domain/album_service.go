package domain

import (
	"context"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain/catalog"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

const albumPrefix = "album"

type AlbumSort string

const (
	SortDateDesc AlbumSort = "date-desc"
	SortDateAsc  AlbumSort = "date-asc"
	SortFeatured AlbumSort = "featured"
)

type AlbumListOptions struct {
	Query string
	Sort  AlbumSort
}

type AlbumCatalog struct {
	catalog.Page[models.Album]
	Counts map[string]int `json:"counts"`
}

type AlbumService struct {
	recs *records[models.Album]
	log  *logger.ZapLogger
}

func NewAlbumService(kv ports.KVStore, ids *IDGen, log *logger.ZapLogger) *AlbumService {
	return &AlbumService{
		recs: newRecords[models.Album](kv, albumPrefix, ids),
		log:  log,
	}
}

func (s *AlbumService) List(ctx context.Context, opts AlbumListOptions) ([]models.Album, error) {
	albums, err := s.recs.list(ctx)
	if err != nil {
		return nil, err
	}
	albums = catalog.Search(albums, opts.Query)

	switch opts.Sort {
	case SortFeatured:
		return catalog.SortFeatured(albums), nil
	case SortDateAsc:
		return catalog.SortByDate(albums, true), nil
	default:
		return catalog.SortByDate(albums, false), nil
	}
}

// Catalog is the public listing: hidden albums are left out.
func (s *AlbumService) Catalog(ctx context.Context, category string, page int) (AlbumCatalog, error) {
	albums, err := s.recs.list(ctx)
	if err != nil {
		return AlbumCatalog{}, err
	}

	visible := albums[:0]
	for _, a := range albums {
		if !a.IsHidden {
			visible = append(visible, a)
		}
	}

	if category != "" && category != catalog.CategoryAll {
		category = catalog.NormalizeCategory(category)
	}

	return AlbumCatalog{
		Page:   catalog.Query(visible, category, page, catalog.AlbumPageSize),
		Counts: catalog.CountByCategory(visible),
	}, nil
}

func (s *AlbumService) Get(ctx context.Context, id string) (models.Album, error) {
	return s.recs.get(ctx, id)
}

func (s *AlbumService) Create(ctx context.Context, in models.Album) (models.Album, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Artist = strings.TrimSpace(in.Artist)
	in.ReleaseDate = strings.TrimSpace(in.ReleaseDate)
	switch {
	case in.Title == "":
		return models.Album{}, invalid("title is required")
	case in.Artist == "":
		return models.Album{}, invalid("artist is required")
	case in.ReleaseDate == "":
		return models.Album{}, invalid("releaseDate is required")
	}

	in.ID = s.recs.newID()
	in.Category = catalog.NormalizeCategory(in.Category)
	in.CreatedAt = s.recs.ids.Now()
	in.UpdatedAt = nil

	if err := s.recs.put(ctx, in.ID, in); err != nil {
		return models.Album{}, err
	}
	return in, nil
}

func (s *AlbumService) Update(ctx context.Context, id string, patch Patch) (models.Album, error) {
	return s.recs.merge(ctx, id, patch, func(a *models.Album) {
		a.Category = catalog.NormalizeCategory(a.Category)
	})
}

func (s *AlbumService) Delete(ctx context.Context, id string) error {
	return s.recs.remove(ctx, id)
}

// DeleteMany removes every id it can and reports how many went through.
func (s *AlbumService) DeleteMany(ctx context.Context, ids []string) (int, error) {
	deleted := 0
	var firstErr error
	for _, id := range ids {
		if !s.recs.owns(id) {
			continue
		}
		if err := s.recs.remove(ctx, id); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		deleted++
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "albums bulk delete",
		Fields:  map[string]any{"requested": len(ids), "deleted": deleted},
	})
	return deleted, firstErr
}
