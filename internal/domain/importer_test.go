package domain_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/domain/catalog"
	"github.com/Vovarama1992/planbmusic/internal/infra"
	"github.com/Vovarama1992/planbmusic/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importHeader = "카테고리,앨범제목,아티스트,발매일,유통사명,앨범설명,이미지URL,유튜브URL,추천,숨김\n"

func newImporter(t *testing.T, progress ports.ProgressSink) (*domain.AlbumImporter, *domain.AlbumService) {
	t.Helper()
	clk := newClock()
	albums := domain.NewAlbumService(infra.NewMemoryKV(), domain.NewIDGen(clk.Now), nopLogger())
	return domain.NewAlbumImporter(albums, domain.NewWriteQueue(0), progress, nopLogger()), albums
}

func TestImportSingleArtistRow(t *testing.T) {
	im, albums := newImporter(t, nil)
	ctx := context.Background()

	csv := importHeader + "아티스트,눈의 멜로디,박은빈,2025-12-14,,<p>겨울</p>,https://img/1,,y,\n"
	sum, err := im.Import(ctx, "albums.csv", strings.NewReader(csv), "")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Succeeded)
	assert.Zero(t, sum.Failed)
	assert.Empty(t, sum.Rejected)

	got, err := albums.List(ctx, domain.AlbumListOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, catalog.CategoryArtist, got[0].Category)
	assert.Equal(t, catalog.DefaultDistributor, got[0].Distributor)
	assert.Equal(t, "<p>겨울</p>", got[0].Description)
	assert.True(t, got[0].IsFeatured)
}

func TestImportCountsRejectedRows(t *testing.T) {
	im, albums := newImporter(t, nil)
	ctx := context.Background()

	csv := importHeader +
		"ost,비긴어게인,플링,2025-11-28,(주)플랜비뮤직,desc,img,,N,N\n" +
		"ost,short,row\n" +
		"artist,,아무개,2025-01-01,dist,desc,img,,N,N\n" +
		"etc,정규 1집,아무개,2024-01-01,dist,desc,img,,N,Y\n"
	sum, err := im.Import(ctx, "albums.csv", strings.NewReader(csv), "")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Succeeded)
	assert.Equal(t, 2, sum.Failed)
	require.Len(t, sum.Rejected, 2)
	assert.Equal(t, 3, sum.Rejected[0].Row)
	assert.Equal(t, "title is required", sum.Rejected[1].Reason)

	got, err := albums.List(ctx, domain.AlbumListOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestImportRejectsEmptyAndUnknownFiles(t *testing.T) {
	im, _ := newImporter(t, nil)
	ctx := context.Background()

	_, err := im.Import(ctx, "albums.csv", strings.NewReader(importHeader), "")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = im.Import(ctx, "albums.pdf", strings.NewReader("whatever"), "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestImportPublishesProgress(t *testing.T) {
	bus := domain.NewProgressBus(16)
	im, _ := newImporter(t, bus)

	csv := importHeader +
		"ost,a,b,2025-01-01,d,e,f,,N,N\n" +
		"ost,c,d,2025-01-02,d,e,f,,N,N\n"
	_, err := im.Import(context.Background(), "albums.csv", strings.NewReader(csv), "room-1")
	require.NoError(t, err)

	var events []ports.ProgressEvent
	for len(bus.Events()) > 0 {
		events = append(events, <-bus.Events())
	}
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.True(t, last.Final)
	assert.Equal(t, "room-1", last.RoomID)
	assert.Equal(t, 2, last.Done)
	assert.Equal(t, 2, last.Total)
}

func TestImportWithoutRoomPublishesNothing(t *testing.T) {
	bus := domain.NewProgressBus(16)
	im, _ := newImporter(t, bus)

	csv := importHeader + "ost,a,b,2025-01-01,d,e,f,,N,N\n"
	_, err := im.Import(context.Background(), "albums.csv", strings.NewReader(csv), "")
	require.NoError(t, err)
	assert.Zero(t, len(bus.Events()))
}


func TestImportKeepsGoingAfterFailedCreate(t *testing.T) {
	clk := newClock()
	kv := &failingKV{KVStore: infra.NewMemoryKV(), marker: []byte(`"title":"broken"`)}
	albums := domain.NewAlbumService(kv, domain.NewIDGen(clk.Now), nopLogger())
	im := domain.NewAlbumImporter(albums, domain.NewWriteQueue(0), nil, nopLogger())
	ctx := context.Background()

	csv := importHeader +
		"ost,first,a,2025-01-01,d,e,f,,N,N\n" +
		"ost,broken,a,2025-01-02,d,e,f,,N,N\n" +
		"ost,third,a,2025-01-03,d,e,f,,N,N\n"
	sum, err := im.Import(ctx, "albums.csv", strings.NewReader(csv), "")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Succeeded)
	assert.Equal(t, 1, sum.Failed)
	assert.Empty(t, sum.Rejected)

	got, err := albums.List(ctx, domain.AlbumListOptions{})
	require.NoError(t, err)
	titles := make([]string, 0, len(got))
	for _, a := range got {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"first", "third"}, titles)
}
