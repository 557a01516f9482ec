package domain

import (
	"context"
	"fmt"
	"io"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain/catalog"
	"github.com/Vovarama1992/planbmusic/internal/models"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

const jobAlbumImport = "album-import"

type ImportSummary struct {
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Rejected  []catalog.Rejection `json:"rejected"`
}

type AlbumImporter struct {
	albums   *AlbumService
	queue    *WriteQueue
	progress ports.ProgressSink
	log      *logger.ZapLogger
}

func NewAlbumImporter(albums *AlbumService, queue *WriteQueue, progress ports.ProgressSink, log *logger.ZapLogger) *AlbumImporter {
	return &AlbumImporter{
		albums:   albums,
		queue:    queue,
		progress: progressOrNop(progress),
		log:      log,
	}
}

// Import reads a CSV/XLSX sheet and creates one album per valid data row.
// Rejected rows and failed creates are counted; neither stops the batch.
func (im *AlbumImporter) Import(ctx context.Context, filename string, r io.Reader, roomID string) (ImportSummary, error) {
	rows, err := catalog.ReadSheet(filename, r)
	if err != nil {
		return ImportSummary{}, invalid("%v", err)
	}
	if len(rows) < 2 {
		return ImportSummary{}, invalid("file is empty")
	}

	summary := ImportSummary{Rejected: []catalog.Rejection{}}
	var drafts []models.Album
	for i, row := range rows[1:] {
		res := catalog.ParseRow(i+2, row)
		if !res.OK() {
			summary.Failed++
			summary.Rejected = append(summary.Rejected, *res.Rejected)
			continue
		}
		drafts = append(drafts, *res.Album)
	}

	total := len(rows) - 1
	report := func(b BatchResult, final bool) {
		im.progress.Publish(ports.ProgressEvent{
			RoomID: roomID,
			Job:    jobAlbumImport,
			Done:   b.Succeeded,
			Failed: summary.Failed + b.Failed,
			Total:  total,
			Final:  final,
		})
	}

	batch, err := im.queue.Run(ctx, len(drafts), func(ctx context.Context, i int) error {
		if _, err := im.albums.Create(ctx, drafts[i]); err != nil {
			im.log.Log(logger.LogEntry{
				Level:   "error",
				Message: "album import row failed",
				Fields:  map[string]any{"title": drafts[i].Title},
				Error:   err,
			})
			return err
		}
		return nil
	}, func(b BatchResult) { report(b, false) })

	summary.Succeeded = batch.Succeeded
	summary.Failed += batch.Failed
	report(batch, true)

	im.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "album import finished",
		Fields: map[string]any{
			"file":      filename,
			"rows":      total,
			"succeeded": summary.Succeeded,
			"failed":    summary.Failed,
		},
	})

	if err != nil {
		return summary, fmt.Errorf("import interrupted: %w", err)
	}
	return summary, nil
}
