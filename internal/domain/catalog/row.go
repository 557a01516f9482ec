package catalog

import (
	"strings"

	"github.com/Vovarama1992/planbmusic/internal/models"
)

// Import sheet column order.
const (
	colCategory = iota
	colTitle
	colArtist
	colReleaseDate
	colDistributor
	colDescription
	colImageURL
	colVideoURL
	colFeatured
	colHidden

	columnCount
)

const (
	minPopulatedColumns = 6
	DefaultDistributor  = "(주)플랜비뮤직"
)

type Rejection struct {
	Row    int    `json:"row"` // 1-based sheet row, header included
	Reason string `json:"reason"`
}

// RowResult is either an accepted album draft or a rejection, never both.
type RowResult struct {
	Album    *models.Album
	Rejected *Rejection
}

func (r RowResult) OK() bool { return r.Album != nil }

// ParseRow validates one data row. rowNum is only used for reporting.
func ParseRow(rowNum int, cells []string) RowResult {
	populated := 0
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			populated++
		}
	}
	if populated < minPopulatedColumns {
		return reject(rowNum, "row has fewer than 6 populated columns")
	}

	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	title, artist, released := cell(colTitle), cell(colArtist), cell(colReleaseDate)
	switch {
	case title == "":
		return reject(rowNum, "title is required")
	case artist == "":
		return reject(rowNum, "artist is required")
	case released == "":
		return reject(rowNum, "release date is required")
	}

	distributor := cell(colDistributor)
	if distributor == "" {
		distributor = DefaultDistributor
	}

	return RowResult{Album: &models.Album{
		Category:    NormalizeCategory(cell(colCategory)),
		Title:       title,
		Artist:      artist,
		ReleaseDate: released,
		Distributor: distributor,
		// description keeps its markup and inner whitespace
		Description: cellRaw(cells, colDescription),
		ImageURL:    cell(colImageURL),
		YoutubeURL:  cell(colVideoURL),
		IsFeatured:  ParseFlag(cell(colFeatured)),
		IsHidden:    ParseFlag(cell(colHidden)),
	}}
}

// ParseFlag accepts y, 1 and true in any case.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "1", "true":
		return true
	}
	return false
}

func cellRaw(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func reject(row int, reason string) RowResult {
	return RowResult{Rejected: &Rejection{Row: row, Reason: reason}}
}
