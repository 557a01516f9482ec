package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"아티스트":   CategoryArtist,
		"artist": CategoryArtist,
		"ARTIST": CategoryArtist,
		"Artist": CategoryArtist,
		" ost ":  CategoryOST,
		"OST":    CategoryOST,
		"Ost":    CategoryOST,
		"Drama":  "drama",
		"":       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeCategory(in), "input %q", in)
	}
}

func TestNormalizeCategory_Idempotent(t *testing.T) {
	for _, in := range []string{"artist", "ost", "아티스트", "OST", "Jazz"} {
		once := NormalizeCategory(in)
		assert.Equal(t, once, NormalizeCategory(once))
	}
}

func TestParseFlag(t *testing.T) {
	for _, s := range []string{"y", "Y", "1", "true", "TRUE", " True "} {
		assert.True(t, ParseFlag(s), s)
	}
	for _, s := range []string{"", "n", "N", "0", "false", "yes", "2"} {
		assert.False(t, ParseFlag(s), s)
	}
}

func TestParseRow_Accepted(t *testing.T) {
	res := ParseRow(2, []string{
		"아티스트", "눈의 멜로디", "박은빈", "2025-12-14", "", "<p>겨울  노래</p>",
		"https://img", "https://youtu.be/x", "Y", "n",
	})

	require.True(t, res.OK())
	require.Nil(t, res.Rejected)
	a := res.Album
	assert.Equal(t, CategoryArtist, a.Category)
	assert.Equal(t, "눈의 멜로디", a.Title)
	assert.Equal(t, DefaultDistributor, a.Distributor)
	assert.Equal(t, "<p>겨울  노래</p>", a.Description)
	assert.Equal(t, "https://youtu.be/x", a.YoutubeURL)
	assert.True(t, a.IsFeatured)
	assert.False(t, a.IsHidden)
}

func TestParseRow_ShortRows(t *testing.T) {
	rows := [][]string{
		{"artist", "t", "a", "2024-01-01", "d"},
		{"artist", "t", "a", "2024-01-01", "", "", "", "", "", ""},
		{},
	}
	for i, r := range rows {
		res := ParseRow(i+2, r)
		require.False(t, res.OK())
		assert.Equal(t, i+2, res.Rejected.Row)
		assert.True(t, strings.Contains(res.Rejected.Reason, "6"))
	}
}

func TestParseRow_MissingRequired(t *testing.T) {
	res := ParseRow(3, []string{"ost", "", "a", "2024-01-01", "d", "desc", "img"})
	require.False(t, res.OK())
	assert.Equal(t, "title is required", res.Rejected.Reason)

	res = ParseRow(4, []string{"ost", "t", "a", "", "d", "desc", "img"})
	require.False(t, res.OK())
	assert.Equal(t, "release date is required", res.Rejected.Reason)
}
