package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func memoryEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("KV_DRIVER", "memory")
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")
}

func TestImportDryRun(t *testing.T) {
	memoryEnv(t)
	path := filepath.Join(t.TempDir(), "albums.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"카테고리,앨범제목,아티스트,발매일,유통사명,앨범설명,이미지URL,유튜브URL,추천,숨김\n"+
			"아티스트,눈의 멜로디,박은빈,2025-12-14,,desc,img,,Y,N\n"+
			"ost,,\n"), 0o644))

	out, err := runCLI(t, "import", path, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1, failed 1 (dry run)")
	assert.Contains(t, out, "fewer than 6 populated columns")
}

func TestImportMissingFile(t *testing.T) {
	memoryEnv(t)
	_, err := runCLI(t, "import", filepath.Join(t.TempDir(), "nope.csv"), "--dry-run")
	require.Error(t, err)
}

func TestFAQInit(t *testing.T) {
	memoryEnv(t)
	t.Setenv("FAQ_SEED_DELAY", "0s")

	out, err := runCLI(t, "faq", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 13 FAQs")
}

func TestVideosSyncWithoutKey(t *testing.T) {
	memoryEnv(t)
	_, err := runCLI(t, "videos", "sync")
	require.ErrorIs(t, err, domain.ErrPlatformUnavailable)
}

func TestRenderTable(t *testing.T) {
	got := renderTable("Rejected rows", []string{"Row", "Reason"}, [][]string{{"3", "title is required"}, {"12"}})
	assert.Contains(t, got, "Rejected rows")
	assert.Contains(t, got, "title is required")
	assert.Contains(t, got, "2 rows")
	assert.GreaterOrEqual(t, strings.Count(got, "\n"), 6)
	assert.Empty(t, renderTable("x", nil, nil))
}

func TestNumericColumn(t *testing.T) {
	rows := [][]string{{"3", "a"}, {"12", "7"}, {""}}
	assert.True(t, numericColumn(rows, 0))
	assert.False(t, numericColumn(rows, 1))
	assert.False(t, numericColumn(rows, 2), "empty column")
}
