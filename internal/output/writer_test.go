package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

func fixedWriter(dir string, ts time.Time) *Writer {
	return &Writer{Dir: dir, now: func() time.Time { return ts }}
}

func TestArtifactName(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.UTC)
	assert.Equal(t, "game_bookmarks_2026-03-04T060607890Z.json", ArtifactName(ts.Add(time.Hour)))
	assert.Equal(t, "game_bookmarks_2026-03-04T050607890Z.json", ArtifactName(ts.In(time.FixedZone("X", 3600))))
}

func TestWriteEmptyProducesEmptyArray(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "booked-results")
	w := fixedWriter(dir, time.Now())

	path, err := w.Write(nil)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestWritePrettyJSON(t *testing.T) {
	dir := t.TempDir()
	w := fixedWriter(dir, time.Now())

	path, err := w.Write([]models.BookmarkRecord{{ID: "a", Name: "Chess", URL: "https://chess.com"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n    \"id\": \"a\",")
	assert.Contains(t, string(data), `"icon": null`)

	// existing directory is fine
	_, err = fixedWriter(dir, time.Now().Add(time.Second)).Write(nil)
	require.NoError(t, err)
}

func TestWriteSameInstantKeepsBothArtifacts(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	first, err := fixedWriter(dir, ts).Write([]models.BookmarkRecord{{ID: "1", Name: "First", URL: "https://first.example"}})
	require.NoError(t, err)
	second, err := fixedWriter(dir, ts).Write([]models.BookmarkRecord{{ID: "2", Name: "Second", URL: "https://second.example"}})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "game_bookmarks_2026-01-01T000000000Z_01.json", filepath.Base(second))

	records, err := Load(first)
	require.NoError(t, err)
	assert.Equal(t, "First", records[0].Name)

	latest, err := Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, second, latest)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteFailsWhenDirectoryBlocked(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "booked-results")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := NewWriter(blocker).Write(nil)
	require.ErrorIs(t, err, ErrOutputWrite)
}

func TestLatestAndLoad(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := fixedWriter(dir, base).Write([]models.BookmarkRecord{{ID: "old", Name: "Old", URL: "https://old.example"}})
	require.NoError(t, err)
	newest, err := fixedWriter(dir, base.Add(time.Minute)).Write([]models.BookmarkRecord{{ID: "new", Name: "New", URL: "https://new.example"}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0644))

	latest, err := Latest(dir)
	require.NoError(t, err)
	assert.Equal(t, newest, latest)

	records, err := Load(latest)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "New", records[0].Name)
	assert.Nil(t, records[0].Icon)
}

func TestLatestEmptyDir(t *testing.T) {
	_, err := Latest(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrNoArtifact)
}

func TestLoadRejectsNonArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_bookmarks_x.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"array"}`), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestPurge(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := fixedWriter(dir, base.Add(time.Duration(i)*time.Second)).Write(nil)
		require.NoError(t, err)
	}
	keep := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0644))

	n, err := Purge(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	paths, err := List(dir)
	require.NoError(t, err)
	assert.Empty(t, paths)
	assert.FileExists(t, keep)
}
