package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"

	"github.com/ilexum-group/gamemarks/pkg/models"
)

const chessTree = `{"roots":{"bookmark_bar":{"type":"folder","name":"Games","children":[{"type":"url","name":"Chess","url":"https://chess.com"}]}}}`

func candidate(t *testing.T, dir, name string, content []byte) models.CandidateFile {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return models.CandidateFile{Path: path, Ext: strings.ToLower(filepath.Ext(name))}
}

func TestFormatForExt(t *testing.T) {
	assert.Equal(t, FormatChromium, FormatForExt(""))
	assert.Equal(t, FormatChromium, FormatForExt(".json"))
	assert.Equal(t, FormatChromium, FormatForExt(".bak"))
	assert.Equal(t, FormatPlacesLz4, FormatForExt(".jsonlz4"))
	assert.Equal(t, FormatPlacesDB, FormatForExt(".sqlite"))
	assert.Equal(t, FormatPlacesDB, FormatForExt(".DB"))
	assert.Equal(t, FormatSafari, FormatForExt(".plist"))
	assert.Equal(t, FormatNetscape, FormatForExt(".htm"))
	for _, ext := range []string{".csv", ".xml", ".xbel", ".url", ".txt", ".exe"} {
		assert.Equal(t, FormatUnsupported, FormatForExt(ext), ext)
	}
}

func TestDispatchUnsupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	d := NewDispatcher()
	for _, name := range []string{"export.csv", "bookmarks.xml", "b.xbel", "link.url", "notes.txt"} {
		out := d.Dispatch(candidate(t, dir, name, []byte(chessTree)))
		assert.Equal(t, FormatUnsupported, out.Format, name)
		assert.Empty(t, out.Records, name)
		assert.NotNil(t, out.Records, name)
		assert.NoError(t, out.Err, name)
	}
}

func TestDispatchChromiumVariants(t *testing.T) {
	dir := t.TempDir()
	d := NewDispatcher()
	for _, name := range []string{"Bookmarks", "Bookmarks.bak", "bookmarks.json"} {
		records := d.Parse(candidate(t, dir, name, []byte(chessTree)))
		require.Len(t, records, 1, name)
		assert.Equal(t, "Chess", records[0].Name)
	}
}

func TestDispatchPlacesJSONBackupViaJSONExt(t *testing.T) {
	d := NewDispatcher()
	records := d.Parse(candidate(t, t.TempDir(), "bookmarks-2026-01-01.json", []byte(placesBackup)))
	assert.Equal(t, []string{"Lichess", "Sudoku"}, names(records))
}

func TestDispatchMozLz4(t *testing.T) {
	d := NewDispatcher()
	records := d.Parse(candidate(t, t.TempDir(), "bookmarks-2026-01-01_12_abc.jsonlz4", mozLz4([]byte(placesBackup))))
	assert.Equal(t, []string{"Lichess", "Sudoku"}, names(records))
}

func TestDispatchSafariAndHTML(t *testing.T) {
	dir := t.TempDir()
	d := NewDispatcher()

	data, err := plist.Marshal(safariFixture(), plist.BinaryFormat)
	require.NoError(t, err)
	assert.Len(t, d.Parse(candidate(t, dir, "Bookmarks.plist", data)), 2)

	assert.Len(t, d.Parse(candidate(t, dir, "export.html", []byte(netscapeExport))), 2)
}

func TestDispatchSQLite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "places.sqlite")
	createPlacesDB(t, path, true)

	out := NewDispatcher().Dispatch(models.CandidateFile{Path: path, Ext: ".sqlite"})
	require.NoError(t, out.Err)
	assert.Equal(t, FormatPlacesDB, out.Format)
	assert.Len(t, out.Records, 3)
}

func TestDispatchAbsorbsParseErrors(t *testing.T) {
	dir := t.TempDir()
	d := NewDispatcher()

	out := d.Dispatch(candidate(t, dir, "Bookmarks", []byte(`{"roots": {`)))
	assert.ErrorIs(t, out.Err, ErrFileParse)
	assert.Empty(t, out.Records)

	out = d.Dispatch(candidate(t, dir, "Bookmarks.plist", []byte(`<?xml version="1.0"?><!DOCTYPE plist><plist><dict><key>Children</key>`)))
	assert.Empty(t, out.Records)

	broken := filepath.Join(dir, "broken.sqlite")
	createPlacesDB(t, broken, false)
	out = d.Dispatch(models.CandidateFile{Path: broken, Ext: ".sqlite"})
	assert.ErrorIs(t, out.Err, ErrSQLiteQuery)
	assert.Empty(t, out.Records)
	assert.Empty(t, leftovers(t, dir))
}

func TestDispatchSkipsForeignContent(t *testing.T) {
	dir := t.TempDir()
	d := NewDispatcher()

	// Chromium's extensionless History database
	history := filepath.Join(dir, "History")
	createPlacesDB(t, history, false)
	out := d.Dispatch(models.CandidateFile{Path: history, Ext: ""})
	assert.NoError(t, out.Err)
	assert.Empty(t, out.Records)

	// a .db that is not SQLite
	out = d.Dispatch(candidate(t, dir, "cache.db", []byte(`{"json":"not sqlite"}`)))
	assert.NoError(t, out.Err)
	assert.Empty(t, out.Records)
	assert.Empty(t, leftovers(t, dir))
}

func TestDispatchMissingFile(t *testing.T) {
	out := NewDispatcher().Dispatch(models.CandidateFile{Path: filepath.Join(t.TempDir(), "Bookmarks"), Ext: ""})
	assert.ErrorIs(t, out.Err, ErrFileParse)
	assert.Empty(t, out.Records)
}
