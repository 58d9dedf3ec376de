// Package extract routes candidate files to format-specific bookmark extractors
package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilexum-group/gamemarks/internal/artifactdetector"
	"github.com/ilexum-group/gamemarks/internal/utils"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

// Extraction failure kinds. None of them aborts a sweep.
var (
	ErrFileParse   = errors.New("bookmark file parse failed")
	ErrSQLiteCopy  = errors.New("sqlite copy failed")
	ErrSQLiteQuery = errors.New("sqlite query failed")
)

// Format names reported per file
const (
	FormatChromium    = "chromium_json"
	FormatPlacesLz4   = "firefox_jsonlz4"
	FormatPlacesDB    = "firefox_sqlite"
	FormatSafari      = "safari_plist"
	FormatNetscape    = "netscape_html"
	FormatUnsupported = "unsupported"
)

// FormatForExt names the extractor an extension routes to
func FormatForExt(ext string) string {
	switch strings.ToLower(ext) {
	case "", ".json", ".bak":
		return FormatChromium
	case ".jsonlz4":
		return FormatPlacesLz4
	case ".sqlite", ".db":
		return FormatPlacesDB
	case ".plist":
		return FormatSafari
	case ".html", ".htm":
		return FormatNetscape
	}
	return FormatUnsupported
}

// Outcome is the result of dispatching one file.
type Outcome struct {
	Format  string
	Records []models.BookmarkRecord
	Err     error
}

// Dispatcher picks an extractor by extension and isolates its failures.
type Dispatcher struct {
	detector *artifactdetector.Classifier
	readFile func(path string) ([]byte, error)
}

// NewDispatcher creates a Dispatcher reading from the live filesystem
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		detector: artifactdetector.NewClassifier(),
		readFile: os.ReadFile,
	}
}

// Parse returns the records of one file. Failures are logged and yield none.
func (d *Dispatcher) Parse(file models.CandidateFile) []models.BookmarkRecord {
	return d.Dispatch(file).Records
}

// Dispatch is Parse with the routed format and any absorbed error exposed.
func (d *Dispatcher) Dispatch(file models.CandidateFile) (out Outcome) {
	out.Format = FormatForExt(file.Ext)
	out.Records = make([]models.BookmarkRecord, 0)
	if out.Format == FormatUnsupported {
		return out
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.Records = make([]models.BookmarkRecord, 0)
			out.Err = fmt.Errorf("%w: panic: %v", ErrFileParse, r)
		}
		if out.Err != nil {
			utils.LogWarn("Failed to parse bookmark file", utils.ErrMeta(out.Err, "path", file.Path, "format", out.Format))
			return
		}
		utils.LogDebug("Parsed bookmark file", map[string]string{
			"path":     file.Path,
			"format":   out.Format,
			"records":  fmt.Sprintf("%d", len(out.Records)),
			"duration": time.Since(start).String(),
		})
	}()

	sniffed, err := d.detector.Detect(file.Path)
	if err != nil {
		out.Err = fmt.Errorf("%w: %w", ErrFileParse, err)
		return out
	}
	if !accepts(out.Format, sniffed) {
		utils.LogDebug("Skipping file with foreign content", map[string]string{
			"path":     file.Path,
			"expected": out.Format,
			"detected": string(sniffed),
		})
		return out
	}

	records, err := d.extract(out.Format, file.Path)
	if err != nil {
		out.Err = err
		return out
	}
	out.Records = records
	return out
}

// accepts reports whether sniffed content can belong to the routed format.
// Unrecognised content is let through so the extractor reports the parse error.
func accepts(format string, sniffed artifactdetector.Format) bool {
	switch format {
	case FormatChromium:
		return sniffed == artifactdetector.FormatJSON || sniffed == artifactdetector.FormatUnknown
	case FormatPlacesLz4:
		return sniffed == artifactdetector.FormatMozLz4 || sniffed == artifactdetector.FormatJSON
	case FormatPlacesDB:
		return sniffed == artifactdetector.FormatSQLite
	case FormatSafari:
		return sniffed.IsPlist()
	case FormatNetscape:
		return sniffed == artifactdetector.FormatHTML || sniffed == artifactdetector.FormatUnknown
	}
	return false
}

func (d *Dispatcher) extract(format, path string) ([]models.BookmarkRecord, error) {
	if format == FormatPlacesDB {
		return ParseFirefoxPlaces(path)
	}

	data, err := d.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileParse, err)
	}

	switch format {
	case FormatChromium:
		return parseJSONTree(data)
	case FormatPlacesLz4:
		if artifactdetector.DetectFileType(data) == artifactdetector.FormatJSON {
			return ParsePlacesJSON(data)
		}
		return ParseMozLz4(data)
	case FormatSafari:
		return ParseSafari(data)
	case FormatNetscape:
		return ParseNetscapeHTML(data)
	}
	return make([]models.BookmarkRecord, 0), nil
}

// parseJSONTree handles both Chromium "roots" documents and Firefox JSON backups.
func parseJSONTree(data []byte) ([]models.BookmarkRecord, error) {
	doc, err := decodeJSONObject(data)
	if err != nil {
		return nil, err
	}
	if _, ok := doc["roots"]; !ok && IsPlacesTree(doc) {
		return Walk([]any{doc}, classifyPlaces, false), nil
	}
	return ExtractChromium(doc["roots"]), nil
}
