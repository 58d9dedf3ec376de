// Package acquisition sequences a bookmark sweep across every known browser root.
package acquisition

import (
	"fmt"
	"path/filepath"

	"github.com/ilexum-group/gamemarks/internal/dedupe"
	"github.com/ilexum-group/gamemarks/internal/extract"
	"github.com/ilexum-group/gamemarks/internal/utils"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

// FileScanner discovers candidate files below a profile root
type FileScanner interface {
	Exists(path string) bool
	Scan(baseDir string) []models.CandidateFile
}

// Parser turns one candidate file into records, absorbing its failures
type Parser interface {
	Dispatch(file models.CandidateFile) extract.Outcome
}

// ResultWriter persists the unique records and returns the artifact path
type ResultWriter interface {
	Write(records []models.BookmarkRecord) (string, error)
}

// Acquisition runs one sweep with its collaborators injected
type Acquisition struct {
	osName  string
	paths   models.BrowserPathSet
	scanner FileScanner
	parser  Parser
	writer  ResultWriter
}

// New creates a new Acquisition for the roots resolved for osName
func New(osName string, paths models.BrowserPathSet, scanner FileScanner, parser Parser, writer ResultWriter) *Acquisition {
	return &Acquisition{
		osName:  osName,
		paths:   paths,
		scanner: scanner,
		parser:  parser,
		writer:  writer,
	}
}

// Run performs the sweep. Browsers, roots and files are processed strictly in order.
// Only a failure to write the artifact is returned as an error.
func (a *Acquisition) Run() (models.ScanResult, error) {
	report := models.NewScanReport(a.osName)
	utils.LogInfo("Starting bookmark sweep", map[string]string{"run_id": report.ID, "os": a.osName})

	records := make([]models.BookmarkRecord, 0)
	seen := make(map[string]bool)

	for _, browser := range models.Browsers {
		for _, dir := range a.paths[browser] {
			if !a.scanner.Exists(dir) {
				utils.LogDebug("Browser directory not found", map[string]string{
					"browser": string(browser),
					"path":    dir,
				})
				continue
			}
			report.ScannedDirs = append(report.ScannedDirs, dir)
			records = append(records, a.collect(browser, dir, seen, report)...)
		}
	}

	unique := dedupe.Dedupe(records)
	utils.LogInfo("Bookmark sweep collected records", map[string]string{
		"extracted": fmt.Sprintf("%d", len(records)),
		"unique":    fmt.Sprintf("%d", len(unique)),
		"files":     fmt.Sprintf("%d", len(report.Files)),
	})

	artifact, err := a.writer.Write(unique)
	if err != nil {
		utils.LogError("Failed to write bookmark artifact", utils.ErrMeta(err, "run_id", report.ID))
		return models.ScanResult{}, err
	}

	if err := report.Finalize(artifact, len(unique)); err != nil {
		utils.LogWarn("Failed to finalize scan report", utils.ErrMeta(err, "run_id", report.ID))
	}

	utils.LogInfo("Bookmark sweep completed", map[string]string{
		"run_id":   report.ID,
		"artifact": artifact,
		"duration": report.Duration,
	})
	return models.ScanResult{Bookmarks: unique, ArtifactPath: artifact, Report: report}, nil
}

// collect dispatches every candidate below dir that no earlier root already produced
func (a *Acquisition) collect(browser models.Browser, dir string, seen map[string]bool, report *models.ScanReport) []models.BookmarkRecord {
	records := make([]models.BookmarkRecord, 0)

	for _, file := range a.scanner.Scan(dir) {
		key := filepath.Clean(file.Path)
		if seen[key] {
			continue
		}
		seen[key] = true

		out := a.parser.Dispatch(file)
		entry := models.FileReport{
			Browser: browser,
			Path:    file.Path,
			Format:  out.Format,
			Records: len(out.Records),
		}
		if out.Err != nil {
			entry.Error = out.Err.Error()
		}
		report.AddFile(entry)
		records = append(records, out.Records...)
	}
	return records
}
