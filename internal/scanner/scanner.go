// Package scanner discovers files under a browser profile root that may hold bookmarks
package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/ilexum-group/gamemarks/internal/utils"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

// ErrDirectoryRead wraps failures listing a directory. They never abort a scan.
var ErrDirectoryRead = errors.New("directory read failed")

// ChromiumBookmarksName is the extensionless bookmark file of Chromium profiles
const ChromiumBookmarksName = "Bookmarks"

// candidateExts is the allow-list of extensions; "" means no extension.
var candidateExts = map[string]bool{
	"":         true,
	".json":    true,
	".jsonlz4": true,
	".bak":     true,
	".sqlite":  true,
	".db":      true,
	".html":    true,
	".htm":     true,
	".csv":     true,
	".xml":     true,
	".xbel":    true,
	".plist":   true,
	".url":     true,
}

// IsCandidateName reports whether a file name passes the extension allow-list
func IsCandidateName(name string) bool {
	return name == ChromiumBookmarksName || candidateExts[strings.ToLower(filepath.Ext(name))]
}

// Scanner finds candidate bookmark files with a deliberately shallow walk.
type Scanner struct {
	fs     FileAccessor
	ignore []glob.Glob
}

// New creates a Scanner. Ignore patterns are globs matched against base names.
// Invalid patterns are logged and dropped so a bad pattern never stops a sweep.
func New(accessor FileAccessor, ignorePatterns []string) *Scanner {
	if accessor == nil {
		accessor = NewHostFileAccessor()
	}
	s := &Scanner{fs: accessor}
	for _, pattern := range ignorePatterns {
		g, err := compilePattern(pattern)
		if err != nil {
			utils.LogWarn("Ignoring invalid ignore pattern", utils.ErrMeta(err, "pattern", pattern))
			continue
		}
		s.ignore = append(s.ignore, g)
	}
	return s
}

// ValidatePatterns returns an error for the first pattern that does not compile
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := compilePattern(pattern); err != nil {
			return err
		}
	}
	return nil
}

func compilePattern(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore pattern '%s': %w", pattern, err)
	}
	return g, nil
}

// Exists reports whether path exists
func (s *Scanner) Exists(path string) bool {
	_, err := s.fs.Stat(path)
	return err == nil
}

// Scan inspects baseDir, its parent, and each immediate child directory of
// baseDir. Paths are returned once each, in discovery order.
func (s *Scanner) Scan(baseDir string) []models.CandidateFile {
	seen := make(map[string]bool)
	candidates := make([]models.CandidateFile, 0)

	collect := func(dir string) {
		files, err := s.inspect(dir)
		if err != nil {
			utils.LogDebug("Directory skipped", utils.ErrMeta(err, "dir", dir))
			return
		}
		for _, f := range files {
			if seen[f.Path] {
				continue
			}
			seen[f.Path] = true
			candidates = append(candidates, f)
		}
	}

	collect(baseDir)
	collect(filepath.Dir(baseDir))

	entries, err := s.fs.ReadDir(baseDir)
	if err != nil {
		return candidates
	}
	for _, entry := range entries {
		sub := filepath.Join(baseDir, entry.Name())
		// follow symlinked profile dirs too, one level only
		info, err := s.fs.Stat(sub)
		if err != nil || !info.IsDir() {
			continue
		}
		collect(sub)
	}

	return candidates
}

// inspect lists the candidate files directly inside dir.
func (s *Scanner) inspect(dir string) ([]models.CandidateFile, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryRead, dir, err)
	}

	files := make([]models.CandidateFile, 0)
	for _, entry := range entries {
		name := entry.Name()
		if !IsCandidateName(name) || s.ignored(name) {
			continue
		}
		full := filepath.Join(dir, name)
		info, err := s.fs.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, models.CandidateFile{
			Path: full,
			Ext:  strings.ToLower(filepath.Ext(name)),
		})
	}
	return files, nil
}

func (s *Scanner) ignored(name string) bool {
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
