// Package output persists the unique records of a sweep as a timestamped JSON artifact
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ilexum-group/gamemarks/internal/utils"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

// ErrOutputWrite is the only failure that aborts a sweep.
var ErrOutputWrite = errors.New("output write failed")

// ErrNoArtifact is returned by Latest when the directory holds no artifact
var ErrNoArtifact = errors.New("no bookmark artifact found")

// Artifact file names are <ArtifactPrefix><stamp><ArtifactExt>
const (
	ArtifactPrefix = "game_bookmarks_"
	ArtifactExt    = ".json"
)

const stampLayout = "2006-01-02T15:04:05.000Z07:00"

const maxNameCollisions = 100

// Writer writes artifacts into Dir
type Writer struct {
	Dir string
	now func() time.Time
}

// NewWriter creates a Writer for dir
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, now: time.Now}
}

// ArtifactName returns the file name used for an artifact written at t.
// The ISO-8601 UTC timestamp has its colons and periods stripped.
func ArtifactName(t time.Time) string {
	stamp := t.UTC().Format(stampLayout)
	stamp = strings.NewReplacer(":", "", ".", "").Replace(stamp)
	return ArtifactPrefix + stamp + ArtifactExt
}

// Write stores records as a pretty-printed JSON array and returns the artifact path.
// An empty input still produces a file containing [].
func (w *Writer) Write(records []models.BookmarkRecord) (string, error) {
	if records == nil {
		records = make([]models.BookmarkRecord, 0)
	}

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create results directory: %w", ErrOutputWrite, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal records: %w", ErrOutputWrite, err)
	}
	data = append(data, '\n')

	path, err := writeFileExclusive(filepath.Join(w.Dir, ArtifactName(w.now())), data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	utils.LogInfo("Bookmark artifact written", map[string]string{
		"path":    path,
		"records": fmt.Sprintf("%d", len(records)),
	})
	return path, nil
}

// writeFileExclusive writes through a hidden temp file so readers never see a
// partial artifact, then links it under path. An existing artifact is never
// replaced: on a name clash the next free "_NN" suffix is used.
func writeFileExclusive(path string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close artifact: %w", err)
	}

	for i := 0; i < maxNameCollisions; i++ {
		candidate := path
		if i > 0 {
			// '_' sorts after '.', so a suffixed name stays newer than its base
			candidate = strings.TrimSuffix(path, ArtifactExt) + fmt.Sprintf("_%02d", i) + ArtifactExt
		}
		err := os.Link(tmpPath, candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to move artifact into place: %w", err)
		}
	}
	return "", fmt.Errorf("no free artifact name for %s", filepath.Base(path))
}

// List returns the artifact paths in dir, oldest first.
// A missing directory yields no paths and no error.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isArtifactName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	// timestamps are fixed width, so name order is time order
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
	}
	return paths, nil
}

// Latest returns the most recent artifact in dir
func Latest(dir string) (string, error) {
	paths, err := List(dir)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoArtifact, dir)
	}
	return paths[len(paths)-1], nil
}

// Load reads an artifact back into records
func Load(path string) ([]models.BookmarkRecord, error) {
	//nolint:gosec // G304: path comes from Latest or the caller's own results directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	records := make([]models.BookmarkRecord, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode artifact %s: %w", path, err)
	}
	return records, nil
}

// Purge deletes every artifact in dir and returns how many were removed.
// Files that cannot be removed are logged and skipped.
func Purge(dir string) (int, error) {
	paths, err := List(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			utils.LogWarn("Failed to delete artifact", utils.ErrMeta(err, "path", p))
			continue
		}
		removed++
	}
	return removed, nil
}

func isArtifactName(name string) bool {
	return strings.HasPrefix(name, ArtifactPrefix) && strings.HasSuffix(name, ArtifactExt)
}
