package extract

import (
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver for places databases

	"github.com/ilexum-group/gamemarks/internal/utils"
	"github.com/ilexum-group/gamemarks/pkg/models"
)

// FirefoxGameBookmarksSQL selects bookmarks whose title mentions a game.
// Places keeps folder structure in parent links, so titles are matched instead.
const FirefoxGameBookmarksSQL = `
	SELECT b.title, p.url
	FROM moz_bookmarks b
	JOIN moz_places p ON b.fk = p.id
	WHERE LOWER(b.title) LIKE '%game%' OR LOWER(b.title) LIKE '%games%'
	ORDER BY b.id
`

// ParseFirefoxPlaces copies the database at path (a running browser may hold
// it locked), queries the copy read-only, and removes the copy on every path out.
func ParseFirefoxPlaces(path string) ([]models.BookmarkRecord, error) {
	tmpFile, err := copyDBForReading(path)
	if err != nil {
		return nil, err
	}
	defer cleanupTempFile(tmpFile)

	return queryGameBookmarks(tmpFile)
}

func queryGameBookmarks(dbPath string) ([]models.BookmarkRecord, error) {
	db, err := sql.Open("sqlite", readOnlyDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSQLiteQuery, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			utils.LogDebug("Failed to close places db", utils.ErrMeta(err, "path", dbPath))
		}
	}()

	rows, err := db.Query(FirefoxGameBookmarksSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSQLiteQuery, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			utils.LogDebug("Failed to close places rows", utils.ErrMeta(err, "path", dbPath))
		}
	}()

	records := make([]models.BookmarkRecord, 0)
	for rows.Next() {
		var title, url sql.NullString
		if err := rows.Scan(&title, &url); err != nil {
			continue
		}
		if !url.Valid || url.String == "" {
			continue
		}
		records = append(records, NewRecord(title.String, url.String))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSQLiteQuery, err)
	}
	return records, nil
}

// readOnlyDSN builds a read-only SQLite URI for path. The path is
// percent-escaped so '#', '?' and '%' in directory names survive.
func readOnlyDSN(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// C:/... on windows
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}

// copyDBForReading copies dbPath to a uniquely named sibling file, or into the
// OS temp dir when the sibling directory is not writable.
func copyDBForReading(dbPath string) (string, error) {
	//nolint:gosec // G304: paths come from the candidate scan
	source, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSQLiteCopy, err)
	}
	defer source.Close()

	// pid plus CreateTemp's random suffix keeps overlapping runs apart
	pattern := fmt.Sprintf("%s.%d-*.tmp", filepath.Base(dbPath), os.Getpid())
	dest, err := os.CreateTemp(filepath.Dir(dbPath), pattern)
	if err != nil {
		dest, err = os.CreateTemp("", pattern)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrSQLiteCopy, err)
		}
	}
	tmpFile := dest.Name()

	if _, err := io.Copy(dest, source); err != nil {
		_ = dest.Close()
		cleanupTempFile(tmpFile)
		return "", fmt.Errorf("%w: %w", ErrSQLiteCopy, err)
	}
	if err := dest.Close(); err != nil {
		cleanupTempFile(tmpFile)
		return "", fmt.Errorf("%w: %w", ErrSQLiteCopy, err)
	}
	return tmpFile, nil
}

func cleanupTempFile(path string) {
	if path == "" {
		return
	}
	for _, p := range []string{path, path + "-journal", path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			utils.LogWarn("Failed to remove temp database copy", utils.ErrMeta(err, "path", p))
		}
	}
}
